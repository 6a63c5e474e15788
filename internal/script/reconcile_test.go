package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steps(n int) []Step {
	result := make([]Step, n)
	for i := range result {
		result[i] = Step{ID: i + 1}
	}
	return result
}

func ptr(s string) *string {
	return &s
}

func TestReconcileWithoutScript(t *testing.T) {
	tests := []struct {
		name      string
		steps     []Step
		stepCount int
		expected  string
		rule      Rule
	}{
		{
			name:     "empty step list uses the empty flow default",
			steps:    []Step{},
			expected: EmptyFlowScript(),
			rule:     RuleEmptyFlowDefault,
		},
		{
			name:      "single step generates for two steps",
			steps:     steps(1),
			stepCount: 1,
			expected:  GenerateScript(2),
			rule:      RuleGeneratedDefault,
		},
		{
			name:      "three steps generates for four steps",
			steps:     steps(3),
			stepCount: 3,
			expected:  GenerateScript(4),
			rule:      RuleGeneratedDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := EditorState{IsFromTemplate: true}
			result := Reconcile(Input{Steps: tt.steps, StepCount: tt.stepCount}, state)

			require.NotNil(t, result.Script)
			assert.Equal(t, tt.expected, *result.Script)
			assert.Equal(t, tt.rule, result.Rule)
			assert.False(t, result.State.IsFromTemplate)
			assert.True(t, result.State.HasDisplayed)
			assert.False(t, result.ResetRequested())
		})
	}
}

func TestReconcileEmptyStringCountsAsNoScript(t *testing.T) {
	result := Reconcile(Input{Script: ptr(""), Steps: steps(2), StepCount: 2}, EditorState{})

	require.NotNil(t, result.Script)
	assert.Equal(t, GenerateScript(3), *result.Script)
	assert.Equal(t, RuleGeneratedDefault, result.Rule)
}

func TestReconcileTemplateRoundTrip(t *testing.T) {
	result := Reconcile(Input{Script: ptr(`["X"]`), Steps: steps(1), StepCount: 1}, EditorState{})

	require.NotNil(t, result.Script)
	assert.Equal(t, "X", *result.Script)
	assert.True(t, result.State.IsFromTemplate)
	assert.False(t, result.State.IsNewlyAddedFromTemplate)
	assert.Equal(t, RuleTemplate, result.Rule)
}

func TestReconcileTemplatePreservesEdits(t *testing.T) {
	state := EditorState{
		DisplayedScript: "A",
		HasDisplayed:    true,
		IsFromTemplate:  true,
	}

	result := Reconcile(Input{Script: ptr(`["B"]`), Steps: steps(1), StepCount: 1}, state)

	require.NotNil(t, result.Script)
	assert.Equal(t, "A", *result.Script)
	assert.Equal(t, state, result.State)
}

func TestReconcileTemplateIgnoresWhitespaceDifferences(t *testing.T) {
	state := EditorState{
		DisplayedScript: "var a = 1;",
		HasDisplayed:    true,
		IsFromTemplate:  true,
	}

	result := Reconcile(Input{Script: ptr(`["var a=1;\n"]`), Steps: steps(1), StepCount: 1}, state)

	require.NotNil(t, result.Script)
	assert.Equal(t, "var a=1;\n", *result.Script)
	assert.True(t, result.State.IsFromTemplate)
}

func TestReconcileNewlySelectedTemplateReplacesEdits(t *testing.T) {
	state := EditorState{
		DisplayedScript:          "A",
		HasDisplayed:             true,
		IsFromTemplate:           true,
		IsNewlyAddedFromTemplate: true,
	}

	result := Reconcile(Input{Script: ptr(`["B"]`), Steps: steps(1), StepCount: 1}, state)

	require.NotNil(t, result.Script)
	assert.Equal(t, "B", *result.Script)
	assert.True(t, result.State.IsFromTemplate)
	assert.False(t, result.State.IsNewlyAddedFromTemplate, "the one-shot flag is consumed")
}

func TestReconcileMalformedJSONFallsThrough(t *testing.T) {
	external := `["unterminated`

	result := Reconcile(Input{Script: ptr(external), Steps: steps(1), StepCount: 1}, EditorState{})

	require.NotNil(t, result.Script)
	assert.Equal(t, RuleExternalScript, result.Rule)
	assert.Equal(t, Beautify(external), *result.Script)
	assert.False(t, result.State.IsFromTemplate)
}

func TestReconcileMultiElementArrayIsPlainScript(t *testing.T) {
	result := Reconcile(Input{Script: ptr(`["a","b"]`), Steps: steps(1), StepCount: 1}, EditorState{})

	assert.Equal(t, RuleExternalScript, result.Rule)
	assert.False(t, result.State.IsFromTemplate)
}

func TestReconcileRegeneratesDefaultScript(t *testing.T) {
	tests := []struct {
		name      string
		external  string
		lastKnown *int
		stepCount int
	}{
		{
			name:      "default for the current step count",
			external:  DefaultScriptFor(2),
			stepCount: 2,
		},
		{
			name:      "default for the previous step count",
			external:  DefaultScriptFor(1),
			lastKnown: intPtr(1),
			stepCount: 2,
		},
		{
			name:      "default with different formatting",
			external:  "var onLoginRequest=function(context){executeStep(1);executeStep(2);};",
			stepCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := EditorState{LastKnownStepCount: tt.lastKnown}
			result := Reconcile(Input{Script: ptr(tt.external), Steps: steps(tt.stepCount), StepCount: tt.stepCount}, state)

			require.NotNil(t, result.Script)
			assert.Equal(t, GenerateScript(tt.stepCount+1), *result.Script)
			assert.Equal(t, RuleRegenerateDefault, result.Rule)
			require.NotNil(t, result.State.LastKnownStepCount)
			assert.Equal(t, tt.stepCount, *result.State.LastKnownStepCount)
			assert.False(t, result.State.IsFromTemplate)
		})
	}
}

func TestReconcileExternalScript(t *testing.T) {
	custom := `var onLoginRequest = function(context) { executeStep(1, { onSuccess: function(context) { Log.info("https:\/\/example.com"); } }); };`

	t.Run("adopts formatted script when nothing is displayed", func(t *testing.T) {
		result := Reconcile(Input{Script: ptr(custom), Steps: steps(1), StepCount: 1}, EditorState{})

		require.NotNil(t, result.Script)
		assert.Equal(t, Beautify(StripSlashes(custom)), *result.Script)
		assert.Contains(t, *result.Script, "https://example.com")
		assert.NotContains(t, *result.Script, `\/`)
		assert.Equal(t, RuleExternalScript, result.Rule)
		require.NotNil(t, result.State.LastKnownStepCount)
		assert.Equal(t, 1, *result.State.LastKnownStepCount)
	})

	t.Run("keeps user edits over a stale external value", func(t *testing.T) {
		state := EditorState{DisplayedScript: "var edited = true;", HasDisplayed: true}
		result := Reconcile(Input{Script: ptr(custom), Steps: steps(1), StepCount: 1}, state)

		require.NotNil(t, result.Script)
		assert.Equal(t, "var edited = true;", *result.Script)
		assert.Equal(t, "var edited = true;", result.State.DisplayedScript)
		require.NotNil(t, result.State.LastKnownStepCount)
	})

	t.Run("adopts when the displayed script matches ignoring whitespace", func(t *testing.T) {
		state := EditorState{DisplayedScript: Beautify(custom), HasDisplayed: true, IsFromTemplate: true}
		result := Reconcile(Input{Script: ptr(custom), Steps: steps(1), StepCount: 1}, state)

		require.NotNil(t, result.Script)
		assert.Equal(t, Beautify(StripSlashes(custom)), *result.Script)
		assert.False(t, result.State.IsFromTemplate)
	})
}

func TestReconcileResetWhenStepsUnknown(t *testing.T) {
	result := Reconcile(Input{Steps: nil, StepCount: 2, IsDefaultScript: true}, EditorState{IsFromTemplate: true})

	require.NotNil(t, result.Script)
	assert.Equal(t, GenerateScript(3), *result.Script)
	assert.Equal(t, RuleReset, result.Rule)
	assert.True(t, result.ResetRequested())
	assert.False(t, result.State.IsFromTemplate)
}

func TestReconcileFallback(t *testing.T) {
	t.Run("absent script stays absent", func(t *testing.T) {
		result := Reconcile(Input{Steps: nil}, EditorState{DisplayedScript: "x", HasDisplayed: true})

		assert.Nil(t, result.Script)
		assert.Equal(t, RuleFallback, result.Rule)
		assert.False(t, result.State.HasDisplayed)
		assert.False(t, result.ResetRequested())
	})

	t.Run("empty script is adopted verbatim", func(t *testing.T) {
		result := Reconcile(Input{Script: ptr(""), Steps: nil}, EditorState{})

		require.NotNil(t, result.Script)
		assert.Equal(t, "", *result.Script)
		assert.Equal(t, RuleFallback, result.Rule)
	})
}

func TestReconcileIsIdempotent(t *testing.T) {
	inputs := []Input{
		{Steps: []Step{}},
		{Steps: steps(2), StepCount: 2},
		{Script: ptr(`["var a = 1;"]`), Steps: steps(1), StepCount: 1},
		{Script: ptr(DefaultScriptFor(1)), Steps: steps(1), StepCount: 1},
		{Script: ptr(`var x = "a\/b";`), Steps: steps(1), StepCount: 1},
		{Steps: nil, StepCount: 1, IsDefaultScript: true},
	}

	for _, in := range inputs {
		first := Reconcile(in, EditorState{})
		second := Reconcile(in, first.State)

		assert.Equal(t, first.Script, second.Script)
		assert.Equal(t, first.State.DisplayedScript, second.State.DisplayedScript)
	}
}

func TestReconcileIsPure(t *testing.T) {
	state := EditorState{DisplayedScript: "A", HasDisplayed: true, IsFromTemplate: true}
	in := Input{Script: ptr(`["B"]`), Steps: steps(1), StepCount: 1}

	assert.Equal(t, Reconcile(in, state), Reconcile(in, state))
	assert.Equal(t, "A", state.DisplayedScript)
}

func TestRuleMarshalText(t *testing.T) {
	text, err := RuleTemplate.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "template", string(text))
	assert.Equal(t, "unknown", Rule(0).String())
}
