package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/client"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/script"
)

type fakeClient struct {
	templates      *models.AdaptiveAuthTemplates
	templatesErr   error
	application    *models.Application
	applicationErr error
}

func (f *fakeClient) GetAdaptiveAuthTemplates(ctx context.Context) (*models.AdaptiveAuthTemplates, error) {
	return f.templates, f.templatesErr
}

func (f *fakeClient) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	return f.application, f.applicationErr
}

const roleTemplateScript = "var onLoginRequest = function(context) {\n    executeStep(1);\n    executeStep(2);\n};"

func testTemplates() *models.AdaptiveAuthTemplates {
	return &models.AdaptiveAuthTemplates{
		TemplatesJSON: map[string]models.AdaptiveAuthTemplate{
			"role-based": {
				Name:  "role-based",
				Title: "Role-Based",
				Code: []string{
					"var onLoginRequest = function(context) {",
					"    executeStep(1);",
					"    executeStep(2);",
					"};",
				},
			},
		},
	}
}

func steps(n int) []models.AuthenticationStep {
	result := make([]models.AuthenticationStep, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, models.AuthenticationStep{ID: i})
	}
	return result
}

func mountedSession(t *testing.T, client Client) *Session {
	t.Helper()
	session := NewWithForm("app-1", Dependencies{Client: client})
	require.NoError(t, session.Mount(context.Background()))
	return session
}

func ptr(s string) *string {
	return &s
}

func TestSession_MountFailureRaisesAlert(t *testing.T) {
	session := mountedSession(t, &fakeClient{
		templatesErr: &client.APIError{StatusCode: 500, Description: "Template store offline"},
	})

	view := session.Snapshot()
	assert.True(t, view.Mounted)
	assert.Empty(t, view.Templates)
	require.Len(t, view.Alerts, 1)
	assert.Equal(t, "Template store offline", view.Alerts[0].Description)

	result, err := session.SetSequence(&models.AuthenticationSequence{Steps: steps(1)}, 1, false)
	require.NoError(t, err)
	assert.Equal(t, script.RuleGeneratedDefault, result.Rule)

	assert.True(t, session.DismissAlert(0))
	assert.Empty(t, session.Snapshot().Alerts)
}

func TestSession_SetSequence(t *testing.T) {
	tests := []struct {
		name         string
		sequence     *models.AuthenticationSequence
		stepCount    int
		expectedRule script.Rule
		expected     string
		showContent  bool
	}{
		{
			name:         "empty flow",
			sequence:     &models.AuthenticationSequence{Steps: []models.AuthenticationStep{}},
			expectedRule: script.RuleEmptyFlowDefault,
			expected:     script.EmptyFlowScript(),
		},
		{
			name:         "generated default",
			sequence:     &models.AuthenticationSequence{Steps: steps(2)},
			stepCount:    2,
			expectedRule: script.RuleGeneratedDefault,
			expected:     script.GenerateScript(3),
		},
		{
			name:         "custom script is formatted",
			sequence:     &models.AuthenticationSequence{Steps: steps(1), Script: ptr("var a = 1;var b = '\\/x';")},
			stepCount:    1,
			expectedRule: script.RuleExternalScript,
			expected:     "var a = 1;\nvar b = '/x';",
			showContent:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mountedSession(t, &fakeClient{templates: testTemplates()})

			result, err := session.SetSequence(tt.sequence, tt.stepCount, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRule, result.Rule)
			require.NotNil(t, result.Script)
			assert.Equal(t, tt.expected, *result.Script)

			view := session.Snapshot()
			assert.Equal(t, tt.showContent, view.ShowConditionalAuth)
			assert.Equal(t, tt.expected, *view.Script)
			assert.Len(t, view.Templates, 1)
		})
	}
}

func TestSession_TemplateSelection(t *testing.T) {
	store, err := audit.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	session := NewWithForm("app-1", Dependencies{Client: &fakeClient{templates: testTemplates()}, Audit: store})
	require.NoError(t, session.Mount(context.Background()))

	sequence := &models.AuthenticationSequence{Steps: steps(2)}
	session.Form().Set(sequence, 2, false)
	_, err = session.Feedback()
	require.NoError(t, err)

	_, err = session.SelectTemplate(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	template, err := session.SelectTemplate(context.Background(), "role-based")
	require.NoError(t, err)
	assert.Equal(t, "Role-Based", template.Title)
	assert.True(t, session.Snapshot().State.IsNewlyAddedFromTemplate)
	assert.Equal(t, "role-based", session.Form().LastTemplate())

	formSequence, _, _ := session.Form().Get()
	require.NotNil(t, formSequence.Script)
	assert.Equal(t, script.EncodeTemplateScript(roleTemplateScript), *formSequence.Script)

	result, err := session.Feedback()
	require.NoError(t, err)
	assert.Equal(t, script.RuleTemplate, result.Rule)
	assert.Equal(t, roleTemplateScript, *result.Script)
	assert.True(t, result.State.IsFromTemplate)
	assert.False(t, result.State.IsNewlyAddedFromTemplate)

	// User edits survive a re-render with the same template.
	require.NoError(t, session.Edit(roleTemplateScript+"\n// tweaked"))
	result, err = session.SetSequence(&models.AuthenticationSequence{
		Steps:  steps(2),
		Script: ptr(script.EncodeTemplateScript(roleTemplateScript)),
	}, 2, false)
	require.NoError(t, err)
	assert.Equal(t, roleTemplateScript+"\n// tweaked", *result.Script)

	events, err := store.List(context.Background(), audit.ListOptions{Type: audit.EventScriptTemplateSelected})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSession_ConditionalAuthToggle(t *testing.T) {
	store, err := audit.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	stats := &Stats{}
	session := NewWithForm("app-1", Dependencies{Audit: store, Stats: stats})
	require.NoError(t, session.Mount(context.Background()))

	sequence := &models.AuthenticationSequence{Steps: steps(2), Script: ptr("var custom = true;")}
	session.Form().Set(sequence, 2, false)
	_, err = session.Feedback()
	require.NoError(t, err)
	require.True(t, session.Snapshot().ShowConditionalAuth)

	assert.ErrorIs(t, session.ConfirmReset(context.Background()), ErrNoPendingReset)

	require.NoError(t, session.ToggleConditionalAuth())
	view := session.Snapshot()
	assert.True(t, view.ResetWarning)
	assert.True(t, view.ShowConditionalAuth, "hiding waits for confirmation")

	session.CancelReset()
	assert.False(t, session.Snapshot().ResetWarning)

	require.NoError(t, session.ToggleConditionalAuth())
	require.NoError(t, session.ConfirmReset(context.Background()))

	view = session.Snapshot()
	assert.False(t, view.ShowConditionalAuth)
	assert.False(t, view.ResetWarning)
	assert.Equal(t, script.GenerateScript(3), *view.Script)
	assert.False(t, view.State.IsFromTemplate)
	assert.Equal(t, 1, session.Form().Resets())
	assert.Equal(t, int64(1), stats.ScriptResets.Load())

	formSequence, _, _ := session.Form().Get()
	assert.Nil(t, formSequence.Script)

	require.NoError(t, session.ToggleConditionalAuth())
	assert.True(t, session.Snapshot().ShowConditionalAuth)

	events, err := store.List(context.Background(), audit.ListOptions{Type: audit.EventScriptReset})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSession_DefaultFlagResets(t *testing.T) {
	resets := 0
	session := New("app-1", Dependencies{}, Callbacks{
		OnAdaptiveScriptReset: func() { resets++ },
	})
	require.NoError(t, session.Mount(context.Background()))

	result, err := session.SetSequence(&models.AuthenticationSequence{}, 1, true)
	require.NoError(t, err)

	assert.Equal(t, script.RuleReset, result.Rule)
	assert.True(t, result.ResetRequested())
	assert.Equal(t, 1, resets)
	assert.Equal(t, script.GenerateScript(2), *result.Script)
	assert.False(t, session.Snapshot().ShowConditionalAuth)
}

func TestSession_LoadApplication(t *testing.T) {
	defaultScript := script.DefaultScriptFor(1)
	session := mountedSession(t, &fakeClient{
		templates: testTemplates(),
		application: &models.Application{
			ID: "app-1",
			AuthenticationSequence: &models.AuthenticationSequence{
				Steps:  steps(1),
				Script: &defaultScript,
			},
		},
	})

	result, err := session.LoadApplication(context.Background())
	require.NoError(t, err)
	assert.Equal(t, script.RuleRegenerateDefault, result.Rule)
	assert.Equal(t, 1, session.Snapshot().StepCount)

	_, stepCount, isDefault := session.Form().Get()
	assert.Equal(t, 1, stepCount)
	assert.True(t, isDefault)
}

func TestSession_LoadApplicationFailure(t *testing.T) {
	session := mountedSession(t, &fakeClient{
		templates:      testTemplates(),
		applicationErr: &client.APIError{StatusCode: 404},
	})

	_, err := session.LoadApplication(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	alerts := session.Snapshot().Alerts
	require.Len(t, alerts, 1)
	assert.Equal(t, applicationFetchErrorDescription, alerts[0].Description)

	noClient := NewWithForm("app-1", Dependencies{})
	require.NoError(t, noClient.Mount(context.Background()))
	_, err = noClient.LoadApplication(context.Background())
	assert.ErrorIs(t, err, ErrNoApplication)
}

func TestSession_Unmount(t *testing.T) {
	session := mountedSession(t, &fakeClient{templates: testTemplates()})
	_, err := session.SetSequence(&models.AuthenticationSequence{Steps: steps(1)}, 1, false)
	require.NoError(t, err)

	session.Unmount()

	view := session.Snapshot()
	assert.False(t, view.Mounted)
	assert.Nil(t, view.Script)
	assert.Empty(t, view.Templates)

	_, err = session.SetSequence(&models.AuthenticationSequence{Steps: steps(1)}, 1, false)
	assert.ErrorIs(t, err, ErrUnmounted)
	assert.ErrorIs(t, session.Edit("x"), ErrUnmounted)
	assert.ErrorIs(t, session.ToggleConditionalAuth(), ErrUnmounted)
	_, err = session.SelectTemplate(context.Background(), "role-based")
	assert.ErrorIs(t, err, ErrUnmounted)
}

func TestSession_EditFiresCallback(t *testing.T) {
	var changed []string
	session := New("app-1", Dependencies{}, Callbacks{
		OnScriptChange: func(script string) { changed = append(changed, script) },
	})
	require.NoError(t, session.Mount(context.Background()))

	require.NoError(t, session.Edit("var x;"))
	assert.Equal(t, []string{"var x;"}, changed)
	assert.Equal(t, "var x;", *session.Snapshot().Script)
}
