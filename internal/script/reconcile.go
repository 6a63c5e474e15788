// Package script decides what the conditional authentication script editor
// shows when the authentication sequence of an application changes.
//
// Reconcile is a pure function over an explicit EditorState. Callers keep the
// returned state for the next pass and perform the returned effects
// themselves.
package script

// Rule identifies which decision produced a Result.
type Rule int

const (
	RuleEmptyFlowDefault Rule = iota + 1
	RuleGeneratedDefault
	RuleTemplate
	RuleRegenerateDefault
	RuleExternalScript
	RuleReset
	RuleFallback
)

func (r Rule) String() string {
	switch r {
	case RuleEmptyFlowDefault:
		return "empty_flow_default"
	case RuleGeneratedDefault:
		return "generated_default"
	case RuleTemplate:
		return "template"
	case RuleRegenerateDefault:
		return "regenerate_default"
	case RuleExternalScript:
		return "external_script"
	case RuleReset:
		return "reset"
	case RuleFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// MarshalText renders the rule by name in JSON payloads.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Effect is work the caller must perform after a reconciliation pass.
type Effect string

const (
	// EffectResetRequested asks the caller to notify dependents that the
	// script was reset to the default.
	EffectResetRequested Effect = "reset_requested"
)

// Step is an authentication step of the sequence. Only the number of steps
// matters to the reconciler.
type Step struct {
	ID int `json:"id"`
}

// EditorState is the state the editor keeps between reconciliation passes.
type EditorState struct {
	DisplayedScript          string `json:"displayed_script"`
	HasDisplayed             bool   `json:"has_displayed"`
	IsFromTemplate           bool   `json:"is_from_template"`
	IsNewlyAddedFromTemplate bool   `json:"is_newly_added_from_template"`
	LastKnownStepCount       *int   `json:"last_known_step_count,omitempty"`
}

// Input is everything a reconciliation pass looks at besides the state.
type Input struct {
	// Script is the externally supplied script, nil when the sequence has none.
	Script *string `json:"script,omitempty"`
	// Steps is the configured step list. A nil slice means the sequence does
	// not carry a step list at all.
	Steps []Step `json:"steps"`
	// StepCount is the authoritative step count used for script generation.
	StepCount int `json:"step_count"`
	// IsDefaultScript tells whether the caller considers the active script a
	// default one.
	IsDefaultScript bool `json:"is_default_script"`
}

// Result is the outcome of one reconciliation pass.
type Result struct {
	Script  *string     `json:"script"`
	State   EditorState `json:"state"`
	Rule    Rule        `json:"rule"`
	Effects []Effect    `json:"effects,omitempty"`
}

// ResetRequested reports whether the caller must send the reset notification.
func (r Result) ResetRequested() bool {
	for _, effect := range r.Effects {
		if effect == EffectResetRequested {
			return true
		}
	}
	return false
}

// Reconcile decides what the editor displays for the given input. The first
// matching rule wins:
//
//  1. no script and an empty step list: the empty flow default
//  2. no script and configured steps: the default for StepCount+1 steps
//  3. template wire shape: adopt the template unless the user edited it
//  4. a default script: regenerate it for the current step count
//  5. any other script: keep user edits, otherwise adopt it formatted
//  6. the caller flags a default script: reset to the default
//  7. adopt the external value as is
func Reconcile(in Input, state EditorState) Result {
	external := ""
	hasExternal := in.Script != nil && len(*in.Script) > 0
	if hasExternal {
		external = *in.Script
	}

	if !hasExternal && in.Steps != nil {
		if len(in.Steps) == 0 {
			return adopt(state, EmptyFlowScript(), false, RuleEmptyFlowDefault)
		}
		return adopt(state, GenerateScript(in.StepCount+1), false, RuleGeneratedDefault)
	}

	if hasExternal {
		if decoded, ok := DecodeTemplateScript(external); ok {
			if state.IsFromTemplate && !state.IsNewlyAddedFromTemplate &&
				Minify(state.DisplayedScript) != Minify(decoded) {
				return keep(state, RuleTemplate)
			}

			next := state
			next.IsNewlyAddedFromTemplate = false
			return adopt(next, decoded, true, RuleTemplate)
		}

		next := state
		next.LastKnownStepCount = intPtr(in.StepCount)

		if isRecognisedDefault(external, state.LastKnownStepCount, in.StepCount) {
			return adopt(next, GenerateScript(in.StepCount+1), false, RuleRegenerateDefault)
		}

		if state.HasDisplayed && Minify(state.DisplayedScript) != Minify(external) {
			return keep(next, RuleExternalScript)
		}

		return adopt(next, Beautify(StripSlashes(external)), false, RuleExternalScript)
	}

	if in.IsDefaultScript {
		result := adopt(state, GenerateScript(in.StepCount+1), false, RuleReset)
		result.Effects = append(result.Effects, EffectResetRequested)
		return result
	}

	next := state
	next.IsFromTemplate = false
	if in.Script == nil {
		next.DisplayedScript = ""
		next.HasDisplayed = false
		return Result{Script: nil, State: next, Rule: RuleFallback}
	}
	return adopt(next, *in.Script, false, RuleFallback)
}

func isRecognisedDefault(script string, lastKnown *int, stepCount int) bool {
	if lastKnown != nil && IsDefaultScript(script, *lastKnown) {
		return true
	}
	return IsDefaultScript(script, stepCount)
}

func adopt(state EditorState, displayed string, fromTemplate bool, rule Rule) Result {
	state.DisplayedScript = displayed
	state.HasDisplayed = true
	state.IsFromTemplate = fromTemplate
	return Result{
		Script: stringPtr(displayed),
		State:  state,
		Rule:   rule,
	}
}

func keep(state EditorState, rule Rule) Result {
	var displayed *string
	if state.HasDisplayed {
		displayed = stringPtr(state.DisplayedScript)
	}
	return Result{
		Script: displayed,
		State:  state,
		Rule:   rule,
	}
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
