package models

import (
	"strings"

	"github.com/thand-io/console/internal/script"
)

type Application struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	Description            string                  `json:"description,omitempty"`
	AuthenticationSequence *AuthenticationSequence `json:"authenticationSequence,omitempty"`
}

// AuthenticationSequence is the sign on flow of an application. Script is
// nil when no conditional authentication script is configured.
type AuthenticationSequence struct {
	Type            string               `json:"type,omitempty"`
	Steps           []AuthenticationStep `json:"steps"`
	Script          *string              `json:"script,omitempty"`
	SubjectStepID   int                  `json:"subjectStepId,omitempty"`
	AttributeStepID int                  `json:"attributeStepId,omitempty"`
}

type AuthenticationStep struct {
	ID      int             `json:"id"`
	Options []Authenticator `json:"options,omitempty"`
}

type Authenticator struct {
	IDP           string `json:"idp"`
	Authenticator string `json:"authenticator"`
}

// HasScript reports whether the sequence carries a non empty script.
func (s *AuthenticationSequence) HasScript() bool {
	return s != nil && s.Script != nil && len(strings.TrimSpace(*s.Script)) > 0
}

// StepCount returns the number of configured steps.
func (s *AuthenticationSequence) StepCount() int {
	if s == nil {
		return 0
	}
	return len(s.Steps)
}

// ScriptSteps converts the configured steps for the script reconciler. A
// sequence without a step list yields nil.
func (s *AuthenticationSequence) ScriptSteps() []script.Step {
	if s == nil || s.Steps == nil {
		return nil
	}
	steps := make([]script.Step, 0, len(s.Steps))
	for _, step := range s.Steps {
		steps = append(steps, script.Step{ID: step.ID})
	}
	return steps
}
