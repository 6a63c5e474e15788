package editor

import (
	"slices"
	"sync"

	"github.com/thand-io/console/internal/models"
)

// Form is the owner side of an editor: it keeps the authentication sequence
// being edited and is updated through the editor callbacks.
type Form struct {
	mu              sync.Mutex
	sequence        *models.AuthenticationSequence
	stepCount       int
	isDefaultScript bool
	lastTemplate    string
	resets          int
}

// Set replaces the sequence held by the form.
func (f *Form) Set(sequence *models.AuthenticationSequence, stepCount int, isDefaultScript bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sequence = cloneSequence(sequence)
	f.stepCount = stepCount
	f.isDefaultScript = isDefaultScript
}

// Get returns a copy of the sequence held by the form.
func (f *Form) Get() (*models.AuthenticationSequence, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneSequence(f.sequence), f.stepCount, f.isDefaultScript
}

func (f *Form) LastTemplate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastTemplate
}

func (f *Form) Resets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resets
}

func (f *Form) Callbacks() Callbacks {
	return Callbacks{
		OnScriptChange: func(script string) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.sequence == nil {
				f.sequence = &models.AuthenticationSequence{}
			}
			f.sequence.Script = &script
			f.isDefaultScript = false
		},
		OnAdaptiveScriptReset: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.sequence != nil {
				f.sequence.Script = nil
			}
			f.isDefaultScript = false
			f.resets++
		},
		OnTemplateSelect: func(template models.AdaptiveAuthTemplate) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.lastTemplate = template.Name
		},
	}
}

func cloneSequence(sequence *models.AuthenticationSequence) *models.AuthenticationSequence {
	if sequence == nil {
		return nil
	}
	clone := *sequence
	if sequence.Steps != nil {
		clone.Steps = slices.Clone(sequence.Steps)
	}
	if sequence.Script != nil {
		value := *sequence.Script
		clone.Script = &value
	}
	return &clone
}
