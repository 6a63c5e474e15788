package models

import (
	"slices"
	"strings"
)

// AdaptiveAuthTemplate is a ready made conditional authentication script.
type AdaptiveAuthTemplate struct {
	Name                    string         `json:"name" yaml:"name"`
	Title                   string         `json:"title" yaml:"title"`
	Summary                 string         `json:"summary,omitempty" yaml:"summary"`
	PreRequisites           []string       `json:"preRequisites,omitempty" yaml:"preRequisites"`
	HelpLink                string         `json:"helpLink,omitempty" yaml:"helpLink"`
	Code                    []string       `json:"code" yaml:"code"`
	Runtime                 string         `json:"runtime,omitempty" yaml:"runtime"`
	Type                    string         `json:"type,omitempty" yaml:"type"`
	Category                string         `json:"category,omitempty" yaml:"category"`
	ParametersDescription   map[string]any `json:"parametersDescription,omitempty" yaml:"parametersDescription"`
	DefaultStepsDescription map[string]any `json:"defaultStepsDescription,omitempty" yaml:"defaultStepsDescription"`
	AuthenticationSteps     int            `json:"authenticationSteps,omitempty" yaml:"authenticationSteps"`
	DefaultAuthenticators   map[string]any `json:"defaultAuthenticators,omitempty" yaml:"defaultAuthenticators"`
}

// Script joins the template code lines into a single script body.
func (t AdaptiveAuthTemplate) Script() string {
	return strings.Join(t.Code, "\n")
}

// AdaptiveAuthTemplates is the template catalog returned by the backend.
type AdaptiveAuthTemplates struct {
	TemplatesJSON map[string]AdaptiveAuthTemplate `json:"templatesJSON"`
}

// List returns the templates ordered by name.
func (t *AdaptiveAuthTemplates) List() []AdaptiveAuthTemplate {
	if t == nil {
		return nil
	}
	templates := make([]AdaptiveAuthTemplate, 0, len(t.TemplatesJSON))
	for key, template := range t.TemplatesJSON {
		if len(template.Name) == 0 {
			template.Name = key
		}
		templates = append(templates, template)
	}
	slices.SortFunc(templates, func(a, b AdaptiveAuthTemplate) int {
		return strings.Compare(a.Name, b.Name)
	})
	return templates
}

// Get looks a template up by catalog key or by name.
func (t *AdaptiveAuthTemplates) Get(name string) (AdaptiveAuthTemplate, bool) {
	if t == nil {
		return AdaptiveAuthTemplate{}, false
	}
	if template, ok := t.TemplatesJSON[name]; ok {
		if len(template.Name) == 0 {
			template.Name = name
		}
		return template, true
	}
	for _, template := range t.TemplatesJSON {
		if template.Name == name {
			return template, true
		}
	}
	return AdaptiveAuthTemplate{}, false
}
