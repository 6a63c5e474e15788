// Package editor holds the server side state of a conditional
// authentication script editor bound to one application.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/roles"
	"github.com/thand-io/console/internal/script"
)

var (
	ErrUnmounted        = errors.New("editor is not mounted")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoPendingReset   = errors.New("no script reset is awaiting confirmation")
	ErrNoApplication    = errors.New("editor is not bound to an application")
	ErrStaleResponse    = errors.New("a newer request superseded this one")
)

const (
	templatesFetchErrorDescription   = "An error occurred while retrieving the adaptive authentication templates."
	applicationFetchErrorDescription = "An error occurred while retrieving the application."
)

// Client is the backend used by an editor. Either method may be left
// unimplemented by passing a nil Client.
type Client interface {
	roles.TemplateClient
	GetApplication(ctx context.Context, id string) (*models.Application, error)
}

// Stats are shared counters across every editor.
type Stats struct {
	Reconciliations atomic.Int64
	ScriptResets    atomic.Int64
}

type Dependencies struct {
	Client Client
	// Templates is used as the catalog when no Client is configured.
	Templates   *roles.TemplateIndex
	Audit       *audit.Store
	Stats       *Stats
	AlertBuffer int
}

// Callbacks notify the owner of the editor about user actions.
type Callbacks struct {
	OnScriptChange        func(script string)
	OnAdaptiveScriptReset func()
	OnTemplateSelect      func(template models.AdaptiveAuthTemplate)
}

type Session struct {
	ApplicationID string

	deps      Dependencies
	callbacks Callbacks
	form      *Form
	alerts    *alerts.Buffer
	fence     common.RequestFence

	mu           sync.Mutex
	mounted      bool
	state        script.EditorState
	displayed    *string
	lastRule     script.Rule
	stepCount    int
	showContent  bool
	resetWarning bool
	templates    *models.AdaptiveAuthTemplates
	updatedAt    time.Time
}

func New(applicationID string, deps Dependencies, callbacks Callbacks) *Session {
	if deps.Stats == nil {
		deps.Stats = &Stats{}
	}
	return &Session{
		ApplicationID: applicationID,
		deps:          deps,
		callbacks:     callbacks,
		alerts:        alerts.NewBuffer(deps.AlertBuffer),
		showContent:   true,
		templates:     &models.AdaptiveAuthTemplates{},
	}
}

// NewWithForm creates an editor whose callbacks write into a Form, which
// plays the part of the surrounding sign on method form.
func NewWithForm(applicationID string, deps Dependencies) *Session {
	form := &Form{}
	session := New(applicationID, deps, form.Callbacks())
	session.form = form
	return session
}

// Form returns the attached form, nil for editors created with New.
func (s *Session) Form() *Form {
	return s.form
}

// Mount loads the template catalog once. A failed fetch raises an alert and
// leaves the editor usable without templates.
func (s *Session) Mount(ctx context.Context) error {
	s.mu.Lock()
	s.mounted = true
	s.updatedAt = time.Now().UTC()
	s.mu.Unlock()

	if s.deps.Client == nil {
		if s.deps.Templates != nil {
			s.mu.Lock()
			s.templates = s.deps.Templates.Catalog()
			s.mu.Unlock()
		}
		return nil
	}

	ticket := s.fence.Begin()
	catalog, err := s.deps.Client.GetAdaptiveAuthTemplates(ctx)

	if !s.fence.IsCurrent(ticket) {
		return ErrStaleResponse
	}

	if err != nil {
		s.alerts.Push(alerts.FromFetchError(err, templatesFetchErrorDescription))
		return nil
	}

	if catalog == nil {
		catalog = &models.AdaptiveAuthTemplates{}
	}

	s.mu.Lock()
	s.templates = catalog
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"application": s.ApplicationID,
		"templates":   len(catalog.TemplatesJSON),
	}).Debugln("Mounted script editor")

	return nil
}

// LoadApplication fetches the bound application and applies its sequence.
func (s *Session) LoadApplication(ctx context.Context) (script.Result, error) {
	if len(s.ApplicationID) == 0 || s.deps.Client == nil {
		return script.Result{}, ErrNoApplication
	}
	if !s.isMounted() {
		return script.Result{}, ErrUnmounted
	}

	ticket := s.fence.Begin()
	application, err := s.deps.Client.GetApplication(ctx, s.ApplicationID)

	if !s.fence.IsCurrent(ticket) {
		return script.Result{}, ErrStaleResponse
	}

	if err != nil {
		s.alerts.Push(alerts.FromFetchError(err, applicationFetchErrorDescription))
		return script.Result{}, fmt.Errorf("failed to load application %s: %w", s.ApplicationID, err)
	}

	sequence := application.AuthenticationSequence
	stepCount := sequence.StepCount()
	isDefault := sequence.HasScript() && script.IsDefaultScript(*sequence.Script, stepCount)

	if s.form != nil {
		s.form.Set(sequence, stepCount, isDefault)
	}

	return s.SetSequence(sequence, stepCount, isDefault)
}

// SetSequence reconciles the editor with a new sequence from the owner.
func (s *Session) SetSequence(sequence *models.AuthenticationSequence, stepCount int, isDefaultScript bool) (script.Result, error) {
	in := script.Input{
		Steps:           sequence.ScriptSteps(),
		StepCount:       stepCount,
		IsDefaultScript: isDefaultScript,
	}
	if sequence != nil {
		in.Script = sequence.Script
	}

	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return script.Result{}, ErrUnmounted
	}

	result := script.Reconcile(in, s.state)

	s.state = result.State
	s.displayed = result.Script
	s.lastRule = result.Rule
	s.stepCount = stepCount
	s.showContent = in.Script != nil && len(*in.Script) > 0
	s.updatedAt = time.Now().UTC()

	var onReset func()
	if result.ResetRequested() {
		s.showContent = false
		onReset = s.callbacks.OnAdaptiveScriptReset
	}
	s.mu.Unlock()

	s.deps.Stats.Reconciliations.Add(1)

	logrus.WithFields(logrus.Fields{
		"application": s.ApplicationID,
		"rule":        result.Rule.String(),
		"steps":       stepCount,
	}).Debugln("Reconciled script editor")

	if result.ResetRequested() {
		s.recordReset(context.Background(), stepCount, result.Rule.String())
		if onReset != nil {
			onReset()
		}
	}

	return result, nil
}

// Feedback re-applies the attached form, the way an owner passes its
// updated sequence back to the editor.
func (s *Session) Feedback() (script.Result, error) {
	if s.form == nil {
		return script.Result{}, errors.New("editor has no attached form")
	}
	sequence, stepCount, isDefault := s.form.Get()
	return s.SetSequence(sequence, stepCount, isDefault)
}

// Edit replaces the displayed script with user input.
func (s *Session) Edit(value string) error {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return ErrUnmounted
	}
	s.state.DisplayedScript = value
	s.state.HasDisplayed = true
	s.displayed = &value
	s.updatedAt = time.Now().UTC()
	onChange := s.callbacks.OnScriptChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(value)
	}
	return nil
}

// SelectTemplate marks the next template script as newly added and hands
// the template to the owner in its wire shape.
func (s *Session) SelectTemplate(ctx context.Context, name string) (models.AdaptiveAuthTemplate, error) {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return models.AdaptiveAuthTemplate{}, ErrUnmounted
	}
	template, ok := s.templates.Get(name)
	if !ok {
		s.mu.Unlock()
		return models.AdaptiveAuthTemplate{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	s.state.IsNewlyAddedFromTemplate = true
	s.updatedAt = time.Now().UTC()
	callbacks := s.callbacks
	s.mu.Unlock()

	if callbacks.OnTemplateSelect != nil {
		callbacks.OnTemplateSelect(template)
	}
	if callbacks.OnScriptChange != nil {
		callbacks.OnScriptChange(script.EncodeTemplateScript(template.Script()))
	}

	err := s.deps.Audit.Record(ctx, audit.Event{
		Type:    audit.EventScriptTemplateSelected,
		Subject: s.ApplicationID,
		Payload: map[string]any{"template": template.Name},
	})
	if err != nil {
		logrus.WithError(err).Warnln("Failed to audit template selection")
	}

	return template, nil
}

// ToggleConditionalAuth shows the script editor, or asks for confirmation
// before hiding it since hiding resets the script.
func (s *Session) ToggleConditionalAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return ErrUnmounted
	}
	if s.showContent {
		s.resetWarning = true
		return nil
	}
	s.showContent = true
	return nil
}

// ConfirmReset resets the script to the default for the current steps.
func (s *Session) ConfirmReset(ctx context.Context) error {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return ErrUnmounted
	}
	if !s.resetWarning {
		s.mu.Unlock()
		return ErrNoPendingReset
	}

	defaultScript := script.GenerateScript(s.stepCount + 1)
	s.resetWarning = false
	s.state.DisplayedScript = defaultScript
	s.state.HasDisplayed = true
	s.state.IsFromTemplate = false
	s.displayed = &defaultScript
	s.showContent = false
	s.updatedAt = time.Now().UTC()
	stepCount := s.stepCount
	onReset := s.callbacks.OnAdaptiveScriptReset
	s.mu.Unlock()

	s.recordReset(ctx, stepCount, "confirmed")

	if onReset != nil {
		onReset()
	}
	return nil
}

func (s *Session) CancelReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetWarning = false
}

func (s *Session) recordReset(ctx context.Context, stepCount int, reason string) {
	s.deps.Stats.ScriptResets.Add(1)

	err := s.deps.Audit.Record(ctx, audit.Event{
		Type:    audit.EventScriptReset,
		Subject: s.ApplicationID,
		Payload: map[string]any{
			"step_count": stepCount,
			"reason":     reason,
		},
	})
	if err != nil {
		logrus.WithError(err).Warnln("Failed to audit script reset")
	}
}

// DismissAlert removes an alert shown in the editor.
func (s *Session) DismissAlert(index int) bool {
	return s.alerts.Dismiss(index)
}

// View is the serialisable state of an editor.
type View struct {
	ApplicationID       string                        `json:"application_id"`
	Mounted             bool                          `json:"mounted"`
	Script              *string                       `json:"script"`
	State               script.EditorState            `json:"state"`
	Rule                script.Rule                   `json:"rule"`
	StepCount           int                           `json:"step_count"`
	ShowConditionalAuth bool                          `json:"show_conditional_auth"`
	ResetWarning        bool                          `json:"reset_warning"`
	Templates           []models.AdaptiveAuthTemplate `json:"templates"`
	Alerts              []models.Alert                `json:"alerts"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.templates.List()
	if templates == nil {
		templates = []models.AdaptiveAuthTemplate{}
	}

	return View{
		ApplicationID:       s.ApplicationID,
		Mounted:             s.mounted,
		Script:              s.displayed,
		State:               s.state,
		Rule:                s.lastRule,
		StepCount:           s.stepCount,
		ShowConditionalAuth: s.showContent,
		ResetWarning:        s.resetWarning,
		Templates:           templates,
		Alerts:              s.alerts.All(),
		UpdatedAt:           s.updatedAt,
	}
}

// Unmount discards the editor state and any fetch still in flight.
func (s *Session) Unmount() {
	s.fence.Invalidate()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mounted = false
	s.state = script.EditorState{}
	s.displayed = nil
	s.resetWarning = false
	s.templates = &models.AdaptiveAuthTemplates{}
	s.alerts.Clear()
}

func (s *Session) isMounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}
