package roles

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/transfer"
)

// ErrStaleResponse is returned by Load when a newer load superseded it.
var ErrStaleResponse = errors.New("a newer request superseded this one")

// Assignment is the role transfer session of a single user or group.
type Assignment struct {
	Subject string

	client   RoleClient
	audit    *audit.Store
	alerts   *alerts.Buffer
	filter   string
	fence    common.RequestFence
	mu       sync.Mutex
	list     *transfer.List[models.Role]
	initial  []string
	loadedAt time.Time
}

type AssignmentOptions struct {
	// Subject is the user or group the roles are assigned to.
	Subject string
	// AssignedIDs are the roles the subject already holds.
	AssignedIDs []string
	// Filter is an optional SCIM filter applied to the role catalog.
	Filter string
}

func NewAssignment(client RoleClient, store *audit.Store, buffer *alerts.Buffer, opts AssignmentOptions) *Assignment {
	return &Assignment{
		Subject: opts.Subject,
		client:  client,
		audit:   store,
		alerts:  buffer,
		filter:  opts.Filter,
		list:    transfer.NewList[models.Role](nil, nil),
		initial: slices.Clone(opts.AssignedIDs),
	}
}

// Load fetches the role catalog and splits it into available and assigned
// roles. Only the most recent Load applies its result.
func (a *Assignment) Load(ctx context.Context) error {
	ticket := a.fence.Begin()

	roles, err := a.client.ListRoles(ctx, a.filter)

	if !a.fence.IsCurrent(ticket) {
		logrus.WithField("subject", a.Subject).Debugln("Discarding superseded role list response")
		return ErrStaleResponse
	}

	if err != nil {
		a.alerts.Push(alerts.FromFetchError(err, fetchRolesErrorDescription))
		return fmt.Errorf("failed to load roles for %s: %w", a.Subject, err)
	}

	var available, assigned []models.Role
	for _, role := range roles.Resources {
		if slices.Contains(a.initial, role.ID) {
			assigned = append(assigned, role)
			continue
		}
		// Built in roles are never offered
		if models.IsReservedRole(role.DisplayName) {
			continue
		}
		available = append(available, role)
	}

	a.mu.Lock()
	a.list.Reset(available, assigned)
	a.loadedAt = time.Now().UTC()
	a.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"subject":   a.Subject,
		"available": len(available),
		"assigned":  len(assigned),
	}).Debugln("Loaded role assignment")

	return nil
}

// Close invalidates any load still in flight.
func (a *Assignment) Close() {
	a.fence.Invalidate()
}

// Toggle checks or unchecks the role with id on side.
func (a *Assignment) Toggle(side transfer.Side, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !side.Valid() {
		return transfer.ErrUnknownSide
	}
	role, ok := a.list.Lookup(side, id)
	if !ok {
		return fmt.Errorf("role %s: %w", id, transfer.ErrUnknownItem)
	}
	return a.list.Toggle(side, role)
}

func (a *Assignment) ToggleSelectAll(side transfer.Side) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.list.ToggleSelectAll(side)
}

func (a *Assignment) Search(side transfer.Side, query string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.list.Search(side, query)
}

func (a *Assignment) Assign() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list.Assign()
}

func (a *Assignment) Unassign() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list.Unassign()
}

// AssignmentPane is one side of an assignment as shown to the caller.
type AssignmentPane struct {
	Items       []models.RoleListItem `json:"items"`
	Query       string                `json:"query"`
	AllSelected bool                  `json:"all_selected"`
	Total       int                   `json:"total"`
}

type AssignmentView struct {
	Subject   string         `json:"subject"`
	Available AssignmentPane `json:"available"`
	Assigned  AssignmentPane `json:"assigned"`
	LoadedAt  time.Time      `json:"loaded_at"`
}

func (a *Assignment) Snapshot() AssignmentView {
	a.mu.Lock()
	defer a.mu.Unlock()

	return AssignmentView{
		Subject:   a.Subject,
		Available: a.pane(transfer.Available, a.list.Available(), len(a.list.AllAvailable())),
		Assigned:  a.pane(transfer.Assigned, a.list.Assigned(), len(a.list.AllAssigned())),
		LoadedAt:  a.loadedAt,
	}
}

func (a *Assignment) pane(side transfer.Side, visible []models.Role, total int) AssignmentPane {
	items := make([]models.RoleListItem, 0, len(visible))
	for _, role := range visible {
		items = append(items, models.RoleListItem{
			ID:      role.ID,
			Label:   role.ListLabel(),
			Type:    role.AudienceLabel(),
			Checked: a.list.IsChecked(side, role),
		})
	}
	return AssignmentPane{
		Items:       items,
		Query:       a.list.Query(side),
		AllSelected: a.list.IsAllSelected(side),
		Total:       total,
	}
}

// SubmitResult carries the final assigned roles to the caller, which owns
// persisting them.
type SubmitResult struct {
	Roles   []models.Role `json:"roles"`
	Added   []string      `json:"added"`
	Removed []string      `json:"removed"`
}

func (a *Assignment) Submit(ctx context.Context) (SubmitResult, error) {
	a.mu.Lock()
	assigned := a.list.AllAssigned()
	a.mu.Unlock()

	result := SubmitResult{Roles: assigned}
	if result.Roles == nil {
		result.Roles = []models.Role{}
	}

	current := make([]string, 0, len(assigned))
	for _, role := range assigned {
		current = append(current, role.ID)
		if !slices.Contains(a.initial, role.ID) {
			result.Added = append(result.Added, role.ID)
		}
	}
	for _, id := range a.initial {
		if !slices.Contains(current, id) {
			result.Removed = append(result.Removed, id)
		}
	}

	err := a.audit.Record(ctx, audit.Event{
		Type:    audit.EventRolesSubmitted,
		Subject: a.Subject,
		Payload: map[string]any{
			"roles":   current,
			"added":   result.Added,
			"removed": result.Removed,
		},
	})
	if err != nil {
		return result, err
	}

	a.mu.Lock()
	a.initial = current
	a.mu.Unlock()

	return result, nil
}
