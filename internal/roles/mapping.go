package roles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

var (
	ErrEmptyLocalRole       = errors.New("local role is required")
	ErrEmptyApplicationRole = errors.New("application role is required")
	ErrDuplicateLocalRole   = errors.New("local role is already mapped")
)

// MappableRoles returns the roles that can be mapped to application roles.
// Application and internal roles are excluded.
func MappableRoles(roles []models.Role) []models.RoleOption {
	options := make([]models.RoleOption, 0, len(roles))
	for _, role := range roles {
		if role.HasDomain(models.ApplicationRoleDomain) || role.HasDomain(models.InternalRoleDomain) {
			continue
		}
		options = append(options, models.RoleOption{
			ID:    role.DisplayName,
			Value: role.DisplayName,
		})
	}
	return options
}

// MappingsToKeyValues converts stored mappings into editor rows, showing the
// local role without its domain.
func MappingsToKeyValues(mappings []models.RoleMapping) []models.KeyValue {
	rows := make([]models.KeyValue, 0, len(mappings))
	for _, mapping := range mappings {
		key := mapping.LocalRole
		if parts := strings.Split(key, models.RoleDomainSeparator); len(parts) > 1 {
			key = parts[1]
		}
		rows = append(rows, models.KeyValue{
			Key:   key,
			Value: mapping.ApplicationRole,
		})
	}
	return rows
}

// KeyValuesToMappings converts editor rows back into mappings. Keys without
// a domain are placed in the internal domain.
func KeyValuesToMappings(rows []models.KeyValue) []models.RoleMapping {
	mappings := make([]models.RoleMapping, 0, len(rows))
	for _, row := range rows {
		localRole := row.Key
		if !strings.Contains(localRole, models.RoleDomainSeparator) {
			localRole = models.InternalRoleDomain + models.RoleDomainSeparator + localRole
		}
		mappings = append(mappings, models.RoleMapping{
			LocalRole:       localRole,
			ApplicationRole: row.Value,
		})
	}
	return mappings
}

// ValidateKeyValues checks editor rows for empty fields and duplicate local
// roles, reporting every problem found.
func ValidateKeyValues(rows []models.KeyValue) error {
	var errs []error
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		key := strings.TrimSpace(row.Key)
		if len(key) == 0 {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, ErrEmptyLocalRole))
		}
		if len(strings.TrimSpace(row.Value)) == 0 {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, ErrEmptyApplicationRole))
		}
		if len(key) == 0 {
			continue
		}
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("row %d: %w: %q in row %d", i+1, ErrDuplicateLocalRole, key, first))
			continue
		}
		seen[key] = i + 1
	}

	return errors.Join(errs...)
}

// Catalog holds the role list used by the role mapping editor.
type Catalog struct {
	client  RoleClient
	audit   *audit.Store
	alerts  *alerts.Buffer
	enabled bool
	fence   common.RequestFence
	mu      sync.RWMutex
	roles   []models.Role
}

func NewCatalog(client RoleClient, store *audit.Store, buffer *alerts.Buffer, enabled bool) *Catalog {
	return &Catalog{
		client:  client,
		audit:   store,
		alerts:  buffer,
		enabled: enabled,
	}
}

func (c *Catalog) Enabled() bool {
	return c.enabled
}

// Load refreshes the role list. A failed fetch raises an alert and leaves
// the catalog empty so the editor stays usable.
func (c *Catalog) Load(ctx context.Context) error {
	if !c.enabled {
		return nil
	}

	ticket := c.fence.Begin()
	list, err := c.client.ListRoles(ctx, "")

	if !c.fence.IsCurrent(ticket) {
		return ErrStaleResponse
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.roles = nil
		c.alerts.Push(alerts.FromFetchError(err, fetchRolesErrorDescription))
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	c.roles = list.Resources
	return nil
}

// Options returns the local roles offered in the mapping dropdown.
func (c *Catalog) Options() []models.RoleOption {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return MappableRoles(c.roles)
}

// Normalize validates editor rows, converts them to mappings and records the
// change against application.
func (c *Catalog) Normalize(ctx context.Context, application string, rows []models.KeyValue) ([]models.RoleMapping, error) {
	if err := ValidateKeyValues(rows); err != nil {
		return nil, err
	}

	mappings := KeyValuesToMappings(rows)

	err := c.audit.Record(ctx, audit.Event{
		Type:    audit.EventRolesMappingChanged,
		Subject: application,
		Payload: map[string]any{"mappings": mappings},
	})
	if err != nil {
		return mappings, err
	}

	return mappings, nil
}
