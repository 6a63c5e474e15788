// Package roles implements role assignment, application role mapping,
// role permission lookups and the adaptive template catalog.
package roles

import (
	"context"

	"github.com/thand-io/console/internal/models"
)

// RoleClient is the subset of the identity server client used here.
type RoleClient interface {
	ListRoles(ctx context.Context, filter string) (*models.RoleList, error)
	GetRoleByID(ctx context.Context, id string) (*models.Role, error)
	GetOrganizationRoleByID(ctx context.Context, organization, id string) (*models.Role, error)
}

// TemplateClient fetches the adaptive authentication template catalog.
type TemplateClient interface {
	GetAdaptiveAuthTemplates(ctx context.Context) (*models.AdaptiveAuthTemplates, error)
}

const (
	fetchRolesErrorDescription       = "An error occurred while retrieving roles."
	fetchPermissionsErrorDescription = "An error occurred while retrieving the role permissions."
)
