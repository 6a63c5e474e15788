package roles

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

const roleEditPath = "/roles/:id/edit"

// RolePermissions is the read only permission view of a role.
type RolePermissions struct {
	Role        models.Role         `json:"role"`
	Heading     string              `json:"heading"`
	Permissions []models.Permission `json:"permissions"`
	EditPath    string              `json:"edit_path"`
}

// PermissionViewer loads roles from the root organization or, when one is
// configured, from a sub organization.
type PermissionViewer struct {
	client       RoleClient
	alerts       *alerts.Buffer
	organization string
	fence        common.RequestFence
}

func NewPermissionViewer(client RoleClient, buffer *alerts.Buffer, organization string) *PermissionViewer {
	return &PermissionViewer{
		client:       client,
		alerts:       buffer,
		organization: organization,
	}
}

// Load fetches a role and removes the permissions in hide. An empty
// organization uses the viewer's configured organization.
func (v *PermissionViewer) Load(ctx context.Context, roleID, organization string, hide []string) (*RolePermissions, error) {
	if len(roleID) == 0 {
		return nil, fmt.Errorf("role id is required")
	}
	if len(organization) == 0 {
		organization = v.organization
	}

	ticket := v.fence.Begin()

	var role *models.Role
	var err error
	if len(organization) == 0 {
		role, err = v.client.GetRoleByID(ctx, roleID)
	} else {
		role, err = v.client.GetOrganizationRoleByID(ctx, organization, roleID)
	}

	if !v.fence.IsCurrent(ticket) {
		return nil, ErrStaleResponse
	}

	if err != nil {
		v.alerts.Push(alerts.FromFetchError(err, fetchPermissionsErrorDescription))
		return nil, fmt.Errorf("failed to load role %s: %w", roleID, err)
	}

	hidden := common.NewSet(hide...)
	permissions := slices.DeleteFunc(slices.Clone(role.Permissions), func(p models.Permission) bool {
		return hidden.Has(p.Value)
	})

	logrus.WithFields(logrus.Fields{
		"role":         roleID,
		"organization": organization,
		"permissions":  len(permissions),
		"hidden":       len(role.Permissions) - len(permissions),
	}).Debugln("Loaded role permissions")

	return &RolePermissions{
		Role:        *role,
		Heading:     fmt.Sprintf("Permissions of %s", role.DisplayName),
		Permissions: permissions,
		EditPath:    EditPath(roleID),
	}, nil
}

// EditPath returns the console path of the role editor.
func EditPath(roleID string) string {
	return strings.Replace(roleEditPath, ":id", roleID, 1)
}
