package roles

import (
	"context"
	"sync"

	"github.com/thand-io/console/internal/client"
	"github.com/thand-io/console/internal/models"
)

type fakeRoleClient struct {
	mu         sync.Mutex
	roles      []models.Role
	err        error
	lastFilter string
	orgCalls   int
	rootCalls  int
	// release, when set, blocks ListRoles until a value is received.
	release chan struct{}
}

func (f *fakeRoleClient) ListRoles(ctx context.Context, filter string) (*models.RoleList, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return &models.RoleList{TotalResults: len(f.roles), Resources: f.roles}, nil
}

func (f *fakeRoleClient) find(id string) (*models.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, role := range f.roles {
		if role.ID == id {
			return &role, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Description: "Role not found"}
}

func (f *fakeRoleClient) GetRoleByID(ctx context.Context, id string) (*models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rootCalls++
	return f.find(id)
}

func (f *fakeRoleClient) GetOrganizationRoleByID(ctx context.Context, organization, id string) (*models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orgCalls++
	return f.find(id)
}

var errUnavailable = &client.APIError{StatusCode: 503, Description: "Role store unavailable"}


func testRoles() []models.Role {
	return []models.Role{
		{ID: "r1", DisplayName: "Admin", Audience: models.RoleAudience{Type: "organization"}},
		{ID: "r2", DisplayName: "Viewer", Audience: models.RoleAudience{Type: "application", Display: "pickup"}},
		{ID: "r3", DisplayName: "Internal/editor", Audience: models.RoleAudience{Type: "organization"}},
		{ID: "r4", DisplayName: "Application/pickup-admin", Audience: models.RoleAudience{Type: "application", Display: "pickup"}},
	}
}
