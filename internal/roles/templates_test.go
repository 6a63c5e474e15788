package roles

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/console/internal/models"
)

const templateCatalogYAML = `
version: "1.2"
templates:
  role-based:
    title: Role-Based
    summary: Allow users with specific roles to continue
    category: access-control
    code:
      - "var rolesToStepUp = ['admin'];"
      - "var onLoginRequest = function(context) {};"
  ip-based:
    name: ip-based
    title: IP-Based
    summary: Restrict sign in to an address range
    category: access-control
    code:
      - "var corpNetwork = ['192.168.1.0/24'];"
`

type fakeTemplateClient struct {
	catalog *models.AdaptiveAuthTemplates
	err     error
}

func (f *fakeTemplateClient) GetAdaptiveAuthTemplates(ctx context.Context) (*models.AdaptiveAuthTemplates, error) {
	return f.catalog, f.err
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTemplateFile(t *testing.T) {
	catalog, err := LoadTemplateFile(writeCatalog(t, templateCatalogYAML))
	require.NoError(t, err)

	template, ok := catalog.Get("role-based")
	require.True(t, ok)
	assert.Equal(t, "role-based", template.Name)
	assert.Len(t, template.Code, 2)
}

func TestLoadTemplateFile_Version(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"supported", `"1.0"`, false},
		{"too new", `"2.1"`, true},
		{"invalid", `"latest"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTemplateFile(writeCatalog(t, "version: "+tt.version+"\ntemplates: {}\n"))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTemplateIndex_Search(t *testing.T) {
	index := NewTemplateIndex()
	t.Cleanup(func() { _ = index.Close() })

	require.NoError(t, index.Load(context.Background(), nil, writeCatalog(t, templateCatalogYAML)))
	assert.Equal(t, 2, index.Len())

	all, err := index.Search(context.Background(), &models.SearchRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	results, err := index.Search(context.Background(), &models.SearchRequest{Query: "roles"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "role-based", results[0].ID)
	assert.Positive(t, results[0].Score)

	results, err = index.Search(context.Background(), &models.SearchRequest{Terms: []string{"address"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ip-based", results[0].Result.Name)

	none, err := index.Search(context.Background(), &models.SearchRequest{Query: "kubernetes"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTemplateIndex_Load(t *testing.T) {
	backend := &models.AdaptiveAuthTemplates{
		TemplatesJSON: map[string]models.AdaptiveAuthTemplate{
			"new-device": {Title: "New Device", Summary: "Notify on sign in from a new device"},
		},
	}

	t.Run("backend catalog wins", func(t *testing.T) {
		index := NewTemplateIndex()
		require.NoError(t, index.Load(context.Background(), &fakeTemplateClient{catalog: backend}, writeCatalog(t, templateCatalogYAML)))
		assert.Equal(t, 1, index.Len())
		_, ok := index.Catalog().Get("new-device")
		assert.True(t, ok)
	})

	t.Run("local file on failure", func(t *testing.T) {
		index := NewTemplateIndex()
		require.NoError(t, index.Load(context.Background(), &fakeTemplateClient{err: errUnavailable}, writeCatalog(t, templateCatalogYAML)))
		assert.Equal(t, 2, index.Len())
	})

	t.Run("failure without fallback", func(t *testing.T) {
		index := NewTemplateIndex()
		assert.Error(t, index.Load(context.Background(), &fakeTemplateClient{err: errUnavailable}, ""))
		assert.Equal(t, 0, index.Len())
		assert.NotNil(t, index.Catalog())
	})
}

func TestTemplateIndex_Empty(t *testing.T) {
	index := NewTemplateIndex()
	results, err := index.Search(context.Background(), &models.SearchRequest{Query: "role"})
	require.NoError(t, err)
	assert.Empty(t, results)
}
