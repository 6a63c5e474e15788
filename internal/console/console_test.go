package console

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/console/internal/config"
)

const testCatalog = `version: "1.0"
templates:
  role-based:
    name: role-based
    title: Role-Based
    code:
      - "var onLoginRequest = function(context) {"
      - "    executeStep(1);"
      - "};"
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Secret = "test-secret-with-enough-entropy"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Storage.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))
	cfg.Templates.Path = path

	return cfg
}

func TestNew_LoadsLocalCatalog(t *testing.T) {
	c, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 1, c.Server.Templates.Len())
	assert.Nil(t, c.Server.Permissions)
	require.NoError(t, c.Server.Audit.Ping(context.Background()))
}

func TestNew_MissingCatalogStillStarts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Templates.Path = filepath.Join(t.TempDir(), "missing.yaml")

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.Zero(t, c.Server.Templates.Len())
}

func TestNew_InvalidIdleTimeout(t *testing.T) {
	cfg := testConfig(t)
	cfg.Editor.IdleTimeout = "soon"

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestServiceProgram_StartStop(t *testing.T) {
	program := NewServiceProgram(testConfig(t))

	require.NoError(t, program.Start(nil))
	assert.True(t, program.Running())

	require.NoError(t, program.Stop(nil))
	assert.False(t, program.Running())

	// Stopping twice is harmless
	require.NoError(t, program.Stop(nil))
}

func TestServiceProgram_StartFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Port = -1

	program := NewServiceProgram(cfg)
	assert.Error(t, program.Start(nil))
	assert.False(t, program.Running())
}

func TestGetServiceConfig(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		expected   []string
	}{
		{"default locations", "", []string{"serve"}},
		{"explicit config", "/etc/console/config.yaml", []string{"serve", "--config", "/etc/console/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcConfig, err := getServiceConfig(tt.configFile)
			require.NoError(t, err)
			assert.Equal(t, ServiceName, svcConfig.Name)
			assert.Equal(t, tt.expected, svcConfig.Arguments)
			assert.NotEmpty(t, svcConfig.Executable)
		})
	}
}

func TestStartWebService_Serves(t *testing.T) {
	c, err := StartWebService(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer c.Stop()

	// Port 0 lets the listener pick a port, so exercise the router directly
	w := httptest.NewRecorder()
	c.Server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
