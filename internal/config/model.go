package config

import (
	"fmt"
	"time"

	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

// MinimumEditorIdleTimeout is the shortest idle window an editor session
// may be configured with.
const MinimumEditorIdleTimeout = time.Minute

// Config represents the console configuration structure
type Config struct {
	Server    models.ServerConfig    `mapstructure:"server"`
	API       models.APIConfig       `mapstructure:"api"`
	Backend   models.BackendConfig   `mapstructure:"backend"`
	Logging   models.LoggingConfig   `mapstructure:"logging"`
	Storage   models.StorageConfig   `mapstructure:"storage"`
	Templates models.TemplatesConfig `mapstructure:"templates"`
	Editor    models.EditorConfig    `mapstructure:"editor"`
	Features  models.FeaturesConfig  `mapstructure:"features"`
	Secret    string                 `mapstructure:"secret"` // Secret used for signing cookies
}

func (c *Config) GetSecret() string {
	return c.Secret
}

func (c *Config) GetBackend() models.BackendConfig {
	return c.Backend
}

func (c *Config) HasBackend() bool {
	return len(c.Backend.Endpoint) > 0
}

func (c *Config) IsRoleMappingEnabled() bool {
	return c.Features.ApplicationRoleMapping
}

func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetEditorIdleTimeout parses the configured editor idle timeout. Both Go
// durations ("30m") and ISO 8601 durations ("PT30M") are accepted.
func (c *Config) GetEditorIdleTimeout() (time.Duration, error) {
	return common.ParseMinimumDuration(c.Editor.IdleTimeout, MinimumEditorIdleTimeout)
}
