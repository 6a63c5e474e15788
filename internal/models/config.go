package models

import (
	"slices"
	"time"
)

type ServerConfig struct {
	Host     string             `mapstructure:"host"`
	Port     int                `mapstructure:"port"`
	Limits   ServerLimitsConfig `mapstructure:"limits"`
	Metrics  MetricsConfig      `mapstructure:"metrics"`
	Health   HealthConfig       `mapstructure:"health"`
	Ready    ReadyConfig        `mapstructure:"ready"`
	Security SecurityConfig     `mapstructure:"security"`
}

type ServerLimitsConfig struct {
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Burst             int           `mapstructure:"burst"`
}

// BackendConfig points the console at the identity server REST API.
type BackendConfig struct {
	Endpoint     string        `mapstructure:"endpoint"`
	Token        string        `mapstructure:"token"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Organization string        `mapstructure:"organization"` // Empty for the root organization
}

// IsRootOrganization reports whether requests target the root organization.
func (b *BackendConfig) IsRootOrganization() bool {
	return len(b.Organization) == 0
}

type StorageConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TemplatesConfig struct {
	Path string `mapstructure:"path"` // Local YAML catalog used when the backend has none
}

type EditorConfig struct {
	IdleTimeout   string        `mapstructure:"idle_timeout"` // Go or ISO 8601 duration, for example "PT30M"
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	AlertBuffer   int           `mapstructure:"alert_buffer"`
}

type FeaturesConfig struct {
	ApplicationRoleMapping bool `mapstructure:"application_role_mapping"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"text"`
	Output string `mapstructure:"output"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" default:"true"`
	Path      string `mapstructure:"path" default:"/metrics"`
	Namespace string `mapstructure:"namespace"`
}

type HealthConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Don't use /healthz as it conflicts with google k8s health checks
	Path string `mapstructure:"path" default:"/health"`
}

type ReadyConfig struct {
	Enabled bool   `mapstructure:"enabled" default:"true"`
	Path    string `mapstructure:"path" default:"/ready"`
}

type SecurityConfig struct {
	CORS          CORSConfig `mapstructure:"cors"`
	SecureCookies bool       `mapstructure:"secure_cookies"` // Set with HTTPS in production
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// Cross origin defaults for the console SPA served from a development
// server. Deployments list their console origin under security.cors.
var (
	DefaultCORSOrigins = []string{"http://localhost:3000"}
	DefaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	DefaultCORSHeaders = []string{"Authorization", "Content-Type", "X-Requested-With"}
)

const DefaultCORSMaxAge = 86400 // 24 hours

// WithDefaults fills unset methods, headers and max age. Origins are left as
// configured: an empty list allows no cross origin callers.
func (c CORSConfig) WithDefaults() CORSConfig {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = slices.Clone(DefaultCORSMethods)
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = slices.Clone(DefaultCORSHeaders)
	}
	if c.MaxAge <= 0 {
		c.MaxAge = DefaultCORSMaxAge
	}
	return c
}

type APIConfig struct {
	Version   string          `mapstructure:"version" default:"v1"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

func (api *APIConfig) GetVersion() string {
	if len(api.Version) > 0 {
		return api.Version
	}
	return "v1"
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}
