package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

const (
	EnvPrefix = "CONSOLE"

	// DefaultServerSecret is replaced with a random secret at load time.
	DefaultServerSecret = "changeme"
)

func DefaultConfig() *Config {

	v := viper.New()

	// Set default values
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("error unmarshaling default config: %v", err)
	}

	return &config
}

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	if err := setupViperConfig(v, configFile); err != nil {
		return nil, err
	}

	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := setupLogging(config, v); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) error {
	// Set configuration file details
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/console")

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	// Set default values
	setDefaults(v)

	// Set environment variable settings
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	return nil
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {

	// Identity server environment variables
	v.BindEnv("backend.endpoint", "CONSOLE_BACKEND_ENDPOINT")
	v.BindEnv("backend.token", "CONSOLE_BACKEND_TOKEN")
	v.BindEnv("backend.organization", "CONSOLE_BACKEND_ORGANIZATION")

	bindLoggingEnvVars(v)
	bindStorageEnvVars(v)
}

// bindLoggingEnvVars binds logging configuration environment variables
func bindLoggingEnvVars(v *viper.Viper) {
	v.BindEnv("logging.level", "CONSOLE_LOGGING_LEVEL")
	v.BindEnv("logging.format", "CONSOLE_LOGGING_FORMAT")
	v.BindEnv("logging.output", "CONSOLE_LOGGING_OUTPUT")
}

func bindStorageEnvVars(v *viper.Viper) {
	v.BindEnv("storage.dsn", "CONSOLE_STORAGE_DSN")
	v.BindEnv("templates.path", "CONSOLE_TEMPLATES_PATH")
}

// readAndUnmarshalConfig reads the configuration file and unmarshals it
func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	// Read configuration file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// Validate checks the loaded configuration and fills in the session secret
// when none was provided.
func (c *Config) Validate() error {
	var foundErrors []error

	if c.HasBackend() && !common.IsValidURL(c.Backend.Endpoint) {
		foundErrors = append(foundErrors, fmt.Errorf("invalid backend endpoint: %s", c.Backend.Endpoint))
	}

	if _, err := c.GetEditorIdleTimeout(); err != nil {
		foundErrors = append(foundErrors, fmt.Errorf("invalid editor idle timeout: %w", err))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		foundErrors = append(foundErrors, fmt.Errorf("invalid server port: %d", c.Server.Port))
	}

	if len(foundErrors) > 0 {
		return errors.Join(foundErrors...)
	}

	if len(c.Secret) == 0 || c.Secret == DefaultServerSecret {
		secret, err := common.GenerateSessionSecret()
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		logrus.Warnln("No session secret configured, using a random secret. Sessions will not survive a restart")
		c.Secret = secret
	} else if common.IsWeakSecret(c.Secret) {
		logrus.Warnf("Session secret is shorter than %d characters", common.MinSessionSecretLength)
	}

	return nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config, v *viper.Viper) error {
	// Set logging level
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)

	switch strings.ToLower(config.Logging.Output) {
	case "", "stdout":
		logrus.SetOutput(os.Stdout)
	case "stderr":
		logrus.SetOutput(os.Stderr)
	default:
		file, err := os.OpenFile(config.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("error opening log output: %w", err)
		}
		logrus.SetOutput(file)
	}

	// Set logging format
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	// Dump out the config settings if in debug mode
	if logrusLevel >= logrus.DebugLevel {
		for key, value := range v.AllSettings() {
			if key == "secret" || key == "backend" {
				continue
			}
			logrus.Debugf("Config '%s': %v\n", key, value)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5225)

	// API defaults
	v.SetDefault("api.version", "v1")
	v.SetDefault("api.rate_limit.requests_per_minute", 100)
	v.SetDefault("api.rate_limit.burst", 10)

	// Metrics defaults
	v.SetDefault("server.metrics.enabled", true)
	v.SetDefault("server.metrics.path", "/metrics")
	v.SetDefault("server.metrics.namespace", "console")

	// Health defaults
	v.SetDefault("server.health.enabled", true)
	v.SetDefault("server.health.path", "/health")

	// Ready defaults
	v.SetDefault("server.ready.enabled", true)
	v.SetDefault("server.ready.path", "/ready")

	// Security defaults
	v.SetDefault("server.security.cors.allowed_origins", slices.Clone(models.DefaultCORSOrigins))
	v.SetDefault("server.security.cors.allowed_methods", slices.Clone(models.DefaultCORSMethods))
	v.SetDefault("server.security.cors.allowed_headers", slices.Clone(models.DefaultCORSHeaders))
	v.SetDefault("server.security.cors.allow_credentials", true)
	v.SetDefault("server.security.cors.max_age", models.DefaultCORSMaxAge)
	v.SetDefault("server.security.secure_cookies", true)

	// Limits
	v.SetDefault("server.limits.read_timeout", "30s")
	v.SetDefault("server.limits.write_timeout", "30s")
	v.SetDefault("server.limits.idle_timeout", "120s")
	v.SetDefault("server.limits.requests_per_minute", 100)
	v.SetDefault("server.limits.burst", 10)

	// Identity server defaults
	v.SetDefault("backend.endpoint", "")
	v.SetDefault("backend.token", "")
	v.SetDefault("backend.timeout", "30s")
	v.SetDefault("backend.organization", "")

	// Audit store
	v.SetDefault("storage.dsn", "file::memory:?cache=shared")

	// Local template catalog used when the identity server has none
	v.SetDefault("templates.path", "")

	// Editor sessions
	v.SetDefault("editor.idle_timeout", "30m")
	v.SetDefault("editor.sweep_interval", "1m")
	v.SetDefault("editor.alert_buffer", 50)

	v.SetDefault("features.application_role_mapping", false)

	// Session defaults
	v.SetDefault("secret", DefaultServerSecret)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
}
