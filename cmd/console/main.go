package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thand-io/console/internal/config"
)

// Global configuration instance
var cfg *config.Config

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	// Load configuration before any command runs
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return nil
}

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Console backend for sign on flow scripts and role assignment",
	Long: `Console serves the script editor and role assignment API used by the
identity server console.

If no config file is specified, the console will look for config files in the following locations:
  - ./config.yaml
  - ./config/config.yaml
  - /etc/console/config.yaml`,
	PersistentPreRunE: preRunConfigE,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (optional)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Failed to execute command: %v", err)
	}
}
