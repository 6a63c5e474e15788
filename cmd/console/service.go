package main

import (
	"fmt"
	"os"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"
	"github.com/thand-io/console/internal/console"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Service management commands",
	Long:  `Manage the console as a system service`,
}

// newService builds the service handle. The installed service is started
// with the same config file as this invocation.
func newService(cmd *cobra.Command) (service.Service, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	s, err := console.CreateService(cfg, configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s, nil
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the console as a system service",
	Long:  `Install the console as a system service that will start automatically on boot`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newService(cmd)
		if err != nil {
			return err
		}

		if err := s.Install(); err != nil {
			printInstallInstructions()
			return fmt.Errorf("failed to install service: %w", err)
		}

		fmt.Println(successStyle.Render("Console service installed successfully"))
		fmt.Println(mutedStyle.Render("   Use 'console service start' to start the service"))
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the console service",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newService(cmd)
		if err != nil {
			return err
		}

		if err := s.Start(); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}

		fmt.Println(successStyle.Render("Console service started successfully"))
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the console service",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newService(cmd)
		if err != nil {
			return err
		}

		if err := s.Stop(); err != nil {
			return fmt.Errorf("failed to stop service: %w", err)
		}

		fmt.Println(successStyle.Render("Console service stopped successfully"))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the console service status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newService(cmd)
		if err != nil {
			return err
		}

		status, err := s.Status()
		if err != nil {
			return fmt.Errorf("failed to get service status: %w", err)
		}

		fmt.Printf("%s %s\n", headerStyle.Render("Console Service Status:"), statusText(status))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Uninstall the console service",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newService(cmd)
		if err != nil {
			return err
		}

		// Don't fail if service is already stopped
		if err := s.Stop(); err != nil {
			fmt.Println(mutedStyle.Render("Service was not running"))
		}

		if err := s.Uninstall(); err != nil {
			return fmt.Errorf("failed to uninstall service: %w", err)
		}

		fmt.Println(successStyle.Render("Console service uninstalled successfully"))
		return nil
	},
}

func statusText(status service.Status) string {
	switch status {
	case service.StatusRunning:
		return successStyle.Render("Running")
	case service.StatusStopped:
		return warningStyle.Render("Stopped")
	default:
		return mutedStyle.Render("Unknown")
	}
}

func printInstallInstructions() {
	exePath, _ := os.Executable()
	fmt.Println("\nService installation failed. You may need to run with elevated privileges:")
	fmt.Println("\nLinux and macOS:")
	fmt.Printf("   sudo %s service install\n", exePath)
	fmt.Println("\nWindows:")
	fmt.Printf("   Run as Administrator: %s service install\n", exePath)
}

func init() {
	rootCmd.AddCommand(serviceCmd)

	serviceCmd.AddCommand(installCmd)
	serviceCmd.AddCommand(startCmd)
	serviceCmd.AddCommand(stopCmd)
	serviceCmd.AddCommand(statusCmd)
	serviceCmd.AddCommand(removeCmd)
}
