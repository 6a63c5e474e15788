package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/kardianos/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/console"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the console server",
	Long: `Start the console server in the foreground.

The template catalog is fetched from the identity server when a backend is
configured, otherwise from the local file set by templates.path.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	// Under a service manager the service library drives start and stop
	if !service.Interactive() {
		configFile, _ := cmd.Flags().GetString("config")
		s, err := console.CreateService(cfg, configFile)
		if err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}
		return s.Run()
	}

	ctx, cleanup := common.WithInterrupt(cmd.Context())
	defer cleanup()

	if !cfg.HasBackend() {
		fmt.Println(warningStyle.Render("No identity server configured, role endpoints are disabled"))
	}

	c, err := console.StartWebService(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Console"))
	fmt.Printf("%s %s\n", headerStyle.Render("Address:"), cfg.GetAddress())
	fmt.Printf("%s %s\n", headerStyle.Render("API:"), "/api/"+cfg.API.GetVersion())
	fmt.Printf("%s %d\n", headerStyle.Render("Templates:"), c.Server.Templates.Len())
	if cfg.IsRoleMappingEnabled() {
		fmt.Println(infoStyle.Render("Application role mapping is enabled"))
	}

	<-ctx.Done()

	fmt.Println()
	var sigErr *common.SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		logrus.WithField("signal", sigErr.Signal.String()).Infoln("Shutdown requested")
	}
	fmt.Println("Shutting down gracefully...")
	c.Stop()
	fmt.Println(successStyle.Render("Server stopped"))

	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
