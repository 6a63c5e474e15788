// Package console wires the stores, the identity server client and the HTTP
// server of a console instance.
package console

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/client"
	"github.com/thand-io/console/internal/config"
	"github.com/thand-io/console/internal/daemon"
	"github.com/thand-io/console/internal/roles"
)

type Console struct {
	Config *config.Config
	Server *daemon.Server

	audit     *audit.Store
	templates *roles.TemplateIndex
}

// New opens the audit store and loads the template catalog, from the
// identity server when one is configured and otherwise from the local file.
// A catalog that fails to load leaves the editors without templates.
func New(ctx context.Context, cfg *config.Config) (*Console, error) {
	store, err := audit.Open(cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}

	deps := daemon.Dependencies{
		Audit:     store,
		Templates: roles.NewTemplateIndex(),
	}

	var templateClient roles.TemplateClient
	if cfg.HasBackend() {
		backend := client.New(cfg.GetBackend())
		deps.Backend = backend
		templateClient = backend
	} else {
		logrus.Warnln("No identity server configured, role endpoints are disabled")
	}

	if err := deps.Templates.Load(ctx, templateClient, cfg.Templates.Path); err != nil {
		logrus.WithError(err).Warnln("Failed to load template catalog")
	}

	server, err := daemon.NewServer(cfg, deps)
	if err != nil {
		_ = deps.Templates.Close()
		_ = store.Close()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Console{
		Config:    cfg,
		Server:    server,
		audit:     store,
		templates: deps.Templates,
	}, nil
}

// StartWebService creates a console and starts serving.
func StartWebService(ctx context.Context, cfg *config.Config) (*Console, error) {
	c, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := c.Server.Start(); err != nil {
		c.Stop()
		return nil, err
	}

	return c, nil
}

// Stop shuts the server down and closes the stores.
func (c *Console) Stop() {
	c.Server.Stop()
	c.Close()
}

func (c *Console) Close() {
	if err := c.templates.Close(); err != nil {
		logrus.WithError(err).Warnln("Failed to close template index")
	}
	if err := c.audit.Close(); err != nil {
		logrus.WithError(err).Warnln("Failed to close audit store")
	}
}
