// Package daemon provides the HTTP server of the console backend
//
//	@title						Console API
//	@version					1.0
//	@description				Sign on flow script editing and role assignment for the identity server console
//	@BasePath					/api/v1
//	@schemes					http https
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/thand-io/console/docs" // Import generated swagger docs
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/config"
	"github.com/thand-io/console/internal/editor"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/roles"
	sessionManager "github.com/thand-io/console/internal/sessions"
)

// Backend is the identity server API used by the console.
type Backend interface {
	editor.Client
	roles.RoleClient
	InvitationClient
}

type Dependencies struct {
	// Backend may be nil, role endpoints then answer 503 and editors use the
	// local template catalog.
	Backend   Backend
	Audit     *audit.Store
	Templates *roles.TemplateIndex
	Alerts    *alerts.Buffer
}

// Server represents the console web service
type Server struct {
	Config        *config.Config
	StartTime     time.Time
	TotalRequests int64

	Editors     *editor.Registry
	Assignments *sessionManager.Manager[*roles.Assignment]
	Templates   *roles.TemplateIndex
	Mapping     *roles.Catalog
	Permissions *roles.PermissionViewer
	Audit       *audit.Store
	Alerts      *alerts.Buffer

	backend Backend
	limiter *RateLimiter
	server  *http.Server
}

func NewServer(cfg *config.Config, deps Dependencies) (*Server, error) {

	idleTimeout, err := cfg.GetEditorIdleTimeout()
	if err != nil {
		return nil, fmt.Errorf("invalid editor idle timeout: %w", err)
	}

	if deps.Alerts == nil {
		deps.Alerts = alerts.NewBuffer(cfg.Editor.AlertBuffer)
	}
	if deps.Templates == nil {
		deps.Templates = roles.NewTemplateIndex()
	}

	editorDeps := editor.Dependencies{
		Templates:   deps.Templates,
		Audit:       deps.Audit,
		AlertBuffer: cfg.Editor.AlertBuffer,
	}

	server := &Server{
		Config:    cfg,
		StartTime: time.Now().UTC(),
		Templates: deps.Templates,
		Audit:     deps.Audit,
		Alerts:    deps.Alerts,
		backend:   deps.Backend,
		limiter:   NewRateLimiterFromConfig(cfg.API.RateLimit),
		Assignments: sessionManager.NewManager("assignments", idleTimeout,
			sessionManager.WithOnExpire(func(_ string, assignment *roles.Assignment) {
				assignment.Close()
			}),
		),
	}

	if deps.Backend != nil {
		editorDeps.Client = deps.Backend
		server.Mapping = roles.NewCatalog(deps.Backend, deps.Audit, deps.Alerts, cfg.IsRoleMappingEnabled())
		server.Permissions = roles.NewPermissionViewer(deps.Backend, deps.Alerts, cfg.Backend.Organization)
	}

	server.Editors = editor.NewRegistry(editorDeps, idleTimeout)

	return server, nil
}

func (s *Server) GetConfig() *config.Config {
	return s.Config
}

func (s *Server) GetVersion() string {
	return common.GetVersion()
}

func (s *Server) hasBackend() bool {
	return s.backend != nil
}

// Router builds the gin engine with every middleware and route.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(
		func(c *gin.Context, recovered any) {
			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("%v", recovered)
			}
			s.getErrorPage(c, http.StatusInternalServerError, "Internal Server Error", err)
		},
	))
	router.Use(s.requestCounterMiddleware())
	router.Use(corsMiddleware(s.Config.Server.Security.CORS))
	router.Use(sessions.Sessions(
		ConsoleCookieName,
		getSessionStore(s.Config.GetSecret(), s.Config.Server.Security.SecureCookies),
	))

	s.setupRoutes(router)

	return router
}

// Start initializes and starts the web service
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	if err := s.Editors.StartSweeper(s.Config.Editor.SweepInterval); err != nil {
		return fmt.Errorf("failed to start editor sweeper: %w", err)
	}
	if err := s.Assignments.StartSweeper(s.Config.Editor.SweepInterval); err != nil {
		return fmt.Errorf("failed to start assignment sweeper: %w", err)
	}
	if err := s.limiter.StartCleanup(); err != nil {
		return fmt.Errorf("failed to start rate limiter cleanup: %w", err)
	}

	addr := s.Config.GetAddress()

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.Config.Server.Limits.ReadTimeout,
		WriteTimeout: s.Config.Server.Limits.WriteTimeout,
		IdleTimeout:  s.Config.Server.Limits.IdleTimeout,
	}

	// Store server reference for shutdown
	s.server = server

	errChan := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait a moment to see if the server fails to start
	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start server: %w", err)
	case <-time.After(100 * time.Millisecond):
		logrus.WithField("address", addr).Infoln("Console service started")
		return nil
	}
}

func (s *Server) Stop() {
	s.Editors.Stop()
	s.Assignments.Stop()
	s.limiter.Stop()

	if s.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Errorln("Server shutdown failed")
	}
	logrus.Infoln("Server exiting")
}

// setupRoutes configures all the HTTP routes
func (s *Server) setupRoutes(router *gin.Engine) {

	if s.Config.Server.Health.Enabled {
		router.GET(s.Config.Server.Health.Path, s.healthHandler)
	}

	if s.Config.Server.Ready.Enabled {
		router.GET(s.Config.Server.Ready.Path, s.readyHandler)
	}

	if s.Config.Server.Metrics.Enabled {
		router.GET(s.Config.Server.Metrics.Path, s.metricsHandler)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/" + s.Config.API.GetVersion())
	api.Use(s.limiter.Middleware())
	{
		api.POST("/script/reconcile", s.postScriptReconcile)
		api.GET("/script/default", s.getScriptDefault)

		api.POST("/editors", s.postEditor)
		api.GET("/editors/current", s.getCurrentEditor)
		api.GET("/editors/:id", s.getEditor)
		api.PUT("/editors/:id/sequence", s.putEditorSequence)
		api.PUT("/editors/:id/script", s.putEditorScript)
		api.POST("/editors/:id/templates/:name", s.postEditorTemplate)
		api.POST("/editors/:id/conditional-auth/toggle", s.postEditorToggle)
		api.POST("/editors/:id/reset", s.postEditorReset)
		api.DELETE("/editors/:id/alerts/:index", s.deleteEditorAlert)
		api.DELETE("/editors/:id", s.deleteEditor)

		api.GET("/templates", s.getTemplates)

		api.POST("/assignments", s.postAssignment)
		api.GET("/assignments/:id", s.getAssignment)
		api.POST("/assignments/:id/toggle", s.postAssignmentToggle)
		api.POST("/assignments/:id/select-all", s.postAssignmentSelectAll)
		api.POST("/assignments/:id/assign", s.postAssignmentAssign)
		api.POST("/assignments/:id/unassign", s.postAssignmentUnassign)
		api.POST("/assignments/:id/search", s.postAssignmentSearch)
		api.POST("/assignments/:id/submit", s.postAssignmentSubmit)
		api.DELETE("/assignments/:id", s.deleteAssignment)

		api.GET("/role-mapping/options", s.getRoleMappingOptions)
		api.POST("/role-mapping/normalize", s.postRoleMappingNormalize)

		api.GET("/roles/:id/permissions", s.getRolePermissions)

		api.GET("/invitations", s.getInvitations)

		api.GET("/alerts", s.getAlerts)
		api.DELETE("/alerts", s.deleteAlerts)
		api.DELETE("/alerts/:index", s.deleteAlert)
		api.GET("/events", s.getEvents)
	}
}

// healthHandler handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Get the health status of the service and its dependencies
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	models.HealthResponse	"Health status"
//	@Router			/health [get]
func (s *Server) healthHandler(c *gin.Context) {

	servicesHealth := make(map[string]models.HealthState)

	if s.Audit != nil {
		if err := s.Audit.Ping(c.Request.Context()); err != nil {
			logrus.WithError(err).Error("Audit store health check failed")
			servicesHealth["storage"] = models.HealthStatusUnhealthy
		} else {
			servicesHealth["storage"] = models.HealthStatusHealthy
		}
	}

	if s.hasBackend() {
		servicesHealth["backend"] = models.HealthStatusHealthy
	}

	if s.Templates.Len() > 0 {
		servicesHealth["templates"] = models.HealthStatusHealthy
	} else {
		servicesHealth["templates"] = models.HealthStatusDegraded
	}

	overallStatus := models.HealthStatusHealthy

	for _, status := range servicesHealth {
		if status == models.HealthStatusUnhealthy {
			overallStatus = models.HealthStatusUnhealthy
			break
		}
		if status != models.HealthStatusHealthy {
			overallStatus = models.HealthStatusDegraded
		}
	}

	response := models.HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   s.GetVersion(),
		Services:  servicesHealth,
	}

	c.JSON(http.StatusOK, response)
}

// readyHandler handles the readiness check endpoint
//
//	@Summary		Readiness check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]any	"Ready status"
//	@Router			/ready [get]
func (s *Server) readyHandler(c *gin.Context) {
	response := gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.GetVersion(),
	}

	c.JSON(http.StatusOK, response)
}

// metricsHandler handles the metrics endpoint
//
//	@Summary		Service metrics
//	@Description	Get service metrics including uptime, request counts and open sessions
//	@Tags			metrics
//	@Produce		json
//	@Success		200	{object}	models.MetricsInfo	"Service metrics"
//	@Router			/metrics [get]
func (s *Server) metricsHandler(c *gin.Context) {
	stats := s.Editors.Stats()

	metrics := models.MetricsInfo{
		Uptime:            common.FormatUptime(time.Since(s.StartTime)),
		TotalRequests:     atomic.LoadInt64(&s.TotalRequests),
		Reconciliations:   stats.Reconciliations.Load(),
		ScriptResets:      stats.ScriptResets.Load(),
		ActiveEditors:     s.Editors.Len(),
		ActiveAssignments: s.Assignments.Len(),
		TemplatesCount:    s.Templates.Len(),
	}

	c.JSON(http.StatusOK, metrics)
}
