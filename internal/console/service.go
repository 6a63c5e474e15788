package console

import (
	"context"
	"os"
	"sync"

	"github.com/kardianos/service"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/config"
)

const ServiceName = "console"

// ServiceProgram implements the service.Interface
type ServiceProgram struct {
	config *config.Config

	mu      sync.Mutex
	console *Console
	cancel  context.CancelFunc
}

func NewServiceProgram(cfg *config.Config) *ServiceProgram {
	return &ServiceProgram{config: cfg}
}

func (p *ServiceProgram) Start(s service.Service) error {
	logrus.Infoln("Console service starting")

	ctx, cancel := context.WithCancel(context.Background())

	c, err := StartWebService(ctx, p.config)
	if err != nil {
		cancel()
		logrus.WithError(err).Errorln("Failed to start web service")
		return err
	}

	p.mu.Lock()
	p.console = c
	p.cancel = cancel
	p.mu.Unlock()

	logrus.Infoln("Console service is running")
	return nil
}

func (p *ServiceProgram) Stop(s service.Service) error {
	logrus.Infoln("Console service stopping")

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.console != nil {
		p.console.Stop()
		p.console = nil
	}
	return nil
}

// Running reports whether Start succeeded and Stop has not been called.
func (p *ServiceProgram) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.console != nil
}

// CreateService creates a new service instance. The installed service runs
// "serve" with configFile when one is given.
func CreateService(cfg *config.Config, configFile string) (service.Service, error) {
	svcConfig, err := getServiceConfig(configFile)
	if err != nil {
		return nil, err
	}

	return service.New(NewServiceProgram(cfg), svcConfig)
}

// getServiceConfig returns the service configuration
func getServiceConfig(configFile string) (*service.Config, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	arguments := []string{"serve"}
	if len(configFile) > 0 {
		arguments = append(arguments, "--config", configFile)
	}

	return &service.Config{
		Name:        ServiceName,
		DisplayName: "Console Service",
		Description: "Console backend for sign on flow scripts and role assignment",
		Executable:  exePath,
		Arguments:   arguments,
	}, nil
}
