package config

import (
	"github.com/raghuwanshi313/EDP-APP/internal/domain"
	"github.com/raghuwanshi313/EDP-APP/internal/infra/mupdf"
	"github.com/raghuwanshi313/EDP-APP/internal/infra/pdfcpu"
	"github.com/raghuwanshi313/EDP-APP/internal/repository"
	"github.com/raghuwanshi313/EDP-APP/internal/service"
	"github.com/raghuwanshi313/EDP-APP/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SessionRepository domain.SessionRepository
	Renderer          domain.PageRenderer
	Editor            domain.DocumentEditor
	SessionService    domain.SessionService
	HighlightService  domain.HighlightService
	ExportService     domain.ExportService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize infrastructure
	renderer := mupdf.NewRenderer(appLogger)
	editor := pdfcpu.NewEditor(appLogger)

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(appLogger)

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo, renderer, config.GetZoomBounds(), appLogger)
	highlightService := service.NewHighlightService(appLogger)
	exportService := service.NewExportService(editor, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SessionRepository: sessionRepo,
		Renderer:          renderer,
		Editor:            editor,
		SessionService:    sessionService,
		HighlightService:  highlightService,
		ExportService:     exportService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSessionService returns the session service instance
func (c *Container) GetSessionService() domain.SessionService {
	return c.SessionService
}

// GetHighlightService returns the highlight service instance
func (c *Container) GetHighlightService() domain.HighlightService {
	return c.HighlightService
}

// GetExportService returns the export service instance
func (c *Container) GetExportService() domain.ExportService {
	return c.ExportService
}
