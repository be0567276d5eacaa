// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and server-rendered HTML pages.
// Tracing, logging, and session resolution are all handled at this layer
// before requests are forwarded to the service layer.
package http

import (
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/service"
)

type Handler struct {
	services *service.Services

	// templates maps page names to their parsed template sets, each sharing
	// the common layout.
	templates map[string]*template.Template

	// sessionLifetime is mirrored from the session configuration so cookie
	// expiry matches token expiry.
	sessionLifetime time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("template parsing failed: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		templates:       templates,
		sessionLifetime: cfg.SessionLifetime,
		logger:          logger,
	}, nil
}
