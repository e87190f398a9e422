package app

import (
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/session"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Service *session.Service
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, service *session.Service) *Components {
	return &Components{
		App:     app,
		Logger:  logger,
		Service: service,
	}
}
