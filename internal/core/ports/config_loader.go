package ports

import "go.trai.ch/weave/internal/core/domain"

// ConfigLoader defines the interface for loading the session configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration from the given path.
	Load(path string) (*domain.SessionConfig, error)
}
