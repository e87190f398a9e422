package app

import (
	"go.trai.ch/weave/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/classpath" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/rewrite"   //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/registry"
	"go.trai.ch/weave/internal/engine/session"
)

// NewSessionFactory composes the classpath, catalog, registry and rewrite
// adapters into the session construction sequence. Any failure closes the
// partially-opened lookup path; a partial session is never published.
func NewSessionFactory(table *registry.Table, logger ports.Logger) session.Factory {
	return func(cfg *domain.SessionConfig) (*session.Session, error) {
		version, err := domain.ParseClassFileVersion(cfg.TargetVersion)
		if err != nil {
			return nil, err
		}

		locator, err := classpath.Aggregate(cfg.Classpaths()...)
		if err != nil {
			return nil, err
		}

		classifier := catalog.NewClassifier(cfg.LocalOutputDirs)

		factories, err := table.Discover(cfg.PluginClasspath, registry.Injection{
			Classifier: classifier,
			Logger:     logger,
		})
		if err != nil {
			_ = locator.Close()
			return nil, err
		}
		plugins, err := registry.Instantiate(factories, locator)
		if err != nil {
			_ = locator.Close()
			return nil, err
		}

		logger.Debug("local type snapshot taken", "types", classifier.Size())

		return session.New(
			plugins,
			catalog.NewPool(locator),
			locator,
			rewrite.NewEngine(cfg.EntryPoint, version),
			logger,
		), nil
	}
}
