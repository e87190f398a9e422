// Package session implements the instrumentation session core: the immutable
// post-initialization state and the lazily-initialized service that owns it.
package session

import (
	"errors"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/registry"
	"go.trai.ch/weave/internal/metrics"
	"go.trai.ch/zerr"
)

// Session is the immutable snapshot built once per service lifetime. All
// fields are read-only after construction, so Matches and Apply are safe
// under concurrent invocation from build-worker threads.
type Session struct {
	plugins  []registry.Registered
	resolver ports.TypeResolver
	locator  ports.ClassFileLocator
	engine   ports.InstrumentationEngine
	logger   ports.Logger
}

// New assembles a session. The plugin sequence keeps its discovery order and
// is never reordered or mutated afterwards.
func New(
	plugins []registry.Registered,
	resolver ports.TypeResolver,
	locator ports.ClassFileLocator,
	engine ports.InstrumentationEngine,
	logger ports.Logger,
) *Session {
	return &Session{
		plugins:  plugins,
		resolver: resolver,
		locator:  locator,
		engine:   engine,
		logger:   logger,
	}
}

// PluginNames returns the plugin names in discovery order.
func (s *Session) PluginNames() []string {
	names := make([]string, len(s.plugins))
	for i, plugin := range s.plugins {
		names[i] = plugin.Name
	}
	return names
}

// Matches reports whether any plugin wants to transform the named type.
// A name that resolves to no class file is a normal non-match: build systems
// reference generated placeholder types (resource indexes like "R$layout")
// that are never materialized as real binaries.
func (s *Session) Matches(name string) (bool, error) {
	description, err := s.resolver.Resolve(name)
	if err != nil {
		if errors.Is(err, domain.ErrTypeNotFound) {
			metrics.TypesUnresolved.Inc()
			return false, nil
		}
		return false, err
	}

	// Every preprocessor observes the resolved type before any matching.
	for _, plugin := range s.plugins {
		if plugin.Preprocessor != nil {
			plugin.Preprocessor.OnPreprocess(description, s.locator)
		}
	}
	for _, plugin := range s.plugins {
		if plugin.Plugin.Matches(description) {
			metrics.TypesMatched.Inc()
			return true, nil
		}
	}
	return false, nil
}

// Apply folds every matching plugin's edits into a rewrite builder, in
// discovery order, and materializes the result around the host carrier.
// Matches is re-evaluated per plugin; plugins are required to answer
// consistently between the match query and the apply fold.
func (s *Session) Apply(name string, carrier domain.Carrier) (domain.Carrier, error) {
	description, err := s.resolver.Resolve(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot apply instrumentation"), "type", name)
	}

	builder, err := s.engine.Builder(description, s.locator)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create rewrite builder"), "type", name)
	}
	for _, plugin := range s.plugins {
		if !plugin.Plugin.Matches(description) {
			continue
		}
		builder, err = plugin.Plugin.Apply(builder, description, s.locator)
		if err != nil {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(err, "plugin failed to apply"), "plugin", plugin.Name),
				"type", name,
			)
		}
		metrics.TypesTransformed.WithLabelValues(plugin.Name).Inc()
	}
	return builder.Wrap(carrier), nil
}

// Close releases the session's resources: plugin closers in discovery order,
// then the resolver caches, then the compound locator. Teardown is
// best-effort; individual failures are collected and do not stop the
// remaining steps.
func (s *Session) Close() error {
	var errs error
	for _, plugin := range s.plugins {
		if plugin.Closer == nil {
			continue
		}
		if err := plugin.Closer.Close(); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to close plugin"), "plugin", plugin.Name))
		}
	}
	s.resolver.ClearCache()
	if err := s.locator.Close(); err != nil {
		errs = errors.Join(errs, zerr.Wrap(err, "failed to close class file locator"))
	}
	s.logger.Debug("instrumentation session torn down", "plugins", len(s.plugins))
	return errs
}
