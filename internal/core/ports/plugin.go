package ports

import "go.trai.ch/weave/internal/core/domain"

// Plugin is a pluggable transformer of compiled types. Plugins must be
// idempotent: Matches is evaluated both during the match query and again
// during the apply fold, and both evaluations must agree.
//
// Plugins are not guaranteed thread-safe by the session contract; a plugin
// invoked concurrently for different types must synchronize its own state.
type Plugin interface {
	// Matches reports whether the plugin wants to transform the type.
	Matches(t *domain.TypeDescription) bool

	// Apply folds the plugin's edits into the builder and returns the
	// builder to feed into the next matching plugin.
	Apply(b TypeBuilder, t *domain.TypeDescription, locator ClassFileLocator) (TypeBuilder, error)
}

// PluginWithPreprocessor is an optional plugin capability: a side-effecting
// hook invoked for every successfully resolved type before any matching.
type PluginWithPreprocessor interface {
	Plugin
	OnPreprocess(t *domain.TypeDescription, locator ClassFileLocator)
}

// PluginWithInitialization is an optional plugin capability: a one-time setup
// hook that receives the merged class file locator at discovery time, before
// any matching or apply call.
type PluginWithInitialization interface {
	Plugin
	Initialize(locator ClassFileLocator) error
}
