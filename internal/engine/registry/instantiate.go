package registry

import (
	"errors"
	"io"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registered is a live plugin with its capabilities resolved once at
// instantiation, so match and apply loops do not repeat type assertions.
type Registered struct {
	// Name is the discovered plugin name.
	Name string
	// Plugin is the live instance.
	Plugin ports.Plugin
	// Preprocessor is non-nil when the plugin observes types before matching.
	Preprocessor ports.PluginWithPreprocessor
	// Closer is non-nil when the plugin owns closable resources.
	Closer io.Closer
}

// Instantiate resolves every factory to a live plugin, preserving discovery
// order, and runs each one-time initialization hook with the merged locator
// exactly once, before any matching or apply call can occur.
func Instantiate(factories []Factory, locator ports.ClassFileLocator) ([]Registered, error) {
	registered := make([]Registered, 0, len(factories))
	for _, factory := range factories {
		plugin, err := factory.Make()
		if err != nil {
			return nil, err
		}
		if initializer, ok := plugin.(ports.PluginWithInitialization); ok {
			if err := initializer.Initialize(locator); err != nil {
				return nil, zerr.With(errors.Join(domain.ErrPluginInitializationFailed, err), "plugin", factory.Name)
			}
		}
		entry := Registered{Name: factory.Name, Plugin: plugin}
		if preprocessor, ok := plugin.(ports.PluginWithPreprocessor); ok {
			entry.Preprocessor = preprocessor
		}
		if closer, ok := plugin.(io.Closer); ok {
			entry.Closer = closer
		}
		registered = append(registered, entry)
	}
	return registered, nil
}
