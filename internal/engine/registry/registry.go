// Package registry implements plugin discovery and instantiation. Plugin
// identity is a registered name/constructor pair; contextual services are
// injected through a typed Injection value instead of reflection.
package registry

import (
	"errors"
	"sort"
	"sync"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Injection carries the contextual services a plugin constructor may use.
type Injection struct {
	// Classifier answers whether a type is local to this build unit.
	Classifier ports.LocalityClassifier
	// Logger is the structured build logger.
	Logger ports.Logger
}

// Constructor builds a live plugin instance from the injected services.
type Constructor func(in Injection) (ports.Plugin, error)

// Table maps plugin names to constructors. The zero value is not usable;
// use NewTable or the package-level Default table.
type Table struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewTable creates an empty constructor table.
func NewTable() *Table {
	return &Table{ctors: make(map[string]Constructor)}
}

// Default is the process-wide constructor table. Compiled-in plugins register
// themselves here from their package init functions.
var Default = NewTable()

// Register associates a plugin name with its constructor. Re-registering a
// name panics; plugin identity must be unambiguous before discovery runs.
func (t *Table) Register(name string, ctor Constructor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.ctors[name]; exists {
		panic("registry: plugin registered twice: " + name)
	}
	t.ctors[name] = ctor
}

// Register registers a constructor on the Default table.
func Register(name string, ctor Constructor) {
	Default.Register(name, ctor)
}

// lookup returns the constructor for a name.
func (t *Table) lookup(name string) (Constructor, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ctor, ok := t.ctors[name]
	return ctor, ok
}

// Names returns the registered plugin names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.ctors))
	for name := range t.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Factory is a resolved plugin descriptor: a name bound to its constructor
// and the injection it will receive.
type Factory struct {
	Name string

	ctor      Constructor
	injection Injection
}

// Make instantiates the plugin.
func (f Factory) Make() (ports.Plugin, error) {
	plugin, err := f.ctor(f.injection)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPluginConstructionFailed, err), "plugin", f.Name)
	}
	return plugin, nil
}
