// Package tracelog provides the built-in trace-logging plugin. It decorates
// every type local to the build unit with an entry/exit trace edit and is
// mostly useful as a smoke test for an instrumentation setup.
package tracelog

import (
	"strings"
	"sync/atomic"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/registry"
)

// Name is the plugin name listed in descriptor files.
const Name = "tracelog"

func init() {
	registry.Register(Name, func(in registry.Injection) (ports.Plugin, error) {
		return New(in.Classifier, in.Logger), nil
	})
}

// Recorder is implemented by carriers that collect transformation records.
// Hosts that pass other carrier types receive the edit as a no-op.
type Recorder interface {
	Record(event string)
}

// Plugin matches local, non-synthetic types and appends a trace edit.
type Plugin struct {
	classifier ports.LocalityClassifier
	logger     ports.Logger
	locator    ports.ClassFileLocator

	applied atomic.Int64
}

var (
	_ ports.Plugin                   = (*Plugin)(nil)
	_ ports.PluginWithInitialization = (*Plugin)(nil)
)

// New creates the plugin with its injected services.
func New(classifier ports.LocalityClassifier, logger ports.Logger) *Plugin {
	return &Plugin{classifier: classifier, logger: logger}
}

// Initialize receives the merged class file locator once at discovery time.
func (p *Plugin) Initialize(locator ports.ClassFileLocator) error {
	p.locator = locator
	return nil
}

// Matches accepts types compiled by this build unit, skipping synthetic
// nested classes.
func (p *Plugin) Matches(t *domain.TypeDescription) bool {
	if strings.Contains(t.Name.String(), "$") {
		return false
	}
	return p.classifier.Classify(t.Name) == domain.LocalityLocal
}

// Apply appends the trace edit for the type.
func (p *Plugin) Apply(b ports.TypeBuilder, t *domain.TypeDescription, _ ports.ClassFileLocator) (ports.TypeBuilder, error) {
	name := t.Name.String()
	p.applied.Add(1)
	p.logger.Debug("tracing type", "type", name)
	return b.Append(func(c domain.Carrier) domain.Carrier {
		if r, ok := c.(Recorder); ok {
			r.Record(Name + ":" + name)
		}
		return c
	}), nil
}

// Close logs how many types were traced.
func (p *Plugin) Close() error {
	p.logger.Info("tracelog plugin done", "types_traced", p.applied.Load())
	return nil
}
