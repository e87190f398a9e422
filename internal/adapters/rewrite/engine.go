// Package rewrite provides the default adapter for the instrumentation
// engine port. It knows nothing about class file instructions; it composes
// the opaque edits requested by plugins and materializes them around the
// host-supplied carrier.
package rewrite

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

var (
	_ ports.InstrumentationEngine = (*Engine)(nil)
	_ ports.TypeBuilder           = (*Builder)(nil)
)

// Engine implements ports.InstrumentationEngine for a fixed entry-point
// policy and target class file version.
type Engine struct {
	entryPoint domain.EntryPoint
	version    domain.ClassFileVersion
}

// NewEngine creates an engine with the given type-building strategy.
func NewEngine(entryPoint domain.EntryPoint, version domain.ClassFileVersion) *Engine {
	return &Engine{entryPoint: entryPoint, version: version}
}

// Builder creates the initial, empty rewrite builder for a type.
func (e *Engine) Builder(t *domain.TypeDescription, _ ports.ClassFileLocator) (ports.TypeBuilder, error) {
	return &Builder{engine: e, description: t}, nil
}

// EntryPoint returns the configured type-building policy.
func (e *Engine) EntryPoint() domain.EntryPoint {
	return e.entryPoint
}

// Version returns the target class file version.
func (e *Engine) Version() domain.ClassFileVersion {
	return e.version
}

// Builder is an immutable edit chain for one type. Append returns a new
// builder so a plugin cannot observe edits added after its own Apply call.
type Builder struct {
	engine      *Engine
	description *domain.TypeDescription
	edits       []domain.Edit
}

// Append adds an edit to the chain.
func (b *Builder) Append(edit domain.Edit) ports.TypeBuilder {
	return &Builder{
		engine:      b.engine,
		description: b.description,
		edits:       append(slices.Clip(b.edits), edit),
	}
}

// ResolveMethodName returns the desired name unchanged unless it collides,
// in which case a randomized suffix is attached until a free name is found.
func (b *Builder) ResolveMethodName(desired string, taken func(string) bool) string {
	if taken == nil || !taken(desired) {
		return desired
	}
	for {
		candidate := fmt.Sprintf("%s$%08x", desired, rand.Uint32())
		if !taken(candidate) {
			return candidate
		}
	}
}

// Wrap materializes the chain around the carrier, first edit innermost.
func (b *Builder) Wrap(carrier domain.Carrier) domain.Carrier {
	for _, edit := range b.edits {
		carrier = edit(carrier)
	}
	return carrier
}

// Len returns the number of accumulated edits.
func (b *Builder) Len() int {
	return len(b.edits)
}
