// Package catalog implements the queryable view over the aggregated
// classpath: a caching type-descriptor pool and the locality classifier.
package catalog

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

var _ ports.TypeResolver = (*Pool)(nil)

// Pool resolves type descriptors through a class file locator and caches
// them for the lifetime of the session. Negative results are not cached; the
// locator's index lookups are cheap and generated placeholder names are rare.
type Pool struct {
	locator ports.ClassFileLocator

	mu    sync.RWMutex
	cache map[string]*domain.TypeDescription
}

// NewPool creates a descriptor pool over the given locator.
func NewPool(locator ports.ClassFileLocator) *Pool {
	return &Pool{
		locator: locator,
		cache:   make(map[string]*domain.TypeDescription),
	}
}

// Resolve returns the descriptor for the given fully-qualified name. It
// returns domain.ErrTypeNotFound when no class file exists for the name.
func (p *Pool) Resolve(name string) (*domain.TypeDescription, error) {
	p.mu.RLock()
	cached, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := p.locator.Locate(name)
	if err != nil {
		return nil, err
	}

	description := &domain.TypeDescription{
		Name:        domain.NewTypeName(name),
		Size:        len(data),
		Fingerprint: xxhash.Sum64(data),
	}

	p.mu.Lock()
	// A concurrent resolver may have won the race; keep the first entry so
	// repeated resolutions observe one descriptor instance.
	if existing, ok := p.cache[name]; ok {
		description = existing
	} else {
		p.cache[name] = description
	}
	p.mu.Unlock()

	return description, nil
}

// ClearCache drops all cached descriptors.
func (p *Pool) ClearCache() {
	p.mu.Lock()
	p.cache = make(map[string]*domain.TypeDescription)
	p.mu.Unlock()
}
