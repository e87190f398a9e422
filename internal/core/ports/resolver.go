package ports

import "go.trai.ch/weave/internal/core/domain"

// TypeResolver resolves type descriptors without loading classes.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type TypeResolver interface {
	// Resolve returns the descriptor for the given fully-qualified name.
	// It returns domain.ErrTypeNotFound when the name has no class file,
	// which callers treat as a normal non-match.
	Resolve(name string) (*domain.TypeDescription, error)

	// ClearCache drops all cached descriptors. Called during teardown.
	ClearCache()
}
