// Package ports defines the core interfaces for the application.
package ports

// ClassFileLocator answers binary lookups for fully-qualified type names.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ClassFileLocator interface {
	// Locate returns the class file bytes for the given type name.
	// It returns domain.ErrTypeNotFound when no class file exists.
	Locate(name string) ([]byte, error)

	// Close releases any resources held by the locator, such as open archives.
	Close() error
}
