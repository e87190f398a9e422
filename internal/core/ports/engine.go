package ports

import "go.trai.ch/weave/internal/core/domain"

// TypeBuilder accumulates the requested edits for one compiled type. The
// builder is immutable in use: Append returns the builder to continue with,
// so each plugin's output feeds the next plugin's input.
type TypeBuilder interface {
	// Append adds an edit to the rewrite chain.
	Append(edit domain.Edit) TypeBuilder

	// ResolveMethodName returns a usable name for a synthetic method. The
	// name is returned unchanged unless taken reports a collision, in which
	// case a randomized suffix is attached.
	ResolveMethodName(desired string, taken func(string) bool) string

	// Wrap materializes the accumulated edits around the host carrier.
	Wrap(carrier domain.Carrier) domain.Carrier
}

// InstrumentationEngine is the external bytecode rewriting capability. Given
// a resolved type it produces the initial rewrite builder according to the
// configured entry-point policy; the session never inspects instruction-level
// details itself.
type InstrumentationEngine interface {
	// Builder creates the initial rewrite builder for a type.
	Builder(t *domain.TypeDescription, locator ClassFileLocator) (TypeBuilder, error)
}
