// Package domain contains the core domain model for the instrumentation session.
package domain

import (
	"strings"
	"unique"
)

// TypeName is an interned fully-qualified type name such as "com.app.Foo".
// Class names repeat heavily across a build (catalog, plugins, report), so the
// value wraps a unique.Handle to deduplicate the backing strings.
type TypeName struct {
	h unique.Handle[string]
}

// NewTypeName interns the given fully-qualified name.
func NewTypeName(s string) TypeName {
	return TypeName{h: unique.Make(s)}
}

// TypeNameFromPath converts a class-file path relative to a classpath root
// into a type name: the ".class" suffix is stripped and path separators are
// replaced by dots. The path is expected to use forward slashes.
func TypeNameFromPath(rel string) TypeName {
	rel = strings.TrimSuffix(rel, ClassFileExtension)
	return NewTypeName(strings.ReplaceAll(rel, "/", "."))
}

// String returns the underlying fully-qualified name.
func (n TypeName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// Resource returns the class-file path for the name, e.g. "com/app/Foo.class".
func (n TypeName) Resource() string {
	return strings.ReplaceAll(n.String(), ".", "/") + ClassFileExtension
}

// MarshalText implements encoding.TextMarshaler.
func (n TypeName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *TypeName) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}

// ClassFileExtension is the file name extension of a compiled class file.
const ClassFileExtension = ".class"
