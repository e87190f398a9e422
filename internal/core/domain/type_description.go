package domain

// TypeDescription is the resolved descriptor of one compiled type. It is
// produced by the type resolver from the class file bytes and never mutated;
// transformers work on a builder, not on the description.
type TypeDescription struct {
	// Name is the fully-qualified type name.
	Name TypeName
	// Size is the length of the class file in bytes.
	Size int
	// Fingerprint is the xxhash of the class file contents.
	Fingerprint uint64
}
