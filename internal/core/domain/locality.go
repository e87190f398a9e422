package domain

// Locality classifies a type as produced by this build unit or as a dependency.
type Locality int8

const (
	// LocalityExternal covers platform classes, libraries and previously-built dependencies.
	LocalityExternal Locality = iota
	// LocalityLocal marks types found among this build unit's own freshly-compiled output.
	LocalityLocal
)

// String returns the classification name.
func (l Locality) String() string {
	if l == LocalityLocal {
		return "LOCAL"
	}
	return "EXTERNAL"
}
