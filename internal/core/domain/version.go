package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// baseClassFileMajor is the offset between a Java language version and the
// class file major version it compiles to (Java 1 -> 45).
const baseClassFileMajor = 44

// ClassFileVersion is the structured form of a target bytecode version.
type ClassFileVersion struct {
	Major uint16
	Minor uint16
}

// ParseClassFileVersion parses a Java target version string such as "1.8",
// "8", "11" or "17" into a class file version.
func ParseClassFileVersion(s string) (ClassFileVersion, error) {
	trimmed := strings.TrimSpace(s)
	// Legacy "1.x" spelling used up to Java 8.
	if rest, ok := strings.CutPrefix(trimmed, "1."); ok && rest != "" {
		trimmed = rest
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return ClassFileVersion{}, zerr.With(zerr.Wrap(ErrInvalidTargetVersion, "expected a version such as \"1.8\" or \"17\""), "version", s)
	}
	return ClassFileVersion{Major: uint16(baseClassFileMajor + n)}, nil
}

// JavaVersion returns the Java language version the class file version targets.
func (v ClassFileVersion) JavaVersion() int {
	return int(v.Major) - baseClassFileMajor
}

// String returns the "major.minor" form, e.g. "52.0" for Java 8.
func (v ClassFileVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
