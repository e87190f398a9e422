package classpath

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Aggregate merges independently-supplied classpath sets, in the precedence
// order given, into one compound locator. A directory entry becomes a
// directory-backed locator, a file entry an archive-backed one. Entries that
// do not exist are skipped (a local output directory may legitimately be
// absent when nothing was compiled); entries that exist but cannot be opened
// as a binary container abort aggregation.
func Aggregate(sets ...[]string) (*Compound, error) {
	var locators []ports.ClassFileLocator
	for _, set := range sets {
		for _, entry := range set {
			locator, err := newEntryLocator(entry)
			if err != nil {
				// Close what was opened so far; no partial lookup path leaks.
				_ = NewCompound(locators...).Close()
				return nil, err
			}
			if locator != nil {
				locators = append(locators, locator)
			}
		}
	}
	return NewCompound(locators...), nil
}

func newEntryLocator(entry string) (ports.ClassFileLocator, error) {
	info, err := os.Stat(entry)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat classpath entry"), "path", entry)
	}
	if info.IsDir() {
		return NewDirLocator(entry), nil
	}
	return NewArchiveLocator(entry)
}
