// Package classpath implements class file locators over directories and
// archives, and the aggregator that merges classpath sets into one compound
// lookup path.
package classpath

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ClassFileLocator = (*DirLocator)(nil)
	_ ports.ClassFileLocator = (*ArchiveLocator)(nil)
	_ ports.ClassFileLocator = (*Compound)(nil)
)

// DirLocator serves class files from a directory tree.
type DirLocator struct {
	root string
}

// NewDirLocator creates a locator rooted at the given directory.
func NewDirLocator(root string) *DirLocator {
	return &DirLocator{root: filepath.Clean(root)}
}

// Locate reads the class file for the given type name.
func (l *DirLocator) Locate(name string) ([]byte, error) {
	resource := domain.NewTypeName(name).Resource()
	path := filepath.Join(l.root, filepath.FromSlash(resource))
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from a classpath root the caller owns
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrTypeNotFound, "not present in directory"), "type", name)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read class file"), "path", path)
	}
	return data, nil
}

// Close is a no-op; directory locators hold no resources.
func (l *DirLocator) Close() error {
	return nil
}

// ArchiveLocator serves class files from a jar or zip archive. The entry
// index is built once at construction so lookups do not scan the directory.
type ArchiveLocator struct {
	path    string
	reader  *zip.ReadCloser
	entries map[string]*zip.File
}

// NewArchiveLocator opens the archive at the given path. A file that is not
// a valid zip container is an initialization error.
func NewArchiveLocator(path string) (*ArchiveLocator, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrClasspathEntryInvalid, err), "path", path)
	}
	entries := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		if strings.HasSuffix(f.Name, domain.ClassFileExtension) {
			entries[f.Name] = f
		}
	}
	return &ArchiveLocator{path: path, reader: reader, entries: entries}, nil
}

// Locate reads the class file entry for the given type name.
func (l *ArchiveLocator) Locate(name string) ([]byte, error) {
	entry, ok := l.entries[domain.NewTypeName(name).Resource()]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrTypeNotFound, "not present in archive"), "type", name)
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive entry"), "archive", l.path)
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read archive entry"), "archive", l.path)
	}
	return data, nil
}

// Close releases the underlying archive handle.
func (l *ArchiveLocator) Close() error {
	return l.reader.Close()
}

// Compound tries a fixed sequence of locators in order.
type Compound struct {
	locators []ports.ClassFileLocator
}

// NewCompound creates a compound locator over the given sequence.
func NewCompound(locators ...ports.ClassFileLocator) *Compound {
	return &Compound{locators: locators}
}

// Locate returns the first successful lookup, preserving classpath precedence.
func (c *Compound) Locate(name string) ([]byte, error) {
	for _, locator := range c.locators {
		data, err := locator.Locate(name)
		if err != nil {
			if errors.Is(err, domain.ErrTypeNotFound) {
				continue
			}
			return nil, err
		}
		return data, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrTypeNotFound, "no classpath entry carries the type"), "type", name)
}

// Close closes every underlying locator, aggregating failures.
func (c *Compound) Close() error {
	var errs error
	for _, locator := range c.locators {
		if err := locator.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
