package registry

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// DescriptorPath is the location of plugin descriptor files inside a plugin
// classpath entry. Each descriptor lists one plugin name per line; blank
// lines and '#' comments are ignored.
const DescriptorPath = "META-INF/weave/plugins"

// Discover scans the plugin classpath entries for descriptor files and
// resolves every listed name against the table. The returned factory order
// is significant: classpath entry order first, descriptor line order second,
// first occurrence of a name wins. A name without a registered constructor
// aborts discovery; partial plugin sets are never accepted.
func (t *Table) Discover(pluginClasspath []string, in Injection) ([]Factory, error) {
	var factories []Factory
	seen := make(map[string]struct{})

	for _, entry := range pluginClasspath {
		names, err := readDescriptor(entry)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}

			ctor, ok := t.lookup(name)
			if !ok {
				err := zerr.Wrap(domain.ErrPluginNotRegistered, "descriptor names an unknown plugin")
				return nil, zerr.With(zerr.With(err, "plugin", name), "entry", entry)
			}
			factories = append(factories, Factory{Name: name, ctor: ctor, injection: in})
		}
	}
	return factories, nil
}

// readDescriptor extracts plugin names from one classpath entry, which is
// either a directory or an archive. A missing descriptor is not an error;
// most classpath entries carry no plugins.
func readDescriptor(entry string) ([]string, error) {
	info, err := os.Stat(entry)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat plugin classpath entry"), "path", entry)
	}
	if info.IsDir() {
		return readDirDescriptor(entry)
	}
	return readArchiveDescriptor(entry)
}

func readDirDescriptor(dir string) ([]string, error) {
	path := filepath.Join(dir, filepath.FromSlash(DescriptorPath))
	data, err := os.ReadFile(path) //nolint:gosec // Path is rooted in a configured classpath entry
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read plugin descriptor"), "path", path)
	}
	return parseDescriptor(data), nil
}

func readArchiveDescriptor(path string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrClasspathEntryInvalid, err), "path", path)
	}
	defer reader.Close() //nolint:errcheck // Best effort close in defer

	for _, f := range reader.File {
		if f.Name != DescriptorPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open plugin descriptor"), "archive", path)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read plugin descriptor"), "archive", path)
		}
		return parseDescriptor(data), nil
	}
	return nil, nil
}

func parseDescriptor(data []byte) []string {
	var names []string
	for line := range strings.Lines(string(data)) {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}
	return names
}
