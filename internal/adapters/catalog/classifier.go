package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

var _ ports.LocalityClassifier = (*Classifier)(nil)

// Classifier answers LOCAL/EXTERNAL for type names based on a point-in-time
// snapshot of the local output directories. The snapshot is taken once at
// construction and never invalidated; classification is a set-membership test.
type Classifier struct {
	names map[domain.TypeName]struct{}
}

// NewClassifier scans the given local output directories and snapshots the
// set of type names they contain. The traversal is breadth-first with an
// explicit work queue so that deeply nested package trees do not grow the
// stack, and unreadable directory listings are skipped rather than failing
// the whole scan.
func NewClassifier(localOutputDirs []string) *Classifier {
	names := make(map[domain.TypeName]struct{})
	for _, root := range localOutputDirs {
		collectClassNames(root, names)
	}
	return &Classifier{names: names}
}

func collectClassNames(root string, names map[domain.TypeName]struct{}) {
	root = filepath.Clean(root)
	queue := []string{root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			// Broken symlinks and permission holes are not fatal to the scan.
			continue
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				queue = append(queue, path)
				continue
			}
			if !strings.HasSuffix(entry.Name(), domain.ClassFileExtension) {
				continue
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				continue
			}
			names[domain.TypeNameFromPath(filepath.ToSlash(rel))] = struct{}{}
		}
	}
}

// Classify returns LOCAL when the name was found in the snapshot.
func (c *Classifier) Classify(name domain.TypeName) domain.Locality {
	if _, ok := c.names[name]; ok {
		return domain.LocalityLocal
	}
	return domain.LocalityExternal
}

// Size returns the number of local types in the snapshot.
func (c *Classifier) Size() int {
	return len(c.names)
}
