package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/catalog"
	"go.trai.ch/weave/internal/core/domain"
)

func writeClassDir(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("cafebabe"), 0o600))
	}
	return root
}

func TestClassifier_LocalAndExternal(t *testing.T) {
	root := writeClassDir(t,
		"com/app/Foo.class",
		"com/app/sub/Bar.class",
		"notes.txt",
	)
	classifier := catalog.NewClassifier([]string{root})

	assert.Equal(t, domain.LocalityLocal, classifier.Classify(domain.NewTypeName("com.app.Foo")))
	assert.Equal(t, domain.LocalityLocal, classifier.Classify(domain.NewTypeName("com.app.sub.Bar")))
	assert.Equal(t, domain.LocalityExternal, classifier.Classify(domain.NewTypeName("com.lib.External")))
	// Non-class files never become type names.
	assert.Equal(t, domain.LocalityExternal, classifier.Classify(domain.NewTypeName("notes")))
	assert.Equal(t, 2, classifier.Size())
}

func TestClassifier_MultipleRoots(t *testing.T) {
	a := writeClassDir(t, "com/a/A.class")
	b := writeClassDir(t, "com/b/B.class")
	classifier := catalog.NewClassifier([]string{a, b})

	assert.Equal(t, domain.LocalityLocal, classifier.Classify(domain.NewTypeName("com.a.A")))
	assert.Equal(t, domain.LocalityLocal, classifier.Classify(domain.NewTypeName("com.b.B")))
}

func TestClassifier_DeepNesting(t *testing.T) {
	rel := "a/b/c/d/e/f/g/h/i/j/Deep.class"
	root := writeClassDir(t, rel)
	classifier := catalog.NewClassifier([]string{root})

	assert.Equal(t, domain.LocalityLocal, classifier.Classify(domain.NewTypeName("a.b.c.d.e.f.g.h.i.j.Deep")))
}

func TestClassifier_MissingRoot(t *testing.T) {
	classifier := catalog.NewClassifier([]string{filepath.Join(t.TempDir(), "absent")})
	assert.Equal(t, 0, classifier.Size())
	assert.Equal(t, domain.LocalityExternal, classifier.Classify(domain.NewTypeName("com.app.Foo")))
}

func TestClassifier_EmptySnapshot(t *testing.T) {
	classifier := catalog.NewClassifier(nil)
	assert.Equal(t, domain.LocalityExternal, classifier.Classify(domain.NewTypeName("anything")))
}
