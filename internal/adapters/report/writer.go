// Package report persists the per-run instrumentation report.
package report

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Writer serializes reports to YAML files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the report at the given path, creating parent directories as
// needed. Type entries are sorted by name so repeated builds produce
// byte-identical reports.
func (w *Writer) Write(path string, r *domain.Report) error {
	sort.Slice(r.Types, func(i, j int) bool {
		return r.Types[i].Name < r.Types[j].Name
	})

	data, err := yaml.Marshal(r)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal instrumentation report")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(errors.Join(domain.ErrReportWriteFailed, err), "path", path)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Report is world-readable build output
		return zerr.With(errors.Join(domain.ErrReportWriteFailed, err), "path", path)
	}
	return nil
}
