package app

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// chainCarrier is the carrier the CLI host hands to Apply. It collects the
// records emitted by plugin edits so the report can name what was applied.
type chainCarrier struct {
	mu     sync.Mutex
	events []string
}

// Record implements the structural Recorder contract plugin edits probe for.
func (c *chainCarrier) Record(event string) {
	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()
}

// process drives Matches/Apply for every local class from a bounded worker
// pool and assembles the per-type report.
func (a *App) process(ctx context.Context, cfg *domain.SessionConfig) (*domain.Report, error) {
	names := collectTypeNames(cfg.LocalOutputDirs)
	a.logger.Info("processing local classes", "count", len(names))

	workers := cfg.Parallelism
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu      sync.Mutex
		entries []domain.TypeReport
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, name := range names {
		g.Go(func() error {
			entry, typeErr := a.processType(ctx, name)
			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
			return typeErr
		})
	}
	err := g.Wait()

	outcome := &domain.Report{
		TargetVersion: cfg.TargetVersion,
		Plugins:       a.servicePlugins(),
		Types:         entries,
	}
	return outcome, err
}

// processType runs one type through the session, recording progress on its
// own telemetry vertex.
func (a *App) processType(ctx context.Context, name string) (domain.TypeReport, error) {
	_, vertex := a.telemetry.Record(ctx, name)

	matched, err := a.service.Matches(name)
	if err != nil {
		vertex.Complete(err)
		return domain.TypeReport{Name: name, Status: domain.StatusFailed, Error: err.Error()},
			zerr.With(err, "type", name)
	}
	if !matched {
		vertex.Cached()
		return domain.TypeReport{Name: name, Status: domain.StatusSkipped}, nil
	}

	carrier := &chainCarrier{}
	if _, err := a.service.Apply(name, carrier); err != nil {
		vertex.Complete(err)
		return domain.TypeReport{Name: name, Status: domain.StatusFailed, Error: err.Error()},
			zerr.With(err, "type", name)
	}
	vertex.Complete(nil)
	return domain.TypeReport{Name: name, Status: domain.StatusTransformed, Plugins: carrier.events}, nil
}

// servicePlugins is a best-effort listing for the report header.
func (a *App) servicePlugins() []string {
	names, err := a.service.PluginNames()
	if err != nil {
		return nil
	}
	return names
}

// collectTypeNames walks the local output directories and converts every
// class file path into a fully-qualified type name.
func collectTypeNames(dirs []string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, root := range dirs {
		root := filepath.Clean(root)
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, mirroring the catalog scan.
				return nil //nolint:nilerr // Defensive skip is the contract
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), domain.ClassFileExtension) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			name := domain.TypeNameFromPath(filepath.ToSlash(rel)).String()
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			return nil
		})
	}
	return names
}
