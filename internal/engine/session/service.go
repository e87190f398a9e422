package session

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// Factory builds a session from validated configuration. The default
// factory is wired in the app layer, where the classpath, catalog and
// registry adapters are composed.
type Factory func(cfg *domain.SessionConfig) (*Session, error)

// Service is the outward-facing, lazily-initialized singleton. Its lifecycle
// is UNINITIALIZED -> INITIALIZED -> CLOSED: initialization happens at most
// once, close happens at most once, and a closed service never resurrects a
// session.
type Service struct {
	factory Factory
	tracer  ports.Tracer
	logger  ports.Logger

	mu      sync.Mutex
	session atomic.Pointer[Session]
	closed  atomic.Bool
	builds  atomic.Int32
}

// NewService creates an uninitialized service.
func NewService(factory Factory, tracer ports.Tracer, logger ports.Logger) *Service {
	return &Service{factory: factory, tracer: tracer, logger: logger}
}

// Initialize builds the session on first call; concurrent callers block
// until the winning caller publishes it and then observe the same instance.
// Calling Initialize on an already-initialized service is a no-op; calling
// it after Close is an error.
func (s *Service) Initialize(ctx context.Context, cfg *domain.SessionConfig) error {
	if s.session.Load() != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Load() != nil {
		return nil
	}
	if s.closed.Load() {
		return domain.ErrServiceClosed
	}

	ctx, span := s.tracer.Start(ctx, "session.initialize")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		return err
	}
	built, err := s.factory(cfg)
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.builds.Add(1)
	names := built.PluginNames()
	s.tracer.EmitPlugins(ctx, names)
	span.SetAttribute("plugins", names)
	s.logger.Info("instrumentation session initialized",
		"plugins", len(names), "target_version", cfg.TargetVersion)

	s.session.Store(built)
	return nil
}

// Matches reports whether the named type should be instrumented. Calling it
// before Initialize is a usage error.
func (s *Service) Matches(name string) (bool, error) {
	session, err := s.live()
	if err != nil {
		return false, err
	}
	return session.Matches(name)
}

// Apply chains every matching plugin's rewrite onto the carrier. Calling it
// before Initialize is a usage error.
func (s *Service) Apply(name string, carrier domain.Carrier) (domain.Carrier, error) {
	session, err := s.live()
	if err != nil {
		return nil, err
	}
	return session.Apply(name, carrier)
}

// PluginNames lists the discovered plugins in application order.
func (s *Service) PluginNames() ([]string, error) {
	session, err := s.live()
	if err != nil {
		return nil, err
	}
	return session.PluginNames(), nil
}

// Close tears the session down exactly once. Closing an already-closed or
// never-initialized service is a no-op, but it still seals the lifecycle:
// no session can be initialized afterwards.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return nil
	}
	s.closed.Store(true)

	session := s.session.Swap(nil)
	if session == nil {
		return nil
	}
	return session.Close()
}

// live returns the published session, translating its absence into the
// lifecycle error the caller violated.
func (s *Service) live() (*Session, error) {
	if session := s.session.Load(); session != nil {
		return session, nil
	}
	if s.closed.Load() {
		return nil, domain.ErrServiceClosed
	}
	return nil, domain.ErrServiceNotInitialized
}
