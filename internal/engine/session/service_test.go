package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/telemetry"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/engine/registry"
	"go.trai.ch/weave/internal/engine/session"
)

func newTestService(t *testing.T, plugins ...registry.Registered) (*session.Service, *stubResolver, *stubLocator) {
	t.Helper()
	resolver := newStubResolver("com.app.Foo", "com.app.Bar")
	locator := &stubLocator{}
	factory := func(cfg *domain.SessionConfig) (*session.Session, error) {
		return newTestSession(t, resolver, locator, plugins...), nil
	}
	return session.NewService(factory, telemetry.NewNoOpTracer(), nopLogger{}), resolver, locator
}

func TestService_UsageBeforeInitialize(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Matches("com.app.Foo")
	assert.True(t, errors.Is(err, domain.ErrServiceNotInitialized), "got %v", err)

	_, err = service.Apply("com.app.Foo", []string{})
	assert.True(t, errors.Is(err, domain.ErrServiceNotInitialized), "got %v", err)

	_, err = service.PluginNames()
	assert.True(t, errors.Is(err, domain.ErrServiceNotInitialized), "got %v", err)
}

func TestService_InitializeOnce(t *testing.T) {
	service, _, _ := newTestService(t, registered("p", &markerPlugin{marker: "p"}, false))
	cfg := &domain.SessionConfig{}

	require.NoError(t, service.Initialize(context.Background(), cfg))
	require.NoError(t, service.Initialize(context.Background(), cfg))
	assert.Equal(t, 1, service.BuildCount(), "repeated initialization must not rebuild")

	matched, err := service.Matches("com.app.Foo")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestService_InitializeConcurrently(t *testing.T) {
	service, _, _ := newTestService(t, registered("p", &markerPlugin{marker: "p"}, false))

	const callers = 32
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = service.Initialize(context.Background(), &domain.SessionConfig{})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, 1, service.BuildCount(), "exactly one session must be built")
}

func TestService_InitializeValidatesConfig(t *testing.T) {
	service, _, _ := newTestService(t)

	err := service.Initialize(context.Background(), &domain.SessionConfig{TargetVersion: "junk"})
	assert.True(t, errors.Is(err, domain.ErrInvalidTargetVersion), "got %v", err)
	assert.Equal(t, 0, service.BuildCount())
}

func TestService_FactoryFailureLeavesServiceUninitialized(t *testing.T) {
	boom := errors.New("no classpath")
	factory := func(*domain.SessionConfig) (*session.Session, error) { return nil, boom }
	service := session.NewService(factory, telemetry.NewNoOpTracer(), nopLogger{})

	err := service.Initialize(context.Background(), &domain.SessionConfig{})
	assert.True(t, errors.Is(err, boom), "got %v", err)

	// A failed build is retryable; the lifecycle is not sealed.
	_, err = service.Matches("com.app.Foo")
	assert.True(t, errors.Is(err, domain.ErrServiceNotInitialized), "got %v", err)
}

func TestService_Close(t *testing.T) {
	plugin := &markerPlugin{marker: "p"}
	service, resolver, locator := newTestService(t, registered("p", plugin, false))
	require.NoError(t, service.Initialize(context.Background(), &domain.SessionConfig{}))

	require.NoError(t, service.Close())
	assert.Equal(t, 1, plugin.closed)
	assert.Equal(t, 1, resolver.cleared)
	assert.Equal(t, 1, locator.closed)

	// Closing again is a no-op, not a second teardown.
	require.NoError(t, service.Close())
	assert.Equal(t, 1, plugin.closed)
}

func TestService_UsageAfterClose(t *testing.T) {
	service, _, _ := newTestService(t, registered("p", &markerPlugin{marker: "p"}, false))
	require.NoError(t, service.Initialize(context.Background(), &domain.SessionConfig{}))
	require.NoError(t, service.Close())

	_, err := service.Matches("com.app.Foo")
	assert.True(t, errors.Is(err, domain.ErrServiceClosed), "got %v", err)

	_, err = service.Apply("com.app.Foo", []string{})
	assert.True(t, errors.Is(err, domain.ErrServiceClosed), "got %v", err)

	err = service.Initialize(context.Background(), &domain.SessionConfig{})
	assert.True(t, errors.Is(err, domain.ErrServiceClosed), "a closed service never resurrects")
}

func TestService_CloseBeforeInitializeSealsLifecycle(t *testing.T) {
	service, _, locator := newTestService(t)

	require.NoError(t, service.Close())
	assert.Equal(t, 0, locator.closed, "nothing was built, nothing to tear down")

	err := service.Initialize(context.Background(), &domain.SessionConfig{})
	assert.True(t, errors.Is(err, domain.ErrServiceClosed), "got %v", err)
}

func TestService_EndToEnd(t *testing.T) {
	p1 := &markerPlugin{marker: "p1", match: func(d *domain.TypeDescription) bool {
		return d.Name.String() == "com.app.Foo"
	}}
	p2 := &markerPlugin{marker: "p2"}
	service, _, _ := newTestService(t,
		registered("p1", p1, false),
		registered("p2", p2, false),
	)
	require.NoError(t, service.Initialize(context.Background(), &domain.SessionConfig{}))

	names, err := service.PluginNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, names)

	matched, err := service.Matches("com.app.Foo")
	require.NoError(t, err)
	require.True(t, matched)

	out, err := service.Apply("com.app.Foo", []string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, out)

	// A name with no class file behind it is a plain non-match.
	matched, err = service.Matches("com.app.R$layout")
	require.NoError(t, err)
	assert.False(t, matched)

	require.NoError(t, service.Close())
}
