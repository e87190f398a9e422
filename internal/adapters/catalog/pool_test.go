package catalog_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/catalog"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// countingLocator serves fixed bytes and counts lookups.
type countingLocator struct {
	mu      sync.Mutex
	classes map[string][]byte
	lookups int
}

func (l *countingLocator) Locate(name string) ([]byte, error) {
	l.mu.Lock()
	l.lookups++
	data, ok := l.classes[name]
	l.mu.Unlock()
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrTypeNotFound, "not in stub"), "type", name)
	}
	return data, nil
}

func (l *countingLocator) Close() error { return nil }

func TestPool_ResolveAndCache(t *testing.T) {
	locator := &countingLocator{classes: map[string][]byte{
		"com.app.Foo": []byte("foo-bytes"),
	}}
	pool := catalog.NewPool(locator)

	first, err := pool.Resolve("com.app.Foo")
	require.NoError(t, err)
	assert.Equal(t, "com.app.Foo", first.Name.String())
	assert.Equal(t, len("foo-bytes"), first.Size)
	assert.NotZero(t, first.Fingerprint)

	second, err := pool.Resolve("com.app.Foo")
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated resolutions share one descriptor")
	assert.Equal(t, 1, locator.lookups, "cache hit must not touch the locator")
}

func TestPool_NotFound(t *testing.T) {
	pool := catalog.NewPool(&countingLocator{classes: map[string][]byte{}})

	_, err := pool.Resolve("com.app.R$layout")
	assert.True(t, errors.Is(err, domain.ErrTypeNotFound), "got %v", err)
}

func TestPool_NegativeResultsNotCached(t *testing.T) {
	locator := &countingLocator{classes: map[string][]byte{}}
	pool := catalog.NewPool(locator)

	_, _ = pool.Resolve("com.app.Gone")
	_, _ = pool.Resolve("com.app.Gone")
	assert.Equal(t, 2, locator.lookups)
}

func TestPool_ClearCache(t *testing.T) {
	locator := &countingLocator{classes: map[string][]byte{
		"com.app.Foo": []byte("foo-bytes"),
	}}
	pool := catalog.NewPool(locator)

	_, err := pool.Resolve("com.app.Foo")
	require.NoError(t, err)
	pool.ClearCache()
	_, err = pool.Resolve("com.app.Foo")
	require.NoError(t, err)
	assert.Equal(t, 2, locator.lookups)
}

func TestPool_ConcurrentResolve(t *testing.T) {
	locator := &countingLocator{classes: map[string][]byte{
		"com.app.Foo": []byte("foo-bytes"),
	}}
	pool := catalog.NewPool(locator)

	const workers = 16
	results := make([]*domain.TypeDescription, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := pool.Resolve("com.app.Foo")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = d
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i], "all resolutions observe one descriptor")
	}
}
