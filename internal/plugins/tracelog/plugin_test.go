package tracelog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/rewrite"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/plugins/tracelog"
)

// fixedClassifier marks a fixed set of names as local.
type fixedClassifier map[string]struct{}

func (c fixedClassifier) Classify(name domain.TypeName) domain.Locality {
	if _, ok := c[name.String()]; ok {
		return domain.LocalityLocal
	}
	return domain.LocalityExternal
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

// recordingCarrier collects trace records, playing the host carrier role.
type recordingCarrier struct {
	events []string
}

func (c *recordingCarrier) Record(event string) {
	c.events = append(c.events, event)
}

func describe(name string) *domain.TypeDescription {
	return &domain.TypeDescription{Name: domain.NewTypeName(name), Size: 1}
}

func TestPlugin_Matches(t *testing.T) {
	classifier := fixedClassifier{"com.app.Foo": {}, "com.app.Foo$Inner": {}}
	plugin := tracelog.New(classifier, nopLogger{})

	assert.True(t, plugin.Matches(describe("com.app.Foo")))
	assert.False(t, plugin.Matches(describe("com.lib.External")), "external types are not traced")
	assert.False(t, plugin.Matches(describe("com.app.Foo$Inner")), "synthetic nested classes are skipped")
}

func TestPlugin_ApplyRecordsOnCarrier(t *testing.T) {
	classifier := fixedClassifier{"com.app.Foo": {}}
	plugin := tracelog.New(classifier, nopLogger{})
	require.NoError(t, plugin.Initialize(nil))

	version, err := domain.ParseClassFileVersion("1.8")
	require.NoError(t, err)
	engine := rewrite.NewEngine(domain.EntryPointDecorate, version)
	builder, err := engine.Builder(describe("com.app.Foo"), nil)
	require.NoError(t, err)

	builder, err = plugin.Apply(builder, describe("com.app.Foo"), nil)
	require.NoError(t, err)

	carrier := &recordingCarrier{}
	out := builder.Wrap(carrier)
	assert.Same(t, carrier, out, "the edit decorates the carrier in place")
	assert.Equal(t, []string{"tracelog:com.app.Foo"}, carrier.events)
}

func TestPlugin_ApplyIgnoresForeignCarriers(t *testing.T) {
	plugin := tracelog.New(fixedClassifier{"com.app.Foo": {}}, nopLogger{})

	version, err := domain.ParseClassFileVersion("1.8")
	require.NoError(t, err)
	builder, err := rewrite.NewEngine(domain.EntryPointDecorate, version).Builder(describe("com.app.Foo"), nil)
	require.NoError(t, err)
	builder, err = plugin.Apply(builder, describe("com.app.Foo"), nil)
	require.NoError(t, err)

	// A carrier without the recording capability passes through unchanged.
	out := builder.Wrap("opaque")
	assert.Equal(t, "opaque", out)
}

func TestPlugin_Close(t *testing.T) {
	plugin := tracelog.New(fixedClassifier{}, nopLogger{})
	assert.NoError(t, plugin.Close())
}
