package appoptions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
	optionsinfra "mntm.dev/fbt/internal/infrastructure/options"
)

// stubDeriver returns a fixed suffix and counts invocations.
type stubDeriver struct {
	suffix string
	err    error
	calls  int
}

func (d *stubDeriver) Derive(ctx context.Context) (string, error) {
	d.calls++
	return d.suffix, d.err
}

// failingLoader always returns err.
type failingLoader struct{ err error }

func (l failingLoader) Name() string { return "broken" }

func (l failingLoader) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	return nil, l.err
}

type layers struct {
	env         map[string]string
	fileContent string
	assignments []string
	deriver     *stubDeriver
}

// standardAggregator wires the layers in the order the CLI uses.
func standardAggregator(t *testing.T, l layers) *Aggregator {
	t.Helper()
	catalog := options.DefaultCatalog()

	path := filepath.Join(t.TempDir(), optionsinfra.DefaultOptionsFile)
	if l.fileContent != "" {
		require.NoError(t, os.WriteFile(path, []byte(l.fileContent), 0o644))
	}

	return NewAggregator(catalog,
		optionsinfra.NewDefaultsLoader(catalog),
		optionsinfra.NewEnvLoader(func(k string) string { return l.env[k] }),
		NewSuffixLoader(l.deriver),
		optionsinfra.NewFileLoader(path, catalog),
		optionsinfra.NewAssignmentLoader(l.assignments, catalog),
	)
}

func TestAggregator_DefaultsOnly(t *testing.T) {
	deriver := &stubDeriver{suffix: "mntm-dev-11223344"}

	reg, err := standardAggregator(t, layers{deriver: deriver}).Load(context.Background())
	require.NoError(t, err)

	bo, err := reg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, 7, bo.TargetHW)
	assert.Equal(t, "mntm-dev-11223344", bo.DistSuffix)
	assert.Equal(t, 1, deriver.calls)

	e, _ := reg.Get(options.DistSuffix)
	assert.Equal(t, options.SourceVCS, e.Source)
}

func TestAggregator_FileOverridesDefault(t *testing.T) {
	reg, err := standardAggregator(t, layers{
		fileContent: "TARGET_HW = 9\n",
		deriver:     &stubDeriver{suffix: "mntm-dev-11223344"},
	}).Load(context.Background())
	require.NoError(t, err)

	assert.True(t, reg.Value(options.TargetHW).RawEquals(cty.NumberIntVal(9)))
	e, _ := reg.Get(options.TargetHW)
	assert.Equal(t, options.SourceFile, e.Source)
}

func TestAggregator_EnvironmentSuffixSkipsDerivation(t *testing.T) {
	deriver := &stubDeriver{err: errors.New("git must not be consulted")}

	reg, err := standardAggregator(t, layers{
		env:     map[string]string{optionsinfra.EnvDistSuffix: "mntm-custom"},
		deriver: deriver,
	}).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "mntm-custom", reg.Value(options.DistSuffix).AsString())
	assert.Zero(t, deriver.calls)
}

func TestAggregator_PrecedenceAcrossLayers(t *testing.T) {
	reg, err := standardAggregator(t, layers{
		env:         map[string]string{optionsinfra.EnvDistSuffix: "mntm-env"},
		fileContent: "DIST_SUFFIX = \"mntm-file\"\nTARGET_HW = 9\nDEBUG = true\n",
		assignments: []string{"TARGET_HW=18"},
		deriver:     &stubDeriver{},
	}).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "mntm-file", reg.Value(options.DistSuffix).AsString(), "file beats environment")
	assert.True(t, reg.Value(options.TargetHW).RawEquals(cty.NumberIntVal(18)), "command line beats file")
	assert.True(t, reg.Value(options.Debug).True())
	assert.True(t, reg.Value(options.Compact).True(), "untouched options keep defaults")
}

func TestAggregator_FileErrorIsFatal(t *testing.T) {
	_, err := standardAggregator(t, layers{
		fileContent: "TARGET_HW = \"nine\"\n",
		deriver:     &stubDeriver{suffix: "mntm-dev-11223344"},
	}).Load(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, "file options")
}

func TestAggregator_DerivationErrorIsFatal(t *testing.T) {
	derr := errors.New("no commit")

	_, err := standardAggregator(t, layers{deriver: &stubDeriver{err: derr}}).Load(context.Background())

	assert.ErrorIs(t, err, derr)
	assert.ErrorContains(t, err, options.DistSuffix)
}

func TestAggregator_LoaderSeesEarlierLayers(t *testing.T) {
	catalog := options.DefaultCatalog()
	var seen options.Snapshot
	probe := loaderFunc(func(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
		seen = base
		base[options.TargetHW] = options.Entry{Key: options.TargetHW, Value: cty.NumberIntVal(1), Priority: options.PriorityCLI}
		return nil, nil
	})

	snap, err := NewAggregator(catalog, optionsinfra.NewDefaultsLoader(catalog), probe).LoadSnapshot(context.Background())
	require.NoError(t, err)

	assert.Contains(t, seen, options.TargetHW)
	assert.True(t, snap[options.TargetHW].Value.RawEquals(cty.NumberIntVal(7)), "loaders get a copy of the base")
}

func TestAggregator_WrapsLoaderName(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewAggregator(options.DefaultCatalog(), failingLoader{err: boom}).Load(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "broken options: boom")
}

type loaderFunc func(ctx context.Context, base options.Snapshot) (options.Snapshot, error)

func (f loaderFunc) Name() string { return "probe" }

func (f loaderFunc) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	return f(ctx, base)
}

var _ optionsports.Loader = loaderFunc(nil)
