package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func defaultSnapshot(t *testing.T, c *Catalog) Snapshot {
	t.Helper()
	snap := make(Snapshot)
	for _, o := range c.All() {
		if o.Default.IsNull() {
			continue
		}
		snap[o.Name] = Entry{Key: o.Name, Value: o.Default, Source: SourceDefault, Priority: PriorityDefault}
	}
	return snap
}

func TestDefaultCatalog_Complete(t *testing.T) {
	c := DefaultCatalog()

	want := []string{
		FirmwareOrigin, TargetHW, Compact, Debug, DistSuffix, SkipExternal, ExtraExtApps,
		CoproOBData, CoproCubeVersion, CoproCubeDir, CoproStackBin, CoproStackType,
		CoproStackAddr, CoproStackBinDir, FBTToolchainVersions, OpenOCDOpts, SVDFile,
		Blackmagic, LoaderAutostart, FirmwareApps, FirmwareAppSet,
	}
	if diff := cmp.Diff(want, c.Names()); diff != "" {
		t.Errorf("catalog names mismatch (-want +got):\n%s", diff)
	}

	for _, o := range c.All() {
		assert.NotEmpty(t, o.Description, "%s has no description", o.Name)
		if o.Name == DistSuffix {
			assert.True(t, o.Default.IsNull(), "DIST_SUFFIX is derived, not defaulted")
			continue
		}
		assert.False(t, o.Default.IsNull(), "%s has no default", o.Name)
		assert.True(t, o.Default.Type().Equals(o.Type), "%s default has type %s", o.Name, o.Default.Type().FriendlyName())
	}
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(
		Option{Name: "A", Type: cty.String},
		Option{Name: "A", Type: cty.Bool},
	)
	assert.ErrorIs(t, err, ErrDuplicateOption)
}

func TestOption_Convert(t *testing.T) {
	target, _ := DefaultCatalog().Lookup(TargetHW)
	apps, _ := DefaultCatalog().Lookup(FirmwareApps)

	out, err := target.Convert(cty.NumberIntVal(9))
	require.NoError(t, err)
	assert.True(t, out.RawEquals(cty.NumberIntVal(9)))

	out, err = target.Convert(cty.StringVal("18"))
	require.NoError(t, err, "numeric strings convert")
	assert.True(t, out.RawEquals(cty.NumberIntVal(18)))

	_, err = target.Convert(cty.NumberFloatVal(7.5))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = target.Convert(cty.StringVal("seven"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = target.Convert(cty.NullVal(cty.Number))
	assert.ErrorIs(t, err, ErrNullValue)

	huge, err := cty.ParseNumberVal("1e400")
	require.NoError(t, err)
	_, err = target.Convert(huge)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorContains(t, err, "out of range")

	extra, _ := DefaultCatalog().Lookup(ExtraExtApps)
	_, err = extra.Convert(cty.TupleVal([]cty.Value{cty.StringVal("snake_game"), cty.NullVal(cty.DynamicPseudoType)}))
	assert.ErrorIs(t, err, ErrNullValue, "null list element")

	_, err = apps.Convert(cty.ObjectVal(map[string]cty.Value{
		"mini": cty.NullVal(cty.DynamicPseudoType),
	}))
	assert.ErrorIs(t, err, ErrNullValue, "null map value")

	out, err = apps.Convert(cty.ObjectVal(map[string]cty.Value{
		"mini": cty.TupleVal([]cty.Value{cty.StringVal("basic_services")}),
	}))
	require.NoError(t, err, "object of tuples converts to a map of lists")
	assert.True(t, out.Type().Equals(AppSetsType))
}

func TestSnapshot_MergeHonorsPriority(t *testing.T) {
	snap := Snapshot{
		TargetHW: {Key: TargetHW, Value: cty.NumberIntVal(7), Source: SourceDefault, Priority: PriorityDefault},
	}

	snap.Merge(Snapshot{TargetHW: {Key: TargetHW, Value: cty.NumberIntVal(9), Source: SourceFile, Priority: PriorityFile}})
	assert.Equal(t, SourceFile, snap[TargetHW].Source)

	snap.Merge(Snapshot{TargetHW: {Key: TargetHW, Value: cty.NumberIntVal(1), Source: SourceDefault, Priority: PriorityDefault}})
	assert.Equal(t, SourceFile, snap[TargetHW].Source, "lower priority does not replace")

	snap.Merge(Snapshot{TargetHW: {Key: TargetHW, Value: cty.NumberIntVal(11), Source: SourceFile, Priority: PriorityFile}})
	assert.True(t, snap[TargetHW].Value.RawEquals(cty.NumberIntVal(11)), "equal priority, later wins")
}

func TestRegistry_Resolve(t *testing.T) {
	c := DefaultCatalog()
	snap := defaultSnapshot(t, c)
	snap[DistSuffix] = Entry{Key: DistSuffix, Value: cty.StringVal("mntm-dev-11223344"), Source: SourceVCS}

	reg, err := NewRegistry(c, snap)
	require.NoError(t, err)

	bo, err := reg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "Momentum", bo.FirmwareOrigin)
	assert.Equal(t, 7, bo.TargetHW)
	assert.True(t, bo.Compact)
	assert.False(t, bo.Debug)
	assert.Equal(t, "mntm-dev-11223344", bo.DistSuffix)
	assert.Empty(t, bo.ExtraExtApps)
	assert.Equal(t, "1.19.0", bo.CoproCubeVersion)
	assert.Equal(t, "lib/stm32wb_copro/firmware", bo.CoproStackBinDir)
	assert.Equal(t, []string{" 12.3.", " 13.2."}, bo.FBTToolchainVersions)
	assert.Len(t, bo.OpenOCDOpts, 8)
	assert.Equal(t, "auto", bo.Blackmagic)
	assert.Equal(t, "", bo.LoaderAutostart)
	assert.Equal(t, "default", bo.FirmwareAppSet)
}

func TestRegistry_ResolveRequiresEveryOption(t *testing.T) {
	c := DefaultCatalog()
	reg, err := NewRegistry(c, defaultSnapshot(t, c))
	require.NoError(t, err)

	_, err = reg.Resolve()
	assert.ErrorContains(t, err, DistSuffix)
}

func TestNewRegistry_RejectsUnknownNames(t *testing.T) {
	_, err := NewRegistry(DefaultCatalog(), Snapshot{"NOPE": {Key: "NOPE", Value: cty.True}})
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestRegistry_EntriesFollowCatalogOrder(t *testing.T) {
	c := DefaultCatalog()
	reg, err := NewRegistry(c, defaultSnapshot(t, c))
	require.NoError(t, err)

	var names []string
	for _, e := range reg.Entries() {
		names = append(names, e.Key)
	}
	assert.Equal(t, FirmwareOrigin, names[0])
	assert.Equal(t, FirmwareAppSet, names[len(names)-1])
	assert.NotContains(t, names, DistSuffix)
	assert.True(t, reg.Value(DistSuffix).IsNull())
}

func TestBuildOptions_AppSets(t *testing.T) {
	bo := &BuildOptions{
		FirmwareApps: map[string][]string{
			"default":    {"basic_services", "main_apps"},
			"unit_tests": {"basic_services", "unit_tests"},
		},
		FirmwareAppSet: "unit_tests",
	}

	active, err := bo.ActiveApps()
	require.NoError(t, err)
	assert.Equal(t, []string{"basic_services", "unit_tests"}, active)

	_, err = bo.AppSet("nightly")
	assert.ErrorIs(t, err, ErrUnknownAppSet)
	assert.ErrorContains(t, err, "default")

	assert.Equal(t, []string{"default", "unit_tests"}, bo.AppSetNames())
}

func TestBuildOptions_IncludeExternal(t *testing.T) {
	bo := &BuildOptions{ExtraExtApps: []string{"snake_game"}}
	assert.True(t, bo.IncludeExternal("nfc_magic"))

	bo.SkipExternal = true
	assert.False(t, bo.IncludeExternal("nfc_magic"))
	assert.True(t, bo.IncludeExternal("snake_game"))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		val  cty.Value
		want string
	}{
		{name: "string", val: cty.StringVal("Momentum"), want: `"Momentum"`},
		{name: "template escaped", val: cty.StringVal("${FBT_DEBUG_DIR}/x.svd"), want: `"$${FBT_DEBUG_DIR}/x.svd"`},
		{name: "number", val: cty.NumberIntVal(7), want: "7"},
		{name: "bool", val: cty.False, want: "false"},
		{name: "empty list", val: cty.ListValEmpty(cty.String), want: "[]"},
		{name: "list", val: cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), want: `["a", "b"]`},
		{
			name: "map",
			val: cty.MapVal(map[string]cty.Value{
				"unit tests": cty.ListVal([]cty.Value{cty.StringVal("x")}),
				"default":    cty.ListVal([]cty.Value{cty.StringVal("y")}),
			}),
			want: `{default = ["y"], "unit tests" = ["x"]}`,
		},
		{name: "null", val: cty.NullVal(cty.String), want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.val))
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "${FBT_DEBUG_DIR}/x.svd", Text(cty.StringVal("${FBT_DEBUG_DIR}/x.svd")))
	assert.Equal(t, "9", Text(cty.NumberIntVal(9)))
}

func TestCatalog_Suggest(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, TargetHW, c.Suggest("TARGET_HV"))
	assert.Equal(t, Debug, c.Suggest("DEBUGG"))
	assert.Empty(t, c.Suggest("SOMETHING_ELSE_ENTIRELY"))
}
