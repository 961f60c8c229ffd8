package options

import (
	"fmt"
	"slices"
	"sort"
)

// BuildOptions is the typed configuration handed to the build engine.
type BuildOptions struct {
	FirmwareOrigin       string              `cty:"FIRMWARE_ORIGIN"`
	TargetHW             int                 `cty:"TARGET_HW"`
	Compact              bool                `cty:"COMPACT"`
	Debug                bool                `cty:"DEBUG"`
	DistSuffix           string              `cty:"DIST_SUFFIX"`
	SkipExternal         bool                `cty:"SKIP_EXTERNAL"`
	ExtraExtApps         []string            `cty:"EXTRA_EXT_APPS"`
	CoproOBData          string              `cty:"COPRO_OB_DATA"`
	CoproCubeVersion     string              `cty:"COPRO_CUBE_VERSION"`
	CoproCubeDir         string              `cty:"COPRO_CUBE_DIR"`
	CoproStackBin        string              `cty:"COPRO_STACK_BIN"`
	CoproStackType       string              `cty:"COPRO_STACK_TYPE"`
	CoproStackAddr       string              `cty:"COPRO_STACK_ADDR"`
	CoproStackBinDir     string              `cty:"COPRO_STACK_BIN_DIR"`
	FBTToolchainVersions []string            `cty:"FBT_TOOLCHAIN_VERSIONS"`
	OpenOCDOpts          []string            `cty:"OPENOCD_OPTS"`
	SVDFile              string              `cty:"SVD_FILE"`
	Blackmagic           string              `cty:"BLACKMAGIC"`
	LoaderAutostart      string              `cty:"LOADER_AUTOSTART"`
	FirmwareApps         map[string][]string `cty:"FIRMWARE_APPS"`
	FirmwareAppSet       string              `cty:"FIRMWARE_APP_SET"`
}

// AppSet returns the ordered app groups of the named application set.
func (b *BuildOptions) AppSet(name string) ([]string, error) {
	groups, ok := b.FirmwareApps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownAppSet, name, b.AppSetNames())
	}
	return append([]string(nil), groups...), nil
}

// ActiveApps returns the app groups of the selected application set.
func (b *BuildOptions) ActiveApps() ([]string, error) {
	return b.AppSet(b.FirmwareAppSet)
}

// AppSetNames returns the defined application set names, sorted.
func (b *BuildOptions) AppSetNames() []string {
	names := make([]string, 0, len(b.FirmwareApps))
	for name := range b.FirmwareApps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IncludeExternal reports whether the external app appID is part of the build.
func (b *BuildOptions) IncludeExternal(appID string) bool {
	if !b.SkipExternal {
		return true
	}
	return slices.Contains(b.ExtraExtApps, appID)
}
