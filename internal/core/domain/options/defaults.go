package options

import (
	"path"

	"github.com/zclconf/go-cty/cty"
)

// Option names understood by the build engine.
const (
	FirmwareOrigin       = "FIRMWARE_ORIGIN"
	TargetHW             = "TARGET_HW"
	Compact              = "COMPACT"
	Debug                = "DEBUG"
	DistSuffix           = "DIST_SUFFIX"
	SkipExternal         = "SKIP_EXTERNAL"
	ExtraExtApps         = "EXTRA_EXT_APPS"
	CoproOBData          = "COPRO_OB_DATA"
	CoproCubeVersion     = "COPRO_CUBE_VERSION"
	CoproCubeDir         = "COPRO_CUBE_DIR"
	CoproStackBin        = "COPRO_STACK_BIN"
	CoproStackType       = "COPRO_STACK_TYPE"
	CoproStackAddr       = "COPRO_STACK_ADDR"
	CoproStackBinDir     = "COPRO_STACK_BIN_DIR"
	FBTToolchainVersions = "FBT_TOOLCHAIN_VERSIONS"
	OpenOCDOpts          = "OPENOCD_OPTS"
	SVDFile              = "SVD_FILE"
	Blackmagic           = "BLACKMAGIC"
	LoaderAutostart      = "LOADER_AUTOSTART"
	FirmwareApps         = "FIRMWARE_APPS"
	FirmwareAppSet       = "FIRMWARE_APP_SET"
)

const defaultCoproCubeDir = "lib/stm32wb_copro"

// AppSetsType is the type of the FIRMWARE_APPS table.
var AppSetsType = cty.Map(cty.List(cty.String))

// DefaultCatalog returns the built-in option set with its documented defaults.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultOptions()...)
	if err != nil {
		// The built-in table is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func defaultOptions() []Option {
	return []Option{
		{
			Name:        FirmwareOrigin,
			Description: "Firmware origin label embedded into the build",
			Type:        cty.String,
			Default:     cty.StringVal("Momentum"),
		},
		{
			Name:        TargetHW,
			Description: "Hardware target number",
			Type:        cty.Number,
			Default:     cty.NumberIntVal(7),
			Integer:     true,
		},
		{
			Name:        Compact,
			Description: "Optimize for size",
			Type:        cty.Bool,
			Default:     cty.True,
		},
		{
			Name:        Debug,
			Description: "Optimize for debugging experience",
			Type:        cty.Bool,
			Default:     cty.False,
		},
		{
			Name: DistSuffix,
			Description: "Suffix to add to files when building distribution. " +
				"Taken from the DIST_SUFFIX environment variable when set, " +
				"otherwise derived from the git branch and commit",
			Type: cty.String,
		},
		{
			Name:        SkipExternal,
			Description: "Skip external apps",
			Type:        cty.Bool,
			Default:     cty.False,
		},
		{
			Name:        ExtraExtApps,
			Description: "App IDs to include even when skipping external apps",
			Type:        cty.List(cty.String),
			Default:     cty.ListValEmpty(cty.String),
		},
		{
			Name:        CoproOBData,
			Description: "Coprocessor option bytes data file",
			Type:        cty.String,
			Default:     cty.StringVal("scripts/ob.data"),
		},
		{
			Name:        CoproCubeVersion,
			Description: "Coprocessor cube version, must match lib/stm32wb_copro",
			Type:        cty.String,
			Default:     cty.StringVal("1.19.0"),
		},
		{
			Name:        CoproCubeDir,
			Description: "Coprocessor cube directory",
			Type:        cty.String,
			Default:     cty.StringVal(defaultCoproCubeDir),
		},
		{
			Name:        CoproStackBin,
			Description: "Radio stack binary",
			Type:        cty.String,
			Default:     cty.StringVal("stm32wb5x_BLE_Stack_light_fw.bin"),
		},
		{
			Name: CoproStackType,
			Description: "Radio stack type. Firmware also supports ble_full, " +
				"but it might not fit into debug builds",
			Type:    cty.String,
			Default: cty.StringVal("ble_light"),
		},
		{
			Name:        CoproStackAddr,
			Description: "Radio stack address, leave 0x0 to let scripts calculate it",
			Type:        cty.String,
			Default:     cty.StringVal("0x0"),
		},
		{
			Name: CoproStackBinDir,
			Description: "Radio stack binary directory. If you override " +
				"COPRO_CUBE_DIR, override this as well",
			Type:    cty.String,
			Default: cty.StringVal(path.Join(defaultCoproCubeDir, "firmware")),
		},
		{
			Name:        FBTToolchainVersions,
			Description: "Supported toolchain version markers",
			Type:        cty.List(cty.String),
			Default:     stringList(" 12.3.", " 13.2."),
		},
		{
			Name:        OpenOCDOpts,
			Description: "OpenOCD command line options",
			Type:        cty.List(cty.String),
			Default: stringList(
				"-f",
				"interface/stlink.cfg",
				"-c",
				"transport select hla_swd",
				"-f",
				"${FBT_DEBUG_DIR}/stm32wbx.cfg",
				"-c",
				"stm32wbx.cpu configure -rtos auto",
			),
		},
		{
			Name:        SVDFile,
			Description: "SVD file for the debugger",
			Type:        cty.String,
			Default:     cty.StringVal("${FBT_DEBUG_DIR}/STM32WB55_CM4.svd"),
		},
		{
			Name:        Blackmagic,
			Description: "Blackmagic probe location, auto looks on serial ports and local network",
			Type:        cty.String,
			Default:     cty.StringVal("auto"),
		},
		{
			Name:        LoaderAutostart,
			Description: "Application to start on boot",
			Type:        cty.String,
			Default:     cty.StringVal(""),
		},
		{
			Name:        FirmwareApps,
			Description: "Application sets, each an ordered list of app groups",
			Type:        AppSetsType,
			Default: cty.MapVal(map[string]cty.Value{
				"default": stringList(
					"basic_services",
					"main_apps",
					"system_apps",
					"settings_apps",
				),
				"unit_tests": stringList(
					"basic_services",
					"updater_app",
					"radio_device_cc1101_ext",
					"unit_tests",
				),
			}),
		},
		{
			Name:        FirmwareAppSet,
			Description: "Application set to build",
			Type:        cty.String,
			Default:     cty.StringVal("default"),
		},
	}
}

func stringList(items ...string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
