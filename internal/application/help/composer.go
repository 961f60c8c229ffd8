// Package help assembles the operator help text: a fixed preamble, the
// listing of configuration variables and a task reference.
package help

import "strings"

// VariablesHeader introduces the variable listing.
const VariablesHeader = "Configuration variables:\n"

// Preamble is printed before the variable listing.
const Preamble = `Usage: fbt [COMMAND] [flags]

Options are read from built-in defaults, the DIST_SUFFIX environment
variable, fbt_options_local.hcl in the working directory and --set
NAME=VALUE flags, in increasing order of precedence.

COMMANDS:
    options show [--source]:
        Print resolved options, optionally with where each value came from
    options get NAME:
        Print a single option value
    suffix:
        Print the distribution suffix
    apps [SET]:
        Print the app groups of an application set (active set by default)
    toolchain check:
        Verify the installed toolchain against FBT_TOOLCHAIN_VERSIONS

`

// Postamble is the task reference printed after the variable listing.
const Postamble = `

TASKS:
Building:
    firmware_all, fw_dist:
        Build firmware; create distribution package
    faps, fap_dist:
        Build all FAP apps; copy them to dist
    fap_{APPID}, launch APPSRC={APPID}:
        Build FAP app with appid={APPID}; upload & start it over USB
    fap_deploy:
        Build and upload all FAP apps over USB
    updater_package, updater_minpackage:
        Build self-update package. Minimal version only includes firmware's DFU file
    copro_dist:
        Bundle Core2 FUS+stack binaries for qFlipper
    cdb:
        Regenerate "compile_commands.json" file (for IDE integration)

Flashing & debugging:
    flash, flash_blackmagic, jflash:
        Flash firmware to target using debug probe
    flash_usb, flash_usb_full:
        Install firmware using self-update package
    debug, debug_other, blackmagic:
        Start GDB
    openocd:
        Start OpenOCD server with OPENOCD_OPTS
    devboard_flash:
        Update WiFi dev board.
        Supports ARGS="..." to pass extra arguments to the update script, e.g. ARGS="-c dev"

Other:
    cli:
        Open a Flipper CLI session over USB
    firmware_cdb, updater_cdb:
        Generate compilation database
    lint, lint_py:
        Run linters
    format, format_py:
        Run code formatters
    get_blackmagic:
        Output blackmagic address in GDB remote format
    get_apiversion:
        Get SDK API version
`

// Compose returns the full help text for the given variable listing. The
// listing is included verbatim.
func Compose(listing string) string {
	var b strings.Builder
	b.Grow(len(Preamble) + len(VariablesHeader) + len(listing) + len(Postamble))
	b.WriteString(Preamble)
	b.WriteString(VariablesHeader)
	b.WriteString(listing)
	b.WriteString(Postamble)
	return b.String()
}
