package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mntm.dev/fbt/internal/core/domain/options"
)

// NewAppsCommand creates the apps command
func NewAppsCommand(a *app) *cobra.Command {
	var external []string

	cmd := &cobra.Command{
		Use:   "apps [SET]",
		Short: "Print the app groups of an application set",
		Long: `Print the app groups of an application set, one per line. Without SET
the active set (FIRMWARE_APP_SET) is printed.

With --external, print instead whether each external app ID is part of the
build, honoring SKIP_EXTERNAL and EXTRA_EXT_APPS.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Container()
			if err != nil {
				return err
			}
			bo, err := c.BuildOptions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(external) > 0 {
				for _, id := range external {
					state := "included"
					if !bo.IncludeExternal(id) {
						state = "skipped"
					}
					fmt.Fprintf(out, "%s: %s\n", id, state)
				}
				return nil
			}

			name := bo.FirmwareAppSet
			if len(args) == 1 {
				name = args[0]
			}
			groups, err := bo.AppSet(name)
			if errors.Is(err, options.ErrUnknownAppSet) {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			if err != nil {
				return err
			}

			for _, g := range groups {
				fmt.Fprintln(out, g)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&external, "external", nil, "External app ID to check (repeatable)")

	return cmd
}
