package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mntm.dev/fbt/internal/core/domain/options"
)

// NewSuffixCommand creates the suffix command
func NewSuffixCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suffix",
		Short: "Print the distribution suffix",
		Long: `Print the distribution suffix. DIST_SUFFIX from the environment, the
options file or --set is used as-is; otherwise it is derived from the git
merge target of the current branch and the HEAD commit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Container()
			if err != nil {
				return err
			}
			reg, err := c.Registry(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), options.Text(reg.Value(options.DistSuffix)))
			return err
		},
	}
}
