package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewToolchainCommand creates the toolchain command group
func NewToolchainCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolchain",
		Short: "Inspect the cross compiler",
	}

	var compiler string
	check := &cobra.Command{
		Use:   "check",
		Short: "Verify the compiler version against FBT_TOOLCHAIN_VERSIONS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Container()
			if err != nil {
				return err
			}
			bo, err := c.BuildOptions(cmd.Context())
			if err != nil {
				return err
			}

			checker := c.Toolchain
			if compiler != "" {
				checker = checker.WithCompiler(compiler)
			}
			v, err := checker.Check(cmd.Context(), bo.FBTToolchainVersions)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "toolchain %s OK\n", v)
			return err
		},
	}
	check.Flags().StringVar(&compiler, "compiler", "", "Compiler to check instead of arm-none-eabi-gcc")

	cmd.AddCommand(check)
	return cmd
}
