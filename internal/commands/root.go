package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the root command with common configuration.
// Output control flags are shared by every subcommand.
func NewRootCommand(version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "imgcrypt [flags] command [flags]"
	root.Short = "Reversible image pixel scrambling"
	root.Long = `Scrambles the pixels of an image with reversible transforms (bitwise, arithmetic
and seeded positional shuffles) and restores them with the same parameters.
Flags can also be set through IMGCRYPT_* environment variables.`

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewDemoCommand(), NewMethodsCommand())

	return root
}
