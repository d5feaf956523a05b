package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dino50687/imgcrypt/internal/transform"
)

// NewMethodsCommand creates a new cobra command listing the transform methods.
func NewMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "methods",
		Aliases: []string{"ls"},
		Short:   "List the available transform methods",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, method := range transform.Methods() {
				tr, err := transform.Lookup(method.String())
				if err != nil {
					return err
				}

				desc := tr.Describe()

				params := "none"
				if len(desc.Parameters) > 0 {
					params = strings.Join(desc.Parameters, ", ")
				}

				fmt.Fprintf(out, "%s\n  %s\n  parameters:    %s\n  reversibility: %s\n",
					method, desc.Summary, params, desc.Reversibility)
			}

			return nil
		},
	}
}
