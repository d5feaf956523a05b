package commands

import (
	"github.com/spf13/cobra"

	"github.com/dino50687/imgcrypt/internal/config"
	"github.com/dino50687/imgcrypt/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// The parameters must match the ones used to encrypt.
func NewDecryptCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "decrypt [flags] input output",
		Aliases: []string{"dec"},
		Short:   "Decrypt an image encrypted with the same method and parameters",
		Args:    cobra.ExactArgs(2), //nolint:mnd
		PreRunE: preRun(cfg, true),
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.Show {
				return show(cfg)
			}

			return logic.Run(cfg)
		},
	}

	transformFlags(cmd)

	return cmd
}
