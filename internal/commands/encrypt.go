package commands

import (
	"github.com/spf13/cobra"

	"github.com/dino50687/imgcrypt/internal/config"
	"github.com/dino50687/imgcrypt/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "encrypt [flags] input output",
		Aliases: []string{"enc"},
		Short:   "Encrypt an image",
		Args:    cobra.ExactArgs(2), //nolint:mnd
		PreRunE: preRun(cfg, false),
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
