package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dino50687/imgcrypt/internal/config"
	"github.com/dino50687/imgcrypt/internal/logic"
)

// NewDemoCommand creates a new cobra command for the demo subcommand.
func NewDemoCommand() *cobra.Command {
	demo := &config.Demo{}

	cmd := &cobra.Command{
		Use:   "demo [flags]",
		Short: "Encrypt and decrypt a sample image with every method",
		Long: `Runs every method with showcase parameters against --input, or a generated
gradient image, and reports whether each round trip restored the image exactly.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := load(cmd, demo); err != nil {
				return err
			}

			return demo.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if demo.Show {
				return show(demo)
			}

			return logic.RunDemo(demo)
		},
	}

	cmd.Flags().StringP("input", "i", "", "Image to run the demo on, a gradient is generated if empty")
	cmd.Flags().StringP("out-dir", "o", "demo", "Directory for the demo outputs")
	cmd.Flags().StringP("format", "f", "png", "Output format: png, bmp, tiff, webp, jpg, gif")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")

	return cmd
}
