package commands

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dino50687/imgcrypt/internal/config"
	"github.com/dino50687/imgcrypt/internal/transform"
)

// envPrefix namespaces environment overrides, e.g. IMGCRYPT_BLOCK_SIZE.
const envPrefix = "IMGCRYPT"

// load resolves the flags of cmd, including the inherited ones, the
// environment and an optional params file into out.
func load(cmd *cobra.Command, out any) error {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}
	}

	return config.Load(v, out)
}

// show prints the resolved configuration as YAML.
func show(cfg any) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	fmt.Print(string(out)) //nolint:forbidigo

	return nil
}

// transformFlags registers the method selection and parameter flags shared by
// encrypt and decrypt.
func transformFlags(cmd *cobra.Command) {
	defaults := transform.DefaultParams()

	flags := cmd.Flags()

	flags.StringP("method", "m", transform.XOR.String(), "Transform method (see 'imgcrypt methods')")
	flags.IntP("key", "k", defaults.Key, "XOR key [0,255]")
	flags.String("operation", string(defaults.Operation), "Arithmetic operation: add, subtract, multiply, divide")
	flags.Int("value", defaults.Value, "Arithmetic operand")
	flags.Int("shift-amount", defaults.Amount, "Bit-shift amount [0,8]")
	flags.String("direction", string(defaults.Direction), "Bit-shift direction: left, right")
	flags.Float64("swap-percentage", defaults.Percentage, "Fraction of pixels swapped by random-swap [0,1]")
	flags.Int64("seed", defaults.Seed, "Seed for random-swap and block-swap")
	flags.Int("block-size", defaults.BlockSize, "Block edge length for block-swap")
	flags.Int("rotation", defaults.Rotation, "Channel rotation steps")
	flags.Bool("strict", false, "Fail block-swap on images smaller than one block")

	flags.StringP("params", "p", "", "JSON(C) file with method parameters, overridden by flags")
	flags.String("save-params", "", "Write the method parameters to a JSON file after a successful run")
}

// preRun returns a PreRunE handler that resolves the configuration of a
// single transform and validates it.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := load(cmd, cfg); err != nil {
			return err
		}

		cfg.Input, cfg.Output = args[0], args[1]
		cfg.Decrypt = decrypt

		return cfg.Validate()
	}
}
