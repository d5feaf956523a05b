package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// Load resolves flags, environment and an optional params file held by v
// into out. Explicitly set flags win over the environment, which wins over
// the params file.
func Load(v *viper.Viper, out any) error {
	if path := v.GetString("params"); path != "" {
		if err := mergeParams(v, path); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// mergeParams reads a JSONC file (comments and trailing commas allowed) and
// layers it under the flags. Numbers are kept as json.Number so 64-bit seeds
// survive without a round trip through float64.
func mergeParams(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return fmt.Errorf("reading params file %q: %w", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSONInPlace(data)))
	decoder.UseNumber()

	var params map[string]any
	if err := decoder.Decode(&params); err != nil {
		return fmt.Errorf("parsing params file %q: %w", path, err)
	}

	if err := v.MergeConfigMap(params); err != nil {
		return fmt.Errorf("merging params file %q: %w", path, err)
	}

	return nil
}

// savedParams is the on-disk form written by SaveParams.
type savedParams struct {
	Method         string  `json:"method"`
	Key            int     `json:"key"`
	Operation      string  `json:"operation"`
	Value          int     `json:"value"`
	ShiftAmount    int     `json:"shift-amount"`
	Direction      string  `json:"direction"`
	SwapPercentage float64 `json:"swap-percentage"`
	Seed           int64   `json:"seed"`
	BlockSize      int     `json:"block-size"`
	Rotation       int     `json:"rotation"`
	Strict         bool    `json:"strict"`
}

// SaveParams writes the method parameters of c to path so a later decrypt can
// load them with --params.
func SaveParams(c *Config, path string) error {
	data, err := json.MarshalIndent(savedParams{
		Method:         c.Method,
		Key:            c.Key,
		Operation:      c.Operation,
		Value:          c.Value,
		ShiftAmount:    c.ShiftAmount,
		Direction:      c.Direction,
		SwapPercentage: c.SwapPercentage,
		Seed:           c.Seed,
		BlockSize:      c.BlockSize,
		Rotation:       c.Rotation,
		Strict:         c.Strict,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding params: %w", err)
	}

	const ownerReadWrite = 0o600

	if err := os.WriteFile(path, append(data, '\n'), ownerReadWrite); err != nil {
		return fmt.Errorf("writing params file %q: %w", path, err)
	}

	return nil
}
