// Package config holds the command-line configuration and its validation.
package config

import (
	"github.com/dino50687/imgcrypt/internal/transform"
)

// Config is the configuration of a single encrypt or decrypt run.
type Config struct {
	// Positional arguments
	Input  string `label:"input"  validate:"required,imagepath"`
	Output string `label:"output" validate:"required,imagepath,nefield=Input"`

	// Method selection and parameters
	Method         string
	Key            int
	Operation      string
	Value          int
	ShiftAmount    int     `mapstructure:"shift-amount"`
	Direction      string
	SwapPercentage float64 `mapstructure:"swap-percentage"`
	Seed           int64
	BlockSize      int `mapstructure:"block-size"`
	Rotation       int
	Strict         bool

	// Parameter files
	Params     string `label:"--params"      validate:"omitempty,file"`
	SaveParams string `label:"--save-params" mapstructure:"save-params"`

	// Output control
	Quiet bool
	Stats bool
	Show  bool

	// Set by the decrypt command
	Decrypt bool `mapstructure:"-" yaml:"-"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	return validate(c)
}

// TransformParams converts the flat flag set into transform parameters.
func (c *Config) TransformParams() transform.Params {
	return transform.Params{
		Key:        c.Key,
		Operation:  transform.Operation(c.Operation),
		Value:      c.Value,
		Amount:     c.ShiftAmount,
		Direction:  transform.Direction(c.Direction),
		Percentage: c.SwapPercentage,
		Seed:       c.Seed,
		BlockSize:  c.BlockSize,
		Strict:     c.Strict,
		Rotation:   c.Rotation,
	}
}

// Demo is the configuration of the demo command.
type Demo struct {
	Input    string `label:"--input"    validate:"omitempty,file"`
	OutDir   string `label:"--out-dir"  mapstructure:"out-dir" validate:"required"`
	Format   string `label:"--format"   validate:"oneof=png bmp tiff webp jpg gif"`
	Parallel int    `label:"--parallel" validate:"gte=1"`

	Quiet bool
	Stats bool
	Show  bool
}

// Validate validates the demo configuration against the struct tags.
func (d *Demo) Validate() error {
	return validate(d)
}
