// Package engine runs one transform over one image file: decode, validate,
// apply or invert, encode. Each call is independent and owns its buffer.
package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dino50687/imgcrypt/internal/codec"
	"github.com/dino50687/imgcrypt/internal/pixel"
	"github.com/dino50687/imgcrypt/internal/transform"
)

// Mode selects the direction of a transform.
type Mode string

// Modes.
const (
	Encrypt Mode = "encrypt"
	Decrypt Mode = "decrypt"
)

// Result describes a successful run.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Method is the canonical transform name
	Method transform.Method

	// Mode is encrypt or decrypt
	Mode Mode

	// Lossless is false when the output format cannot preserve every sample
	Lossless bool

	// Size of the written output in bytes
	Size int64

	// Duration of the whole pipeline
	Duration time.Duration
}

// Engine encrypts and decrypts image files. The zero value is ready to use.
type Engine struct{}

// New returns an Engine.
func New() *Engine {
	return &Engine{}
}

// Encrypt applies method to the image at input and writes the result to output.
func (e *Engine) Encrypt(input, output, method string, params transform.Params) (Result, error) {
	return e.run(Encrypt, input, output, method, params)
}

// Decrypt inverts method on the image at input and writes the result to output.
// params must equal the ones used to encrypt.
func (e *Engine) Decrypt(input, output, method string, params transform.Params) (Result, error) {
	return e.run(Decrypt, input, output, method, params)
}

// ApplyBuffer encrypts buf in place without touching the filesystem.
func (e *Engine) ApplyBuffer(buf *pixel.Buffer, method string, params transform.Params) error {
	return e.Transform(Encrypt, buf, method, params)
}

// InvertBuffer decrypts buf in place without touching the filesystem.
func (e *Engine) InvertBuffer(buf *pixel.Buffer, method string, params transform.Params) error {
	return e.Transform(Decrypt, buf, method, params)
}

// Transform runs method over buf in place in the given mode.
func (e *Engine) Transform(mode Mode, buf *pixel.Buffer, method string, params transform.Params) error {
	tr, err := transform.Lookup(method)
	if err != nil {
		return err
	}

	return dispatch(tr, mode, buf, params)
}

func dispatch(tr transform.Transform, mode Mode, buf *pixel.Buffer, params transform.Params) error {
	switch mode {
	case Encrypt:
		return tr.Apply(buf, params)
	case Decrypt:
		return tr.Invert(buf, params)
	default:
		return fmt.Errorf("%w: mode %q", transform.ErrInvalidParameter, mode)
	}
}

// run validates everything that does not need pixels before decoding, and
// writes the output atomically so a failed run leaves output untouched.
func (e *Engine) run(mode Mode, input, output, method string, params transform.Params) (Result, error) {
	start := time.Now()

	tr, err := transform.Lookup(method)
	if err != nil {
		return Result{}, err
	}

	if err := tr.Validate(params); err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", mode, tr.Method(), err)
	}

	if filepath.Clean(input) == filepath.Clean(output) {
		return Result{}, fmt.Errorf("%w: output %q must differ from input", transform.ErrInvalidParameter, output)
	}

	format, err := codec.FormatFor(output)
	if err != nil {
		return Result{}, err
	}

	buf, err := codec.Decode(input)
	if err != nil {
		return Result{}, err
	}

	if err := dispatch(tr, mode, buf, params); err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", mode, tr.Method(), err)
	}

	size, err := codec.EncodeFile(buf, output)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Input:    input,
		Output:   output,
		Method:   tr.Method(),
		Mode:     mode,
		Lossless: format.Lossless(),
		Size:     size,
		Duration: time.Since(start),
	}, nil
}
