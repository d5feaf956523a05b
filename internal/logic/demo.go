package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dino50687/imgcrypt/internal/codec"
	"github.com/dino50687/imgcrypt/internal/config"
	"github.com/dino50687/imgcrypt/internal/engine"
	"github.com/dino50687/imgcrypt/internal/pixel"
	"github.com/dino50687/imgcrypt/internal/transform"
)

// sampleSize is the edge length of the generated demo image.
const sampleSize = 200

// demoCase is one method showcased by the demo.
type demoCase struct {
	method transform.Method
	params transform.Params
}

// demoCases returns every catalog method with showcase parameters.
func demoCases() []demoCase {
	base := transform.DefaultParams()

	with := func(m transform.Method, edit func(*transform.Params)) demoCase {
		p := base
		edit(&p)

		return demoCase{method: m, params: p}
	}

	return []demoCase{
		with(transform.XOR, func(p *transform.Params) { p.Key = 150 }),
		with(transform.Arithmetic, func(p *transform.Params) { p.Operation, p.Value = transform.Add, 75 }),
		with(transform.BitShift, func(p *transform.Params) { p.Amount, p.Direction = 3, transform.Left }),
		with(transform.AdjacentSwap, func(*transform.Params) {}),
		with(transform.RandomSwap, func(p *transform.Params) { p.Percentage = 0.3 }),
		with(transform.BlockSwap, func(p *transform.Params) { p.BlockSize = 4 }),
		with(transform.ChannelRotate, func(p *transform.Params) { p.Rotation = 1 }),
	}
}

// demoResult is the outcome of one encrypt/decrypt round trip.
type demoResult struct {
	method    transform.Method
	encrypted string
	decrypted string
	exact     bool
	size      int64
	err       error

	// methodExact is the in-memory round trip, free of codec loss
	methodExact bool
}

// RunDemo encrypts and decrypts a sample image with every method in parallel
// and reports which round trips were exact.
//
//nolint:cyclop,gocognit,funlen // parallel processing pipeline with printer goroutine
func RunDemo(d *config.Demo) error {
	start := time.Now()

	if err := os.MkdirAll(d.OutDir, 0o755); err != nil { //nolint:mnd,gosec // demo output is meant to be shared
		return fmt.Errorf("creating output directory: %w", err)
	}

	input := d.Input
	if input == "" {
		input = filepath.Join(d.OutDir, "sample_input.png")

		if err := codec.Encode(SampleImage(sampleSize, sampleSize), input); err != nil {
			return fmt.Errorf("creating sample image: %w", err)
		}

		if !d.Quiet {
			fmt.Printf("Sample image created: %q\n", input) //nolint:forbidigo
		}
	}

	original, err := codec.Decode(input)
	if err != nil {
		return fmt.Errorf("loading demo input: %w", err)
	}

	cases := demoCases()
	results := make(chan demoResult, len(cases))

	group := errgroup.Group{}
	group.SetLimit(d.Parallel)

	printed := make(chan struct{})

	var s stats

	go func() {
		defer close(printed)

		for res := range results {
			if res.err != nil {
				s.errored++

				fmt.Fprintf(os.Stderr, "Error with %s: %v\n", res.method, res.err)

				continue
			}

			s.processed++
			s.totalSize += res.size

			label := "exact"

			switch {
			case res.exact:
				s.exact++
			case res.methodExact:
				s.lossy++
				label = "lossy: format"
			default:
				s.lossy++
				label = "lossy: method"
			}

			if !d.Quiet {
				fmt.Printf("%-15s %q -> %q (%s)\n", res.method, res.encrypted, res.decrypted, label) //nolint:forbidigo
			}
		}
	}()

	eng := engine.New()

	for _, dc := range cases {
		group.Go(func() error {
			res := roundTrip(eng, original, input, d, dc)
			results <- res

			return res.err
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if d.Stats {
		s.duration = time.Since(start)
		printStats(s)
	}

	if err != nil {
		return fmt.Errorf("running demo: %w", err)
	}

	return nil
}

// roundTrip encrypts input with dc, decrypts the result and compares it with original.
func roundTrip(eng *engine.Engine, original *pixel.Buffer, input string, d *config.Demo, dc demoCase) demoResult {
	res := demoResult{
		method:    dc.method,
		encrypted: filepath.Join(d.OutDir, fmt.Sprintf("demo_encrypted_%s.%s", dc.method, d.Format)),
		decrypted: filepath.Join(d.OutDir, fmt.Sprintf("demo_decrypted_%s.%s", dc.method, d.Format)),
	}

	enc, err := eng.Encrypt(input, res.encrypted, dc.method.String(), dc.params)
	if err != nil {
		res.err = err

		return res
	}

	dec, err := eng.Decrypt(res.encrypted, res.decrypted, dc.method.String(), dc.params)
	if err != nil {
		res.err = err

		return res
	}

	restored, err := codec.Decode(res.decrypted)
	if err != nil {
		res.err = err

		return res
	}

	res.exact = restored.Equal(original)

	res.methodExact, res.err = memoryRoundTrip(eng, original, dc)
	if res.err != nil {
		return res
	}

	res.size = enc.Size + dec.Size

	return res
}

// SampleImage returns a gradient test image: red grows down the rows, green
// across the columns and blue along the diagonal. Non-positive dimensions
// are clamped to 1.
func SampleImage(height, width int) *pixel.Buffer {
	height, width = max(height, 1), max(width, 1)

	buf, _ := pixel.New(height, width) //nolint:errcheck // dimensions are positive

	for row := range height {
		for col := range width {
			buf.Set(row, col, pixel.RGB{
				uint8(row * 255 / height),                   //nolint:gosec // < 256
				uint8(col * 255 / width),                    //nolint:gosec // < 256
				uint8((row + col) * 255 / (height + width)), //nolint:gosec // < 256
			})
		}
	}

	return buf
}

// memoryRoundTrip reports whether dc restores original exactly when no codec
// is involved.
func memoryRoundTrip(eng *engine.Engine, original *pixel.Buffer, dc demoCase) (bool, error) {
	buf := original.Clone()

	if err := eng.ApplyBuffer(buf, dc.method.String(), dc.params); err != nil {
		return false, err
	}

	if err := eng.InvertBuffer(buf, dc.method.String(), dc.params); err != nil {
		return false, err
	}

	return buf.Equal(original), nil
}
