// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dino50687/imgcrypt/internal/config"
	"github.com/dino50687/imgcrypt/internal/engine"
)

// Run encrypts or decrypts a single image as configured.
func Run(cfg *config.Config) error {
	start := time.Now()

	eng := engine.New()

	var (
		res engine.Result
		err error
	)

	if cfg.Decrypt {
		res, err = eng.Decrypt(cfg.Input, cfg.Output, cfg.Method, cfg.TransformParams())
	} else {
		res, err = eng.Encrypt(cfg.Input, cfg.Output, cfg.Method, cfg.TransformParams())
	}

	if err != nil {
		if cfg.Stats {
			printStats(stats{errored: 1, duration: time.Since(start)})
		}

		return fmt.Errorf("processing %q: %w", cfg.Input, err)
	}

	if !cfg.Quiet {
		fmt.Printf("%s %q -> %q (%s)\n", verb(res.Mode), res.Input, res.Output, res.Method) //nolint:forbidigo
	}

	if !res.Lossless && res.Mode == engine.Encrypt {
		fmt.Fprintf(os.Stderr, "Warning: %q uses a lossy format, decrypting it will not restore the original exactly\n", res.Output)
	}

	if cfg.SaveParams != "" {
		if err := config.SaveParams(cfg, cfg.SaveParams); err != nil {
			return err
		}

		if !cfg.Quiet {
			fmt.Printf("Saved parameters to %q\n", cfg.SaveParams) //nolint:forbidigo
		}
	}

	if cfg.Stats {
		printStats(stats{processed: 1, totalSize: res.Size, duration: time.Since(start)})
	}

	return nil
}

func verb(mode engine.Mode) string {
	if mode == engine.Decrypt {
		return "Decrypted"
	}

	return "Encrypted"
}

type stats struct {
	processed int
	exact     int
	lossy     int
	errored   int
	totalSize int64
	duration  time.Duration
}

func printStats(s stats) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", s.processed)

	if s.exact+s.lossy > 0 {
		fmt.Fprintf(os.Stderr, "  Exact:     %d\n", s.exact)
		fmt.Fprintf(os.Stderr, "  Lossy:     %d\n", s.lossy)
	}

	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", s.errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, s.totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", s.duration.Round(time.Millisecond))
}
