// Package fileutil provides atomic output file helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputPerm is the mode of committed output files.
const OutputPerm = 0o644

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	OutPath string
	TmpFile *os.File
	TmpName string
}

// NewTempContext creates a temp file next to outPath so the final rename stays
// on one filesystem. Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		OutPath: outPath,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// Commit closes the temp file, applies OutputPerm and renames it over OutPath.
// It returns the size of the committed file.
func (tc *TempContext) Commit() (int64, error) {
	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Chmod(tc.TmpName, OutputPerm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := os.Rename(tc.TmpName, tc.OutPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return FinalizeOutput(tc.OutPath)
}

// FinalizeOutput returns the output file size.
func FinalizeOutput(outPath string) (int64, error) {
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
