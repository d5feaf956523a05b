package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dino50687/imgcrypt/internal/fileutil"
)

func TestCommitRenames(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.bin")

	write := func() (size int64, err error) {
		tc, err := fileutil.NewTempContext(out)
		if err != nil {
			return 0, err
		}

		defer tc.CleanupOnError(&err)

		if _, err = tc.TmpFile.WriteString("hello"); err != nil {
			return 0, err
		}

		return tc.Commit()
	}

	size, err := write()
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if size != 5 {
		t.Fatalf("size = %d, want 5", size)
	}

	data, err := os.ReadFile(out)
	if err != nil || string(data) != "hello" {
		t.Fatalf("ReadFile = %q, %v", data, err)
	}

	assertOnlyFile(t, filepath.Dir(out), "out.bin")
}

func TestCleanupOnErrorRemovesTemp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.bin")
	errBoom := errors.New("boom")

	write := func() (err error) {
		tc, err := fileutil.NewTempContext(out)
		if err != nil {
			return err
		}

		defer tc.CleanupOnError(&err)

		if _, err = tc.TmpFile.WriteString("partial"); err != nil {
			return err
		}

		return errBoom
	}

	if err := write(); !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}

	assertOnlyFile(t, dir, "")
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	switch {
	case name == "" && len(names) != 0:
		t.Fatalf("expected empty dir, found %v", names)
	case name != "" && (len(names) != 1 || names[0] != name):
		t.Fatalf("expected only %q, found %v", name, names)
	}
}
