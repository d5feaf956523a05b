package codec_test

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/dino50687/imgcrypt/internal/codec"
	"github.com/dino50687/imgcrypt/internal/pixel"
)

func gradient(t *testing.T, height, width int) *pixel.Buffer {
	t.Helper()

	buf, err := pixel.New(height, width)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for row := range height {
		for col := range width {
			r := row * 255 / max(height-1, 1)
			g := col * 255 / max(width-1, 1)
			b := (row + col) * 255 / max(height+width-2, 1)

			buf.Set(row, col, pixel.RGB{uint8(r), uint8(g), uint8(b)}) //nolint:gosec // each <= 255
		}
	}

	return buf
}

func TestLosslessRoundTrip(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".png", ".bmp", ".tiff", ".TIF", ".webp"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "image"+ext)
			orig := gradient(t, 13, 17)

			if err := codec.Encode(orig, path); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			got, err := codec.Decode(path)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if !got.Equal(orig) {
				t.Fatal("decoded buffer differs from the encoded one")
			}
		})
	}
}

func TestLossyFormatsDecode(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".jpg", ".jpeg", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "image"+ext)

			if err := codec.Encode(gradient(t, 8, 9), path); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			got, err := codec.Decode(path)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if got.Height != 8 || got.Width != 9 {
				t.Fatalf("got %dx%d, want 9x8", got.Width, got.Height)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := map[string]codec.Format{
		"a.png":      codec.PNG,
		"b.JPG":      codec.JPEG,
		"c.jpeg":     codec.JPEG,
		"d.gif":      codec.GIF,
		"e.bmp":      codec.BMP,
		"f.tif":      codec.TIFF,
		"dir/g.webp": codec.WebP,
	}

	for path, want := range tests {
		got, err := codec.FormatFor(path)
		if err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q, %v; want %q", path, got, err, want)
		}
	}

	if codec.JPEG.Lossless() || codec.GIF.Lossless() || !codec.PNG.Lossless() || !codec.WebP.Lossless() {
		t.Error("unexpected Lossless classification")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "image.xyz")

	err := codec.Encode(gradient(t, 2, 2), path)
	if !errors.Is(err, codec.ErrUnsupportedFormat) || !errors.Is(err, codec.ErrIO) {
		t.Fatalf("got %v, want ErrUnsupportedFormat wrapping ErrIO", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("output should not exist, stat: %v", err)
	}
}

func TestDecodeFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := codec.Decode(filepath.Join(dir, "missing.png")); !errors.Is(err, codec.ErrIO) {
		t.Errorf("missing file: got %v, want ErrIO", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := codec.Decode(garbage); !errors.Is(err, codec.ErrIO) {
		t.Errorf("garbage file: got %v, want ErrIO", err)
	}
}

func TestFromImageNormalizes(t *testing.T) {
	t.Parallel()

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 10})
	gray.SetGray(1, 0, color.Gray{Y: 200})

	buf, err := codec.FromImage(gray)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}

	if buf.At(0, 0) != (pixel.RGB{10, 10, 10}) || buf.At(0, 1) != (pixel.RGB{200, 200, 200}) {
		t.Fatalf("gray not replicated: %v", buf.Pix)
	}

	nrgba := image.NewNRGBA(image.Rect(5, 5, 6, 6))
	nrgba.SetNRGBA(5, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 0})

	buf, err = codec.FromImage(nrgba)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}

	if buf.At(0, 0) != (pixel.RGB{1, 2, 3}) {
		t.Fatalf("alpha not dropped: %v", buf.Pix)
	}

	if _, err := codec.FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 3))); err == nil {
		t.Fatal("empty image accepted")
	}
}

func TestToImageIsOpaque(t *testing.T) {
	t.Parallel()

	img := codec.ToImage(gradient(t, 3, 3))

	if !img.Opaque() {
		t.Fatal("ToImage produced transparent pixels")
	}
}

func TestEncodeReplacesAtomically(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")

	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	orig := gradient(t, 5, 6)

	size, err := codec.EncodeFile(orig, path)
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() != size {
		t.Fatalf("reported size %d, stat %v / %v", size, info, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}

	got, err := codec.Decode(path)
	if err != nil || !got.Equal(orig) {
		t.Fatalf("replaced file does not hold the new image: %v", err)
	}
}

func TestEncodeFailureKeepsExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if err := codec.Encode(gradient(t, 2, 2), filepath.Join(dir, "missing", "image.png")); !errors.Is(err, codec.ErrIO) {
		t.Fatalf("got %v, want ErrIO", err)
	}

	path := filepath.Join(dir, "image.xyz")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := codec.Encode(gradient(t, 2, 2), path); err == nil {
		t.Fatal("unsupported extension accepted")
	}

	if data, err := os.ReadFile(path); err != nil || string(data) != "old" {
		t.Fatalf("existing file changed: %q, %v", data, err)
	}
}
