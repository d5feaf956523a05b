package codec

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// registers the WebP decoder with image.Decode
	_ "golang.org/x/image/webp"

	"github.com/dino50687/imgcrypt/internal/fileutil"
	"github.com/dino50687/imgcrypt/internal/pixel"
)

const (
	jpegQuality = 100
	gifColors   = 256
)

// Decode reads and normalizes the image at path.
func Decode(path string) (*pixel.Buffer, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, path, err)
	}
	defer file.Close()

	buf, err := DecodeFrom(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return buf, nil
}

// DecodeFrom decodes an image in any registered format from r.
func DecodeFrom(r io.Reader) (*pixel.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	buf, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return buf, nil
}

// Encode writes buf to path in the format implied by its extension. The
// image is written to a temp file next to path and renamed over it, so on
// failure path is left untouched.
func Encode(buf *pixel.Buffer, path string) (err error) {
	_, err = EncodeFile(buf, path)

	return err
}

// EncodeFile is Encode that also reports the size of the written file.
func EncodeFile(buf *pixel.Buffer, path string) (size int64, err error) {
	format, err := FormatFor(path)
	if err != nil {
		return 0, err
	}

	tc, err := fileutil.NewTempContext(path)
	if err != nil {
		return 0, fmt.Errorf("%w: preparing atomic write: %w", ErrIO, err)
	}

	defer tc.CleanupOnError(&err)

	if err = EncodeTo(tc.TmpFile, buf, format); err != nil {
		return 0, fmt.Errorf("encoding %q: %w", path, err)
	}

	size, err = tc.Commit()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return size, nil
}

// EncodeTo writes buf to w in the given format.
func EncodeTo(w io.Writer, buf *pixel.Buffer, format Format) error {
	img := ToImage(buf)

	bw := bufio.NewWriter(w)

	var err error

	switch format {
	case PNG:
		err = png.Encode(bw, img)
	case JPEG:
		err = jpeg.Encode(bw, img, &jpeg.Options{Quality: jpegQuality})
	case GIF:
		err = gif.Encode(bw, img, &gif.Options{NumColors: gifColors, Drawer: draw.Src})
	case BMP:
		err = bmp.Encode(bw, img)
	case TIFF:
		err = tiff.Encode(bw, img, &tiff.Options{Compression: tiff.Deflate})
	case WebP:
		err = nativewebp.Encode(bw, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, format, err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flushing: %w", ErrIO, err)
	}

	return nil
}

// FromImage converts img to a three-channel buffer. Non-premultiplied alpha
// is dropped; gray and paletted images expand to three equal-weight channels.
func FromImage(img image.Image) (*pixel.Buffer, error) {
	bounds := img.Bounds()

	buf, err := pixel.New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		for row := range buf.Height {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+row):]
			dst := buf.Pix[buf.Offset(row, 0):]

			for col := range buf.Width {
				copy(dst[col*pixel.Channels:col*pixel.Channels+pixel.Channels], src[col*4:col*4+3])
			}
		}

		return buf, nil
	}

	for row := range buf.Height {
		for col := range buf.Width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+col, bounds.Min.Y+row)).(color.NRGBA) //nolint:forcetypeassert // NRGBAModel always returns NRGBA

			buf.Set(row, col, pixel.RGB{c.R, c.G, c.B})
		}
	}

	return buf, nil
}

// ToImage returns an opaque NRGBA image holding buf's samples.
func ToImage(buf *pixel.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))

	for i, j := 0, 0; i < len(buf.Pix); i, j = i+pixel.Channels, j+4 {
		img.Pix[j] = buf.Pix[i]
		img.Pix[j+1] = buf.Pix[i+1]
		img.Pix[j+2] = buf.Pix[i+2]
		img.Pix[j+3] = 0xff
	}

	return img
}
