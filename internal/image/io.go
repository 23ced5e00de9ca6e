package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"io/fs"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the data is not a raster image
	// or no decoder is registered for it.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// sniffLen is the header size filetype needs to recognise every image kind.
const sniffLen = 262

// Decode sniffs and decodes an image from r into a premultiplied buffer.
// It returns the detected MIME type alongside the buffer.
func Decode(r io.Reader) (*ImageBuf, string, error) {
	br := bufio.NewReaderSize(r, 4096)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", fmt.Errorf("image: read header: %w", err)
	}
	if len(head) == 0 {
		return nil, "", ErrEmptyData
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown || !filetype.IsImage(head) {
		return nil, "", ErrUnsupportedFormat
	}

	img, _, err := image.Decode(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, kind.MIME.Value, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
		}
		return nil, kind.MIME.Value, fmt.Errorf("image: decode %s: %w", kind.MIME.Value, err)
	}

	buf, err := FromStdImage(img)
	if err != nil {
		return nil, kind.MIME.Value, err
	}
	return buf, kind.MIME.Value, nil
}

// LoadFS opens name in fsys and decodes it.
func LoadFS(fsys fs.FS, name string) (*ImageBuf, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, _, err := Decode(f)
	return buf, err
}

// FromStdImage converts any image.Image to a premultiplied buffer whose
// origin is the image's Bounds().Min.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), FormatRGBAPremul)
	if err != nil {
		return nil, err
	}

	// Fast path for RGBA images
	if rgba, ok := img.(*image.RGBA); ok {
		for y := range buf.height {
			start := (y+bounds.Min.Y-rgba.Rect.Min.Y)*rgba.Stride + (bounds.Min.X-rgba.Rect.Min.X)*4
			copy(buf.RowBytes(y), rgba.Pix[start:start+buf.width*4])
		}
		return buf, nil
	}

	draw.Draw(buf.RGBA(), buf.RGBA().Rect, img, bounds.Min, draw.Src)
	return buf, nil
}

// Resize returns a copy of b resampled to width x height with a linear filter.
func Resize(b *ImageBuf, width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if b.width == width && b.height == height {
		return b.Clone(), nil
	}
	return FromStdImage(transform.Resize(b.RGBA(), width, height, transform.Linear))
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.RGBA()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}
