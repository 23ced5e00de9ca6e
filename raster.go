package mockup

import (
	"bufio"
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"os"

	"github.com/gogpu/mockup/internal/image"
)

// Raster is a decoded bitmap with fixed dimensions, stored as
// premultiplied RGBA8.
//
// Rasters loaded as assets are never modified; the compositor only ever
// writes into rasters it was handed as a destination.
type Raster struct {
	buf *image.ImageBuf
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(width, height int) (*Raster, error) {
	buf, err := image.NewImageBuf(width, height, image.FormatRGBAPremul)
	if err != nil {
		return nil, fmt.Errorf("mockup: new raster %dx%d: %w", width, height, err)
	}
	return &Raster{buf: buf}, nil
}

// RasterFromImage copies any image.Image into a new raster.
func RasterFromImage(img stdimage.Image) (*Raster, error) {
	buf, err := image.FromStdImage(img)
	if err != nil {
		return nil, fmt.Errorf("mockup: convert image: %w", err)
	}
	return &Raster{buf: buf}, nil
}

// DecodeRaster sniffs and decodes r into a raster. Data that is not a
// supported raster image yields ErrUnsupportedImage.
func DecodeRaster(r io.Reader) (*Raster, error) {
	buf, mime, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrUnsupportedFormat) || errors.Is(err, image.ErrEmptyData) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
		}
		return nil, err
	}
	Logger().Debug("raster decoded", "mime", mime, "width", buf.Width(), "height", buf.Height())
	return &Raster{buf: buf}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.buf.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.buf.Height() }

// Bounds returns the raster dimensions.
func (r *Raster) Bounds() (int, int) { return r.buf.Bounds() }

// Image returns a zero-copy *image.RGBA view. Writes through the view
// modify the raster.
func (r *Raster) Image() *stdimage.RGBA { return r.buf.RGBA() }

// Clone returns an independent copy of the raster.
func (r *Raster) Clone() *Raster { return &Raster{buf: r.buf.Clone()} }

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.buf.EncodePNG(w)
}

// SavePNG writes the raster as a PNG file.
func (r *Raster) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mockup: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := r.EncodePNG(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// resizedTo returns r resampled to width x height, or r itself if it
// already has that size.
func (r *Raster) resizedTo(width, height int) (*Raster, error) {
	if r.Width() == width && r.Height() == height {
		return r, nil
	}
	buf, err := image.Resize(r.buf, width, height)
	if err != nil {
		return nil, err
	}
	return &Raster{buf: buf}, nil
}
