package image

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// InterpolationMode defines how source pixels are sampled when a draw
// involves scaling.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest InterpolationMode = iota

	// InterpBilinear interpolates between 4 neighboring pixels. This is
	// what a browser canvas does with image smoothing enabled.
	InterpBilinear

	// InterpCatmullRom uses a 4x4 Catmull-Rom kernel. Slowest, sharpest.
	InterpCatmullRom
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	case InterpCatmullRom:
		return "catmullrom"
	default:
		return "unknown"
	}
}

// ParseInterpolation parses the names produced by InterpolationMode.String.
func ParseInterpolation(s string) (InterpolationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return InterpNearest, nil
	case "", "bilinear":
		return InterpBilinear, nil
	case "catmullrom", "bicubic":
		return InterpCatmullRom, nil
	default:
		return InterpBilinear, fmt.Errorf("image: unknown interpolation %q", s)
	}
}

// transformer returns the x/image kernel for the mode.
func (m InterpolationMode) transformer() draw.Transformer {
	switch m {
	case InterpNearest:
		return draw.NearestNeighbor
	case InterpCatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// RGBA returns a zero-copy *image.RGBA view of the buffer.
// Writes through the view modify b.
func (b *ImageBuf) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// DrawTransformed draws src over dst with the affine transform m mapping
// src pixel space into dst pixel space. Pixels of dst that no source
// pixel maps onto are left unchanged. A singular transform draws nothing.
func DrawTransformed(dst, src *ImageBuf, m Affine, interp InterpolationMode) {
	if dst == nil || src == nil {
		return
	}
	if _, ok := m.Invert(); !ok {
		return
	}
	d, s := dst.RGBA(), src.RGBA()
	if m == Identity() {
		draw.Draw(d, d.Rect, s, image.Point{}, draw.Over)
		return
	}
	interp.transformer().Transform(d, m.Aff3(), s, s.Rect, draw.Over, nil)
}

// DrawStretched draws src over dst scaled to cover dst exactly.
func DrawStretched(dst, src *ImageBuf, interp InterpolationMode) {
	if dst == nil || src == nil {
		return
	}
	if dst.SameSize(src) {
		DrawTransformed(dst, src, Identity(), interp)
		return
	}
	sx := float64(dst.width) / float64(src.width)
	sy := float64(dst.height) / float64(src.height)
	DrawTransformed(dst, src, Scale(sx, sy), interp)
}
