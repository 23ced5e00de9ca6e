package blend

import (
	"github.com/gogpu/mockup/internal/image"
)

// opacityByte converts an opacity in [0, 1] to a 0-255 multiplier.
func opacityByte(opacity float64) byte {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return byte(opacity*255 + 0.5)
}

// Composite blends every pixel of src onto dst with the given mode,
// after scaling src by opacity. Both buffers must be the same size;
// otherwise Composite does nothing and returns false.
func Composite(dst, src *image.ImageBuf, mode BlendMode, opacity float64) bool {
	if dst == nil || !dst.SameSize(src) {
		return false
	}

	blendFunc := GetBlendFunc(mode)
	o := opacityByte(opacity)

	for y := range dst.Height() {
		srow := src.RowBytes(y)
		drow := dst.RowBytes(y)
		for i := 0; i < len(drow); i += 4 {
			sr, sg, sb, sa := srow[i], srow[i+1], srow[i+2], srow[i+3]
			if o < 255 {
				sr = mulDiv255(sr, o)
				sg = mulDiv255(sg, o)
				sb = mulDiv255(sb, o)
				sa = mulDiv255(sa, o)
			}
			drow[i], drow[i+1], drow[i+2], drow[i+3] = blendFunc(
				sr, sg, sb, sa,
				drow[i], drow[i+1], drow[i+2], drow[i+3],
			)
		}
	}
	return true
}

// FillComposite blends a solid premultiplied color onto every pixel of
// dst with the given mode. With BlendSourceIn this paints the color into
// the alpha footprint already present in dst.
func FillComposite(dst *image.ImageBuf, r, g, b, a byte, mode BlendMode) {
	if dst == nil {
		return
	}

	blendFunc := GetBlendFunc(mode)
	for y := range dst.Height() {
		row := dst.RowBytes(y)
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = blendFunc(
				r, g, b, a,
				row[i], row[i+1], row[i+2], row[i+3],
			)
		}
	}
}
