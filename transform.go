package mockup

import (
	"github.com/gogpu/mockup/internal/image"
)

// DefaultInteriorRatio is the interior/exterior scale ratio of the
// stock template artwork.
const DefaultInteriorRatio = 0.605

// Point is a position in output pixel space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Placement positions the user image in output space: translate by
// (X, Y), then scale uniformly by Scale.
type Placement struct {
	X, Y  float64
	Scale float64
}

// Offset returns the translation as a point.
func (p Placement) Offset() Point {
	return Point{X: p.X, Y: p.Y}
}

// affine returns the user-image-to-output transform.
func (p Placement) affine() image.Affine {
	return image.TranslateScale(p.X, p.Y, p.Scale)
}

// Center returns the output-space midpoint of a w x h image under p.
func (p Placement) Center(w, h int) Point {
	return Point{
		X: p.X + float64(w)*p.Scale/2,
		Y: p.Y + float64(h)*p.Scale/2,
	}
}

// TransformState is the exterior-layer placement plus drag state.
// Scale is always positive.
type TransformState struct {
	Placement
	Dragging bool
	Anchor   Point // pointer position minus offset at drag start
}

// CoverPlacement fits a w x h image to cover a cw x ch canvas, centered.
func CoverPlacement(w, h, cw, ch int) Placement {
	s := max(float64(cw)/float64(w), float64(ch)/float64(h))
	return Placement{
		X:     (float64(cw) - float64(w)*s) / 2,
		Y:     (float64(ch) - float64(h)*s) / 2,
		Scale: s,
	}
}

// InteriorPlacement derives the interior-layer placement from the
// exterior one so that the w x h user image shrinks around its own
// center by ratio.
func InteriorPlacement(ext Placement, ratio float64, w, h int) Placement {
	s := ext.Scale * ratio
	d := ext.Scale - s
	return Placement{
		X:     ext.X + float64(w)/2*d,
		Y:     ext.Y + float64(h)/2*d,
		Scale: s,
	}
}
