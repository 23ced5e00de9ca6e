package mockup

import (
	"fmt"

	"github.com/gogpu/mockup/internal/blend"
	"github.com/gogpu/mockup/internal/image"
)

// Composer renders the full scene from a set of assets.
//
// Composer holds no per-render state; every call to Compose clears and
// repaints its output, so identical inputs give identical pixels.
type Composer struct {
	assets *Assets
	ratio  float64
	r      renderer
}

// NewComposer creates a composer for assets.
func NewComposer(assets *Assets, opts ...Option) (*Composer, error) {
	if assets == nil || assets.Base == nil || assets.User == nil {
		return nil, ErrNoAssets
	}
	o := applyOptions(opts)
	return &Composer{
		assets: assets,
		ratio:  o.interiorRatio,
		r: renderer{
			pool:     o.pool,
			interp:   o.interp,
			tintMode: o.tintMode,
		},
	}, nil
}

// NewOutput returns a transparent raster the size of the base template.
func (c *Composer) NewOutput() (*Raster, error) {
	return NewRaster(c.assets.Base.Bounds())
}

// Compose paints the scene into out, which must have the base
// template's size; a nil or mis-sized out fails with ErrComposition.
// Layers, bottom to top: base template, tint A, tint B,
// then the user photo seen through the exterior and interior masks.
func (c *Composer) Compose(out *Raster, t Placement, colors ColorState) error {
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrComposition)
	}
	a := c.assets
	w, h := a.Base.Bounds()
	if ow, oh := out.Bounds(); ow != w || oh != h {
		return fmt.Errorf("%w: output %dx%d, base %dx%d", ErrComposition, ow, oh, w, h)
	}

	userLayer, release, err := c.r.pool.Acquire(w, h, image.FormatRGBAPremul)
	if err != nil {
		return fmt.Errorf("%w: user layer: %w", ErrComposition, err)
	}
	defer release()
	layer := &Raster{buf: userLayer}

	uw, uh := a.User.Bounds()
	interior := InteriorPlacement(t, c.ratio, uw, uh)
	c.r.maskedLayer(layer, a.ExteriorMask, a.User, t)
	c.r.maskedLayer(layer, a.InteriorMask, a.User, interior)

	out.buf.Clear()
	image.DrawStretched(out.buf, a.Base.buf, c.r.interp)

	c.r.colorTint(out, a.ColorMaskA, colors.A, colors.Alpha)
	c.r.colorTint(out, a.ColorMaskB, colors.B, colors.Alpha)

	blend.Composite(out.buf, userLayer, blend.BlendSourceOver, 1)

	Logger().Debug("scene composed",
		"width", w, "height", h,
		"exterior", t, "interior", interior,
		"tintA", colors.A, "tintB", colors.B, "alpha", colors.Alpha)
	return nil
}
