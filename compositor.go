package mockup

import (
	"github.com/gogpu/mockup/internal/blend"
	"github.com/gogpu/mockup/internal/image"
)

// renderer carries the knobs shared by the mask and tint passes.
type renderer struct {
	pool     *image.Pool
	interp   image.InterpolationMode
	tintMode blend.BlendMode
}

func defaultRenderer() renderer {
	return renderer{
		pool:     image.Default(),
		interp:   image.InterpBilinear,
		tintMode: blend.BlendMultiply,
	}
}

// RenderMaskedLayer draws user through mask onto dst with the default
// pool and bilinear sampling. See renderer.maskedLayer.
func RenderMaskedLayer(dst, mask, user *Raster, p Placement) {
	r := defaultRenderer()
	r.maskedLayer(dst, mask, user, p)
}

// RenderColorTint multiplies a mask-shaped silhouette of t into dst at
// opacity alpha. See renderer.colorTint.
func RenderColorTint(dst, mask *Raster, t Tint, alpha float64) {
	r := defaultRenderer()
	r.colorTint(dst, mask, t, alpha)
}

// maskedLayer draws user into an isolated scratch buffer under p, keeps
// only the part covered by mask's alpha, and composites the result over
// dst. Nothing outside mask's footprint reaches dst. A nil mask or user,
// or a non-positive scale, is a no-op.
func (r renderer) maskedLayer(dst, mask, user *Raster, p Placement) {
	if dst == nil || mask == nil || user == nil || !(p.Scale > 0) {
		return
	}

	w, h := dst.Bounds()
	scratch, release, err := r.pool.Acquire(w, h, image.FormatRGBAPremul)
	if err != nil {
		Logger().Error("masked layer: acquire scratch", "err", err)
		return
	}
	defer release()

	image.DrawTransformed(scratch, user.buf, p.affine(), r.interp)
	r.applyMask(scratch, mask.buf)
	blend.Composite(dst.buf, scratch, blend.BlendSourceOver, 1)
}

// applyMask multiplies scratch by mask alpha (destination-in). A mask of
// a different size is stretched over scratch first.
func (r renderer) applyMask(scratch, mask *image.ImageBuf) {
	if scratch.SameSize(mask) {
		blend.Composite(scratch, mask, blend.BlendDestinationIn, 1)
		return
	}

	w, h := scratch.Bounds()
	fitted, release, err := r.pool.Acquire(w, h, image.FormatRGBAPremul)
	if err != nil {
		Logger().Error("masked layer: acquire mask", "err", err)
		scratch.Clear()
		return
	}
	defer release()

	image.DrawStretched(fitted, mask, r.interp)
	blend.Composite(scratch, fitted, blend.BlendDestinationIn, 1)
}

// colorTint paints t into mask's alpha footprint (source-in) and blends
// that silhouette onto dst in an isolated layer with the tint blend mode
// at opacity alpha. An unset tint, nil mask or zero alpha leaves dst
// untouched.
func (r renderer) colorTint(dst, mask *Raster, t Tint, alpha float64) {
	alpha = clampUnit(alpha)
	if dst == nil || mask == nil || !t.Set || alpha == 0 {
		return
	}

	stack := blend.NewLayerStack(dst.buf, r.pool)
	layer, err := stack.Push(r.tintMode, alpha)
	if err != nil {
		Logger().Error("color tint: push layer", "err", err)
		return
	}
	silhouette := layer.Buffer()

	image.DrawStretched(silhouette, mask.buf, r.interp)
	cr, cg, cb, ca := t.premul()
	blend.FillComposite(silhouette, cr, cg, cb, ca, blend.BlendSourceIn)

	stack.Pop()
}
