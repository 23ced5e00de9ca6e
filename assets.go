package mockup

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/mockup/internal/image"
)

// Assets is a complete set of rasters for one session. Assets are only
// produced by LoadAssets and WithUser, which never return a partial set.
type Assets struct {
	Base         *Raster
	ExteriorMask *Raster
	InteriorMask *Raster
	ColorMaskA   *Raster
	ColorMaskB   *Raster
	User         *Raster
}

// LoadAssets decodes the five template assets named by tmpl from fsys
// and the user photo from user, all concurrently. If any of them fails
// the remaining loads are cancelled and no assets are returned; the
// error is an *AssetError for the first failure.
//
// Masks whose size differs from the base are resized to it.
func LoadAssets(ctx context.Context, fsys fs.FS, tmpl *Template, user io.Reader) (*Assets, error) {
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}
	refs := tmpl.assetList()
	rasters := make([]*Raster, len(refs)+1)

	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return &AssetError{Name: ref.key, Path: ref.path, Err: err}
			}
			buf, err := image.LoadFS(fsys, ref.path)
			if err != nil {
				return &AssetError{Name: ref.key, Path: ref.path, Err: err}
			}
			rasters[i] = &Raster{buf: buf}
			return nil
		})
	}
	g.Go(func() error {
		ras, err := decodeUser(ctx, user)
		if err != nil {
			return err
		}
		rasters[len(refs)] = ras
		return nil
	})

	if err := g.Wait(); err != nil {
		Logger().Error("asset load failed", "err", err)
		return nil, err
	}

	a := &Assets{
		Base:         rasters[0],
		ExteriorMask: rasters[1],
		InteriorMask: rasters[2],
		ColorMaskA:   rasters[3],
		ColorMaskB:   rasters[4],
		User:         rasters[5],
	}
	if err := a.fitMasks(refs); err != nil {
		Logger().Error("asset load failed", "err", err)
		return nil, err
	}

	w, h := a.Base.Bounds()
	uw, uh := a.User.Bounds()
	Logger().Info("assets loaded", "base", fmt.Sprintf("%dx%d", w, h), "photo", fmt.Sprintf("%dx%d", uw, uh))
	return a, nil
}

// WithUser returns a copy of a sharing the template rasters, with the
// user photo decoded from r. a is not modified, even on error.
func (a *Assets) WithUser(ctx context.Context, r io.Reader) (*Assets, error) {
	ras, err := decodeUser(ctx, r)
	if err != nil {
		Logger().Error("photo load failed", "err", err)
		return nil, err
	}
	next := *a
	next.User = ras
	return &next, nil
}

func decodeUser(ctx context.Context, r io.Reader) (*Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AssetError{Name: "photo", Err: err}
	}
	if r == nil {
		return nil, &AssetError{Name: "photo", Err: ErrUnsupportedImage}
	}
	ras, err := DecodeRaster(r)
	if err != nil {
		return nil, &AssetError{Name: "photo", Err: err}
	}
	return ras, nil
}

// fitMasks resizes masks to the base size. refs supplies names for
// errors and must be in assetList order.
func (a *Assets) fitMasks(refs []assetRef) error {
	w, h := a.Base.Bounds()
	masks := []**Raster{&a.ExteriorMask, &a.InteriorMask, &a.ColorMaskA, &a.ColorMaskB}
	for i, m := range masks {
		ref := refs[i+1]
		mw, mh := (*m).Bounds()
		if mw == w && mh == h {
			continue
		}
		Logger().Warn("mask size differs from base, resizing",
			"mask", ref.key, "size", fmt.Sprintf("%dx%d", mw, mh), "base", fmt.Sprintf("%dx%d", w, h))
		resized, err := (*m).resizedTo(w, h)
		if err != nil {
			return &AssetError{Name: ref.key, Path: ref.path, Err: err}
		}
		*m = resized
	}
	return nil
}
