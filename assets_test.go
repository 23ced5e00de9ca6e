package mockup

import (
	"bytes"
	"context"
	"errors"
	stdimage "image"
	"image/color"
	"io/fs"
	"testing"
	"testing/fstest"
)

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return pngBytes(t, img)
}

// templateFS holds the default template layout with a 16x12 base.
func templateFS(t *testing.T) fstest.MapFS {
	t.Helper()
	opaque := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	tmpl := DefaultTemplate()
	return fstest.MapFS{
		tmpl.Assets.Base:         {Data: solidPNG(t, 16, 12, color.NRGBA{R: 180, G: 180, B: 180, A: 255})},
		tmpl.Assets.ExteriorMask: {Data: solidPNG(t, 16, 12, opaque)},
		tmpl.Assets.InteriorMask: {Data: solidPNG(t, 16, 12, opaque)},
		tmpl.Assets.ColorMaskA:   {Data: solidPNG(t, 16, 12, opaque)},
		tmpl.Assets.ColorMaskB:   {Data: solidPNG(t, 8, 6, opaque)},
	}
}

func photo(t *testing.T) *bytes.Reader {
	t.Helper()
	return bytes.NewReader(solidPNG(t, 8, 8, color.NRGBA{G: 255, A: 255}))
}

func TestLoadAssets(t *testing.T) {
	a, err := LoadAssets(context.Background(), templateFS(t), nil, photo(t))
	if err != nil {
		t.Fatalf("LoadAssets() error = %v", err)
	}

	for name, r := range map[string]*Raster{
		"base": a.Base, "exterior": a.ExteriorMask, "interior": a.InteriorMask,
		"color A": a.ColorMaskA, "color B": a.ColorMaskB,
	} {
		if w, h := r.Bounds(); w != 16 || h != 12 {
			t.Errorf("%s = %dx%d, want 16x12", name, w, h)
		}
	}
	if w, h := a.User.Bounds(); w != 8 || h != 8 {
		t.Errorf("photo = %dx%d, want 8x8", w, h)
	}
}

func TestLoadAssetsFailure(t *testing.T) {
	tmpl := DefaultTemplate()

	tests := []struct {
		name     string
		fsys     func(t *testing.T) fstest.MapFS
		photo    []byte
		wantName string
		wantErr  error
	}{
		{
			name: "missing mask",
			fsys: func(t *testing.T) fstest.MapFS {
				m := templateFS(t)
				delete(m, tmpl.Assets.InteriorMask)
				return m
			},
			wantName: "interior_mask",
			wantErr:  fs.ErrNotExist,
		},
		{
			name: "corrupt base",
			fsys: func(t *testing.T) fstest.MapFS {
				m := templateFS(t)
				m[tmpl.Assets.Base] = &fstest.MapFile{Data: []byte("GIF89a broken")}
				return m
			},
			wantName: "base",
		},
		{
			name:     "photo not an image",
			fsys:     templateFS,
			photo:    []byte("%PDF-1.4 this is a document"),
			wantName: "photo",
			wantErr:  ErrUnsupportedImage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.photo
			if p == nil {
				p = solidPNG(t, 4, 4, color.NRGBA{A: 255})
			}
			a, err := LoadAssets(context.Background(), tt.fsys(t), tmpl, bytes.NewReader(p))
			if a != nil {
				t.Errorf("LoadAssets() returned partial assets %+v", a)
			}
			if !errors.Is(err, ErrAssetLoad) {
				t.Fatalf("error = %v, want ErrAssetLoad", err)
			}
			var aerr *AssetError
			if !errors.As(err, &aerr) || aerr.Name != tt.wantName {
				t.Errorf("error = %v, want AssetError for %q", err, tt.wantName)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAssetsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, err := LoadAssets(ctx, templateFS(t), nil, photo(t))
	if a != nil || !errors.Is(err, context.Canceled) {
		t.Errorf("LoadAssets(canceled) = %v, %v; want nil, context.Canceled", a, err)
	}
}

func TestAssetsWithUser(t *testing.T) {
	a, err := LoadAssets(context.Background(), templateFS(t), nil, photo(t))
	if err != nil {
		t.Fatal(err)
	}

	next, err := a.WithUser(context.Background(), bytes.NewReader(solidPNG(t, 3, 5, color.NRGBA{R: 255, A: 255})))
	if err != nil {
		t.Fatalf("WithUser() error = %v", err)
	}
	if next.Base != a.Base {
		t.Error("WithUser should share template rasters")
	}
	if w, h := next.User.Bounds(); w != 3 || h != 5 {
		t.Errorf("new photo = %dx%d, want 3x5", w, h)
	}
	if w, _ := a.User.Bounds(); w != 8 {
		t.Error("WithUser modified the original assets")
	}

	if _, err := a.WithUser(context.Background(), nil); !errors.Is(err, ErrAssetLoad) {
		t.Errorf("WithUser(nil) error = %v, want ErrAssetLoad", err)
	}
}
