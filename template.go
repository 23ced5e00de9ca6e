package mockup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/gogpu/mockup/internal/blend"
	"github.com/gogpu/mockup/internal/image"
	"github.com/pelletier/go-toml/v2"
)

// DefaultOutputName is the file name of the exported result.
const DefaultOutputName = "resultado.png"

// TemplateFile is the conventional name of a template description
// inside a template directory.
const TemplateFile = "template.toml"

// Template describes a product template: where its five assets live and
// how they are combined.
//
//	[assets]
//	base          = "img/img-base.png"
//	exterior_mask = "img/img-mask-exterior.png"
//	interior_mask = "img/img-mask-interior.png"
//	color_mask_a  = "img/img-color-a.png"
//	color_mask_b  = "img/img-color-b.png"
//
//	[render]
//	interior_ratio = 0.605
//	default_alpha  = 0.1
//	tint_blend     = "multiply"
//	interpolation  = "bilinear"
//
//	[output]
//	file_name = "resultado.png"
type Template struct {
	Assets TemplateAssets `toml:"assets"`
	Render RenderConfig   `toml:"render"`
	Output OutputConfig   `toml:"output"`
}

// TemplateAssets holds slash-separated asset paths relative to the
// template root.
type TemplateAssets struct {
	Base         string `toml:"base"`
	ExteriorMask string `toml:"exterior_mask"`
	InteriorMask string `toml:"interior_mask"`
	ColorMaskA   string `toml:"color_mask_a"`
	ColorMaskB   string `toml:"color_mask_b"`
}

// RenderConfig holds compositing settings.
type RenderConfig struct {
	InteriorRatio float64 `toml:"interior_ratio"`
	DefaultAlpha  float64 `toml:"default_alpha"`
	TintBlend     string  `toml:"tint_blend"`
	Interpolation string  `toml:"interpolation"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	FileName string `toml:"file_name"`
}

// DefaultTemplate returns the stock template layout.
func DefaultTemplate() *Template {
	return &Template{
		Assets: TemplateAssets{
			Base:         "img/img-base.png",
			ExteriorMask: "img/img-mask-exterior.png",
			InteriorMask: "img/img-mask-interior.png",
			ColorMaskA:   "img/img-color-a.png",
			ColorMaskB:   "img/img-color-b.png",
		},
		Render: RenderConfig{
			InteriorRatio: DefaultInteriorRatio,
			DefaultAlpha:  DefaultAlpha,
			TintBlend:     blend.BlendMultiply.String(),
			Interpolation: image.InterpBilinear.String(),
		},
		Output: OutputConfig{FileName: DefaultOutputName},
	}
}

// ReadTemplate decodes a TOML template from r. Keys missing from the
// document keep their DefaultTemplate values; unknown keys are an error.
func ReadTemplate(r io.Reader) (*Template, error) {
	t := DefaultTemplate()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			keys := make([]string, 0, len(serr.Errors))
			for _, e := range serr.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return nil, fmt.Errorf("mockup: template: unknown keys %s", strings.Join(keys, ", "))
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("mockup: template line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("mockup: template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTemplate reads name from fsys. A missing file yields
// DefaultTemplate.
func LoadTemplate(fsys fs.FS, name string) (*Template, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Info("no template file, using defaults", "name", name)
		return DefaultTemplate(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("mockup: open template: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadTemplate(f)
}

// Validate checks every field.
func (t *Template) Validate() error {
	var errs []error
	for _, a := range t.assetList() {
		if a.path == "" {
			errs = append(errs, fmt.Errorf("assets.%s is empty", a.key))
		} else if !fs.ValidPath(a.path) {
			errs = append(errs, fmt.Errorf("assets.%s: invalid path %q", a.key, a.path))
		}
	}
	if !(t.Render.InteriorRatio > 0) {
		errs = append(errs, fmt.Errorf("render.interior_ratio must be positive, got %v", t.Render.InteriorRatio))
	}
	if t.Render.DefaultAlpha < 0 || t.Render.DefaultAlpha > 1 {
		errs = append(errs, fmt.Errorf("render.default_alpha must be in [0, 1], got %v", t.Render.DefaultAlpha))
	}
	if _, err := parseTintBlend(t.Render.TintBlend); err != nil {
		errs = append(errs, fmt.Errorf("render.tint_blend: %w", err))
	}
	if _, err := image.ParseInterpolation(t.Render.Interpolation); err != nil {
		errs = append(errs, fmt.Errorf("render.interpolation: %w", err))
	}
	if t.Output.FileName == "" || strings.ContainsAny(t.Output.FileName, `/\`) {
		errs = append(errs, fmt.Errorf("output.file_name must be a bare file name, got %q", t.Output.FileName))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("mockup: invalid template: %w", err)
	}
	return nil
}

// Encode writes t as TOML.
func (t *Template) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("mockup: encode template: %w", err)
	}
	return nil
}

type assetRef struct {
	key  string // TOML key, also used as the asset name in errors
	path string
}

func (t *Template) assetList() []assetRef {
	return []assetRef{
		{"base", t.Assets.Base},
		{"exterior_mask", t.Assets.ExteriorMask},
		{"interior_mask", t.Assets.InteriorMask},
		{"color_mask_a", t.Assets.ColorMaskA},
		{"color_mask_b", t.Assets.ColorMaskB},
	}
}

// options converts the render and output settings to Options.
func (t *Template) options() []Option {
	return []Option{
		WithInteriorRatio(t.Render.InteriorRatio),
		WithDefaultAlpha(t.Render.DefaultAlpha),
		WithTintBlend(t.Render.TintBlend),
		WithInterpolation(t.Render.Interpolation),
		WithOutputName(t.Output.FileName),
	}
}

// parseTintBlend accepts only the separable modes, which darken or
// lighten a backdrop while keeping its texture.
func parseTintBlend(name string) (blend.BlendMode, error) {
	if strings.TrimSpace(name) == "" {
		return blend.BlendMultiply, nil
	}
	m, err := blend.ParseBlendMode(name)
	if err != nil {
		return blend.BlendMultiply, err
	}
	if !m.IsSeparable() {
		return blend.BlendMultiply, fmt.Errorf("mode %q cannot be used for tints", name)
	}
	return m, nil
}
