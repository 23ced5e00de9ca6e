package mockup

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gogpu/mockup/internal/blend"
	"github.com/gogpu/mockup/internal/image"
)

func TestDefaultTemplateValid(t *testing.T) {
	tmpl := DefaultTemplate()
	if err := tmpl.Validate(); err != nil {
		t.Fatalf("DefaultTemplate().Validate() = %v", err)
	}
	if tmpl.Render.InteriorRatio != 0.605 || tmpl.Render.DefaultAlpha != 0.1 {
		t.Errorf("render defaults = %+v", tmpl.Render)
	}
	if tmpl.Output.FileName != "resultado.png" {
		t.Errorf("FileName = %q, want resultado.png", tmpl.Output.FileName)
	}
}

func TestReadTemplatePartial(t *testing.T) {
	doc := `
[assets]
base = "art/mug.png"

[render]
interior_ratio = 0.5
tint_blend = "overlay"
`
	tmpl, err := ReadTemplate(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTemplate() error = %v", err)
	}
	want := DefaultTemplate()
	want.Assets.Base = "art/mug.png"
	want.Render.InteriorRatio = 0.5
	want.Render.TintBlend = "overlay"
	if !reflect.DeepEqual(tmpl, want) {
		t.Errorf("ReadTemplate() = %+v, want %+v", tmpl, want)
	}
}

func TestReadTemplateErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantSub string
	}{
		{"syntax", "[render\ninterior_ratio = 1", "line"},
		{"unknown key", "[render]\nzoom = 3", "zoom"},
		{"zero ratio", "[render]\ninterior_ratio = 0", "interior_ratio"},
		{"alpha out of range", "[render]\ndefault_alpha = 1.5", "default_alpha"},
		{"porter-duff tint", "[render]\ntint_blend = \"source-over\"", "tint_blend"},
		{"bad interpolation", "[render]\ninterpolation = \"lanczos\"", "interpolation"},
		{"empty asset", "[assets]\nbase = \"\"", "assets.base"},
		{"escaping asset", "[assets]\ncolor_mask_a = \"../a.png\"", "assets.color_mask_a"},
		{"output dir", "[output]\nfile_name = \"out/r.png\"", "file_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTemplate(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("ReadTemplate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestTemplateEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultTemplate().Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := ReadTemplate(&buf)
	if err != nil {
		t.Fatalf("ReadTemplate(encoded) error = %v", err)
	}
	if !reflect.DeepEqual(got, DefaultTemplate()) {
		t.Errorf("round trip = %+v", got)
	}
}

func TestLoadTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		TemplateFile: {Data: []byte("[output]\nfile_name = \"mug.png\"\n")},
	}
	tmpl, err := LoadTemplate(fsys, TemplateFile)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if tmpl.Output.FileName != "mug.png" {
		t.Errorf("FileName = %q, want mug.png", tmpl.Output.FileName)
	}

	tmpl, err = LoadTemplate(fstest.MapFS{}, TemplateFile)
	if err != nil || !reflect.DeepEqual(tmpl, DefaultTemplate()) {
		t.Errorf("LoadTemplate(missing) = %+v, %v; want defaults", tmpl, err)
	}
}

func TestTemplateOptions(t *testing.T) {
	tmpl := DefaultTemplate()
	tmpl.Render.InteriorRatio = 0.7
	tmpl.Render.DefaultAlpha = 0.4
	tmpl.Render.TintBlend = "darken"
	tmpl.Render.Interpolation = "nearest"
	tmpl.Output.FileName = "out.png"

	o := applyOptions([]Option{WithTemplate(tmpl)})
	if o.interiorRatio != 0.7 || o.alpha != 0.4 || o.outputName != "out.png" {
		t.Errorf("options = %+v", o)
	}
	if o.tintMode != blend.BlendDarken {
		t.Errorf("tintMode = %v, want darken", o.tintMode)
	}
	if o.interp != image.InterpNearest {
		t.Errorf("interp = %v, want nearest", o.interp)
	}
}
