package mockup

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF0000", color.NRGBA{R: 255, A: 255}},
		{"#00ff00", color.NRGBA{G: 255, A: 255}},
		{"#00f", color.NRGBA{B: 255, A: 255}},
		{"  #336699 ", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}},
		{"red", color.NRGBA{R: 255, A: 255}},
		{"RebeccaPurple", color.NRGBA{R: 0x66, G: 0x33, B: 0x99, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"#GG0000", "#12345", "not-a-color", "rgb(1,2,3)"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
			}
		})
	}
}

func TestParseTint(t *testing.T) {
	for _, in := range []string{"", "   ", "none", "NONE"} {
		tint, err := ParseTint(in)
		if err != nil || tint.Set {
			t.Errorf("ParseTint(%q) = %+v, %v; want unset", in, tint, err)
		}
	}

	tint, err := ParseTint("#FF0000")
	if err != nil {
		t.Fatalf("ParseTint() error = %v", err)
	}
	if !tint.Set || tint.Source != "#FF0000" || tint.String() != "#FF0000" {
		t.Errorf("ParseTint(#FF0000) = %+v", tint)
	}
	if r, g, b, a := tint.premul(); r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("premul() = %d,%d,%d,%d", r, g, b, a)
	}
	if (Tint{}).String() != "none" {
		t.Error("unset tint should print as none")
	}
}

func TestAlphaFromPercent(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{0, 0}, {10, 0.1}, {50, 0.5}, {100, 1}, {-5, 0}, {150, 1},
	}
	for _, tt := range tests {
		if got := AlphaFromPercent(tt.in); !near(got, tt.want) {
			t.Errorf("AlphaFromPercent(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
