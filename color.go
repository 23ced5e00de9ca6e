package mockup

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// DefaultAlpha is the tint opacity before the user moves the slider.
const DefaultAlpha = 0.1

// Tint is an optional tint color. The zero value is unset.
type Tint struct {
	Set    bool
	Color  color.NRGBA
	Source string // the string the tint was parsed from
}

// ParseTint parses a color-picker value. The empty string and "none"
// yield an unset tint.
func ParseTint(s string) (Tint, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return Tint{}, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return Tint{}, err
	}
	return Tint{Set: true, Color: c, Source: s}, nil
}

// ParseColor parses a CSS hex color (#rgb or #rrggbb) or a CSS color
// name. The result is always opaque.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if nc, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: 255}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// premul returns the tint color as premultiplied bytes.
func (t Tint) premul() (r, g, b, a uint8) {
	c := color.RGBAModel.Convert(t.Color).(color.RGBA)
	return c.R, c.G, c.B, c.A
}

// String returns the source string, or "none" when unset.
func (t Tint) String() string {
	if !t.Set {
		return "none"
	}
	return t.Source
}

// ColorState holds the two tint slots and their shared opacity.
type ColorState struct {
	A, B  Tint
	Alpha float64 // in [0, 1]
}

// AlphaFromPercent maps a 0-100 slider value to [0, 1], clamping out of
// range input.
func AlphaFromPercent(p int) float64 {
	return clampUnit(float64(p) / 100)
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
