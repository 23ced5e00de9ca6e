// Package blend implements Porter-Duff compositing operators and blend modes.
//
// All blend operations work with premultiplied alpha values in the range 0-255,
// matching the buffers of internal/image.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"fmt"
	"strings"
)

// BlendMode represents a compositing operation.
type BlendMode uint8

const (
	// Porter-Duff operators
	BlendSourceOver    BlendMode = iota // Result: S + D*(1-Sa) [default]
	BlendSourceIn                       // Result: S*Da
	BlendDestinationIn                  // Result: D*Sa

	// Separable blend modes, see advanced.go
	BlendMultiply // Result: S * D
	BlendScreen   // Result: 1 - (1-S)*(1-D)
	BlendOverlay  // HardLight with swapped layers
	BlendDarken   // min(S, D)
	BlendLighten  // max(S, D)
)

// modeNames uses the canvas globalCompositeOperation spelling.
var modeNames = map[BlendMode]string{
	BlendSourceOver:    "source-over",
	BlendSourceIn:      "source-in",
	BlendDestinationIn: "destination-in",
	BlendMultiply:      "multiply",
	BlendScreen:        "screen",
	BlendOverlay:       "overlay",
	BlendDarken:        "darken",
	BlendLighten:       "lighten",
}

// String returns the canvas name of the mode.
func (m BlendMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseBlendMode parses a canvas globalCompositeOperation name.
func ParseBlendMode(s string) (BlendMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return BlendSourceOver, fmt.Errorf("blend: unknown mode %q", s)
}

// IsSeparable reports whether m is one of the separable blend modes,
// which tint a backdrop while keeping its texture.
func (m BlendMode) IsSeparable() bool {
	return m >= BlendMultiply && m <= BlendLighten
}

// BlendFunc is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
//
// Returns: resulting color (r, g, b, a) after blending.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetBlendFunc returns the blend function for the given mode.
// Returns blendSourceOver for unknown modes.
func GetBlendFunc(mode BlendMode) BlendFunc {
	switch mode {
	case BlendSourceIn:
		return blendSourceIn
	case BlendDestinationIn:
		return blendDestinationIn
	case BlendMultiply:
		return blendMultiply
	case BlendScreen:
		return blendScreen
	case BlendOverlay:
		return blendOverlay
	case BlendDarken:
		return blendDarken
	case BlendLighten:
		return blendLighten
	default:
		return blendSourceOver
	}
}

// blendSourceOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

// blendSourceIn paints source only where destination has coverage; a
// solid source becomes a silhouette of the destination.
// Formula: S * Da
func blendSourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// blendDestinationIn keeps destination weighted by source alpha, which
// is how a mask is applied.
// Formula: D * Sa
func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// Utility functions

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two byte values with clamping to 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// minByte returns the smaller of two bytes.
func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

// maxByte returns the larger of two bytes.
func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
