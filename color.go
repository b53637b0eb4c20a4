// Package tint implements color creation, conversion and naming.
//
// A Color holds red, green, blue and alpha channels as float64 values
// nominally in [0,1]. Channels are never clamped or validated, so out of
// range values pass through arithmetic unchanged.
//
// Colors convert to and from hex strings, byte triples and the HSV, HSL
// and YIQ color spaces. The W3C basic and extended color names resolve
// through [Name] and [From]; the much larger XKCD color survey database
// is merged in on demand with [XKCD].
package tint

import (
	"fmt"
	"strconv"
)

// Color is an RGBA color with channels nominally in [0,1].
type Color struct {
	R, G, B, A float64
}

// Colour is Color for those who spell it that way.
type Colour = Color

// New returns a color with the given channel values.
func New(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGB returns a color from channel values in [0,1], with alpha set to 1.
func FromRGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromFloats returns a color from a slice of 3 (r,g,b) or 4 (r,g,b,a)
// channel values. Any other length is an *ArityError.
func FromFloats(v []float64) (Color, error) {
	switch len(v) {
	case 3:
		return Color{R: v[0], G: v[1], B: v[2], A: 1}, nil
	case 4:
		return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return Color{}, &ArityError{Len: len(v)}
	}
}

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b float64) {
	return c.R, c.G, c.B
}

// FromBytes returns a color from channel values in [0,255], with alpha set to 1.
func FromBytes(r, g, b uint8) Color {
	return FromRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Bytes returns the red, green and blue channels scaled to [0,255].
// Channel values are truncated, not rounded; out of range channels wrap.
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)
}

// FromHex parses a color from a 6-digit hex string with an optional
// leading '#'. Case is ignored. Anything else is a *ParseError.
func FromHex(s string) (Color, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return Color{}, &ParseError{Input: s}
	}
	var v [3]uint8
	for i := range v {
		n, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: s}
		}
		v[i] = uint8(n)
	}
	return FromBytes(v[0], v[1], v[2]), nil
}

// Hex renders the color as a lower-case "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string {
	return fmt.Sprintf("(%5.3f, %5.3f, %5.3f, %5.3f)", c.R, c.G, c.B, c.A)
}
