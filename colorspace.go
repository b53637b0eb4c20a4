package tint

import (
	"fmt"
	"math"
)

// chromaEps is the achromatic threshold: channels closer together than
// this yield hue 0 and saturation 0 instead of dividing by a vanishing
// chroma.
const chromaEps = 1e-5

// HSV returns the color as hue [0,360), saturation [0,1] and value [0,1].
func (c Color) HSV() (h, s, v float64) {
	return RGBToHSV(c.R, c.G, c.B)
}

// FromHSV returns a color from hue [0,360], saturation [0,1] and value
// [0,1], with alpha set to 1.
func FromHSV(h, s, v float64) Color {
	r, g, b := HSVToRGB(h, s, v)
	return Color{R: r, G: g, B: b, A: 1}
}

// HSL returns the color as hue [0,1), saturation [0,1] and lightness [0,1].
// Hue is a fraction of a full turn, not degrees.
func (c Color) HSL() (h, s, l float64) {
	return RGBToHSL(c.R, c.G, c.B)
}

// FromHSL returns a color from hue [0,1], saturation [0,1] and lightness
// [0,1], with alpha set to 1.
func FromHSL(h, s, l float64) Color {
	r, g, b := HSLToRGB(h, s, l)
	return Color{R: r, G: g, B: b, A: 1}
}

// YIQ returns the color in the FCC NTSC YIQ color space.
func (c Color) YIQ() (y, i, q float64) {
	return RGBToYIQ(c.R, c.G, c.B)
}

// FromYIQ returns a color from FCC NTSC YIQ components, with alpha set to 1.
func FromYIQ(y, i, q float64) Color {
	r, g, b := YIQToRGB(y, i, q)
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBToHSV converts r,g,b in [0,1] to hue [0,360), saturation [0,1] and
// value [0,1]. Achromatic input yields hue 0 and saturation 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	cmax := max3(r, g, b)
	cmin := min3(r, g, b)
	if math.Abs(cmax-cmin) < chromaEps {
		return 0, 0, cmax
	}
	delta := cmax - cmin
	s = delta / cmax
	v = cmax
	switch {
	case r >= cmax:
		h = (g - b) / delta
	case g >= cmax:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HSVToRGB converts hue [0,360], saturation [0,1] and value [0,1] to
// r,g,b in [0,1]. A hue of 360 is treated as 0.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s <= 0 {
		return v, v, v
	}
	if h >= 360 {
		h = 0
	}
	h /= 60
	i := int(math.Floor(h))
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	case 5:
		return v, p, q
	}
	// Unreachable for hue in [0,360]: an internal logic bug, not bad input.
	panic(fmt.Sprintf("tint: impossible hue sector %d", i))
}

// RGBToHSL converts r,g,b in [0,1] to hue [0,1), saturation [0,1] and
// lightness [0,1]. Hue is a fraction of a full turn. Achromatic input
// yields hue 0 and saturation 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	cmax := max3(r, g, b)
	cmin := min3(r, g, b)
	l = (cmax + cmin) / 2
	if math.Abs(cmax-cmin) <= chromaEps {
		return 0, 0, l
	}
	d := cmax - cmin
	if l <= 0.5 {
		s = d / (cmax + cmin)
	} else {
		s = d / (2 - cmax - cmin)
	}
	switch {
	case r >= cmax:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g >= cmax:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	return h / 6, s, l
}

// HSLToRGB converts hue [0,1], saturation [0,1] and lightness [0,1] to
// r,g,b in [0,1].
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if math.Abs(s) <= chromaEps {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r = hueToRGB(p, q, h+1.0/3)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3)
	return r, g, b
}

// hueToRGB evaluates one channel of the HSL piecewise linear blend, with
// breakpoints at 1/6, 1/2 and 2/3 of a turn.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// RGBToYIQ converts RGB to YIQ using the FCC NTSC coefficients.
// https://en.wikipedia.org/wiki/YIQ#From_RGB_to_YIQ
func RGBToYIQ(r, g, b float64) (y, i, q float64) {
	y = 0.30*r + 0.59*g + 0.11*b
	i = 0.74*(r-y) - 0.27*(b-y)
	q = 0.48*(r-y) + 0.41*(b-y)
	return y, i, q
}

// YIQToRGB converts YIQ back to RGB using the precomputed inverse of the
// FCC NTSC matrix.
func YIQToRGB(y, i, q float64) (r, g, b float64) {
	const (
		v12 = 0.9468822170900693
		v13 = 0.6235565819861433
		v22 = -0.27478764629897834
		v23 = -0.6356910791873801
		v32 = -1.1085450346420322
		v33 = 1.7090069284064666
	)
	r = y + v12*i + v13*q
	g = y + v22*i + v23*q
	b = y + v32*i + v33*q
	return r, g, b
}

func min3(a, b, c float64) float64 {
	v := a
	if b < v {
		v = b
	}
	if c < v {
		v = c
	}
	return v
}

func max3(a, b, c float64) float64 {
	v := a
	if b > v {
		v = b
	}
	if c > v {
		v = c
	}
	return v
}
