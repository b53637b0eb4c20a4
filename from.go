package tint

import "fmt"

// From creates a Color from any of the supported shapes:
//
//   - Color: returned as is
//   - string: a registered color name, or a hex string
//   - [3]uint8, *[3]uint8, []uint8: byte channels in [0,255]
//   - [3]float64, *[3]float64, [3]float32, *[3]float32: channels in [0,1]
//   - []float64, []float32: 3 channels, or 4 to include alpha
//
// Name lookup consults the default registry. A string that is neither a
// registered name nor valid hex yields the hex parser's *ParseError; a
// slice of the wrong length yields an *ArityError.
func From(v any) (Color, error) {
	switch v := v.(type) {
	case Color:
		return v, nil
	case string:
		if c, ok := Name(v); ok {
			return c, nil
		}
		return FromHex(v)
	case [3]uint8:
		return FromBytes(v[0], v[1], v[2]), nil
	case *[3]uint8:
		return FromBytes(v[0], v[1], v[2]), nil
	case [3]float64:
		return FromRGB(v[0], v[1], v[2]), nil
	case *[3]float64:
		return FromRGB(v[0], v[1], v[2]), nil
	case [3]float32:
		return FromRGB(float64(v[0]), float64(v[1]), float64(v[2])), nil
	case *[3]float32:
		return FromRGB(float64(v[0]), float64(v[1]), float64(v[2])), nil
	case []uint8:
		if len(v) != 3 {
			return Color{}, &ArityError{Len: len(v)}
		}
		return FromBytes(v[0], v[1], v[2]), nil
	case []float64:
		return FromFloats(v)
	case []float32:
		f := make([]float64, len(v))
		for i, x := range v {
			f[i] = float64(x)
		}
		return FromFloats(f)
	}
	return Color{}, fmt.Errorf("tint: cannot create a color from %T", v)
}
