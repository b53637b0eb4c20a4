package tint

import "cmp"

// CompareRGB orders two colors by red, then green, then blue. The result
// follows the [cmp.Compare] convention.
func CompareRGB(a, b Color) int {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return cmp3(ar, ag, ab, br, bg, bb)
}

// CompareHSV orders two colors by hue, then saturation, then value.
func CompareHSV(a, b Color) int {
	ah, as, av := a.HSV()
	bh, bs, bv := b.HSV()
	return cmp3(ah, as, av, bh, bs, bv)
}

func cmp3(a0, a1, a2, b0, b1, b2 float64) int {
	if c := cmp.Compare(a0, b0); c != 0 {
		return c
	}
	if c := cmp.Compare(a1, b1); c != 0 {
		return c
	}
	return cmp.Compare(a2, b2)
}
