package tint

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompareRGB(t *testing.T) {
	testCases := []struct {
		a, b Color
		want int
	}{
		{New(0, 0, 0, 1), New(0, 0, 0, 1), 0},
		{New(1, 0, 0, 1), New(0, 1, 1, 1), 1},
		{New(0, 1, 0, 1), New(0, 0, 1, 1), 1},
		{New(0, 0, 0.5, 1), New(0, 0, 1, 1), -1},
	}
	for _, test := range testCases {
		if v := CompareRGB(test.a, test.b); v != test.want {
			t.Errorf("expected CompareRGB(%v, %v) to be %d, got %d", test.a, test.b, test.want, v)
		}
	}
}

func TestCompareHSV(t *testing.T) {
	var (
		red   = New(1, 0, 0, 1)       // hue 0
		green = New(0, 1, 0, 1)       // hue 120
		blue  = New(0, 0, 1, 1)       // hue 240
		gray  = New(0.5, 0.5, 0.5, 1) // hue 0, saturation 0
	)
	if v := CompareHSV(red, green); v != -1 {
		t.Errorf("expected red before green, got %d", v)
	}
	if v := CompareHSV(blue, green); v != 1 {
		t.Errorf("expected blue after green, got %d", v)
	}
	// Equal hue falls through to saturation.
	if v := CompareHSV(gray, red); v != -1 {
		t.Errorf("expected gray before red, got %d", v)
	}
}

func TestSortByHue(t *testing.T) {
	colors := []Color{
		New(0, 0, 1, 1), // 240
		New(1, 0, 0, 1), // 0
		New(0, 1, 0, 1), // 120
	}
	sort.Slice(colors, func(i, j int) bool {
		return CompareHSV(colors[i], colors[j]) < 0
	})
	want := []Color{New(1, 0, 0, 1), New(0, 1, 0, 1), New(0, 0, 1, 1)}
	if diff := cmp.Diff(want, colors); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}
