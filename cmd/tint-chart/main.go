package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sort"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/savage13/tint"
)

func main() {
	outFlag := flag.String("o", "palette.png", "Output PNG path")
	colsFlag := flag.Int("cols", 4, "Swatch columns")
	cellWidthFlag := flag.Int("cell-width", 240, "Swatch cell width")
	cellHeightFlag := flag.Int("cell-height", 28, "Swatch cell height")
	sortFlag := flag.String("sort", "hsv", "Sort order: name, rgb or hsv")
	xkcdFlag := flag.Bool("xkcd", false, "Include the XKCD color survey names")
	paletteFlag := flag.String("palette", "", "Merge an additional palette file")
	fontFlag := flag.String("font", "", "TrueType font for labels (default: built-in bitmap font)")
	fontSizeFlag := flag.Float64("font-size", 12, "Label size in points")
	flag.Parse()

	if *xkcdFlag {
		tint.XKCD()
	}
	if *paletteFlag != "" {
		if err := tint.LoadFile(*paletteFlag); err != nil {
			fatal(err)
		}
	}

	names := tint.Names()
	switch *sortFlag {
	case "name":
		sort.Strings(names)
	case "rgb":
		sort.SliceStable(names, func(i, j int) bool {
			return tint.CompareRGB(mustName(names[i]), mustName(names[j])) < 0
		})
	case "hsv":
		sort.SliceStable(names, func(i, j int) bool {
			return tint.CompareHSV(mustName(names[i]), mustName(names[j])) < 0
		})
	default:
		fatal(fmt.Errorf("unsupported sort order %q", *sortFlag))
	}

	face, err := labelFace(*fontFlag, *fontSizeFlag)
	if err != nil {
		fatal(err)
	}

	var (
		cols  = *colsFlag
		rows  = (len(names) + cols - 1) / cols
		cellW = *cellWidthFlag
		cellH = *cellHeightFlag
		img   = image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	)
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, name := range names {
		var (
			c    = mustName(name)
			x    = (i % cols) * cellW
			y    = (i / cols) * cellH
			cell = image.Rect(x, y, x+cellW, y+cellH)
		)
		r, g, b := c.Bytes()
		draw.Draw(img, cell, image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 0xff}), image.Point{}, draw.Src)

		// Label in black on light swatches, white on dark ones.
		label := image.Black
		if _, _, l := c.HSL(); l < 0.5 {
			label = image.White
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  label,
			Face: face,
			Dot:  fixed.P(x+6, y+cellH-9),
		}
		d.DrawString(fmt.Sprintf("%s %s", name, c.Hex()))
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d colors to %s\n", len(names), *outFlag)
}

// labelFace loads the requested TrueType font, falling back to the
// builtin fixed-size bitmap font when none is given.
func labelFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

func mustName(name string) tint.Color {
	c, ok := tint.Name(name)
	if !ok {
		fatal(fmt.Errorf("unknown color %q", name))
	}
	return c
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
