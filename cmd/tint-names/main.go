package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"github.com/savage13/tint"
)

func main() {
	sortFlag := flag.String("sort", "name", "Sort order: name, rgb or hsv")
	xkcdFlag := flag.Bool("xkcd", false, "Include the XKCD color survey names")
	markdownFlag := flag.Bool("markdown", false, "Emit a markdown swatch table")
	paletteFlag := flag.String("palette", "", "Merge an additional palette file")
	flag.Parse()

	if *xkcdFlag {
		tint.XKCD()
	}
	if *paletteFlag != "" {
		if err := tint.LoadFile(*paletteFlag); err != nil {
			fatal(err)
		}
	}

	// With arguments, resolve each one (name, hex, ...) and print it.
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			c, err := tint.From(arg)
			if err != nil {
				fatal(err)
			}
			printColor(arg, c)
		}
		return
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

	if *markdownFlag {
		fmt.Println("| Name                 | Color                                                  |")
		fmt.Println("|----------------------|--------------------------------------------------------|")
		for _, name := range names {
			hex := mustName(name).Hex()[1:]
			fmt.Printf("| %-20s | ![%s](https://placehold.it/100x15/%s?text=+) |\n", name, hex, hex)
		}
		return
	}

	for _, name := range names {
		printColor(name, mustName(name))
	}
}

func printColor(name string, c tint.Color) {
	r, g, b := c.Bytes()
	swatch := color.RGB(int(r), int(g), int(b)).Sprint("██████")
	h, s, v := c.HSV()
	fmt.Printf("%-24s %s  %s %s  hsv(%6.2f, %5.3f, %5.3f)\n", name, swatch, c.Hex(), c, h, s, v)
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
