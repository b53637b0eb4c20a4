package palette

import (
	_ "embed"
	"strings"
)

//go:embed w3c_basic.txt
var basicData string

//go:embed w3c_extended.txt
var extendedData string

//go:embed xkcd.txt
var xkcdData string

// Basic returns the 16 HTML4 basic color names.
// https://www.w3.org/TR/css3-color/#html4
func Basic() []Entry {
	return mustRead(basicData)
}

// Extended returns the CSS3/SVG extended color names.
// https://www.w3.org/TR/css3-color/#svg-color
func Extended() []Entry {
	return mustRead(extendedData)
}

// XKCD returns the XKCD color survey names.
// https://xkcd.com/color/rgb/
func XKCD() []Entry {
	return mustRead(xkcdData)
}

func mustRead(data string) []Entry {
	entries, err := Read(strings.NewReader(data))
	if err != nil {
		// Reading an embedded string cannot fail.
		panic("palette: " + err.Error())
	}
	return entries
}
