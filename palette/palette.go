// Package palette parses named color tables.
//
// Two line formats are recognized:
//
//	R G B name of the color
//	name of the color # rrggbb
//
// Lines matching neither format are skipped, so tables may contain
// comments and prose. The bundled W3C and XKCD tables are available
// through [Basic], [Extended] and [XKCD].
package palette

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry is a single named color parsed from a palette table.
type Entry struct {
	Name    string
	R, G, B uint8
}

// Read parses named colors from r. Unrecognized lines produce no entry
// and no error; only a failure of the underlying reader is reported.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	s := bufio.NewScanner(r)
	for s.Scan() {
		if e, ok := parseLine(s.Text()); ok {
			entries = append(entries, e)
		}
	}
	return entries, s.Err()
}

// ReadFile parses the named palette file. A file that cannot be opened is
// a recoverable error, not fatal.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func parseLine(line string) (Entry, bool) {
	if e, ok := parseRGBName(line); ok {
		return e, true
	}
	return parseNameHex(line)
}

// parseRGBName parses "R G B name", where the name is every token after
// the three byte values, rejoined with single spaces.
func parseRGBName(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return Entry{}, false
		}
		rgb[i] = uint8(v)
	}
	return Entry{
		Name: strings.Join(fields[3:], " "),
		R:    rgb[0],
		G:    rgb[1],
		B:    rgb[2],
	}, true
}

// parseNameHex parses "name # rrggbb": exactly one '#', with exactly six
// hex digits after it.
func parseNameHex(line string) (Entry, bool) {
	parts := strings.Split(line, "#")
	if len(parts) != 2 {
		return Entry{}, false
	}
	hex := strings.TrimSpace(parts[1])
	if len(hex) != 6 {
		return Entry{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Entry{}, false
		}
		rgb[i] = uint8(v)
	}
	return Entry{
		Name: strings.TrimSpace(parts[0]),
		R:    rgb[0],
		G:    rgb[1],
		B:    rgb[2],
	}, true
}
