package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRGBName(t *testing.T) {
	testCases := []struct {
		line string
		want Entry
	}{
		{"0 0 0 black", Entry{Name: "black"}},
		{"  0   128 0   green  ", Entry{Name: "green", G: 128}},
		{"255 255 255 white smoke", Entry{Name: "white smoke", R: 255, G: 255, B: 255}},
		{"1 2 3 name  with   extra\tspaces", Entry{Name: "name with extra spaces", R: 1, G: 2, B: 3}},
		{"10 20 30", Entry{R: 10, G: 20, B: 30}}, // nameless, but well formed
	}
	for _, test := range testCases {
		t.Run(test.line, func(t *testing.T) {
			e, ok := parseRGBName(test.line)
			if !ok {
				t.Fatalf("expected %q to parse", test.line)
			}
			if diff := cmp.Diff(test.want, e); diff != "" {
				t.Errorf("unexpected entry (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNameHex(t *testing.T) {
	testCases := []struct {
		line string
		want Entry
	}{
		{"toxic green # 61de2a", Entry{Name: "toxic green", R: 0x61, G: 0xde, B: 0x2a}},
		{"blood #770001", Entry{Name: "blood", R: 0x77, B: 0x01}},
		{"  padded   # c0ffee  ", Entry{Name: "padded", R: 0xc0, G: 0xff, B: 0xee}},
	}
	for _, test := range testCases {
		t.Run(test.line, func(t *testing.T) {
			e, ok := parseNameHex(test.line)
			if !ok {
				t.Fatalf("expected %q to parse", test.line)
			}
			if diff := cmp.Diff(test.want, e); diff != "" {
				t.Errorf("unexpected entry (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLineRejects(t *testing.T) {
	lines := []string{
		"",
		"not a color at all",
		"300 0 0 out of range",
		"-1 0 0 negative",
		"12 13 too few bytes",
		"name # fff",        // hex too short
		"name # c0ffeee",    // hex too long
		"name # c0ffez",     // not hex
		"a # b # c",         // more than one '#'
		"1.0 0.0 0.0 float", // bytes, not floats
	}
	for _, line := range lines {
		if e, ok := parseLine(line); ok {
			t.Errorf("expected %q to be skipped, got %#v", line, e)
		}
	}
}

func TestRead(t *testing.T) {
	input := strings.Join([]string{
		"// a comment line",
		"0 255 0 lime",
		"",
		"hot pink # ff69b4",
		"garbage in the middle",
		"255 0 0 red",
	}, "\n")
	entries, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Name: "lime", G: 255},
		{Name: "hot pink", R: 0xff, G: 0x69, B: 0xb4},
		{Name: "red", R: 255},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	if err := os.WriteFile(path, []byte("0 0 255 blue\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "blue" {
		t.Errorf("expected one blue entry, got %#v", entries)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBasic(t *testing.T) {
	entries := Basic()
	if len(entries) != 16 {
		t.Fatalf("expected 16 basic colors, got %d", len(entries))
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name] = true
	}
	for _, name := range []string{
		"black", "silver", "gray", "white", "maroon", "red", "purple", "fuchsia",
		"green", "lime", "olive", "yellow", "navy", "blue", "teal", "aqua",
	} {
		if !names[name] {
			t.Errorf("expected basic palette to contain %q", name)
		}
	}
}

func TestExtended(t *testing.T) {
	entries := Extended()
	if len(entries) < 140 {
		t.Fatalf("expected at least 140 extended colors, got %d", len(entries))
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			t.Errorf("duplicate extended name %q", e.Name)
		}
		seen[e.Name] = true
	}
	if !seen["rebeccapurple"] && !seen["chartreuse"] {
		t.Error("expected well known extended names to be present")
	}
}

func TestXKCDData(t *testing.T) {
	entries := XKCD()
	if len(entries) < 100 {
		t.Fatalf("expected a large XKCD table, got %d entries", len(entries))
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name] = true
	}
	for _, name := range []string{"toxic green", "blood", "vomit", "baby poop", "butterscotch", "avocado green"} {
		if !names[name] {
			t.Errorf("expected XKCD table to contain %q", name)
		}
	}
}
