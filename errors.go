package tint

import "fmt"

// ParseError records a hex color string that could not be parsed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tint: invalid hex color %q", e.Input)
}

// ArityError records a channel sequence of unsupported length.
type ArityError struct {
	Len int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("tint: expected 3 or 4 color components, got %d", e.Len)
}
