package hue

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned by [Parse] when no format's recognizer
// accepts the input.
var ErrUnknownFormat = errors.New("hue: no colour format matches input")

// ErrEmptyScheme is returned by the scheme readers when the input has no
// lines at all.
var ErrEmptyScheme = errors.New("hue: scheme has no lines")

// HexLengthError reports a hex colour whose digit portion is neither 6
// nor 8 characters long.
type HexLengthError struct {
	Input  string // original input, including any leading '#'
	Digits int    // number of characters after stripping the '#'
}

func (e *HexLengthError) Error() string {
	return fmt.Sprintf("hue: hex colour %q must have 6 or 8 digits, got %d", e.Input, e.Digits)
}

// DigitError reports a substring that failed to parse as a number in the
// expected base. It wraps the underlying strconv failure.
type DigitError struct {
	Input string // the offending substring
	Err   error
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("hue: parsing %q: %v", e.Input, e.Err)
}

func (e *DigitError) Unwrap() error { return e.Err }

// FormatError reports input that does not match a format's grammar.
type FormatError struct {
	Format FormatName
	Input  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("hue: %q does not match %s notation", e.Input, e.Format)
}

// RangeError reports a component that matched the grammar but falls
// outside the format's legal value range.
type RangeError struct {
	Format    FormatName
	Component string // "r", "g", "b" or "a"
	Value     string // the captured text
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("hue: %s notation: component %s value %s is out of range", e.Format, e.Component, e.Value)
}

// MissingComponentError reports a mandatory component that the grammar
// did not capture.
type MissingComponentError struct {
	Format    FormatName
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("hue: %s notation: required component %s is missing", e.Format, e.Component)
}
