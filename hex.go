package hue

import (
	"strconv"
	"strings"
)

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" into a canonical colour. The
// leading '#' is optional and hex digits may be upper or lower case.
// When the alpha pair is absent the colour is fully opaque. Any other
// digit count fails with a [*HexLengthError]; a pair that is not valid
// base 16 fails with a [*DigitError].
func ParseHex(input string) (Canonical, error) {
	digits := strings.TrimPrefix(input, "#")

	switch len(digits) {
	case 6:
		r, g, b, err := hexTriple(digits)
		if err != nil {
			return Canonical{}, err
		}
		return New(r, g, b, Opaque), nil
	case 8:
		r, g, b, err := hexTriple(digits)
		if err != nil {
			return Canonical{}, err
		}
		a, err := hexByte(digits[6:8])
		if err != nil {
			return Canonical{}, err
		}
		return New(r, g, b, a), nil
	default:
		return Canonical{}, &HexLengthError{Input: input, Digits: len(digits)}
	}
}

func hexTriple(digits string) (r, g, b uint8, err error) {
	if r, err = hexByte(digits[0:2]); err != nil {
		return
	}
	if g, err = hexByte(digits[2:4]); err != nil {
		return
	}
	b, err = hexByte(digits[4:6])
	return
}

func hexByte(pair string) (uint8, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, &DigitError{Input: pair, Err: err}
	}
	return uint8(v), nil
}
