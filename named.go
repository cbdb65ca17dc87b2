package hue

import (
	"strings"

	"golang.org/x/image/colornames"
)

// namedFormat resolves CSS/SVG 1.1 colour names ("red", "rebeccapurple")
// through the x/image colornames table. Names are matched
// case-insensitively after trimming whitespace; all named colours are
// fully opaque.
type namedFormat struct{}

func (namedFormat) Name() FormatName { return FormatNamed }

func (namedFormat) Matches(input string) bool {
	_, ok := colornames.Map[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

func (namedFormat) Parse(input string) (Canonical, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return Canonical{}, &FormatError{Format: FormatNamed, Input: input}
	}
	return New(c.R, c.G, c.B, c.A), nil
}
