package hue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormatName identifies a colour notation in diagnostics and errors.
type FormatName string

const (
	FormatHex   FormatName = "hex"
	FormatFloat FormatName = "rgb-float"
	FormatByte  FormatName = "rgb-byte"
	FormatNamed FormatName = "named"
)

// Format is one colour notation: a recognizer paired with a parser.
// The implementor set is closed ([HexFormat], [FloatFormat], [ByteFormat],
// [NamedFormat]); all implementations are stateless and safe for
// concurrent use.
type Format interface {
	// Name identifies the format in errors and diagnostics.
	Name() FormatName
	// Matches reports whether the whitespace-trimmed input satisfies the
	// format's grammar. A match does not guarantee a successful parse:
	// captured components may still fail range validation.
	Matches(input string) bool
	// Parse extracts a canonical colour from the input, or fails with a
	// typed error naming this format and the offending text.
	Parse(input string) (Canonical, error)
}

// The four notations, as shared stateless singletons.
var (
	HexFormat   Format = hexFormat{}
	FloatFormat Format = floatFormat{}
	ByteFormat  Format = byteFormat{}
	NamedFormat Format = namedFormat{}
)

// Grammar patterns. Compiled once at package init and never mutated, so
// concurrent readers need no synchronization.
var (
	floatPattern = regexp.MustCompile(
		`(?i)^rgba?\(` +
			`\s*(?P<r>[01]\.[0-9]+)\s*,` +
			`\s*(?P<g>[01]\.[0-9]+)\s*,` +
			`\s*(?P<b>[01]\.[0-9]+)\s*` +
			`(?:,\s*(?P<a>[01]\.[0-9]+)\s*)?\)$`)

	bytePattern = regexp.MustCompile(
		`(?i)^rgba?\(` +
			`\s*(?P<r>[0-9]{1,3})\s*,` +
			`\s*(?P<g>[0-9]{1,3})\s*,` +
			`\s*(?P<b>[0-9]{1,3})\s*` +
			`(?:,\s*(?P<a>[0-9]{1,3})\s*)?\)$`)

	hexPattern = regexp.MustCompile(
		`^#?[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)
)

// detectionOrder is the documented order [Parse] and [Detect] try the
// recognizers in. The grammars are disjoint, so the order only decides
// which format an unrecognized string is blamed on.
var detectionOrder = []Format{HexFormat, FloatFormat, ByteFormat, NamedFormat}

// Formats returns the formats in detection order.
func Formats() []Format {
	out := make([]Format, len(detectionOrder))
	copy(out, detectionOrder)
	return out
}

// Detect returns the first format whose recognizer accepts the input.
func Detect(input string) (Format, bool) {
	for _, f := range detectionOrder {
		if f.Matches(input) {
			return f, true
		}
	}
	return nil, false
}

// Parse auto-detects the notation of input and parses it. It fails with
// [ErrUnknownFormat] when no recognizer accepts the input, or with the
// matching format's parse error.
func Parse(input string) (Canonical, error) {
	f, ok := Detect(input)
	if !ok {
		return Canonical{}, fmt.Errorf("%w: %q", ErrUnknownFormat, input)
	}
	Logger().Debug("detected colour format", "format", f.Name(), "input", input)
	return f.Parse(input)
}

// hexFormat adapts the hex codec to the Format interface so hex strings
// participate in auto-detection.
type hexFormat struct{}

func (hexFormat) Name() FormatName { return FormatHex }

func (hexFormat) Matches(input string) bool {
	return hexPattern.MatchString(strings.TrimSpace(input))
}

func (f hexFormat) Parse(input string) (Canonical, error) {
	trimmed := strings.TrimSpace(input)
	if !f.Matches(trimmed) {
		// Length errors keep their own type for callers that go through
		// ParseHex directly; via the Format surface both cases are a
		// grammar mismatch.
		return Canonical{}, &FormatError{Format: FormatHex, Input: input}
	}
	return ParseHex(trimmed)
}

// floatFormat parses rgb()/rgba() with 0.0–1.0 channel values.
type floatFormat struct{}

func (floatFormat) Name() FormatName { return FormatFloat }

func (floatFormat) Matches(input string) bool {
	return floatPattern.MatchString(strings.TrimSpace(input))
}

func (floatFormat) Parse(input string) (Canonical, error) {
	m := floatPattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return Canonical{}, &FormatError{Format: FormatFloat, Input: input}
	}
	r, err := floatChannel(capture(floatPattern, m, "r"), "r")
	if err != nil {
		return Canonical{}, err
	}
	g, err := floatChannel(capture(floatPattern, m, "g"), "g")
	if err != nil {
		return Canonical{}, err
	}
	b, err := floatChannel(capture(floatPattern, m, "b"), "b")
	if err != nil {
		return Canonical{}, err
	}
	a := 1.0
	if raw := capture(floatPattern, m, "a"); raw != "" {
		if a, err = floatChannel(raw, "a"); err != nil {
			return Canonical{}, err
		}
	}
	return FromFloats(r, g, b, a), nil
}

// floatChannel parses one captured component and validates it against
// the inclusive [0.0, 1.0] range. The grammar only restricts the leading
// digit, so values like 1.99999 match syntactically and must be rejected
// here.
func floatChannel(raw, name string) (float64, error) {
	if raw == "" {
		return 0, &MissingComponentError{Format: FormatFloat, Component: name}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &DigitError{Input: raw, Err: err}
	}
	if v < 0 || v > 1 {
		return 0, &RangeError{Format: FormatFloat, Component: name, Value: raw}
	}
	return v, nil
}

// byteFormat parses rgb()/rgba() with 0–255 channel values.
type byteFormat struct{}

func (byteFormat) Name() FormatName { return FormatByte }

func (byteFormat) Matches(input string) bool {
	return bytePattern.MatchString(strings.TrimSpace(input))
}

func (byteFormat) Parse(input string) (Canonical, error) {
	m := bytePattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return Canonical{}, &FormatError{Format: FormatByte, Input: input}
	}
	r, err := byteChannel(capture(bytePattern, m, "r"), "r")
	if err != nil {
		return Canonical{}, err
	}
	g, err := byteChannel(capture(bytePattern, m, "g"), "g")
	if err != nil {
		return Canonical{}, err
	}
	b, err := byteChannel(capture(bytePattern, m, "b"), "b")
	if err != nil {
		return Canonical{}, err
	}
	a := Opaque
	if raw := capture(bytePattern, m, "a"); raw != "" {
		if a, err = byteChannel(raw, "a"); err != nil {
			return Canonical{}, err
		}
	}
	return New(r, g, b, a), nil
}

// byteChannel parses one captured component and validates it against the
// inclusive 0–255 range. Three-digit captures such as 300 match the
// grammar and are rejected here, not clamped.
func byteChannel(raw, name string) (uint8, error) {
	if raw == "" {
		return 0, &MissingComponentError{Format: FormatByte, Component: name}
	}
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, &DigitError{Input: raw, Err: err}
	}
	if v > 255 {
		return 0, &RangeError{Format: FormatByte, Component: name, Value: raw}
	}
	return uint8(v), nil
}

// capture returns the named submatch, or "" when the group did not
// participate in the match.
func capture(re *regexp.Regexp, m []string, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i]
}
