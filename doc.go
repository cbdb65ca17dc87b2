// Package hue normalizes textual colour values into a single canonical
// representation.
//
// # Overview
//
// hue parses the textual colour notations commonly found in colour scheme
// files — hex strings ("#RRGGBB", "#RRGGBBAA"), rgb()/rgba() function
// notation in both the 0–255 integer and 0.0–1.0 floating forms, and CSS
// colour names — and converts them all into one interchange type,
// [Canonical]: an (R, G, B, A) quadruple of 8-bit unsigned channels.
// A Canonical value converts losslessly to and from a packed 32-bit
// integer with "RRGGBBAA" byte layout.
//
// # Quick Start
//
//	import "github.com/huelib/hue"
//
//	// Auto-detect the notation
//	c, err := hue.Parse("#00aa11")
//
//	// Or select a codec explicitly
//	c, err = hue.FloatFormat.Parse("rgb(0.5, 1.0, 0.25)")
//
//	// Pack into a single uint32 (RRGGBBAA)
//	p := hue.Pack(c)
//	c = hue.Unpack(p)
//
// # Formats
//
// Each notation is a [Format]: a recognizer (Matches) paired with a
// parser (Parse). The format set is fixed ([HexFormat], [FloatFormat],
// [ByteFormat], [NamedFormat]) and [Parse] tries them in that
// documented order, dispatching to the first recognizer that matches.
// The grammars are disjoint, so the order only decides which format an
// unparseable string is blamed on.
//
// # Schemes
//
// A [Scheme] is a named ordered list of canonical colours. Scheme files
// are line oriented (first line is the name, one colour per following
// line, any supported notation) and are read with [ReadScheme] /
// [ReadSchemeFile]; a YAML form is read with [ReadSchemeYAML].
//
// # Logging
//
// hue produces no log output by default. Call [SetLogger] with a
// *slog.Logger to see debug-level diagnostics from format detection and
// scheme reading.
//
// hue does no colour-space conversion (HSL, CMYK, ...) and no image or
// pixel-buffer processing.
package hue

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
