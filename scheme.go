package hue

// Scheme is a named ordered collection of canonical colours, typically
// loaded from a scheme file by [ReadScheme] or [ReadSchemeYAML].
type Scheme struct {
	Name   string
	Colors []Canonical
}
