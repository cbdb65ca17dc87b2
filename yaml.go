package hue

import (
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// schemeDoc is the on-disk YAML shape of a scheme. Colour entries are
// strings in any supported notation.
type schemeDoc struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// ReadSchemeYAML reads a scheme from a YAML document of the form
//
//	name: Gruvbox Dark
//	colors:
//	  - "#282828"
//	  - rgb(0.922, 0.859, 0.698)
//	  - rgba(251, 73, 52)
//
// Each colour entry goes through [Parse]; a bad entry fails the whole
// read with the typed parse error wrapped with its position.
func ReadSchemeYAML(r io.Reader) (*Scheme, error) {
	var doc schemeDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyScheme
		}
		return nil, errors.Wrap(err, "decode scheme yaml")
	}

	scheme := &Scheme{Name: doc.Name, Colors: make([]Canonical, 0, len(doc.Colors))}
	for i, entry := range doc.Colors {
		c, err := Parse(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "colors[%d]", i)
		}
		scheme.Colors = append(scheme.Colors, c)
	}

	Logger().Debug("scheme read", "name", scheme.Name, "colours", len(scheme.Colors))
	return scheme, nil
}

// ReadSchemeYAMLFile reads a YAML scheme file from disk.
func ReadSchemeYAMLFile(path string) (*Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scheme %s", path)
	}
	defer f.Close()

	s, err := ReadSchemeYAML(f)
	return s, errors.Wrapf(err, "read scheme %s", path)
}
