package hue

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadScheme reads a line-oriented scheme: the first line is the scheme
// name, and every following non-blank line is a colour in any supported
// notation, handed verbatim (trimmed) to [Parse]. A line that fails to
// parse fails the whole read with the typed parse error wrapped with its
// line number; nothing partial is returned. Input with no lines at all
// fails with [ErrEmptyScheme].
func ReadScheme(r io.Reader) (*Scheme, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read scheme header")
		}
		return nil, ErrEmptyScheme
	}
	scheme := &Scheme{Name: strings.TrimSpace(sc.Text())}

	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		scheme.Colors = append(scheme.Colors, c)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read scheme body")
	}

	Logger().Debug("scheme read", "name", scheme.Name, "colours", len(scheme.Colors))
	return scheme, nil
}

// ReadSchemeFile reads a line-oriented scheme file from disk.
func ReadSchemeFile(path string) (*Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scheme %s", path)
	}
	defer f.Close()

	s, err := ReadScheme(f)
	return s, errors.Wrapf(err, "read scheme %s", path)
}
