package hue

import (
	"errors"
	"testing"
)

func TestNamedFormatParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Canonical
	}{
		{"basic", "red", New(255, 0, 0, 255)},
		{"case insensitive", "RED", New(255, 0, 0, 255)},
		{"surrounding whitespace", " Olive ", New(128, 128, 0, 255)},
		{"css level 4 addition", "rebeccapurple", New(102, 51, 153, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !NamedFormat.Matches(tt.input) {
				t.Fatalf("Matches(%q) = false, want true", tt.input)
			}
			got, err := NamedFormat.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNamedFormatUnknown(t *testing.T) {
	if NamedFormat.Matches("notacolour") {
		t.Error("Matches(notacolour) = true, want false")
	}

	_, err := NamedFormat.Parse("notacolour")
	var fmtErr *FormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
	if fmtErr.Format != FormatNamed {
		t.Errorf("Format = %s, want %s", fmtErr.Format, FormatNamed)
	}
}
