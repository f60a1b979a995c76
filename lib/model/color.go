package model

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Color is a canonical #rrggbb value. Build it with ParseColor.
type Color string

var (
	colorPattern        = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	partialColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{0,6}$`)
)

func ParseColor(s string) (Color, error) {
	if !colorPattern.MatchString(s) {
		return "", errors.Wrapf(ErrInvalidColorFormat, "%q", s)
	}

	return Color(strings.ToLower(s)), nil
}

func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsPartialColor reports whether s is a prefix of a valid color, as typed in a text field.
func IsPartialColor(s string) bool {
	return partialColorPattern.MatchString(s)
}

func (c Color) String() string {
	return string(c)
}
