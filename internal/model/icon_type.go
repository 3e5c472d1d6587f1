package model

import (
	"errors"
	"fmt"
	"strings"
)

// IconType selects which rule set an icon is validated against.
// The two types differ in allowed template sizes, safety-zone width,
// the stroke-width table, and the color-pair requirement.
type IconType string

const (
	// IconTypeFunctional is a small UI icon built on a 32, 24, or 20px
	// master template with a 2px safety zone.
	IconTypeFunctional IconType = "functional"

	// IconTypeIllustrative is a larger illustration icon built on a 64px
	// master template with a 4px safety zone and a required color pair.
	IconTypeIllustrative IconType = "illustrative"
)

// ErrUnknownIconType is returned when parsing an unrecognized icon type.
var ErrUnknownIconType = errors.New("unknown icon type: must be \"functional\" or \"illustrative\"")

// ParseIconType parses a string into an IconType.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseIconType(s string) (IconType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(IconTypeFunctional):
		return IconTypeFunctional, nil
	case string(IconTypeIllustrative):
		return IconTypeIllustrative, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIconType, s)
	}
}

// String returns the icon type as a string.
func (t IconType) String() string {
	return string(t)
}
