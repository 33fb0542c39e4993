package pixfmt

import (
	"errors"
	"strings"
)

// ErrUnknownFormat is returned by Parse for unrecognized format names.
var ErrUnknownFormat = errors.New("pixfmt: unknown format name")

// Parse returns the format whose String() form matches name.
// Matching is case-insensitive.
func Parse(name string) (Format, error) {
	for f := FormatUndefined + 1; f < formatCount; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return FormatUndefined, ErrUnknownFormat
}
