package blender

import (
	"strconv"
	"strings"

	"github.com/khemadeva/lighttable/pkg/errors"
)

// Color is an RGB color with components in [0, 1], as the compositor
// expects them.
type Color struct {
	R, G, B float64
}

// ParseHex parses a #RRGGBB color, with the leading '#' optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errors.New(errors.ErrCodeInvalidInput, "background color %q must be in #RRGGBB form", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "background color %q", s)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}
