package sheet

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/texpack/texpack/pkg/errors"
)

// ParseColor parses a background color flag value. Accepted forms are
// "transparent" and hex colors "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (color.Color, error) {
	if s == "" || strings.EqualFold(s, "transparent") {
		return color.Transparent, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid background color: %q (must be 'transparent', '#RRGGBB' or '#RRGGBBAA')", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid background color: %q", s)
	}

	c := color.NRGBA{A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

// FormatColor returns the flag spelling of a parsed background color,
// for cache keys and manifests.
func FormatColor(c color.Color) string {
	if c == nil || c == color.Transparent {
		return "transparent"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
