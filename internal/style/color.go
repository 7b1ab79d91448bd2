package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor converts a color style value to gg.RGBA.
//
// Accepted forms are "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", CSS color
// names ("steelblue", "transparent") and any color.Color.
func ParseColor(v any) (gg.RGBA, error) {
	switch c := v.(type) {
	case gg.RGBA:
		return c, nil
	case color.Color:
		return gg.FromColor(c), nil
	case string:
		return parseColorString(c)
	}
	return gg.RGBA{}, fmt.Errorf("%w: color %v (%T)", ErrInvalidValue, v, v)
}

func parseColorString(s string) (gg.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return gg.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
		}
		for i := 0; i < len(hex); i++ {
			if !isHexDigit(hex[i]) {
				return gg.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
			}
		}
		return gg.Hex(hex), nil
	}
	if s == "transparent" {
		return gg.Transparent, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return gg.FromColor(named), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidValue, s)
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f'
}
