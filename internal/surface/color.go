package surface

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Hex parses "#rgb" or "#rrggbb" (the leading '#' is optional) into an opaque color.
func Hex(s string) drawing.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return drawing.ColorFromHex(s)
}
