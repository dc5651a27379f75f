package chart

import (
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// parseColor parses "#rrggbb" and "#rgb" colors. Empty, "none" or malformed values yield the fallback.
func parseColor(s string, fallback drawing.Color) drawing.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" || s == "none" {
		return fallback
	}

	if !isHexColor(s) {
		log.Warnf("invalid color %q, using %v", s, fallback)
		return fallback
	}

	return drawing.ColorFromHex(s)
}

func isHexColor(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func withOpacity(c drawing.Color, opacity float64) drawing.Color {
	if opacity < 0 || opacity >= 1 {
		return c
	}
	return c.WithAlpha(uint8(math.Round(float64(c.A) * opacity)))
}
