package css

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// Gradient is a decoded linear-gradient value: an ordered stop list and the
// three handle points defining the gradient axis.
type Gradient struct {
	Stops   []figma.ColorStop
	Handles []figma.Vector
}

var (
	// stopPositionRe matches a trailing percentage position on a stop entry.
	stopPositionRe = regexp.MustCompile(`(-?(?:\d+\.?\d*|\.\d+))%\s*$`)

	// namedStopRe matches a bare keyword stop such as "red", optionally
	// followed by a position. Keywords are kept as stops even though the
	// channel decoder cannot resolve them (they degrade to opaque black).
	namedStopRe = regexp.MustCompile(`^[a-zA-Z]+(\s+-?(?:\d+\.?\d*|\.\d+)%)?$`)
)

// ParseLinearGradient decodes the contents of a linear-gradient(...) value
// (the surrounding function syntax already removed). The first entry may be
// an angle ("45deg"), a directional keyword phrase ("to right"), or the
// first color stop; unsupported direction specs are dropped and the default
// 180 degree (top to bottom) axis is used. Stops without a position spread
// evenly across the axis.
func ParseLinearGradient(value string) Gradient {
	entries := SplitTopLevel(value)
	angle := 180.0

	if len(entries) > 0 {
		first := trimLower(entries[0])
		switch {
		case strings.HasSuffix(first, "deg"):
			if f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(first, "deg")), 64); err == nil {
				angle = f
			}
			entries = entries[1:]
		case strings.Contains(first, "to "):
			angle = directionAngle(first)
			entries = entries[1:]
		case FindColorToken(first) == "" && !namedStopRe.MatchString(strings.TrimSpace(entries[0])):
			// Unsupported direction spec (e.g. side-corner pairs with
			// lengths); drop it and keep the default axis.
			entries = entries[1:]
		}
	}

	g := Gradient{Handles: gradientHandles(angle)}
	for i, entry := range entries {
		stop := figma.ColorStop{Position: stopPosition(entry, i, len(entries))}

		if tok := FindColorToken(entry); tok != "" {
			stop.Color = ParseColor(tok)
		} else {
			stop.Color = ParseColor(stopPositionRe.ReplaceAllString(entry, ""))
		}
		g.Stops = append(g.Stops, stop)
	}
	return g
}

// stopPosition resolves a stop's axis position: an explicit trailing
// percentage when present, otherwise an even spread by index.
func stopPosition(entry string, index, total int) float64 {
	if m := stopPositionRe.FindStringSubmatch(entry); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return clamp01(f / 100)
		}
	}
	if total > 1 {
		return float64(index) / float64(total-1)
	}
	return 0
}

// directionAngle maps a "to <side>" phrase to a fixed angle. Composite
// phrases resolve to the first matching side.
func directionAngle(phrase string) float64 {
	switch {
	case strings.Contains(phrase, "right"):
		return 90
	case strings.Contains(phrase, "left"):
		return 270
	case strings.Contains(phrase, "bottom"):
		return 180
	case strings.Contains(phrase, "top"):
		return 0
	}
	return 180
}

// gradientHandles computes the three axis-handle points for an angle.
// Horizontal and vertical axes are exact; every other angle uses a fixed
// corner-to-corner approximation rather than a geometric projection.
func gradientHandles(angle float64) []figma.Vector {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}

	switch a {
	case 90:
		return []figma.Vector{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}, {X: 0, Y: 1}}
	case 270:
		return []figma.Vector{{X: 1, Y: 0.5}, {X: 0, Y: 0.5}, {X: 1, Y: 1}}
	case 0:
		return []figma.Vector{{X: 0.5, Y: 1}, {X: 0.5, Y: 0}, {X: 1, Y: 1}}
	case 180:
		return []figma.Vector{{X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: 0, Y: 0}}
	default:
		return []figma.Vector{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	}
}
