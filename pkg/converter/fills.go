package converter

import (
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/css"
	"github.com/hellenic-development/figma-converter/pkg/dom"
	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// resolveFills combines the computed background-image and background-color
// into an ordered paint list. The gradient paint, when present, is appended
// before the solid paint; that ordering matches the source behavior even
// though CSS layers the color beneath the image (kept deliberately, see
// DESIGN.md).
func resolveFills(style dom.Style) []figma.Paint {
	var fills []figma.Paint

	if args, ok := gradientArgs(style.BackgroundImage); ok {
		g := css.ParseLinearGradient(args)
		if len(g.Stops) > 0 {
			fills = append(fills, figma.Paint{
				Type:                    figma.PaintTypeGradientLinear,
				Visible:                 true,
				Opacity:                 1,
				GradientStops:           g.Stops,
				GradientHandlePositions: g.Handles,
			})
		}
	}

	if c := css.ParseColor(style.BackgroundColor); c.A > 0 {
		fills = append(fills, solidPaint(c))
	}
	return fills
}

// solidPaint builds a SOLID paint from a parsed color; the alpha channel
// moves into the paint opacity.
func solidPaint(c figma.Color) figma.Paint {
	return figma.Paint{
		Type:    figma.PaintTypeSolid,
		Visible: true,
		Opacity: c.A,
		Color:   &figma.Color{R: c.R, G: c.G, B: c.B, A: 1},
	}
}

// gradientArgs extracts the balanced contents of the first
// linear-gradient(...) in a background-image value.
func gradientArgs(backgroundImage string) (string, bool) {
	const fn = "linear-gradient("
	start := strings.Index(backgroundImage, fn)
	if start < 0 {
		return "", false
	}

	depth := 1
	open := start + len(fn)
	for i := open; i < len(backgroundImage); i++ {
		switch backgroundImage[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return backgroundImage[open:i], true
			}
		}
	}
	// Unterminated value; take everything after the opening paren.
	return backgroundImage[open:], true
}
