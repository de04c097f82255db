// Package formatter renders a converted design document as a markdown
// handoff report: the node hierarchy with geometry, paints, effects, and
// auto-layout settings in human-readable form.
package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// ToMarkdown transforms a design document into a markdown report. The
// report mirrors the document tree: one bullet per node, indented by depth,
// with the node's visual properties on nested bullets.
func ToMarkdown(doc *figma.Node, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString("This document describes the converted design node tree.\n\n")
	sb.WriteString("## Node Tree\n\n")
	writeNode(&sb, doc, 0)
	sb.WriteString("\n")

	return sb.String()
}

func writeNode(sb *strings.Builder, n *figma.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(fmt.Sprintf("%s- **%s** (%s) — %.0f×%.0f at (%.0f, %.0f)\n",
		indent, n.Name, n.Type, n.Width, n.Height, n.X, n.Y))

	if !n.Visible {
		sb.WriteString(indent + "  - hidden\n")
	}
	if n.Opacity < 1 {
		sb.WriteString(fmt.Sprintf("%s  - opacity: %.2f\n", indent, n.Opacity))
	}

	for _, fill := range n.Fills {
		sb.WriteString(fmt.Sprintf("%s  - fill: %s\n", indent, describePaint(fill)))
	}
	for _, stroke := range n.Strokes {
		sb.WriteString(fmt.Sprintf("%s  - stroke: %s, weight %g\n", indent, describePaint(stroke), n.StrokeWeight))
	}
	if n.CornerRadius > 0 {
		sb.WriteString(fmt.Sprintf("%s  - corner radius: %g\n", indent, n.CornerRadius))
	}
	for _, effect := range n.Effects {
		sb.WriteString(fmt.Sprintf("%s  - effect: %s\n", indent, describeEffect(effect)))
	}

	if n.LayoutMode != "" {
		sb.WriteString(fmt.Sprintf("%s  - auto-layout: %s, spacing %g, padding %g/%g/%g/%g, align %s/%s\n",
			indent, strings.ToLower(n.LayoutMode), n.ItemSpacing,
			n.PaddingTop, n.PaddingRight, n.PaddingBottom, n.PaddingLeft,
			n.PrimaryAxisAlignItems, n.CounterAxisAlignItems))
	}

	if n.Type == figma.NodeTypeText {
		sb.WriteString(fmt.Sprintf("%s  - text: %q, %s %gpx %s\n",
			indent, n.Characters, n.FontFamily, n.FontSize, n.FontStyleName))
	}

	for _, child := range n.Children {
		writeNode(sb, child, depth+1)
	}
}

func describePaint(p figma.Paint) string {
	switch p.Type {
	case figma.PaintTypeGradientLinear:
		return fmt.Sprintf("linear gradient, %d stop(s)", len(p.GradientStops))
	default:
		if p.Opacity < 1 {
			return fmt.Sprintf("%s @ %.0f%%", colorToHex(p.Color), p.Opacity*100)
		}
		return colorToHex(p.Color)
	}
}

func describeEffect(e figma.Effect) string {
	kind := "drop shadow"
	if e.Type == figma.EffectTypeInnerShadow {
		kind = "inner shadow"
	}
	desc := fmt.Sprintf("%s %g %g %g", kind, e.Offset.X, e.Offset.Y, e.Radius)
	if e.Spread != 0 {
		desc += fmt.Sprintf(" %g", e.Spread)
	}
	return desc + " " + colorToHex(e.Color)
}

// colorToHex converts a normalized RGBA color (0-1 channels) to standard
// hexadecimal format (#RRGGBB). Returns "#000000" if the color is nil.
func colorToHex(color *figma.Color) string {
	if color == nil {
		return "#000000"
	}

	r := int(math.Round(color.R * 255))
	g := int(math.Round(color.G * 255))
	b := int(math.Round(color.B * 255))

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
