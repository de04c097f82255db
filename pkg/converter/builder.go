// Package converter walks a rendered element tree and builds the
// equivalent design-document node graph: text leaves become TEXT nodes,
// vector containers become opaque VECTOR leaves, and everything else
// becomes a FRAME (or RECTANGLE when it is a plain childless box). All
// style decoding goes through pkg/css; the walk is a single depth-first
// pre-order pass over an immutable input tree.
package converter

import (
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/css"
	"github.com/hellenic-development/figma-converter/pkg/dom"
	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// boldWeightThreshold separates the "Bold" font style from "Regular".
const boldWeightThreshold = 600

// Convert builds the design document for the tree rooted at el. The input
// must already be laid out and style-resolved; Convert only reads from it.
func Convert(el dom.Element) *figma.Node {
	return buildNode(el)
}

func buildNode(el dom.Element) *figma.Node {
	box := el.BoundingBox()
	style := el.Style()

	n := &figma.Node{
		X:       box.X,
		Y:       box.Y,
		Width:   box.Width,
		Height:  box.Height,
		Opacity: parseOpacity(style.Opacity),
		Visible: style.Visibility != "hidden" && style.Display != "none",
	}

	children := el.Children()
	vectorRoot := isVectorRoot(el)

	if text := strings.TrimSpace(el.Text()); text != "" && len(children) == 0 && !vectorRoot {
		populateText(n, el, style, text)
		return n
	}

	n.Name = nodeName(el)
	n.Fills = resolveFills(style)
	n.CornerRadius = css.Px(style.BorderRadius)

	if weight := css.Px(style.BorderWidth); weight > 0 {
		if c := css.ParseColor(style.BorderColor); c.A > 0 {
			n.Strokes = []figma.Paint{solidPaint(c)}
			n.StrokeWeight = weight
		}
	}

	if style.BoxShadow != "" {
		n.Effects = css.ParseShadows(style.BoxShadow, false)
	}

	if vectorRoot {
		// Opaque vector subtree: keep the node's own visuals, never
		// recurse into its internals.
		n.Type = figma.NodeTypeVector
		return n
	}

	inferLayout(n, style)

	if len(children) == 0 && n.LayoutMode == "" {
		n.Type = figma.NodeTypeRectangle
		return n
	}

	n.Type = figma.NodeTypeFrame
	for _, child := range children {
		n.Children = append(n.Children, buildNode(child))
	}
	return n
}

// populateText fills in a TEXT node from the element's single text run.
func populateText(n *figma.Node, el dom.Element, style dom.Style, text string) {
	n.Type = figma.NodeTypeText
	n.Name = text
	n.Characters = text
	n.Fills = []figma.Paint{solidPaint(css.ParseColor(style.Color))}
	n.FontSize = css.Px(style.FontSize)
	n.FontFamily = firstFontFamily(style.FontFamily)
	n.FontStyleName = fontStyleName(style.FontWeight)
	n.TextAlignVertical = figma.TextAlignCenter

	switch style.TextAlign {
	case "center":
		n.TextAlignHorizontal = figma.TextAlignCenter
	case "right":
		n.TextAlignHorizontal = figma.TextAlignRight
	default:
		n.TextAlignHorizontal = figma.TextAlignLeft
	}

	if style.TextShadow != "" {
		n.Effects = css.ParseShadows(style.TextShadow, true)
	}
}

// isVectorRoot reports whether el is an embedded vector-graphics container
// whose internal structure must not be traversed.
func isVectorRoot(el dom.Element) bool {
	return strings.ToLower(el.TagName()) == "svg"
}

// nodeName resolves a node's name by priority: accessible label, semantic
// tag hint, class hint, capitalized tag (the generic container tag maps to
// "Frame").
func nodeName(el dom.Element) string {
	if label := el.Label(); label != "" {
		return label
	}

	tag := strings.ToLower(el.TagName())
	switch tag {
	case "button":
		return "Button"
	case "svg":
		return "Icon"
	case "img":
		return "Image"
	case "input":
		return "Input"
	}

	for _, class := range el.Classes() {
		lc := strings.ToLower(class)
		if strings.Contains(lc, "icon") {
			return "Icon"
		}
		if strings.Contains(lc, "badge") {
			return "Badge"
		}
	}

	if tag == "div" || tag == "" {
		return "Frame"
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}

// firstFontFamily returns the first family of a comma-separated font list
// with surrounding quotes stripped.
func firstFontFamily(fontFamily string) string {
	first, _, _ := strings.Cut(fontFamily, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}

// fontStyleName maps a numeric computed font weight to a style name.
func fontStyleName(fontWeight string) string {
	if css.Px(fontWeight) >= boldWeightThreshold {
		return "Bold"
	}
	return "Regular"
}

func parseOpacity(value string) float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return 1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
