package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FromHTML builds a Record tree from an HTML snapshot. The snapshot
// convention, produced by the rendering collaborator after layout, carries
// the resolved style of each element in its style attribute and the layout
// geometry in data-x, data-y, data-width and data-height attributes. The
// first element under <body> is the snapshot root.
func FromHTML(r io.Reader) (*Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html snapshot: %w", err)
	}

	sel := doc.Find("body").Children().First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("html snapshot has no root element")
	}
	return recordFromNode(sel.Nodes[0]), nil
}

func recordFromNode(n *html.Node) *Record {
	r := &Record{
		Tag:  strings.ToLower(n.Data),
		Aria: nodeAttr(n, "aria-label"),
		Box: Rect{
			X:      attrFloat(n, "data-x"),
			Y:      attrFloat(n, "data-y"),
			Width:  attrFloat(n, "data-width"),
			Height: attrFloat(n, "data-height"),
		},
		Computed: parseInlineStyle(nodeAttr(n, "style")),
	}
	if class := nodeAttr(n, "class"); class != "" {
		r.Class = strings.Fields(class)
	}

	// A text run is only recorded when it is the element's sole
	// significant child node.
	var elements []*html.Node
	text := ""
	significant := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			elements = append(elements, c)
			significant++
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				text = c.Data
				significant++
			}
		}
	}
	if significant == 1 && len(elements) == 0 {
		r.TextRun = text
	}

	for _, el := range elements {
		r.Kids = append(r.Kids, recordFromNode(el))
	}
	return r
}

func nodeAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func attrFloat(n *html.Node, name string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(nodeAttr(n, name)), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInlineStyle decodes "prop: value; prop: value" declarations into a
// Style snapshot. Unknown properties are ignored.
func parseInlineStyle(style string) Style {
	var s Style
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(prop)) {
		case "display":
			s.Display = value
		case "flex-direction":
			s.FlexDirection = value
		case "gap":
			s.Gap = value
		case "padding-top":
			s.PaddingTop = value
		case "padding-right":
			s.PaddingRight = value
		case "padding-bottom":
			s.PaddingBottom = value
		case "padding-left":
			s.PaddingLeft = value
		case "justify-content":
			s.JustifyContent = value
		case "align-items":
			s.AlignItems = value
		case "background-color":
			s.BackgroundColor = value
		case "background-image":
			s.BackgroundImage = value
		case "border-width":
			s.BorderWidth = value
		case "border-color":
			s.BorderColor = value
		case "border-radius":
			s.BorderRadius = value
		case "box-shadow":
			s.BoxShadow = value
		case "opacity":
			s.Opacity = value
		case "visibility":
			s.Visibility = value
		case "color":
			s.Color = value
		case "font-family":
			s.FontFamily = value
		case "font-size":
			s.FontSize = value
		case "font-weight":
			s.FontWeight = value
		case "text-align":
			s.TextAlign = value
		case "text-shadow":
			s.TextShadow = value
		}
	}
	return s
}
