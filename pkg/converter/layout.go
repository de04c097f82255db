package converter

import (
	"github.com/hellenic-development/figma-converter/pkg/css"
	"github.com/hellenic-development/figma-converter/pkg/dom"
	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// inferLayout maps flexbox computed values onto the node's auto-layout
// descriptor. Non-flex elements keep an empty LayoutMode and no other
// layout field is touched. Sizing is always hug-contents on both axes:
// authored fixed pixel sizing is not distinguished from intrinsic sizing
// (documented approximation).
func inferLayout(n *figma.Node, style dom.Style) {
	if style.Display != "flex" && style.Display != "inline-flex" {
		return
	}

	if style.FlexDirection == "column" {
		n.LayoutMode = figma.LayoutModeVertical
	} else {
		n.LayoutMode = figma.LayoutModeHorizontal
	}

	n.ItemSpacing = css.Px(style.Gap)
	n.PaddingTop = css.Px(style.PaddingTop)
	n.PaddingRight = css.Px(style.PaddingRight)
	n.PaddingBottom = css.Px(style.PaddingBottom)
	n.PaddingLeft = css.Px(style.PaddingLeft)
	n.PrimaryAxisSizingMode = figma.SizingAuto
	n.CounterAxisSizingMode = figma.SizingAuto

	switch style.JustifyContent {
	case "center":
		n.PrimaryAxisAlignItems = figma.AlignCenter
	case "space-between":
		n.PrimaryAxisAlignItems = figma.AlignSpaceBetween
	case "flex-end":
		n.PrimaryAxisAlignItems = figma.AlignMax
	default:
		n.PrimaryAxisAlignItems = figma.AlignMin
	}

	switch style.AlignItems {
	case "center":
		n.CounterAxisAlignItems = figma.AlignCenter
	case "flex-end":
		n.CounterAxisAlignItems = figma.AlignMax
	default:
		n.CounterAxisAlignItems = figma.AlignMin
	}
}
