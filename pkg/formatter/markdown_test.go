package formatter

import (
	"strings"
	"testing"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

func TestToMarkdown(t *testing.T) {
	doc := &figma.Node{
		Type:    figma.NodeTypeFrame,
		Name:    "Card",
		Width:   320,
		Height:  120,
		Opacity: 1,
		Visible: true,
		Fills: []figma.Paint{
			{Type: figma.PaintTypeSolid, Visible: true, Opacity: 1, Color: &figma.Color{R: 1, G: 1, B: 1, A: 1}},
		},
		Effects: []figma.Effect{
			{
				Type:    figma.EffectTypeDropShadow,
				Visible: true,
				Radius:  8,
				Color:   &figma.Color{A: 0.15},
				Offset:  &figma.Vector{Y: 2},
			},
		},
		LayoutMode:            figma.LayoutModeVertical,
		ItemSpacing:           8,
		PrimaryAxisAlignItems: figma.AlignMin,
		CounterAxisAlignItems: figma.AlignMin,
		Children: []*figma.Node{
			{
				Type:          figma.NodeTypeText,
				Name:          "Title",
				Characters:    "Title",
				Opacity:       1,
				Visible:       true,
				FontFamily:    "Inter",
				FontSize:      20,
				FontStyleName: "Bold",
			},
			{
				Type:    figma.NodeTypeVector,
				Name:    "Icon",
				Opacity: 0.5,
				Visible: false,
			},
		},
	}

	got := ToMarkdown(doc, "Card Design")

	for _, fragment := range []string{
		"# Card Design",
		"## Node Tree",
		"- **Card** (FRAME) — 320×120 at (0, 0)",
		"fill: #FFFFFF",
		"effect: drop shadow 0 2 8 #000000",
		"auto-layout: vertical, spacing 8",
		`text: "Title", Inter 20px Bold`,
		"  - **Title** (TEXT)",
		"hidden",
		"opacity: 0.50",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("markdown missing %q:\n%s", fragment, got)
		}
	}
}

func TestColorToHex(t *testing.T) {
	tests := []struct {
		name  string
		color *figma.Color
		want  string
	}{
		{name: "nil color", color: nil, want: "#000000"},
		{name: "white", color: &figma.Color{R: 1, G: 1, B: 1, A: 1}, want: "#FFFFFF"},
		{name: "mid gray rounds", color: &figma.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, want: "#808080"},
		{name: "red", color: &figma.Color{R: 1, A: 1}, want: "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToHex(tt.color); got != tt.want {
				t.Errorf("colorToHex() = %q, want %q", got, tt.want)
			}
		})
	}
}
