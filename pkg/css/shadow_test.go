package css

import (
	"testing"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

func TestParseShadows(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fromText bool
		want     []figma.Effect
	}{
		{
			name:  "box shadow with rgba color",
			value: "2px 4px 6px rgba(0,0,0,0.2)",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  6,
					Color:   &figma.Color{A: 0.2},
					Offset:  &figma.Vector{X: 2, Y: 4},
				},
			},
		},
		{
			name:  "inset shadow with hex color",
			value: "inset 0px 0px 4px #000",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeInnerShadow,
					Visible: true,
					Radius:  4,
					Color:   &figma.Color{A: 1},
					Offset:  &figma.Vector{},
				},
			},
		},
		{
			name:  "box shadow with spread",
			value: "0px 2px 4px 1px #00000080",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  4,
					Spread:  1,
					Color:   &figma.Color{A: 128.0 / 255.0},
					Offset:  &figma.Vector{Y: 2},
				},
			},
		},
		{
			name:     "text shadow ignores spread",
			value:    "1px 1px 2px 3px rgba(0,0,0,0.5)",
			fromText: true,
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  2,
					Color:   &figma.Color{A: 0.5},
					Offset:  &figma.Vector{X: 1, Y: 1},
				},
			},
		},
		{
			name:  "multi-layer list preserves order",
			value: "0 1px 2px rgba(0,0,0,0.3), 0 4px 8px rgba(0,0,0,0.1)",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  2,
					Color:   &figma.Color{A: 0.3},
					Offset:  &figma.Vector{Y: 1},
				},
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  8,
					Color:   &figma.Color{A: 0.1},
					Offset:  &figma.Vector{Y: 4},
				},
			},
		},
		{
			name:  "missing color defaults to faint black",
			value: "2px 2px 4px",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  4,
					Color:   &figma.Color{A: 0.2},
					Offset:  &figma.Vector{X: 2, Y: 2},
				},
			},
		},
		{
			name:  "negative offsets",
			value: "-2px -4px 6px #fff",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Radius:  6,
					Color:   &figma.Color{R: 1, G: 1, B: 1, A: 1},
					Offset:  &figma.Vector{X: -2, Y: -4},
				},
			},
		},
		{
			name:  "entry without offsets is skipped",
			value: "inset rgba(0,0,0,0.4), 1px 2px #000",
			want: []figma.Effect{
				{
					Type:    figma.EffectTypeDropShadow,
					Visible: true,
					Color:   &figma.Color{A: 1},
					Offset:  &figma.Vector{X: 1, Y: 2},
				},
			},
		},
		{
			name:  "none keyword",
			value: "none",
			want:  nil,
		},
		{
			name:  "empty value",
			value: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseShadows(tt.value, tt.fromText)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseShadows(%q) returned %d effects, want %d", tt.value, len(got), len(tt.want))
			}
			for i := range got {
				w := tt.want[i]
				g := got[i]
				if g.Type != w.Type || g.Visible != w.Visible || g.Radius != w.Radius || g.Spread != w.Spread {
					t.Errorf("effect[%d] = %+v, want %+v", i, g, w)
				}
				if !colorsEqual(*g.Color, *w.Color) {
					t.Errorf("effect[%d].Color = %+v, want %+v", i, *g.Color, *w.Color)
				}
				if g.Offset.X != w.Offset.X || g.Offset.Y != w.Offset.Y {
					t.Errorf("effect[%d].Offset = %+v, want %+v", i, *g.Offset, *w.Offset)
				}
			}
		})
	}
}
