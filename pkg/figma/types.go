// Package figma defines the design-document node schema produced by the
// converter. The types mirror the node graph of design tools (frames, text,
// auto-layout, paints, effects) and marshal to the JSON document consumed
// by import plugins.
package figma

// Version is the current figma-converter release.
const Version = "0.1.0"

// Node type discriminators.
const (
	NodeTypeFrame     = "FRAME"
	NodeTypeText      = "TEXT"
	NodeTypeRectangle = "RECTANGLE"
	NodeTypeVector    = "VECTOR"
)

// Paint type discriminators.
const (
	PaintTypeSolid          = "SOLID"
	PaintTypeGradientLinear = "GRADIENT_LINEAR"
)

// Effect type discriminators.
const (
	EffectTypeDropShadow  = "DROP_SHADOW"
	EffectTypeInnerShadow = "INNER_SHADOW"
)

// Auto-layout axis modes. An empty LayoutMode means no auto-layout.
const (
	LayoutModeHorizontal = "HORIZONTAL"
	LayoutModeVertical   = "VERTICAL"
)

// Axis alignment values. SPACE_BETWEEN is valid on the primary axis only.
const (
	AlignMin          = "MIN"
	AlignCenter       = "CENTER"
	AlignMax          = "MAX"
	AlignSpaceBetween = "SPACE_BETWEEN"
)

// Axis sizing modes. The converter always emits AUTO (hug contents) for
// auto-layout frames; FIXED is part of the schema for consumers.
const (
	SizingAuto  = "AUTO"
	SizingFixed = "FIXED"
)

// Horizontal and vertical text alignment values.
const (
	TextAlignLeft   = "LEFT"
	TextAlignCenter = "CENTER"
	TextAlignRight  = "RIGHT"
)

// Node is a single element in the design document tree. Exactly one of the
// NodeType discriminators is set in Type; the text and auto-layout field
// groups are populated only for the matching type. Children are exclusively
// owned by their parent: the document is a tree, never a graph.
type Node struct {
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Opacity float64 `json:"opacity"`
	Visible bool    `json:"visible"`

	Fills        []Paint  `json:"fills,omitempty"`
	Strokes      []Paint  `json:"strokes,omitempty"`
	StrokeWeight float64  `json:"strokeWeight,omitempty"`
	CornerRadius float64  `json:"cornerRadius,omitempty"`
	Effects      []Effect `json:"effects,omitempty"`

	// Auto-layout (FRAME nodes). Empty LayoutMode means none.
	LayoutMode            string  `json:"layoutMode,omitempty"`
	ItemSpacing           float64 `json:"itemSpacing,omitempty"`
	PaddingTop            float64 `json:"paddingTop,omitempty"`
	PaddingRight          float64 `json:"paddingRight,omitempty"`
	PaddingBottom         float64 `json:"paddingBottom,omitempty"`
	PaddingLeft           float64 `json:"paddingLeft,omitempty"`
	PrimaryAxisAlignItems string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string  `json:"counterAxisAlignItems,omitempty"`
	PrimaryAxisSizingMode string  `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode string  `json:"counterAxisSizingMode,omitempty"`

	// Text (TEXT nodes).
	Characters          string  `json:"characters,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontStyleName       string  `json:"fontStyleName,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Color is an RGBA color with every channel normalized to the 0-1 range.
// The canonical "no color" value is the zero Color (fully transparent black).
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a single fill or stroke layer: a solid color or a linear
// gradient. Later entries in a node's paint list render above earlier ones.
type Paint struct {
	Type                    string      `json:"type"`
	Visible                 bool        `json:"visible"`
	Opacity                 float64     `json:"opacity"`
	Color                   *Color      `json:"color,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
}

// ColorStop is a single gradient stop. Position lies in [0,1] along the
// gradient axis; stops are kept in source order and need not be sorted.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect is a shadow layer attached to a node. Spread is always zero for
// effects originating from text shadows.
type Effect struct {
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Radius  float64 `json:"radius"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
	Spread  float64 `json:"spread,omitempty"`
}

// Vector is a 2D point, used for effect offsets and gradient handles.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
