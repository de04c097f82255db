// Package dom defines the read-only contract between the converter and the
// environment that rendered the element tree. The converter never talks to
// a rendering engine directly: it consumes an Element implementation that
// exposes geometry, a resolved style snapshot, and structural metadata for
// each node. The package ships two providers, a plain-struct Record for
// programmatic use and tests, and loaders that build Record trees from
// HTML or JSON snapshots serialized by a rendering collaborator.
package dom

// Rect is an element's bounding box in device-independent pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Style is the resolved, post-cascade style snapshot of an element. Values
// are raw computed-value strings exactly as measured at render time; the
// converter's parsers own all decoding. Missing properties are empty
// strings and degrade to the parsers' defaults.
type Style struct {
	Display        string
	FlexDirection  string
	Gap            string
	PaddingTop     string
	PaddingRight   string
	PaddingBottom  string
	PaddingLeft    string
	JustifyContent string
	AlignItems     string

	BackgroundColor string
	BackgroundImage string
	BorderWidth     string
	BorderColor     string
	BorderRadius    string
	BoxShadow       string
	Opacity         string
	Visibility      string

	Color      string
	FontFamily string
	FontSize   string
	FontWeight string
	TextAlign  string
	TextShadow string
}

// Element is a single node of the rendered tree. Implementations must be
// immutable for the duration of a conversion call; the converter only
// reads, never mutates, and requires the tree to be fully laid out and
// style-resolved before conversion begins.
type Element interface {
	// TagName returns the lowercase element tag ("div", "button", "svg").
	TagName() string

	// Label returns the element's accessible label, or empty.
	Label() string

	// Classes returns the element's class list in source order.
	Classes() []string

	// Text returns the content of the element's single child text run.
	// It is empty when the element has element children, several text
	// runs, or no significant text at all.
	Text() string

	// BoundingBox returns the element's layout geometry.
	BoundingBox() Rect

	// Style returns the element's resolved style snapshot.
	Style() Style

	// Children returns the element's child elements in document order.
	Children() []Element
}
