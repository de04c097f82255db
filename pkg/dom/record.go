package dom

// Record is a plain-struct Element implementation. It backs the snapshot
// loaders and lets callers and tests assemble element trees by hand without
// any rendering environment.
type Record struct {
	Tag      string
	Aria     string // accessible label
	Class    []string
	TextRun  string // single child text run, if any
	Box      Rect
	Computed Style
	Kids     []*Record
}

var _ Element = (*Record)(nil)

func (r *Record) TagName() string { return r.Tag }

func (r *Record) Label() string { return r.Aria }

func (r *Record) Classes() []string { return r.Class }

func (r *Record) Text() string { return r.TextRun }

func (r *Record) BoundingBox() Rect { return r.Box }

func (r *Record) Style() Style { return r.Computed }

func (r *Record) Children() []Element {
	if len(r.Kids) == 0 {
		return nil
	}
	children := make([]Element, len(r.Kids))
	for i, kid := range r.Kids {
		children[i] = kid
	}
	return children
}
