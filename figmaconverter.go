package figmaconverter

import (
	"encoding/json"
	"fmt"

	"github.com/hellenic-development/figma-converter/pkg/converter"
	"github.com/hellenic-development/figma-converter/pkg/dom"
	"github.com/hellenic-development/figma-converter/pkg/figma"
	"github.com/hellenic-development/figma-converter/pkg/formatter"
)

// Options configures the conversion.
type Options struct {
	Root     dom.Element // rendered element tree to convert (required)
	Indent   string      // JSON indentation, default two spaces
	Markdown bool        // also render the markdown handoff report
	Title    string      // report title, default "Design Document"
	Logger   Logger      // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the conversion output.
type Result struct {
	Document *figma.Node // converted node tree
	JSON     string      // pretty-printed design document
	Markdown string      // handoff report, when Options.Markdown is set
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the conversion pipeline and returns the result. The input
// tree must be fully laid out and style-resolved; Run only reads from it
// and the same input always yields byte-identical JSON.
func Run(opts Options) (*Result, error) {
	if opts.Root == nil {
		return nil, fmt.Errorf("convert: nil root element")
	}

	// Apply defaults.
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	if opts.Title == "" {
		opts.Title = "Design Document"
	}

	opts.logInfo("Building design document tree...")
	doc := converter.Convert(opts.Root)
	opts.logInfo("Converted tree rooted at %q (%s)", doc.Name, doc.Type)

	if !doc.Visible {
		opts.logWarn("Root element is hidden; the whole document is invisible")
	}

	data, err := json.MarshalIndent(doc, "", opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("marshal design document: %w", err)
	}

	result := &Result{
		Document: doc,
		JSON:     string(data),
	}

	if opts.Markdown {
		opts.logInfo("Generating markdown report...")
		result.Markdown = formatter.ToMarkdown(doc, opts.Title)
	}

	return result, nil
}

// CountNodes returns the number of nodes per type discriminator in the
// document, for reporting.
func CountNodes(doc *figma.Node) map[string]int {
	counts := make(map[string]int)

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		counts[n.Type]++
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(doc)

	return counts
}
