// Package figmaconverter converts a rendered element tree with resolved
// CSS style values into a structured design document: a node graph of
// frames, text, rectangles and vectors with auto-layout, fills, strokes
// and effects, serialized as pretty-printed JSON.
//
// The CLI lives in cmd/figma-converter; this root package exposes the same
// pipeline as a Go API so that callers can embed conversion in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmaconverter:
//
//	import "github.com/hellenic-development/figma-converter" // package figmaconverter
//
// # Quick start
//
// The converter consumes any implementation of [dom.Element]; the dom
// package ships loaders for HTML and JSON layout snapshots as well as the
// plain-struct [dom.Record]:
//
//	root, err := dom.FromHTML(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := figmaconverter.Run(figmaconverter.Options{Root: root})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design.json", []byte(result.JSON), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Error philosophy
//
// Malformed style values never fail a conversion: unparseable colors,
// shadows and gradients degrade to documented defaults inside pkg/css.
// Errors are reserved for caller-environment failures such as a nil root
// or an unreadable snapshot.
//
// # Markdown report
//
// Set [Options.Markdown] to true to also render a human-readable handoff
// report of the converted node tree in [Result.Markdown].
package figmaconverter
