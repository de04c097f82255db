package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	figmaconverter "github.com/hellenic-development/figma-converter"
	"github.com/hellenic-development/figma-converter/pkg/dom"
	"github.com/hellenic-development/figma-converter/pkg/figma"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figma.Version

var (
	inputFile    string
	outputFile   string
	markdownFile string
	title        string
	indent       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-converter",
		Short: "Convert rendered element trees into design documents",
		Long:  "A tool to convert an HTML or JSON layout snapshot of a rendered element tree (with resolved CSS styles) into a design-tool node graph as JSON",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input snapshot file, .html or .json (required)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "design.json", "Output design document file")
	rootCmd.Flags().StringVarP(&markdownFile, "markdown", "m", "", "Also write a markdown handoff report to this file")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "Title for the markdown report")
	rootCmd.Flags().StringVar(&indent, "indent", "  ", "JSON indentation string")

	rootCmd.MarkFlagRequired("input")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-converter version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Design Converter")
	cyan.Println("=========================")
	cyan.Println()

	data, err := os.ReadFile(inputFile)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Pick the snapshot loader by file extension.
	var root *dom.Record
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".html", ".htm":
		root, err = dom.FromHTML(bytes.NewReader(data))
	default:
		root, err = dom.LoadSnapshot(data)
	}
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts := figmaconverter.Options{
		Root:     root,
		Indent:   indent,
		Markdown: markdownFile != "",
		Title:    title,
		Logger:   &cliLogger{},
	}

	result, err := figmaconverter.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Display conversion stats.
	counts := figmaconverter.CountNodes(result.Document)
	cyan.Println("\n📊 Conversion Summary:")
	fmt.Printf("  • Frames: %d\n", counts[figma.NodeTypeFrame])
	fmt.Printf("  • Text nodes: %d\n", counts[figma.NodeTypeText])
	fmt.Printf("  • Rectangles: %d\n", counts[figma.NodeTypeRectangle])
	fmt.Printf("  • Vectors: %d\n", counts[figma.NodeTypeVector])

	// Write the design document.
	green.Printf("\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, []byte(result.JSON), 0644); err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	if markdownFile != "" {
		green.Printf("💾 Writing report to %s... ", markdownFile)
		if err := os.WriteFile(markdownFile, []byte(result.Markdown), 0644); err != nil {
			red.Printf("✗\n")
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Println("✓")
	}

	green.Printf("\n✨ Successfully converted %s to a design document\n\n", inputFile)
}

// cliLogger implements figmaconverter.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
