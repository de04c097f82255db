// Package css decodes the loosely-specified CSS value grammars the
// converter needs: color tokens in several notations, comma-separated
// shadow lists, and linear-gradient values. All parsers are tolerant by
// design: malformed input degrades to a documented default and never
// produces an error.
package css

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// colorTokenRe locates a functional or hex color token inside a larger
	// value. hsl()/hsla() is matched so that the token can be located and
	// stripped, but decoding still goes through ParseColor's generic
	// numeric path (no hue conversion).
	colorTokenRe = regexp.MustCompile(`rgba?\([^)]*\)|hsla?\([^)]*\)|#[0-9a-fA-F]+`)

	// numberRe extracts numeric tokens with an optional percent suffix.
	numberRe = regexp.MustCompile(`-?(?:\d+\.?\d*|\.\d+)%?`)

	// lengthRe extracts bare numeric tokens (pixel lengths with the unit
	// already meaningless once stripped).
	lengthRe = regexp.MustCompile(`-?(?:\d+\.?\d*|\.\d+)`)
)

// FindColorToken returns the first functional or hex color token in value,
// or the empty string when none is present.
func FindColorToken(value string) string {
	return colorTokenRe.FindString(value)
}

// Px extracts the leading numeric component of a CSS length value such as
// "8px" or "12.5px". Missing or non-numeric values yield 0.
func Px(value string) float64 {
	tok := lengthRe.FindString(value)
	if tok == "" {
		return 0
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return f
}

// numbers returns every numeric token in value, in order, keeping any
// percent suffix attached.
func numbers(value string) []string {
	return numberRe.FindAllString(value, -1)
}

// lengths returns every bare numeric token in value, in order.
func lengths(value string) []float64 {
	toks := lengthRe.FindAllString(value, -1)
	out := make([]float64, 0, len(toks))
	for _, tok := range toks {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// trimLower canonicalizes a raw style value for keyword comparison.
func trimLower(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
