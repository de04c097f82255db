package css

import (
	"strconv"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// ParseColor decodes a single CSS color token into a normalized RGBA color.
// Empty values, "transparent" and "none" decode to fully transparent black;
// hex notations of length 3, 6 and 8 are decoded per channel; any other
// value goes through generic numeric extraction (first three numbers are
// R, G, B, an optional fourth is alpha). Malformed input degrades to opaque
// black; ParseColor never fails.
func ParseColor(value string) figma.Color {
	v := trimLower(value)
	if v == "" || v == "transparent" || v == "none" {
		return figma.Color{}
	}

	if v[0] == '#' {
		return parseHex(v[1:])
	}

	nums := numbers(v)
	if len(nums) < 3 {
		return figma.Color{A: 1}
	}

	c := figma.Color{
		R: channel(nums[0]),
		G: channel(nums[1]),
		B: channel(nums[2]),
		A: 1,
	}
	if len(nums) >= 4 {
		c.A = alpha(nums[3])
	}
	return c
}

// channel converts an R/G/B token: percentages divide by 100, plain numbers
// divide by 255. The result is clamped to [0,1].
func channel(tok string) float64 {
	if n := len(tok); n > 0 && tok[n-1] == '%' {
		f, err := strconv.ParseFloat(tok[:n-1], 64)
		if err != nil {
			return 0
		}
		return clamp01(f / 100)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return clamp01(f / 255)
}

// alpha converts an alpha token: percentages divide by 100, plain numbers
// are taken as already being in the 0-1 range.
func alpha(tok string) float64 {
	if n := len(tok); n > 0 && tok[n-1] == '%' {
		f, err := strconv.ParseFloat(tok[:n-1], 64)
		if err != nil {
			return 1
		}
		return clamp01(f / 100)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 1
	}
	return clamp01(f)
}

// parseHex decodes the digits of a hex color (leading '#' already
// stripped). Supported lengths are 3 (each digit doubled), 6 and 8 (the
// trailing byte is alpha). Anything else decodes to opaque black.
func parseHex(hex string) figma.Color {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return figma.Color{A: 1}
	}

	bytes := make([]float64, 0, 4)
	for i := 0; i+1 < len(hex); i += 2 {
		b, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return figma.Color{A: 1}
		}
		bytes = append(bytes, float64(b)/255)
	}

	c := figma.Color{R: bytes[0], G: bytes[1], B: bytes[2], A: 1}
	if len(bytes) == 4 {
		c.A = bytes[3]
	}
	return c
}
