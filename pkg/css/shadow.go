package css

import (
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// defaultShadowAlpha is used when a shadow entry carries no color token.
const defaultShadowAlpha = 0.2

// ParseShadows decodes a box-shadow or text-shadow value into an ordered
// effect list. fromText marks text-shadow input, which has no spread
// component. Entries without at least two lengths (the offsets) are
// skipped; output order matches input order.
func ParseShadows(value string, fromText bool) []figma.Effect {
	v := strings.TrimSpace(value)
	if v == "" || trimLower(v) == "none" {
		return nil
	}

	var effects []figma.Effect
	for _, entry := range SplitTopLevel(v) {
		color := figma.Color{A: defaultShadowAlpha}
		rest := entry

		if tok := FindColorToken(entry); tok != "" {
			color = ParseColor(tok)
			rest = strings.Replace(rest, tok, "", 1)
		}

		effectType := figma.EffectTypeDropShadow
		if strings.Contains(rest, "inset") {
			effectType = figma.EffectTypeInnerShadow
			rest = strings.ReplaceAll(rest, "inset", "")
		}

		nums := lengths(rest)
		if len(nums) < 2 {
			continue
		}

		effect := figma.Effect{
			Type:    effectType,
			Visible: true,
			Color:   &color,
			Offset:  &figma.Vector{X: nums[0], Y: nums[1]},
		}
		if len(nums) > 2 {
			effect.Radius = nums[2]
		}
		if !fromText && len(nums) > 3 {
			effect.Spread = nums[3]
		}
		effects = append(effects, effect)
	}
	return effects
}
