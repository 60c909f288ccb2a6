package variant

import (
	"math"
	"strings"

	"github.com/servline/menuscan/internal/types"
)

// Label modifiers.
const (
	labelModSizeNormalized = 0.05
	labelModCombo          = 0.03
	labelModFlavorStyle    = 0.02
	labelModOther          = -0.10
	labelModEmpty          = -0.20
)

// Grammar modifiers.
const (
	grammarBonus          = 0.03
	grammarBonusThreshold = 0.80
	grammarPenaltyCutoff  = 0.50
	grammarPenaltyScale   = -0.10
)

const gridMod = 0.05

// Targeted flag penalties. Each reason penalizes a variant at most once,
// and only the variants the flag actually names.
const (
	penaltyInversion = 0.12
	penaltyDuplicate = 0.15
	penaltyZeroPrice = 0.20
	penaltyMixedWarn = 0.05
	penaltyInfoLevel = 0.03
)

// Confidence bounds. The floor keeps a variant visible for review instead
// of rounding it out of existence.
const (
	confFloor = 0.05
	confCeil  = 1.00
)

// Score computes the final confidence for every variant on the item. The
// construction confidence is the base; label quality, grammar strength,
// grid provenance, and targeted flag penalties adjust it. The full
// modifier breakdown is retained on the variant.
func Score(item *types.Item) {
	var parseConf float64 = -1
	if item.Grammar != nil {
		parseConf = item.Grammar.ParseConfidence
	}
	for _, v := range item.Variants {
		score := &types.VariantScore{Base: v.Confidence}
		score.LabelMod = labelMod(v)
		score.GrammarMod = grammarMod(parseConf)
		if v.FromGrid {
			score.GridMod = gridMod
		}
		score.FlagPenalty, score.FlagReasons = flagPenalty(item, v)

		final := score.Base + score.LabelMod + score.GrammarMod + score.GridMod - score.FlagPenalty
		final = math.Min(confCeil, math.Max(confFloor, final))
		score.Final = final

		v.Score = score
		v.Confidence = final
	}
}

func labelMod(v *types.Variant) float64 {
	if strings.TrimSpace(v.Label) == "" {
		return labelModEmpty
	}
	switch v.Kind {
	case types.VariantSize:
		if v.NormalizedSize != "" {
			return labelModSizeNormalized
		}
		return 0
	case types.VariantCombo:
		return labelModCombo
	case types.VariantFlavor, types.VariantStyle:
		return labelModFlavorStyle
	default:
		return labelModOther
	}
}

func grammarMod(parseConf float64) float64 {
	if parseConf < 0 {
		return 0
	}
	if parseConf >= grammarBonusThreshold {
		return grammarBonus
	}
	if parseConf < grammarPenaltyCutoff {
		return grammarPenaltyScale * (1 - parseConf/grammarPenaltyCutoff)
	}
	return 0
}

// flagPenalty sums the targeted penalties that apply to this variant.
func flagPenalty(item *types.Item, v *types.Variant) (float64, []string) {
	total := 0.0
	var reasons []string
	seen := map[string]bool{}
	for _, f := range item.Flags {
		if seen[f.Reason] {
			continue
		}
		p := penaltyFor(f, v)
		if p > 0 {
			seen[f.Reason] = true
			total += p
			reasons = append(reasons, f.Reason)
		}
	}
	return total, reasons
}

func penaltyFor(f *types.Flag, v *types.Variant) float64 {
	switch f.Reason {
	case "variant_price_inversion":
		if flagNamesLabel(f, v.Label) {
			return penaltyInversion
		}
	case "duplicate_variant_labels":
		if key, ok := f.Details["group_key"].(string); ok && key == v.GroupKey {
			return penaltyDuplicate
		}
	case "zero_price_variant":
		if v.PriceCents <= 0 {
			return penaltyZeroPrice
		}
	case "mixed_variant_kinds":
		if f.Severity == types.SeverityWarn {
			return penaltyMixedWarn
		}
		return penaltyInfoLevel
	default:
		if f.Severity == types.SeverityInfo {
			return penaltyInfoLevel
		}
	}
	return 0
}

func flagNamesLabel(f *types.Flag, label string) bool {
	labels, ok := f.Details["labels"].([]string)
	if !ok {
		return false
	}
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
