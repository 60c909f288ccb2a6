// Package semantic produces the per-item semantic confidence score, review
// tiers, menu-level summary, repair recommendations, auto-repair
// application, and the final quality report.
package semantic

import (
	"math"
	"strings"

	"github.com/servline/menuscan/internal/types"
)

// Signal weights. They sum to 1.0.
const (
	weightGrammar = 0.30
	weightName    = 0.20
	weightPrice   = 0.20
	weightVariant = 0.15
	weightFlags   = 0.15
)

// Flag penalties per severity, deducted from a 1.0 flag score.
const (
	flagPenaltyWarn    = 0.15
	flagPenaltyInfo    = 0.05
	flagPenaltyAutoFix = 0.02
)

// Name quality scores.
const (
	nameShortLen  = 3
	nameMediumLen = 6

	priceAbsentScore = 0.3

	defaultVariantScore = 0.5
	defaultGrammarScore = 0.5
)

const garbleChars = "secrnotvw"

// hasTripleRepeat reports whether any character appears three or more
// times in a row, case-insensitively. Backreferences are outside regexp's
// grammar, so this walks the runes.
func hasTripleRepeat(s string) bool {
	var prev rune
	run := 0
	for _, r := range strings.ToLower(s) {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// isNameGarbled applies the dual-signal garble test to a finished item
// name. Thresholds here are tighter than the line cleaner's: a name that
// survived cleaning needs stronger evidence to be condemned.
func isNameGarbled(name string) bool {
	var alpha []rune
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			alpha = append(alpha, r)
		}
	}
	if len(alpha) < 4 {
		return false
	}
	hits := 0
	unique := map[rune]bool{}
	for _, r := range alpha {
		if strings.ContainsRune(garbleChars, r) {
			hits++
		}
		unique[r] = true
	}
	garbleRatio := float64(hits) / float64(len(alpha))
	uniqueRatio := float64(len(unique)) / float64(len(alpha))

	signals := 0
	if hasTripleRepeat(name) {
		signals++
	}
	if garbleRatio >= 0.60 {
		signals++
	}
	if uniqueRatio <= 0.40 {
		signals++
	}
	return signals >= 2
}

func itemName(it *types.Item) string {
	if it.Grammar != nil && strings.TrimSpace(it.Grammar.Name) != "" {
		return strings.TrimSpace(it.Grammar.Name)
	}
	return strings.TrimSpace(it.Name)
}

// scoreName rates the name on length, garble, and capitalization; the
// weakest signal wins.
func scoreName(it *types.Item) float64 {
	name := itemName(it)
	if name == "" {
		return 0.1
	}
	length := 1.0
	switch {
	case len(name) < nameShortLen:
		length = 0.3
	case len(name) < nameMediumLen:
		length = 0.6
	}
	garble := 1.0
	if isNameGarbled(name) {
		garble = 0.2
	}
	caps := 1.0
	if name == strings.ToUpper(name) && len(name) > 2 {
		caps = 0.9
	}
	return math.Min(length, math.Min(garble, caps))
}

func scoreGrammar(it *types.Item) float64 {
	if it.Grammar != nil {
		return it.Grammar.ParseConfidence
	}
	return defaultGrammarScore
}

func scorePrice(it *types.Item) float64 {
	for _, v := range it.Variants {
		if v.PriceCents > 0 {
			return 1.0
		}
	}
	if it.Grammar != nil {
		for _, cents := range it.Grammar.PriceMentions {
			if cents > 0 {
				return 1.0
			}
		}
	}
	return priceAbsentScore
}

func scoreVariants(it *types.Item) float64 {
	if len(it.Variants) == 0 {
		return defaultVariantScore
	}
	sum := 0.0
	for _, v := range it.Variants {
		sum += v.Confidence
	}
	return sum / float64(len(it.Variants))
}

func scoreFlags(it *types.Item) float64 {
	if len(it.Flags) == 0 {
		return 1.0
	}
	penalty := 0.0
	for _, f := range it.Flags {
		switch f.Severity {
		case types.SeverityWarn:
			penalty += flagPenaltyWarn
		case types.SeverityAutoFix:
			penalty += flagPenaltyAutoFix
		default:
			penalty += flagPenaltyInfo
		}
	}
	return math.Max(0, 1-penalty)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ScoreItem computes the weighted semantic confidence for one item and
// retains the full signal audit.
func ScoreItem(it *types.Item) {
	grammar := scoreGrammar(it)
	name := scoreName(it)
	price := scorePrice(it)
	variants := scoreVariants(it)
	flags := scoreFlags(it)

	score := &types.SemanticScore{
		GrammarScore:      round4(grammar),
		GrammarWeighted:   round4(grammar * weightGrammar),
		NameScore:         round4(name),
		NameWeighted:      round4(name * weightName),
		PriceScore:        round4(price),
		PriceWeighted:     round4(price * weightPrice),
		VariantScore:      round4(variants),
		VariantWeighted:   round4(variants * weightVariant),
		FlagPenaltyScore:  round4(flags),
		FlagPenaltyWeight: round4(flags * weightFlags),
	}
	raw := score.GrammarWeighted + score.NameWeighted + score.PriceWeighted +
		score.VariantWeighted + score.FlagPenaltyWeight
	final := math.Max(0, math.Min(1, round4(raw)))
	score.Final = final

	it.Semantic = score
	it.Confidence = final
	it.Scored = true
}

// ScoreItems scores every item in place.
func ScoreItems(items []*types.Item) {
	for _, it := range items {
		ScoreItem(it)
	}
}
