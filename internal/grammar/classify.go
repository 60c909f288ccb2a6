package grammar

import (
	"regexp"
	"strings"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

var (
	priceRe        = regexp.MustCompile(`\$?\d{1,3}[.,]\d{2}`)
	columnGapRe    = regexp.MustCompile(`\s{5,}`)
	priceOnlyRe    = regexp.MustCompile(`^[\s.$_\-]*\d{1,3}[.,]\d{2}[\s.]*$`)
	modifierLeadRe = regexp.MustCompile(`(?i)^(add|extra|substitute|sub|include)\b`)
	infoLeadRe     = regexp.MustCompile(`(?i)^(choice of|served with|all orders|all items|all of our|we use|ask about|available in)\b`)
)

func countPrices(s string) int {
	return len(priceRe.FindAllString(s, -1))
}

// countSizeTokens counts size mentions, preferring two-word matches
// ("Family Size") over their single-word remainders.
func countSizeTokens(s string) int {
	words := strings.Fields(s)
	count := 0
	for i := 0; i < len(words); i++ {
		if i+1 < len(words) {
			if vocab.IsSizeToken(words[i] + " " + words[i+1]) {
				count++
				i++
				continue
			}
		}
		if vocab.IsSizeToken(words[i]) {
			count++
		}
	}
	return count
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// looksLikeFoodList reports whether text reads as a comma list of known
// food words, the shape of a description fragment.
func looksLikeFoodList(s string) bool {
	parts := splitListSegments(s)
	if len(parts) < 2 {
		return false
	}
	known := 0
	for _, p := range parts {
		if vocab.IsKnownWord(p) || vocab.IsTopping(p) {
			known++
		}
	}
	return known*2 >= len(parts)
}

// SplitColumns splits a raw line on runs of 5 or more spaces. Single-column
// lines come back as a one-element slice.
func SplitColumns(raw string) []string {
	parts := columnGapRe.Split(strings.TrimSpace(raw), -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	if len(out) == 0 {
		return []string{strings.TrimSpace(raw)}
	}
	return out
}

// ClassifyLine assigns a structural type to one cleaned line. Precedence
// follows signal strength: grid headers and pure prices are unambiguous,
// headings and descriptions lean on vocabulary, menu_item is the default
// for anything carrying a price.
func ClassifyLine(cleaned string) (types.LineType, float64, string) {
	text := strings.TrimSpace(cleaned)
	if text == "" {
		return types.LineUnknown, 0.2, "empty"
	}

	prices := countPrices(text)
	sizes := countSizeTokens(text)
	words := strings.Fields(text)

	if sizes >= 2 && prices == 0 {
		return types.LineSizeHeader, 0.9, "size_tokens"
	}
	if priceOnlyRe.MatchString(text) {
		return types.LinePriceOnly, 0.9, "price_only"
	}
	if strings.Contains(strings.ToUpper(text), "TOPPING") && prices == 0 {
		return types.LineToppingList, 0.8, "topping_vocab"
	}
	if modifierLeadRe.MatchString(text) && prices > 0 {
		return types.LineModifier, 0.8, "modifier_lead"
	}
	if infoLeadRe.MatchString(text) {
		return types.LineInfo, 0.75, "info_lead"
	}
	if isFlavorList(text) && prices == 0 {
		return types.LineInfo, 0.7, "flavor_list"
	}
	if prices == 0 && len(words) <= 5 {
		if vocab.IsKnownSectionHeading(text) {
			return types.LineHeading, 0.9, "known_section"
		}
		if isAllCaps(text) && len(words) <= 4 {
			return types.LineHeading, 0.85, "all_caps"
		}
	}
	if prices == 0 {
		first := words[0]
		startsLower := first[0] >= 'a' && first[0] <= 'z'
		if looksLikeFoodList(text) || (startsLower && strings.Contains(text, ",")) {
			return types.LineDescriptionOnly, 0.7, "food_list"
		}
	}
	if prices > 0 {
		return types.LineMenuItem, 0.85, "has_price"
	}
	if startsWithNameShape(words) {
		return types.LineMenuItem, 0.5, "name_shape"
	}
	return types.LineUnknown, 0.3, "no_signal"
}

// isFlavorList reports whether every comma segment is a known flavor, the
// shape of a wing-sauce option line.
func isFlavorList(s string) bool {
	parts := splitListSegments(s)
	if len(parts) < 3 {
		return false
	}
	for _, p := range parts {
		if !vocab.IsFlavor(p) {
			return false
		}
	}
	return true
}

// startsWithNameShape reports whether the line opens with capitalized words
// and no other structural signal, the shape of an item name whose price was
// lost.
func startsWithNameShape(words []string) bool {
	if len(words) == 0 || len(words) > 8 {
		return false
	}
	caps := 0
	for _, w := range words {
		if w[0] >= 'A' && w[0] <= 'Z' {
			caps++
		}
	}
	return caps*2 > len(words)
}

// Classify runs cleaning and per-line classification over every input line.
// Lines with interior column gaps are tagged multi_column and keep their
// segments for the resolver to flatten; grid headers keep the full line so
// column order survives.
func Classify(lines []types.Line) []*types.Classification {
	out := make([]*types.Classification, 0, len(lines))
	for _, line := range lines {
		segments := SplitColumns(line.Raw)
		cleaned := CleanLine(strings.Join(segments, " "))

		lt, conf, reason := ClassifyLine(cleaned)
		cls := &types.Classification{
			Index:        line.Index,
			Raw:          line.Raw,
			Cleaned:      cleaned,
			Type:         lt,
			OriginalType: lt,
			Confidence:   conf,
			Reason:       reason,
		}
		if len(segments) > 1 && lt != types.LineSizeHeader {
			cols := make([]string, 0, len(segments))
			for _, seg := range segments {
				if c := CleanLine(seg); c != "" {
					cols = append(cols, c)
				}
			}
			if len(cols) > 1 {
				cls.Type = types.LineMultiColumn
				cls.OriginalType = types.LineMultiColumn
				cls.Reason = "column_gap"
				cls.Columns = cols
			}
		}
		out = append(out, cls)
	}
	return out
}
