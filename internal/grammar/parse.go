package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

var (
	pricePosRe  = regexp.MustCompile(`\$?(\d{1,3})[.,](\d{2})`)
	modifierRe  = regexp.MustCompile(`(?i)\bw(?:/|ith)\s+[A-Za-z][A-Za-z ]{1,30}`)
	nameTrimSet = " .,:;-_"
)

// parsePriceCents converts one price match to integer cents. The comma
// form ("34,75") is an OCR artifact of the decimal point.
func parsePriceCents(dollars, cents string) int {
	d, _ := strconv.Atoi(dollars)
	c, _ := strconv.Atoi(cents)
	return d*100 + c
}

// extractPrices returns every price mention in cents, in source order, and
// the text with the price tokens removed.
func extractPrices(text string) ([]int, string) {
	var prices []int
	stripped := pricePosRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := pricePosRe.FindStringSubmatch(m)
		prices = append(prices, parsePriceCents(sub[1], sub[2]))
		return ""
	})
	return prices, stripped
}

// extractModifiers pulls "w/ X" phrases out of the text. The phrase is
// kept verbatim as a modifier; combo detection happens downstream.
func extractModifiers(text string) ([]string, string) {
	var mods []string
	stripped := modifierRe.ReplaceAllStringFunc(text, func(m string) string {
		mods = append(mods, strings.TrimSpace(m))
		return ""
	})
	return mods, stripped
}

// extractSizeMentions collects canonical size tokens in source order
// without altering the text. Two-word sizes are matched before their
// single-word remainders.
func extractSizeMentions(text string) []string {
	words := strings.Fields(text)
	var sizes []string
	for i := 0; i < len(words); i++ {
		if i+1 < len(words) {
			if canon := vocab.NormalizeSizeToken(words[i] + " " + words[i+1]); canon != "" {
				sizes = append(sizes, canon)
				i++
				continue
			}
		}
		if canon := vocab.NormalizeSizeToken(words[i]); canon != "" {
			sizes = append(sizes, canon)
		}
	}
	return sizes
}

// splitNameDescription separates the ALL-CAPS leading name from the
// mixed-case remainder. OCR menus set item names in caps and descriptions
// in sentence case; the boundary is the first token containing a lowercase
// letter.
func splitNameDescription(text string) (string, string) {
	words := strings.Fields(text)
	boundary := len(words)
	for i, w := range words {
		if strings.ContainsFunc(w, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
			boundary = i
			break
		}
	}
	// Abbreviation-prefix guard: a lone short caps word like "BBQ" opens a
	// name rather than being one. Split anyway when the remainder reads
	// like a description (lowercase start or an early comma).
	if boundary == 1 && isAbbrevPrefix(words[0]) {
		rest := strings.Join(words[1:], " ")
		if !startsLower(rest) && !hasEarlyComma(rest) {
			return strings.Trim(strings.Join(words, " "), nameTrimSet), ""
		}
	}

	name := strings.Trim(strings.Join(words[:boundary], " "), nameTrimSet)
	desc := strings.Trim(strings.Join(words[boundary:], " "), nameTrimSet)
	if name == "" && desc != "" && !startsLower(desc) {
		// Mixed-case line with no caps prefix: the whole head is the name
		// up to the first comma, the rest describes it.
		if idx := strings.Index(desc, ","); idx > 0 {
			head := strings.Trim(desc[:idx], nameTrimSet)
			if !strings.ContainsAny(head, "0123456789") && len(strings.Fields(head)) <= 5 {
				return head, strings.Trim(desc[idx+1:], nameTrimSet)
			}
		}
		return desc, ""
	}
	return name, desc
}

func startsLower(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

// isAbbrevPrefix reports whether a caps run is a single known ≤3-letter
// abbreviation.
func isAbbrevPrefix(w string) bool {
	trimmed := strings.Trim(w, nameTrimSet)
	if len(trimmed) == 0 || len(trimmed) > 3 {
		return false
	}
	for _, r := range trimmed {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return vocab.IsNameAbbreviation(trimmed)
}

func hasEarlyComma(s string) bool {
	idx := strings.Index(s, ",")
	return idx >= 0 && idx <= 15
}

// ParseItemLine decomposes a cleaned menu item line into its grammar:
// name, description, modifiers, size mentions, and price mentions in
// cents. Parse confidence grows with the number of recovered signals and
// caps at 0.95.
func ParseItemLine(cleaned string) *types.ParsedLine {
	prices, rest := extractPrices(cleaned)
	mods, rest := extractModifiers(rest)
	sizes := extractSizeMentions(rest)
	name, desc := splitNameDescription(rest)

	parsed := &types.ParsedLine{
		Name:          name,
		Description:   desc,
		Modifiers:     mods,
		SizeMentions:  sizes,
		PriceMentions: prices,
	}
	if desc != "" {
		parsed.Components = ExtractComponents(desc)
	}

	signals := 0
	if name != "" {
		signals++
	}
	if len(prices) > 0 {
		signals++
	}
	if desc != "" {
		signals++
	}
	if len(sizes) > 0 {
		signals++
	}
	if len(mods) > 0 {
		signals++
	}
	conf := 0.40 + 0.15*float64(signals)
	if conf > 0.95 {
		conf = 0.95
	}
	parsed.ParseConfidence = conf
	return parsed
}
