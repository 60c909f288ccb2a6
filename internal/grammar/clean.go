// Package grammar turns raw OCR lines into structured menu content: text
// cleaning, per-line classification, contextual reclassification over the
// whole page, and decomposition of item lines into name, description,
// prices, sizes, and components.
package grammar

import (
	"regexp"
	"strings"

	"github.com/servline/menuscan/internal/vocab"
)

// Characters OCR engines hallucinate when inventing text from noise.
// Real garble runs are dominated by them.
const garbleChars = "secrnotvw"

var (
	dotLeaderRe  = regexp.MustCompile(`\.{3,}`)
	priceTokenRe = regexp.MustCompile(`^\$?\d{1,3}[.,]\d{2}$`)
)

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

// isMixedJunk reports whether a token interleaves letters with two or more
// digits without being a price or size, the signature of OCR misreads like
// "F590". Single-digit mixes ("7UP") pass.
func isMixedJunk(tok string) bool {
	var letters, digits int
	for _, r := range tok {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		case r >= '0' && r <= '9':
			digits++
		default:
			return false
		}
	}
	return letters > 0 && digits >= 2
}

func garbleRatio(s string) float64 {
	var alpha, hits int
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			alpha++
			if strings.ContainsRune(garbleChars, r) {
				hits++
			}
		}
	}
	if alpha == 0 {
		return 0
	}
	return float64(hits) / float64(alpha)
}

func uniqueRatio(s string) float64 {
	seen := map[rune]bool{}
	var alpha int
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			alpha++
			seen[r] = true
		}
	}
	if alpha == 0 {
		return 1
	}
	return float64(len(seen)) / float64(alpha)
}

// isGarbleToken applies the dual-signal garble test: a token is garble when
// at least two independent signals fire. Single signals are too common in
// real food words (consider "cheese").
func isGarbleToken(tok string) bool {
	alpha := 0
	for _, r := range tok {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			alpha++
		}
	}
	if alpha < 3 {
		return false
	}
	if vocab.IsKnownWord(tok) {
		return false
	}
	signals := 0
	if hasTripleRepeat(tok) {
		signals++
	}
	if garbleRatio(tok) >= 0.55 {
		signals++
	}
	if uniqueRatio(tok) <= 0.45 {
		signals++
	}
	if len(tok) >= 12 {
		signals++
	}
	return signals >= 2
}

// isShortNoise catches residue the garble test misses: stray "00" tokens,
// digit-letter junk that is neither a price nor a size, and lowercase
// letter soup built almost entirely from hallucination characters.
func isShortNoise(tok string) bool {
	stripped := strings.Trim(tok, ".,;:-")
	if stripped == "" {
		return tok != ""
	}
	if stripped == "00" {
		return true
	}
	if priceTokenRe.MatchString(stripped) || vocab.IsSizeToken(stripped) {
		return false
	}
	if isMixedJunk(stripped) {
		return true
	}
	if len(stripped) >= 6 &&
		stripped == strings.ToLower(stripped) &&
		garbleRatio(stripped) >= 0.70 &&
		!vocab.IsKnownWord(stripped) {
		return true
	}
	return false
}

// CleanLine strips garble spans, short noise, and dot leaders from a raw
// OCR line, corrects known typo tokens, and collapses whitespace. Cleaning
// never invents text: every surviving token appeared in the input.
func CleanLine(raw string) string {
	text := dotLeaderRe.ReplaceAllString(raw, " ")
	var kept []string
	for _, tok := range strings.Fields(text) {
		if isGarbleToken(tok) || isShortNoise(tok) {
			continue
		}
		kept = append(kept, vocab.CorrectTypo(tok))
	}
	return strings.Join(kept, " ")
}
