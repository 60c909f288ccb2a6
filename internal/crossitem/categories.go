package crossitem

import (
	"strings"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

const (
	suggestionMinNeighbors = 3
	suggestionMinAgreement = 0.5
	keywordGuardMatches    = 2

	agreementWeight       = 0.40
	keywordAdjust         = 0.20
	priceBandAdjust       = 0.15
	lowConfidenceBoost    = 0.10
	highConfidencePenalty = 0.15
)

// neighborVotes tallies the categories of the items within the window
// around index i, excluding the item itself.
func neighborVotes(items []*types.Item, i, window int) map[string]int {
	votes := map[string]int{}
	for j := i - window; j <= i+window; j++ {
		if j < 0 || j >= len(items) || j == i {
			continue
		}
		if c := items[j].Category; c != "" {
			votes[c]++
		}
	}
	return votes
}

// dominantNeighborCategory finds the most common category among the items
// within the window around index i, excluding the item itself. Returns the
// category, its vote count, and the number of categorized neighbors.
func dominantNeighborCategory(items []*types.Item, i, window int) (string, int, int) {
	votes := neighborVotes(items, i, window)
	best, bestN, total := "", 0, 0
	for c, n := range votes {
		total += n
		if n > bestN {
			best, bestN = c, n
		}
	}
	return best, bestN, total
}

// checkCategoryIsolation flags a categorized item whose category differs
// from every categorized neighbor in the window: the item probably sits
// under the wrong heading after a column merge. Two categorized neighbors
// are required to judge.
func checkCategoryIsolation(items []*types.Item, cfg Config) {
	for i, it := range items {
		if it.Category == "" {
			continue
		}
		votes := neighborVotes(items, i, cfg.IsolationWindow)
		if votes[it.Category] > 0 {
			continue
		}
		dominant, dominantN, total := "", 0, 0
		for c, n := range votes {
			total += n
			if n > dominantN {
				dominant, dominantN = c, n
			}
		}
		if total < 2 || dominant == "" {
			continue
		}
		it.AddFlag("cross_item_category_isolated", types.SeverityInfo, map[string]any{
			"category":          it.Category,
			"neighbor_category": dominant,
			"neighbor_votes":    dominantN,
		})
	}
}

// suggestCategories proposes a category from the neighborhood: either a
// replacement for an item stranded under the wrong heading, or an initial
// one for an uncategorized item. Neighbor agreement carries weight 0.40;
// keyword fit, price-band fit, and the item's own parse confidence adjust
// the score up or down. The proposal is recorded on the item, not applied;
// reassignment is the repair stage's call.
func suggestCategories(items []*types.Item, cfg Config) {
	for i, it := range items {
		dominant, votes, total := dominantNeighborCategory(items, i, cfg.SuggestionWindow)
		if total < suggestionMinNeighbors || dominant == "" || dominant == it.Category {
			continue
		}
		agreement := float64(votes) / float64(total)
		if agreement < suggestionMinAgreement {
			continue
		}

		// A name carrying 2+ keywords of its current category is
		// clearly placed; leave it alone.
		currentMatches := vocab.CategoryKeywordMatches(it.Name, it.Category)
		if currentMatches >= keywordGuardMatches {
			continue
		}
		if namesOtherSection(it.Name, dominant) {
			continue
		}

		score := agreementWeight * agreement
		suggestedMatches := vocab.CategoryKeywordMatches(it.Name, dominant)
		if suggestedMatches > currentMatches {
			score += keywordAdjust
		} else if currentMatches > suggestedMatches {
			score -= keywordAdjust
		}

		if price := itemBasePrice(it); price > 0 {
			fitsSuggested, knownSuggested := vocab.InCategoryPriceBand(price, dominant)
			fitsCurrent, knownCurrent := vocab.InCategoryPriceBand(price, it.Category)
			inSuggested := knownSuggested && fitsSuggested
			inCurrent := knownCurrent && fitsCurrent
			if inSuggested && !inCurrent {
				score += priceBandAdjust
			} else if inCurrent && !inSuggested {
				score -= priceBandAdjust
			}
		}

		parseConf := 0.5
		if it.Grammar != nil {
			parseConf = it.Grammar.ParseConfidence
		}
		if parseConf < 0.5 {
			score += lowConfidenceBoost
		} else if parseConf >= 0.8 {
			score -= highConfidencePenalty
		}

		if score < cfg.SuggestionMinConfidence {
			continue
		}
		if score > 1 {
			score = 1
		}
		it.CategorySuggestion = dominant
		it.SuggestionConfidence = score
		it.AddFlag("cross_item_category_suggestion", types.SeverityInfo, map[string]any{
			"current_category":      it.Category,
			"suggested_category":    dominant,
			"suggestion_confidence": score,
			"neighbor_agreement":    agreement,
			"neighbor_count":        total,
		})
	}
}

// namesOtherSection reports whether the item name contains a section
// keyword that contradicts the suggested category.
func namesOtherSection(name, suggested string) bool {
	sugLow := strings.ToLower(suggested)
	for _, w := range strings.Fields(strings.ToLower(name)) {
		w = strings.Trim(w, ".,!:;")
		if !vocab.IsKnownSectionHeading(w) {
			continue
		}
		if !strings.Contains(sugLow, w) && !strings.Contains(w, strings.TrimSuffix(sugLow, "s")) {
			return true
		}
	}
	return false
}
