package semantic

import (
	"fmt"
	"strings"

	"github.com/servline/menuscan/internal/types"
)

// Recommendation trigger thresholds on the raw signal scores.
const (
	nameQualityThreshold  = 0.60
	variantScoreThreshold = 0.50
	flagScoreThreshold    = 0.70
	reassignMinConfidence = 0.40
)

// priorityForTier maps a review tier to recommendation priority. High-tier
// items get no recommendations at all.
func priorityForTier(tier string) (string, bool) {
	switch tier {
	case types.TierReject:
		return types.PriorityCritical, true
	case types.TierLow:
		return types.PriorityImportant, true
	case types.TierMedium:
		return types.PrioritySuggested, true
	}
	return "", false
}

// titleCaseName converts an all-caps OCR name to title case, keeping
// short joiner words down.
func titleCaseName(name string) string {
	small := map[string]bool{"of": true, "and": true, "with": true, "the": true, "w/": true}
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		if i > 0 && small[w] {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Recommend builds the repair recommendations for one scored, tiered
// item. Recommendations point a reviewer at the weakest signal; only
// mechanical fixes (capitalization, category adoption) are auto-fixable.
func Recommend(it *types.Item) {
	priority, ok := priorityForTier(it.Tier)
	if !ok {
		return
	}
	if it.Semantic == nil {
		return
	}
	name := itemName(it)

	if it.Semantic.NameScore < nameQualityThreshold {
		if isNameGarbled(name) {
			it.Repairs = append(it.Repairs, &types.Repair{
				Type:         "garbled_name",
				Priority:     priority,
				SourceSignal: "name_quality",
				Message:      fmt.Sprintf("name %q looks like OCR garble and needs retyping", name),
			})
		} else {
			it.Repairs = append(it.Repairs, &types.Repair{
				Type:         "name_quality",
				Priority:     priority,
				SourceSignal: "name_quality",
				Message:      fmt.Sprintf("name %q is too weak to trust", name),
			})
		}
	} else if name != "" && name == strings.ToUpper(name) && len(name) > 2 {
		it.Repairs = append(it.Repairs, &types.Repair{
			Type:         "name_quality",
			Priority:     priority,
			SourceSignal: "name_quality",
			Message:      "all-caps name can be title-cased",
			AutoFixable:  true,
			ProposedFix:  map[string]any{"name": titleCaseName(name)},
		})
	}

	if it.Semantic.PriceScore < 1.0 {
		it.Repairs = append(it.Repairs, &types.Repair{
			Type:         "price_missing",
			Priority:     priority,
			SourceSignal: "price",
			Message:      "no readable price was found for this item",
		})
	}

	if it.CategorySuggestion != "" && it.SuggestionConfidence >= reassignMinConfidence {
		it.Repairs = append(it.Repairs, &types.Repair{
			Type:                 "category_reassignment",
			Priority:             priority,
			SourceSignal:         "category",
			Message:              fmt.Sprintf("neighbors place this item under %q", it.CategorySuggestion),
			AutoFixable:          true,
			ProposedFix:          map[string]any{"category": it.CategorySuggestion},
			SuggestionConfidence: it.SuggestionConfidence,
		})
	}

	if len(it.Variants) > 0 && it.Semantic.VariantScore < variantScoreThreshold {
		it.Repairs = append(it.Repairs, &types.Repair{
			Type:         "variant_standardization",
			Priority:     priority,
			SourceSignal: "variants",
			Message:      "variant labels or prices need manual alignment",
		})
	}

	if it.Semantic.FlagPenaltyScore < flagScoreThreshold {
		it.Repairs = append(it.Repairs, &types.Repair{
			Type:         "flag_attention",
			Priority:     priority,
			SourceSignal: "flags",
			Message:      fmt.Sprintf("%d validation flags need review", len(it.Flags)),
		})
	}
}

// RecommendAll builds recommendations for every item.
func RecommendAll(items []*types.Item) {
	for _, it := range items {
		Recommend(it)
	}
}

// ApplyAutoRepairs applies every unapplied auto-fixable recommendation,
// records a before/after audit entry per change, and re-scores the items.
// Calling it twice is a no-op the second time.
func ApplyAutoRepairs(items []*types.Item) *types.AutoRepairResult {
	result := &types.AutoRepairResult{}
	for _, it := range items {
		repaired := false
		for _, rec := range it.Repairs {
			if !rec.AutoFixable || rec.Applied || rec.ProposedFix == nil {
				continue
			}
			for field, newValue := range rec.ProposedFix {
				var old any
				switch field {
				case "name":
					old = it.Name
					it.Name = newValue.(string)
					if it.Grammar != nil && it.Grammar.Name != "" {
						it.Grammar.Name = newValue.(string)
					}
				case "category":
					old = it.Category
					it.Category = newValue.(string)
					it.CategorySuggestion = ""
					it.SuggestionConfidence = 0
				default:
					continue
				}
				it.AutoRepairs = append(it.AutoRepairs, types.RepairAudit{
					Field:    field,
					OldValue: old,
					NewValue: newValue,
				})
				rec.Applied = true
				repaired = true
				result.RepairsApplied++
			}
		}
		if repaired {
			result.TotalItemsRepaired++
			ScoreItem(it)
			AssignTier(it)
		}
	}
	return result
}
