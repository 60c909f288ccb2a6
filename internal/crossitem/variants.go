package crossitem

import (
	"sort"
	"strings"

	"github.com/servline/menuscan/internal/types"
)

func variantKeySet(it *types.Item) string {
	keys := make([]string, len(it.Variants))
	for i, v := range it.Variants {
		keys[i] = v.GroupKey
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// checkVariantConsistency compares variant sets across items of the same
// category. In a sized section most items share one grid, so a deviating
// count or label set is worth a look; both findings are informational
// because mixed sections are legitimate.
func checkVariantConsistency(items []*types.Item) {
	byCategory := map[string][]*types.Item{}
	for _, it := range items {
		if it.Category == "" || len(it.Variants) == 0 {
			continue
		}
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	for _, group := range byCategory {
		if len(group) < 3 {
			continue
		}

		// The expected count is the mode among multi-variant items, so a
		// section of single-price items never votes a sized item down.
		countVotes := map[int]int{}
		voters := 0
		for _, it := range group {
			if len(it.Variants) >= 2 {
				countVotes[len(it.Variants)]++
				voters++
			}
		}
		domCount, domVotes := 0, 0
		for c, n := range countVotes {
			if n > domVotes {
				domCount, domVotes = c, n
			}
		}
		// A count is only "expected" when most of the voters agree.
		if domVotes*2 <= voters {
			continue
		}

		for _, it := range group {
			// Missing one size happens; missing two or more suggests the
			// grid never reached this item.
			if len(it.Variants) <= domCount-2 {
				it.AddFlag("cross_item_variant_count_outlier", types.SeverityInfo, map[string]any{
					"variant_count":  len(it.Variants),
					"expected_count": domCount,
					"category":       it.Category,
				})
			}
		}

		keyVotes := map[string]int{}
		for _, it := range group {
			if len(it.Variants) == domCount {
				keyVotes[variantKeySet(it)]++
			}
		}
		domKeys, domKeyVotes := "", 0
		for k, n := range keyVotes {
			if n > domKeyVotes {
				domKeys, domKeyVotes = k, n
			}
		}
		if domKeyVotes < 2 {
			continue
		}
		for _, it := range group {
			if len(it.Variants) == domCount && variantKeySet(it) != domKeys {
				it.AddFlag("cross_item_variant_label_mismatch", types.SeverityInfo, map[string]any{
					"labels":   variantKeySet(it),
					"expected": domKeys,
					"category": it.Category,
				})
			}
		}
	}
}
