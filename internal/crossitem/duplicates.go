package crossitem

import (
	"strings"

	"github.com/servline/menuscan/internal/types"
)

// dupPrefixes are marketing words stripped before duplicate comparison:
// "Homemade Lasagna" and "Lasagna" are the same dish.
var dupPrefixes = []string{"our", "the", "homemade", "fresh", "classic"}

func normalizeDupName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for changed := true; changed; {
		changed = false
		for _, p := range dupPrefixes {
			if strings.HasPrefix(n, p+" ") {
				stripped := strings.TrimSpace(strings.TrimPrefix(n, p+" "))
				if len(stripped) >= 3 {
					n = stripped
					changed = true
				}
			}
		}
	}
	return n
}

// samePrices reports whether two items share the same multiset of
// variant prices.
func samePrices(a, b *types.Item) bool {
	count := map[int]int{}
	for _, v := range a.Variants {
		count[v.PriceCents]++
	}
	for _, v := range b.Variants {
		count[v.PriceCents]--
	}
	for _, c := range count {
		if c != 0 {
			return false
		}
	}
	return true
}

func dupSeverity(a, b *types.Item) string {
	if samePrices(a, b) {
		return types.SeverityInfo
	}
	return types.SeverityWarn
}

func flagPair(a, b *types.Item, reason, severity string, similarity float64) {
	details := func(other *types.Item) map[string]any {
		d := map[string]any{
			"other_id":   other.ID,
			"other_name": other.Name,
		}
		if similarity > 0 {
			d["similarity"] = similarity
		}
		return d
	}
	a.AddFlag(reason, severity, details(b))
	b.AddFlag(reason, severity, details(a))
}

// checkDuplicates flags exact, normalized, and fuzzy duplicate names.
// Same-price duplicates are informational (menus repeat items across
// sections); different prices warn.
func checkDuplicates(items []*types.Item, cfg Config) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			an := strings.ToLower(strings.TrimSpace(a.Name))
			bn := strings.ToLower(strings.TrimSpace(b.Name))
			if an == "" || bn == "" {
				continue
			}

			if an == bn {
				flagPair(a, b, "cross_item_exact_duplicate", dupSeverity(a, b), 0)
				continue
			}

			na, nb := normalizeDupName(a.Name), normalizeDupName(b.Name)
			if na == nb && len(na) >= 3 {
				flagPair(a, b, "cross_item_duplicate_name", dupSeverity(a, b), 0)
				continue
			}

			if len(na) < cfg.FuzzyMinLength || len(nb) < cfg.FuzzyMinLength {
				continue
			}
			if sim := similarityRatio(na, nb); sim >= cfg.FuzzyThreshold {
				reason := "cross_item_fuzzy_duplicate_name"
				if samePrices(a, b) {
					reason = "cross_item_fuzzy_exact_duplicate"
				}
				flagPair(a, b, reason, dupSeverity(a, b), sim)
			}
		}
	}
}

// similarityRatio is a difflib-style ratio: twice the length of the
// longest common subsequence over the combined length.
func similarityRatio(a, b string) float64 {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	lcs := prev[lb]
	return 2 * float64(lcs) / float64(la+lb)
}
