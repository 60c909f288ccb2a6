package crossitem

import (
	"strings"

	"github.com/servline/menuscan/internal/types"
)

// priceRule says items in the Cheaper section class should sit below
// items in the Pricier class.
type priceRule struct {
	Cheaper string
	Pricier string
}

// crossCategoryRules encode menu economics: sides under entrees, drinks
// under everything solid, starters under mains.
var crossCategoryRules = []priceRule{
	{"sides", "entrees"},
	{"sides", "dinners"},
	{"sides", "sandwiches"},
	{"sides", "burgers"},
	{"sides", "pizza"},
	{"sides", "pasta"},
	{"appetizers", "entrees"},
	{"appetizers", "dinners"},
	{"appetizers", "pizza"},
	{"soups", "entrees"},
	{"soups", "sandwiches"},
	{"salads", "entrees"},
	{"beverages", "appetizers"},
	{"beverages", "sandwiches"},
	{"beverages", "pizza"},
	{"beverages", "entrees"},
}

// categoryClass maps a raw category heading to the rule vocabulary:
// "GOURMET PIZZA" participates in rules as "pizza".
func categoryClass(category string) string {
	low := strings.ToLower(category)
	classes := []string{
		"sides", "appetizers", "soups", "salads", "beverages",
		"entrees", "dinners", "sandwiches", "burgers", "pizza", "pasta",
	}
	for _, c := range classes {
		if strings.Contains(low, c) || strings.Contains(low, strings.TrimSuffix(c, "s")) {
			return c
		}
	}
	return ""
}

// coherenceViolation records the worst rule inversion seen for a class
// in one direction.
type coherenceViolation struct {
	otherClass  string
	gapRatio    float64
	ownMedian   float64
	otherMedian float64
}

// checkCategoryCoherence compares category price medians against the
// directional rules. When a "cheap" class prices above a "pricey" class
// by at least the minimum gap ratio, every item in both classes is
// flagged; the section medians, not individual items, are inverted.
// Each item carries at most one flag per direction, for the rule with
// the largest gap.
func checkCategoryCoherence(items []*types.Item, cfg Config) {
	medians := map[string]float64{}
	members := map[string][]*types.Item{}
	for _, it := range items {
		class := categoryClass(it.Category)
		if class == "" || itemBasePrice(it) <= 0 {
			continue
		}
		members[class] = append(members[class], it)
	}
	for class, group := range members {
		prices := make([]float64, len(group))
		for i, it := range group {
			prices[i] = float64(itemBasePrice(it))
		}
		medians[class] = median(prices)
	}

	worstAbove := map[string]coherenceViolation{}
	worstBelow := map[string]coherenceViolation{}
	for _, rule := range crossCategoryRules {
		cheapMed, okC := medians[rule.Cheaper]
		priceyMed, okP := medians[rule.Pricier]
		if !okC || !okP || priceyMed <= 0 {
			continue
		}
		gap := cheapMed - priceyMed
		ratio := gap / priceyMed
		if gap <= 0 || ratio < cfg.CoherenceMinGapRatio {
			continue
		}
		if prev, ok := worstAbove[rule.Cheaper]; !ok || ratio > prev.gapRatio {
			worstAbove[rule.Cheaper] = coherenceViolation{
				otherClass: rule.Pricier, gapRatio: ratio,
				ownMedian: cheapMed, otherMedian: priceyMed,
			}
		}
		if prev, ok := worstBelow[rule.Pricier]; !ok || ratio > prev.gapRatio {
			worstBelow[rule.Pricier] = coherenceViolation{
				otherClass: rule.Cheaper, gapRatio: ratio,
				ownMedian: priceyMed, otherMedian: cheapMed,
			}
		}
	}

	for class, v := range worstAbove {
		for _, it := range members[class] {
			it.AddFlag("cross_category_price_above", types.SeverityWarn, map[string]any{
				"category":          it.Category,
				"compared_category": v.otherClass,
				"median_cents":      int(v.ownMedian),
				"compared_median":   int(v.otherMedian),
			})
		}
	}
	for class, v := range worstBelow {
		for _, it := range members[class] {
			it.AddFlag("cross_category_price_below", types.SeverityWarn, map[string]any{
				"category":          it.Category,
				"compared_category": v.otherClass,
				"median_cents":      int(v.ownMedian),
				"compared_median":   int(v.otherMedian),
			})
		}
	}
}
