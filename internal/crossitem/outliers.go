package crossitem

import (
	"math"
	"sort"

	"github.com/servline/menuscan/internal/types"
)

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// checkPriceOutliers flags items priced far from their category's median.
// The threshold is multiplier x max(MAD, 10% of median), so flat-priced
// categories still tolerate small spreads. Categories with fewer than the
// minimum priced items are skipped; tiny pools make every price an
// outlier.
func checkPriceOutliers(items []*types.Item, cfg Config) {
	byCategory := map[string][]*types.Item{}
	for _, it := range items {
		if it.Category == "" || itemBasePrice(it) <= 0 {
			continue
		}
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	for _, group := range byCategory {
		if len(group) < cfg.OutlierMinItems {
			continue
		}
		prices := make([]float64, len(group))
		for i, it := range group {
			prices[i] = float64(itemBasePrice(it))
		}
		med := median(prices)
		deviations := make([]float64, len(prices))
		for i, p := range prices {
			deviations[i] = math.Abs(p - med)
		}
		mad := median(deviations)
		threshold := cfg.OutlierMADMultiplier * math.Max(mad, 0.10*med)

		for i, it := range group {
			if deviations[i] <= threshold {
				continue
			}
			direction := "above"
			if prices[i] < med {
				direction = "below"
			}
			it.AddFlag("cross_item_price_outlier", types.SeverityWarn, map[string]any{
				"price_cents":     int(prices[i]),
				"median_cents":    int(med),
				"threshold_cents": int(threshold),
				"direction":       direction,
				"category":        it.Category,
				"category_items":  len(group),
			})
		}
	}
}
