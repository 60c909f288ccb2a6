// Package crossitem runs document-level consistency checks over the full
// item list: duplicate names, per-category price outliers, category
// placement, cross-category price coherence, and variant-set uniformity.
// Checks only read items and attach flags or suggestions; they never alter
// names, prices, or variants.
package crossitem

import (
	"github.com/servline/menuscan/internal/types"
)

// Config carries the tunable thresholds. Zero values mean "use default";
// DefaultConfig returns the standard set.
type Config struct {
	FuzzyThreshold          float64
	FuzzyMinLength          int
	OutlierMADMultiplier    float64
	OutlierMinItems         int
	IsolationWindow         int
	SuggestionWindow        int
	SuggestionMinConfidence float64
	CoherenceMinGapRatio    float64
}

// DefaultConfig returns the thresholds the checks were tuned with.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold:          0.82,
		FuzzyMinLength:          4,
		OutlierMADMultiplier:    3.0,
		OutlierMinItems:         3,
		IsolationWindow:         2,
		SuggestionWindow:        3,
		SuggestionMinConfidence: 0.30,
		CoherenceMinGapRatio:    0.30,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FuzzyThreshold == 0 {
		c.FuzzyThreshold = d.FuzzyThreshold
	}
	if c.FuzzyMinLength == 0 {
		c.FuzzyMinLength = d.FuzzyMinLength
	}
	if c.OutlierMADMultiplier == 0 {
		c.OutlierMADMultiplier = d.OutlierMADMultiplier
	}
	if c.OutlierMinItems == 0 {
		c.OutlierMinItems = d.OutlierMinItems
	}
	if c.IsolationWindow == 0 {
		c.IsolationWindow = d.IsolationWindow
	}
	if c.SuggestionWindow == 0 {
		c.SuggestionWindow = d.SuggestionWindow
	}
	if c.SuggestionMinConfidence == 0 {
		c.SuggestionMinConfidence = d.SuggestionMinConfidence
	}
	if c.CoherenceMinGapRatio == 0 {
		c.CoherenceMinGapRatio = d.CoherenceMinGapRatio
	}
	return c
}

// Check runs every cross-item check in order. Items are expected in page
// order; neighbor-window checks rely on it.
func Check(items []*types.Item, cfg Config) {
	cfg = cfg.withDefaults()
	if len(items) == 0 {
		return
	}
	checkDuplicates(items, cfg)
	checkPriceOutliers(items, cfg)
	checkCategoryIsolation(items, cfg)
	suggestCategories(items, cfg)
	checkCategoryCoherence(items, cfg)
	checkVariantConsistency(items)
}

// itemBasePrice returns the item's representative price: its lowest
// positive variant price. Zero means unpriced.
func itemBasePrice(it *types.Item) int {
	best := 0
	for _, v := range it.Variants {
		if v.PriceCents > 0 && (best == 0 || v.PriceCents < best) {
			best = v.PriceCents
		}
	}
	return best
}
