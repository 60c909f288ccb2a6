package semantic

import "github.com/servline/menuscan/internal/types"

// Tier cutoffs on semantic confidence.
const (
	tierHighCutoff   = 0.80
	tierMediumCutoff = 0.60
	tierLowCutoff    = 0.40
)

// Grade cutoffs on the share of high-tier items.
const (
	gradeACutoff = 0.80
	gradeBCutoff = 0.60
	gradeCCutoff = 0.40
)

// AssignTier sets the review tier from the item's semantic confidence.
// Only high-tier items skip human review; an unscored item is a hard
// reject, not a silent pass.
func AssignTier(it *types.Item) {
	if !it.Scored {
		it.Tier = types.TierReject
		it.NeedsReview = true
		return
	}
	switch {
	case it.Confidence >= tierHighCutoff:
		it.Tier = types.TierHigh
		it.NeedsReview = false
	case it.Confidence >= tierMediumCutoff:
		it.Tier = types.TierMedium
		it.NeedsReview = true
	case it.Confidence >= tierLowCutoff:
		it.Tier = types.TierLow
		it.NeedsReview = true
	default:
		it.Tier = types.TierReject
		it.NeedsReview = true
	}
}

// AssignTiers assigns tiers for every item.
func AssignTiers(items []*types.Item) {
	for _, it := range items {
		AssignTier(it)
	}
}

// Summarize aggregates item tiers into the menu-level summary and letter
// grade. The grade follows the high-tier share; an empty menu is a D.
func Summarize(items []*types.Item) *types.MenuSummary {
	s := &types.MenuSummary{TotalItems: len(items)}
	if len(items) == 0 {
		s.Grade = "D"
		return s
	}
	sum := 0.0
	for _, it := range items {
		sum += it.Confidence
		switch it.Tier {
		case types.TierHigh:
			s.HighCount++
		case types.TierMedium:
			s.MediumCount++
		case types.TierLow:
			s.LowCount++
		default:
			s.RejectCount++
		}
	}
	s.MeanConfidence = round4(sum / float64(len(items)))

	highShare := float64(s.HighCount) / float64(len(items))
	switch {
	case highShare >= gradeACutoff:
		s.Grade = "A"
	case highShare >= gradeBCutoff:
		s.Grade = "B"
	case highShare >= gradeCCutoff:
		s.Grade = "C"
	default:
		s.Grade = "D"
	}
	return s
}
