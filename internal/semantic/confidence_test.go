package semantic

import (
	"math"
	"testing"

	"github.com/servline/menuscan/internal/types"
)

func scoredItem() *types.Item {
	return &types.Item{
		ID:   "test",
		Name: "Buffalo Wings",
		Grammar: &types.ParsedLine{
			Name:            "Buffalo Wings",
			PriceMentions:   []int{899},
			ParseConfidence: 0.85,
		},
		Variants: []*types.Variant{{
			Label: "Regular", Kind: types.VariantSize, PriceCents: 899,
			NormalizedSize: "Regular", GroupKey: "regular", Confidence: 0.85,
		}},
	}
}

func TestScoreItem(t *testing.T) {
	t.Run("healthy item scores high", func(t *testing.T) {
		it := scoredItem()
		ScoreItem(it)
		// 0.85*0.30 + 1.0*0.20 + 1.0*0.20 + 0.85*0.15 + 1.0*0.15 = 0.9325
		if math.Abs(it.Confidence-0.9325) > 1e-9 {
			t.Errorf("confidence = %v, want 0.9325", it.Confidence)
		}
		if it.Semantic == nil || it.Semantic.Final != it.Confidence {
			t.Errorf("audit detail missing or inconsistent: %+v", it.Semantic)
		}
	})

	t.Run("weights sum to one", func(t *testing.T) {
		total := weightGrammar + weightName + weightPrice + weightVariant + weightFlags
		if math.Abs(total-1.0) > 1e-9 {
			t.Errorf("weights sum to %v", total)
		}
	})

	t.Run("missing price drops the price signal", func(t *testing.T) {
		it := scoredItem()
		it.Variants = nil
		it.Grammar.PriceMentions = nil
		ScoreItem(it)
		if it.Semantic.PriceScore != 0.3 {
			t.Errorf("price score = %v, want 0.3", it.Semantic.PriceScore)
		}
	})

	t.Run("warn flags erode the flag signal", func(t *testing.T) {
		it := scoredItem()
		it.AddFlag("variant_price_inversion", types.SeverityWarn, nil)
		it.AddFlag("zero_price_variant", types.SeverityWarn, nil)
		ScoreItem(it)
		if math.Abs(it.Semantic.FlagPenaltyScore-0.70) > 1e-9 {
			t.Errorf("flag score = %v, want 0.70", it.Semantic.FlagPenaltyScore)
		}
	})

	t.Run("flag score floors at zero", func(t *testing.T) {
		it := scoredItem()
		for i := 0; i < 10; i++ {
			it.AddFlag("cross_item_price_outlier", types.SeverityWarn, nil)
		}
		ScoreItem(it)
		if it.Semantic.FlagPenaltyScore != 0 {
			t.Errorf("flag score = %v, want 0", it.Semantic.FlagPenaltyScore)
		}
	})

	t.Run("no variants uses neutral default", func(t *testing.T) {
		it := scoredItem()
		it.Variants = nil
		ScoreItem(it)
		if it.Semantic.VariantScore != 0.5 {
			t.Errorf("variant score = %v, want 0.5", it.Semantic.VariantScore)
		}
	})
}

func TestScoreName(t *testing.T) {
	cases := []struct {
		name string
		item string
		want float64
	}{
		{"empty name", "", 0.1},
		{"very short", "Ab", 0.3},
		{"short", "Gyro", 0.6},
		{"normal", "Buffalo Wings", 1.0},
		{"all caps", "BUFFALO WINGS", 0.9},
		{"garbled", "cessso srecc", 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := &types.Item{Name: tc.item}
			if got := scoreName(it); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("scoreName(%q) = %v, want %v", tc.item, got, tc.want)
			}
		})
	}
}

func TestIsNameGarbled(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"cessso srecc", true},
		{"eeeссс", false}, // fewer than 4 ascii letters
		{"Buffalo Wings", false},
		{"Margherita Pizza", false},
		{"Mozzarella Sticks", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNameGarbled(tc.name); got != tc.want {
				t.Errorf("isNameGarbled(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
