package crossitem

import (
	"fmt"
	"testing"

	"github.com/servline/menuscan/internal/types"
)

func pricedItem(name, category string, cents int) *types.Item {
	it := &types.Item{
		ID:       fmt.Sprintf("id-%s-%d", name, cents),
		Name:     name,
		Category: category,
	}
	if cents > 0 {
		it.Variants = []*types.Variant{{
			Label: "Regular", Kind: types.VariantSize, PriceCents: cents,
			NormalizedSize: "Regular", GroupKey: "regular", Confidence: 0.8,
		}}
	}
	return it
}

func TestCheckDuplicates(t *testing.T) {
	t.Run("exact duplicate with different prices warns", func(t *testing.T) {
		a := pricedItem("Greek Salad", "SALADS", 699)
		b := pricedItem("Greek Salad", "SALADS", 899)
		Check([]*types.Item{a, b}, Config{})
		for _, it := range []*types.Item{a, b} {
			found := false
			for _, f := range it.Flags {
				if f.Reason == "cross_item_exact_duplicate" && f.Severity == types.SeverityWarn {
					found = true
				}
			}
			if !found {
				t.Errorf("%s missing warn exact duplicate flag: %+v", it.Name, it.Flags)
			}
		}
	})

	t.Run("exact duplicate with same price informs", func(t *testing.T) {
		a := pricedItem("Greek Salad", "SALADS", 699)
		b := pricedItem("Greek Salad", "SALADS", 699)
		Check([]*types.Item{a, b}, Config{})
		for _, f := range a.Flags {
			if f.Reason == "cross_item_exact_duplicate" && f.Severity != types.SeverityInfo {
				t.Errorf("same-price duplicate severity = %s, want info", f.Severity)
			}
		}
	})

	t.Run("marketing prefix stripped", func(t *testing.T) {
		a := pricedItem("Homemade Lasagna", "PASTA", 1199)
		b := pricedItem("Lasagna", "PASTA", 1299)
		Check([]*types.Item{a, b}, Config{})
		if !a.HasFlag("cross_item_duplicate_name") {
			t.Errorf("prefix duplicate not flagged: %+v", a.Flags)
		}
	})

	t.Run("fuzzy duplicate caught", func(t *testing.T) {
		a := pricedItem("Buffalo Wings", "WINGS", 899)
		b := pricedItem("Bufalo Wings", "WINGS", 999)
		Check([]*types.Item{a, b}, Config{})
		if !a.HasFlag("cross_item_fuzzy_duplicate_name") {
			t.Errorf("fuzzy duplicate not flagged: %+v", a.Flags)
		}
	})

	t.Run("fuzzy duplicate same prices uses exact reason", func(t *testing.T) {
		a := pricedItem("Buffalo Wings", "WINGS", 899)
		b := pricedItem("Bufalo Wings", "WINGS", 899)
		Check([]*types.Item{a, b}, Config{})
		if !a.HasFlag("cross_item_fuzzy_exact_duplicate") {
			t.Errorf("fuzzy exact duplicate not flagged: %+v", a.Flags)
		}
	})

	t.Run("distinct names pass", func(t *testing.T) {
		a := pricedItem("Greek Salad", "SALADS", 699)
		b := pricedItem("Caesar Salad", "SALADS", 799)
		c := pricedItem("Garden Salad", "SALADS", 649)
		Check([]*types.Item{a, b, c}, Config{})
		for _, it := range []*types.Item{a, b, c} {
			for _, f := range it.Flags {
				if f.Reason == "cross_item_exact_duplicate" || f.Reason == "cross_item_duplicate_name" {
					t.Errorf("%s falsely flagged: %+v", it.Name, f)
				}
			}
		}
	})
}

func TestSimilarityRatio(t *testing.T) {
	if sim := similarityRatio("buffalo wings", "buffalo wings"); sim != 1.0 {
		t.Errorf("identical strings = %v, want 1.0", sim)
	}
	if sim := similarityRatio("buffalo wings", "bufalo wings"); sim < 0.82 {
		t.Errorf("near-identical strings = %v, want >= 0.82", sim)
	}
	if sim := similarityRatio("pizza", "salad"); sim >= 0.82 {
		t.Errorf("distinct strings = %v, want < 0.82", sim)
	}
}

func TestCheckPriceOutliers(t *testing.T) {
	t.Run("outlier far above median flagged", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Garlic Bread", "SIDES", 399),
			pricedItem("Fries", "SIDES", 349),
			pricedItem("Onion Rings", "SIDES", 449),
			pricedItem("Truffle Platter", "SIDES", 2999),
		}
		Check(items, Config{})
		flagged := items[3]
		found := false
		for _, f := range flagged.Flags {
			if f.Reason == "cross_item_price_outlier" {
				found = true
				if f.Details["direction"] != "above" {
					t.Errorf("direction = %v, want above", f.Details["direction"])
				}
			}
		}
		if !found {
			t.Errorf("outlier not flagged: %+v", flagged.Flags)
		}
		for _, it := range items[:3] {
			if it.HasFlag("cross_item_price_outlier") {
				t.Errorf("%s falsely flagged as outlier", it.Name)
			}
		}
	})

	t.Run("small pools skipped", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Fries", "SIDES", 349),
			pricedItem("Caviar", "SIDES", 9999),
		}
		Check(items, Config{})
		for _, it := range items {
			if it.HasFlag("cross_item_price_outlier") {
				t.Errorf("two-item pool produced outlier flag on %s", it.Name)
			}
		}
	})
}

func TestSuggestCategories(t *testing.T) {
	t.Run("uncategorized item inherits neighborhood", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Veggie Pizza", "PIZZA", 1099),
			pricedItem("House Special", "", 1299),
			pricedItem("Meat Lovers", "PIZZA", 1399),
		}
		Check(items, Config{})
		orphan := items[2]
		if orphan.CategorySuggestion != "PIZZA" {
			t.Errorf("suggestion = %q, want PIZZA", orphan.CategorySuggestion)
		}
		if orphan.SuggestionConfidence < 0.30 {
			t.Errorf("suggestion confidence = %v, want >= 0.30", orphan.SuggestionConfidence)
		}
		if orphan.Category != "" {
			t.Error("suggestion must not reassign the category")
		}
	})

	t.Run("conflicting name keyword blocks suggestion", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Buffalo Wings Special", "", 899),
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Veggie Pizza", "PIZZA", 1099),
			pricedItem("Meat Lovers", "PIZZA", 1399),
		}
		Check(items, Config{})
		if items[0].CategorySuggestion != "" {
			t.Errorf("wings item suggested %q despite name conflict", items[0].CategorySuggestion)
		}
	})

	t.Run("stranded item gets a reassignment proposal", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Cheese Pizza", "PIZZA", 1299),
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Sicilian Special", "WINGS", 1399),
			pricedItem("Hawaiian Pizza", "PIZZA", 1349),
			pricedItem("Supreme Pizza", "PIZZA", 1599),
		}
		Check(items, Config{})
		stray := items[2]
		if stray.CategorySuggestion != "PIZZA" {
			t.Fatalf("suggestion = %q, want PIZZA: %+v", stray.CategorySuggestion, stray.Flags)
		}
		// Full agreement 0.40, "sicilian" keyword +0.20, price fits the
		// pizza band but not the wings... both bands fit 1399, so the
		// price signal stays neutral.
		if got := stray.SuggestionConfidence; got < 0.55 || got > 0.65 {
			t.Errorf("suggestion confidence = %v, want 0.60", got)
		}
		if !stray.HasFlag("cross_item_category_suggestion") {
			t.Error("reassignment proposal should carry an audit flag")
		}
	})

	t.Run("keyword guard keeps clearly named items in place", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Cheese Pizza", "PIZZA", 1299),
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Buffalo Boneless Wings", "WINGS", 1099),
			pricedItem("Hawaiian Pizza", "PIZZA", 1349),
			pricedItem("Supreme Pizza", "PIZZA", 1599),
		}
		Check(items, Config{})
		if got := items[2].CategorySuggestion; got != "" {
			t.Errorf("two wing keywords in the name should block reassignment, got %q", got)
		}
	})

	t.Run("price fitting the current category suppresses a weak proposal", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Fountain Soda", "BEVERAGES", 199),
			pricedItem("Iced Tea", "BEVERAGES", 229),
			pricedItem("House Platter", "PIZZA", 1299),
			pricedItem("Lemonade", "BEVERAGES", 249),
			pricedItem("Root Beer Float", "BEVERAGES", 399),
		}
		Check(items, Config{})
		// Agreement alone gives 0.40, but $12.99 fits the pizza band and
		// not the beverage band, pulling the score below the threshold.
		if got := items[2].CategorySuggestion; got != "" {
			t.Errorf("price-band penalty should suppress the proposal, got %q", got)
		}
	})
}

func TestCheckCategoryIsolation(t *testing.T) {
	t.Run("unanimous neighborhood", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Veggie Pizza", "PIZZA", 1099),
			pricedItem("Tiramisu", "DESSERTS", 599),
			pricedItem("Meat Lovers", "PIZZA", 1399),
			pricedItem("Hawaiian", "PIZZA", 1299),
		}
		Check(items, Config{})
		isolated := items[2]
		found := false
		for _, f := range isolated.Flags {
			if f.Reason == "cross_item_category_isolated" {
				found = true
				if f.Details["neighbor_category"] != "PIZZA" {
					t.Errorf("neighbor category = %v, want PIZZA", f.Details["neighbor_category"])
				}
				if f.Severity != types.SeverityInfo {
					t.Errorf("isolation severity = %s, want info", f.Severity)
				}
			}
		}
		if !found {
			t.Errorf("isolated item not flagged: %+v", isolated.Flags)
		}
	})

	t.Run("mixed neighborhood still isolates", func(t *testing.T) {
		// Neighbors disagree among themselves, but none of them share the
		// item's category, which is what isolation means.
		items := []*types.Item{
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Greek Salad", "SALADS", 899),
			pricedItem("Tiramisu", "DESSERTS", 599),
			pricedItem("Meat Lovers", "PIZZA", 1399),
			pricedItem("Hawaiian", "PIZZA", 1299),
		}
		Check(items, Config{})
		if !items[2].HasFlag("cross_item_category_isolated") {
			t.Errorf("item differing from every neighbor not flagged: %+v", items[2].Flags)
		}
	})

	t.Run("one matching neighbor clears the item", func(t *testing.T) {
		items := []*types.Item{
			pricedItem("Pepperoni Pizza", "PIZZA", 1199),
			pricedItem("Tiramisu", "DESSERTS", 599),
			pricedItem("Cannoli", "DESSERTS", 499),
			pricedItem("Meat Lovers", "PIZZA", 1399),
			pricedItem("Hawaiian", "PIZZA", 1299),
		}
		Check(items, Config{})
		if items[1].HasFlag("cross_item_category_isolated") {
			t.Errorf("item with a same-category neighbor flagged: %+v", items[1].Flags)
		}
	})
}

func TestCheckCategoryCoherence(t *testing.T) {
	items := []*types.Item{
		pricedItem("Fries", "SIDES", 1899),
		pricedItem("Onion Rings", "SIDES", 2099),
		pricedItem("Coleslaw", "SIDES", 1999),
		pricedItem("Chicken Dinner", "ENTREES", 999),
		pricedItem("Fish Dinner", "ENTREES", 1099),
		pricedItem("Steak Dinner", "ENTREES", 899),
	}
	Check(items, Config{})

	above := false
	for _, f := range items[0].Flags {
		if f.Reason == "cross_category_price_above" {
			above = true
			if f.Details["compared_category"] != "entrees" {
				t.Errorf("compared_category = %v, want entrees", f.Details["compared_category"])
			}
			if f.Severity != types.SeverityWarn {
				t.Errorf("coherence severity = %s, want warn", f.Severity)
			}
		}
	}
	if !above {
		t.Errorf("sides priced above entrees not flagged: %+v", items[0].Flags)
	}
	below := false
	for _, f := range items[3].Flags {
		if f.Reason == "cross_category_price_below" {
			below = true
			if f.Severity != types.SeverityWarn {
				t.Errorf("coherence severity = %s, want warn", f.Severity)
			}
		}
	}
	if !below {
		t.Errorf("entree not flagged below: %+v", items[3].Flags)
	}
}

func TestCheckCategoryCoherence_OneFlagPerDirection(t *testing.T) {
	// Sides sit above both entrees and pizza; only the larger of the two
	// gaps (entrees) should produce a flag on each side item.
	items := []*types.Item{
		pricedItem("Fries", "SIDES", 1899),
		pricedItem("Onion Rings", "SIDES", 2099),
		pricedItem("Coleslaw", "SIDES", 1999),
		pricedItem("Chicken Dinner", "ENTREES", 999),
		pricedItem("Fish Dinner", "ENTREES", 1099),
		pricedItem("Steak Dinner", "ENTREES", 899),
		pricedItem("Cheese Pizza", "PIZZA", 1399),
		pricedItem("Pepperoni Pizza", "PIZZA", 1499),
		pricedItem("Veggie Pizza", "PIZZA", 1599),
	}
	Check(items, Config{})

	var aboveFlags []*types.Flag
	for _, f := range items[0].Flags {
		if f.Reason == "cross_category_price_above" {
			aboveFlags = append(aboveFlags, f)
		}
	}
	if len(aboveFlags) != 1 {
		t.Fatalf("want exactly 1 above flag, got %d: %+v", len(aboveFlags), aboveFlags)
	}
	if got := aboveFlags[0].Details["compared_category"]; got != "entrees" {
		t.Errorf("compared_category = %v, want entrees (the larger gap)", got)
	}
}

func TestCheckVariantConsistency(t *testing.T) {
	sized := func(name string, prices ...int) *types.Item {
		it := &types.Item{ID: name, Name: name, Category: "PIZZA"}
		labels := []string{"Sm", "Med", "Lg", "XLg"}
		norms := []string{"S", "M", "L", "XL"}
		for i, cents := range prices {
			it.Variants = append(it.Variants, &types.Variant{
				Label: labels[i], Kind: types.VariantSize, PriceCents: cents,
				NormalizedSize: norms[i], GroupKey: norms[i], Confidence: 0.85,
			})
		}
		return it
	}

	t.Run("two below the mode is an outlier", func(t *testing.T) {
		items := []*types.Item{
			sized("Cheese", 999, 1299, 1599),
			sized("Pepperoni", 1099, 1399, 1699),
			sized("Veggie", 1049, 1349, 1649),
			sized("Hawaiian", 1199),
		}
		Check(items, Config{})

		if !items[3].HasFlag("cross_item_variant_count_outlier") {
			t.Errorf("count outlier not flagged: %+v", items[3].Flags)
		}
		for _, it := range items[:3] {
			if it.HasFlag("cross_item_variant_count_outlier") {
				t.Errorf("%s falsely flagged as count outlier", it.Name)
			}
		}
	})

	t.Run("one below the mode is tolerated", func(t *testing.T) {
		items := []*types.Item{
			sized("Cheese", 999, 1299, 1599),
			sized("Pepperoni", 1099, 1399, 1699),
			sized("Veggie", 1049, 1349, 1649),
			sized("Hawaiian", 1199, 1499),
		}
		Check(items, Config{})

		if items[3].HasFlag("cross_item_variant_count_outlier") {
			t.Errorf("item one size short falsely flagged: %+v", items[3].Flags)
		}
	})

	t.Run("above the mode is not an outlier", func(t *testing.T) {
		items := []*types.Item{
			sized("Cheese", 999, 1299, 1599),
			sized("Pepperoni", 1099, 1399, 1699),
			sized("Veggie", 1049, 1349, 1649),
			sized("Works", 1199, 1499, 1799, 2099),
		}
		Check(items, Config{})

		if items[3].HasFlag("cross_item_variant_count_outlier") {
			t.Errorf("item with an extra size falsely flagged: %+v", items[3].Flags)
		}
	})
}
