package stages

import (
	"context"
	"strings"
	"testing"

	"github.com/servline/menuscan/internal/crossitem"
	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/types"
)

func menuDoc(raw []string) *types.Document {
	doc := &types.Document{}
	for i, r := range raw {
		doc.Lines = append(doc.Lines, types.Line{Index: i, Raw: r})
	}
	return doc
}

func runPipeline(t *testing.T, doc *types.Document, opts Options) {
	t.Helper()
	reg := pipeline.NewRegistry()
	if err := RegisterAll(reg, opts); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	if err := reg.RunAll(context.Background(), doc); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
}

func findItem(items []*types.Item, name string) *types.Item {
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

func TestPipeline_FullMenu(t *testing.T) {
	doc := menuDoc([]string{
		"PIZZA",
		"Small Medium Large",
		"CHEESE PIZZA 8.99 10.99 12.99",
		"PEPPERONI PIZZA 9.99 11.99 13.99",
		"topped with mozzarella, tomato sauce",
		"SIDES",
		"FRENCH FRIES 2.99",
		"ZUCCHINI STICKS 5.99",
	})
	runPipeline(t, doc, Options{Crossitem: crossitem.DefaultConfig()})

	if len(doc.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(doc.Items))
	}

	t.Run("section headings become categories", func(t *testing.T) {
		cheese := findItem(doc.Items, "CHEESE PIZZA")
		if cheese == nil {
			t.Fatal("CHEESE PIZZA not found")
		}
		if cheese.Category != "PIZZA" {
			t.Errorf("category = %q, want PIZZA", cheese.Category)
		}
		fries := findItem(doc.Items, "FRENCH FRIES")
		if fries == nil || fries.Category != "SIDES" {
			t.Errorf("fries category wrong: %+v", fries)
		}
		if len(doc.Headings) != 2 {
			t.Errorf("headings = %v, want PIZZA and SIDES", doc.Headings)
		}
	})

	t.Run("size grid prices align to columns", func(t *testing.T) {
		cheese := findItem(doc.Items, "CHEESE PIZZA")
		if cheese == nil {
			t.Fatal("CHEESE PIZZA not found")
		}
		if len(cheese.Variants) != 3 {
			t.Fatalf("variants = %d, want 3", len(cheese.Variants))
		}
		wantLabels := []string{"Small", "Medium", "Large"}
		wantCents := []int{899, 1099, 1299}
		for i, v := range cheese.Variants {
			if v.Label != wantLabels[i] || v.PriceCents != wantCents[i] {
				t.Errorf("variant %d = %s/%d, want %s/%d",
					i, v.Label, v.PriceCents, wantLabels[i], wantCents[i])
			}
			if !v.FromGrid {
				t.Errorf("variant %d not marked from grid", i)
			}
		}
		if cheese.Grid == nil || cheese.Grid.SourceIndex != 1 {
			t.Errorf("grid ref = %+v", cheese.Grid)
		}
	})

	t.Run("grid context closes at the next section", func(t *testing.T) {
		fries := findItem(doc.Items, "FRENCH FRIES")
		if fries == nil {
			t.Fatal("FRENCH FRIES not found")
		}
		if fries.Grid != nil {
			t.Errorf("fries should not inherit the pizza grid: %+v", fries.Grid)
		}
		if len(fries.Variants) != 1 || fries.Variants[0].PriceCents != 299 {
			t.Errorf("fries variants = %+v", fries.Variants)
		}
	})

	t.Run("trailing description attaches to the item above", func(t *testing.T) {
		pep := findItem(doc.Items, "PEPPERONI PIZZA")
		if pep == nil {
			t.Fatal("PEPPERONI PIZZA not found")
		}
		if !strings.Contains(pep.Description, "mozzarella") {
			t.Errorf("description = %q", pep.Description)
		}
		if pep.Grammar.Components == nil {
			t.Fatal("components not extracted from attached description")
		}
		if pep.Grammar.Components.Sauce != "tomato sauce" {
			t.Errorf("sauce = %q", pep.Grammar.Components.Sauce)
		}
	})

	t.Run("every item is scored and tiered", func(t *testing.T) {
		for _, it := range doc.Items {
			if it.Semantic == nil || it.Tier == "" {
				t.Errorf("item %s not scored: tier=%q", it.Name, it.Tier)
			}
		}
		if doc.Summary == nil || doc.Summary.TotalItems != 4 {
			t.Errorf("summary = %+v", doc.Summary)
		}
	})

	t.Run("report is generated", func(t *testing.T) {
		if doc.Report == nil {
			t.Fatal("report missing")
		}
		if doc.Report.Coverage.TotalLines != len(doc.Classified) {
			t.Errorf("coverage lines = %d, want %d",
				doc.Report.Coverage.TotalLines, len(doc.Classified))
		}
		if doc.Report.Coverage.ItemsWithPrices != 4 {
			t.Errorf("priced items = %d, want 4", doc.Report.Coverage.ItemsWithPrices)
		}
	})
}

func TestPipeline_ApplyRepairs(t *testing.T) {
	doc := menuDoc([]string{
		"SIDES",
		"ONION RINGS 3.99",
	})
	runPipeline(t, doc, Options{Crossitem: crossitem.DefaultConfig(), ApplyRepairs: true})

	if doc.Report == nil || doc.Report.AutoRepairs == nil {
		t.Fatal("auto repair result missing from report")
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	doc := menuDoc(nil)
	runPipeline(t, doc, Options{Crossitem: crossitem.DefaultConfig()})

	if len(doc.Items) != 0 {
		t.Errorf("items = %d, want 0", len(doc.Items))
	}
	if doc.Report == nil || doc.Report.MenuConfidence.Grade != "D" {
		t.Fatalf("empty menu report = %+v", doc.Report)
	}
}
