package grammar

import (
	"testing"

	"github.com/servline/menuscan/internal/types"
)

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want types.LineType
	}{
		{"item with price", "BUFFALO WINGS 8.99", types.LineMenuItem},
		{"item with two prices", "CHEESE PIZZA 9.99 12.99", types.LineMenuItem},
		{"known section", "APPETIZERS", types.LineHeading},
		{"all caps heading", "HOUSE FAVORITES", types.LineHeading},
		{"size header words", "Sm Med Lg", types.LineSizeHeader},
		{"size header inches", `10" 12" 16"`, types.LineSizeHeader},
		{"size header mixed", `10" Mini 16" Lrg Family Size`, types.LineSizeHeader},
		{"price only", "......8.99", types.LinePriceOnly},
		{"price only with dollar", "$12.50", types.LinePriceOnly},
		{"description", "lettuce, tomato, onions, mayo", types.LineDescriptionOnly},
		{"modifier", "Add Chicken 2.00", types.LineModifier},
		{"extra modifier", "Extra Cheese 1.50", types.LineModifier},
		{"topping list", "MEAT TOPPINGS", types.LineToppingList},
		{"info choice", "Choice of fries or salad", types.LineInfo},
		{"info served", "Served with garlic bread", types.LineInfo},
		{"flavor list", "Mild, Medium, Hot, BBQ", types.LineInfo},
		{"empty", "", types.LineUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, conf, _ := ClassifyLine(tc.line)
			if got != tc.want {
				t.Errorf("ClassifyLine(%q) = %v, want %v", tc.line, got, tc.want)
			}
			if conf <= 0 || conf > 1 {
				t.Errorf("confidence %v out of range", conf)
			}
		})
	}
}

func TestSplitColumns(t *testing.T) {
	t.Run("splits on wide gaps", func(t *testing.T) {
		cols := SplitColumns("Margherita 12.99      Hawaiian 13.99")
		if len(cols) != 2 {
			t.Fatalf("expected 2 columns, got %v", cols)
		}
		if cols[0] != "Margherita 12.99" || cols[1] != "Hawaiian 13.99" {
			t.Errorf("unexpected columns: %v", cols)
		}
	})

	t.Run("single column passes through", func(t *testing.T) {
		cols := SplitColumns("CHEESE PIZZA 9.99")
		if len(cols) != 1 {
			t.Errorf("expected 1 column, got %v", cols)
		}
	})
}

func TestClassify(t *testing.T) {
	lines := []types.Line{
		{Index: 0, Raw: "PIZZA"},
		{Index: 1, Raw: `         Sm        Lg`},
		{Index: 2, Raw: "Margherita 12.99      Hawaiian 13.99"},
		{Index: 3, Raw: "BUFFALO WINGS 8.99"},
	}
	got := Classify(lines)
	if len(got) != 4 {
		t.Fatalf("expected 4 classifications, got %d", len(got))
	}
	if got[0].Type != types.LineHeading {
		t.Errorf("line 0 = %v, want heading", got[0].Type)
	}
	if got[1].Type != types.LineSizeHeader {
		t.Errorf("line 1 = %v, want size_header (columns must not split grids)", got[1].Type)
	}
	if got[2].Type != types.LineMultiColumn {
		t.Errorf("line 2 = %v, want multi_column", got[2].Type)
	}
	if len(got[2].Columns) != 2 {
		t.Errorf("line 2 columns = %v, want 2 segments", got[2].Columns)
	}
	if got[3].Type != types.LineMenuItem {
		t.Errorf("line 3 = %v, want menu_item", got[3].Type)
	}
	for _, cls := range got {
		if cls.OriginalType != cls.Type {
			t.Errorf("line %d original type %v diverged before resolution", cls.Index, cls.OriginalType)
		}
	}
}
