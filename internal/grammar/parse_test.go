package grammar

import (
	"testing"
)

func TestParseItemLine(t *testing.T) {
	t.Run("caps name with description and price", func(t *testing.T) {
		p := ParseItemLine("CHICKEN PARM grilled chicken, marinara, mozzarella 11.99")
		if p.Name != "CHICKEN PARM" {
			t.Errorf("name = %q", p.Name)
		}
		if p.Description != "grilled chicken, marinara, mozzarella" {
			t.Errorf("description = %q", p.Description)
		}
		if len(p.PriceMentions) != 1 || p.PriceMentions[0] != 1199 {
			t.Errorf("prices = %v, want [1199]", p.PriceMentions)
		}
	})

	t.Run("comma decimal separator", func(t *testing.T) {
		p := ParseItemLine("LASAGNA 12,75")
		if len(p.PriceMentions) != 1 || p.PriceMentions[0] != 1275 {
			t.Errorf("prices = %v, want [1275]", p.PriceMentions)
		}
	})

	t.Run("multiple prices in order", func(t *testing.T) {
		p := ParseItemLine("CHEESE PIZZA 9.99 12.99 15.99")
		want := []int{999, 1299, 1599}
		if len(p.PriceMentions) != 3 {
			t.Fatalf("prices = %v, want %v", p.PriceMentions, want)
		}
		for i, cents := range want {
			if p.PriceMentions[i] != cents {
				t.Errorf("price[%d] = %d, want %d", i, p.PriceMentions[i], cents)
			}
		}
	})

	t.Run("size mentions canonicalized", func(t *testing.T) {
		p := ParseItemLine("GREEK SALAD Sm 5.99 Lg 8.99")
		if len(p.SizeMentions) != 2 {
			t.Fatalf("sizes = %v, want 2", p.SizeMentions)
		}
		if p.SizeMentions[0] != "S" || p.SizeMentions[1] != "L" {
			t.Errorf("sizes = %v, want [S L]", p.SizeMentions)
		}
	})

	t.Run("abbreviation prefix does not split the name", func(t *testing.T) {
		p := ParseItemLine("BBQ Chicken Pizza")
		if p.Name != "BBQ Chicken Pizza" {
			t.Errorf("name = %q, want the whole line", p.Name)
		}
		if p.Description != "" {
			t.Errorf("description = %q, want empty", p.Description)
		}
	})

	t.Run("abbreviation prefix still splits before a lowercase remainder", func(t *testing.T) {
		p := ParseItemLine("BLT served on toasted rye")
		if p.Name != "BLT" {
			t.Errorf("name = %q, want BLT", p.Name)
		}
		if p.Description != "served on toasted rye" {
			t.Errorf("description = %q", p.Description)
		}
	})

	t.Run("abbreviation prefix still splits on an early comma", func(t *testing.T) {
		p := ParseItemLine("BBQ Brisket, slaw, pickles")
		if p.Name != "BBQ" {
			t.Errorf("name = %q, want BBQ", p.Name)
		}
	})

	t.Run("unknown short caps word splits normally", func(t *testing.T) {
		p := ParseItemLine("OMG Chicken Pizza")
		if p.Name != "OMG" {
			t.Errorf("name = %q, want OMG", p.Name)
		}
	})

	t.Run("modifiers extracted", func(t *testing.T) {
		p := ParseItemLine("GYRO PLATTER 8.99 w/ Fries 10.99")
		if len(p.Modifiers) != 1 {
			t.Fatalf("modifiers = %v, want 1", p.Modifiers)
		}
		if len(p.PriceMentions) != 2 {
			t.Errorf("prices = %v, want 2", p.PriceMentions)
		}
	})

	t.Run("parse confidence grows with signals", func(t *testing.T) {
		rich := ParseItemLine("CHICKEN PARM grilled chicken, marinara 11.99")
		poor := ParseItemLine("MYSTERY")
		if rich.ParseConfidence <= poor.ParseConfidence {
			t.Errorf("rich %v not above poor %v", rich.ParseConfidence, poor.ParseConfidence)
		}
		if rich.ParseConfidence > 0.95 {
			t.Errorf("confidence above cap: %v", rich.ParseConfidence)
		}
	})

	t.Run("components extracted from description", func(t *testing.T) {
		p := ParseItemLine("CHICKEN PARM grilled chicken, marinara, mozzarella 11.99")
		if p.Components == nil {
			t.Fatal("expected components")
		}
		if p.Components.Sauce != "marinara" {
			t.Errorf("sauce = %q, want marinara", p.Components.Sauce)
		}
		if p.Components.Preparation != "grilled" {
			t.Errorf("preparation = %q, want grilled", p.Components.Preparation)
		}
	})
}

func TestExtractComponents(t *testing.T) {
	t.Run("flavor list", func(t *testing.T) {
		c := ExtractComponents("Mild, Medium, Hot, Honey BBQ")
		if c == nil {
			t.Fatal("expected components")
		}
		if len(c.FlavorOptions) != 4 {
			t.Errorf("flavors = %v, want 4", c.FlavorOptions)
		}
		if len(c.Toppings) != 0 {
			t.Errorf("flavor list leaked into toppings: %v", c.Toppings)
		}
	})

	t.Run("first sauce wins later sauces demote", func(t *testing.T) {
		c := ExtractComponents("marinara, pesto, mushrooms")
		if c.Sauce != "marinara" {
			t.Errorf("sauce = %q, want marinara", c.Sauce)
		}
		found := false
		for _, topping := range c.Toppings {
			if topping == "pesto" {
				found = true
			}
		}
		if !found {
			t.Errorf("demoted sauce missing from toppings: %v", c.Toppings)
		}
	})

	t.Run("preparation prefix", func(t *testing.T) {
		c := ExtractComponents("breaded chicken, lettuce and tomato")
		if c.Preparation != "breaded" {
			t.Errorf("preparation = %q, want breaded", c.Preparation)
		}
		want := map[string]bool{"chicken": true, "lettuce": true, "tomato": true}
		for _, topping := range c.Toppings {
			if !want[topping] {
				t.Errorf("unexpected topping %q", topping)
			}
		}
	})

	t.Run("never invents components", func(t *testing.T) {
		c := ExtractComponents("pepperoni and extra cheese")
		if c.Sauce != "" {
			t.Errorf("invented sauce %q", c.Sauce)
		}
		if c.Preparation != "" {
			t.Errorf("invented preparation %q", c.Preparation)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		if c := ExtractComponents(""); c != nil {
			t.Errorf("expected nil, got %+v", c)
		}
	})
}
