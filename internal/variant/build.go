package variant

import (
	"fmt"
	"strings"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

// Build confidences by construction path. A full grid alignment is the
// strongest signal; a right-aligned partial row is weaker.
const (
	confGridExact   = 0.85
	confGridPartial = 0.75
	confSizePaired  = 0.80
	confComboPair   = 0.75
	confPositional  = 0.60
)

func groupKey(normalized, label string) string {
	if normalized != "" {
		return strings.ToLower(normalized)
	}
	return strings.ToLower(strings.TrimSpace(label))
}

func newVariant(label string, kind types.VariantKind, cents int, conf float64) *types.Variant {
	normalized := ""
	if kind == types.VariantSize {
		normalized = NormalizedColumn(label)
	}
	return &types.Variant{
		Label:          label,
		Kind:           kind,
		PriceCents:     cents,
		NormalizedSize: normalized,
		GroupKey:       groupKey(normalized, label),
		Confidence:     conf,
	}
}

// Build constructs the variant set for one parsed item line. With an
// active grid, prices align to grid columns; fewer prices than columns
// right-align (OCR loses leading cells far more often than trailing ones)
// at reduced confidence. Without a grid, inline size mentions and combo
// modifiers label the prices. Prices are never dropped for lacking a
// semantic label; the fallback is a positional label.
func Build(item *types.Item, parsed *types.ParsedLine, grid *Grid) {
	prices := parsed.PriceMentions
	if len(prices) == 0 {
		return
	}

	if grid != nil && len(grid.Columns) >= 2 {
		buildFromGrid(item, prices, grid)
		return
	}

	if len(parsed.SizeMentions) == len(prices) {
		for i, cents := range prices {
			v := newVariant(parsed.SizeMentions[i], types.VariantSize, cents, confSizePaired)
			item.Variants = append(item.Variants, v)
		}
		return
	}

	combos := comboModifiers(parsed.Modifiers)
	if len(prices) == 2 && len(combos) == 1 {
		base := newVariant("Regular", types.VariantSize, prices[0], confComboPair)
		withSide := newVariant(combos[0], types.VariantCombo, prices[1], confComboPair)
		item.Variants = append(item.Variants, base, withSide)
		return
	}

	for i, cents := range prices {
		label := fmt.Sprintf("Price %d", i+1)
		item.Variants = append(item.Variants, newVariant(label, types.VariantOther, cents, confPositional))
	}
}

func buildFromGrid(item *types.Item, prices []int, grid *Grid) {
	cols := grid.Columns
	n, m := len(prices), len(cols)

	switch {
	case n == m:
		for i, cents := range prices {
			v := newVariant(cols[i], types.VariantSize, cents, confGridExact)
			v.FromGrid = true
			item.Variants = append(item.Variants, v)
		}
	case n < m:
		offset := m - n
		for i, cents := range prices {
			v := newVariant(cols[offset+i], types.VariantSize, cents, confGridPartial)
			v.FromGrid = true
			item.Variants = append(item.Variants, v)
		}
		item.AddFlag("grid_incomplete", types.SeverityInfo, map[string]any{
			"columns":       m,
			"prices":        n,
			"missing_cells": offset,
		})
	default:
		for i := 0; i < m; i++ {
			v := newVariant(cols[i], types.VariantSize, prices[i], confGridPartial)
			v.FromGrid = true
			item.Variants = append(item.Variants, v)
		}
		for i := m; i < n; i++ {
			label := fmt.Sprintf("Price %d", i+1)
			item.Variants = append(item.Variants, newVariant(label, types.VariantOther, prices[i], confPositional))
		}
		item.AddFlag("grid_count_outlier", types.SeverityInfo, map[string]any{
			"columns": m,
			"prices":  n,
			"extra":   n - m,
		})
	}

	item.Grid = &types.GridRef{SourceIndex: grid.SourceIndex, Columns: cols}
}

// comboModifiers filters an item's modifiers down to those naming a known
// combo side, keeping the modifier text verbatim as the variant label.
func comboModifiers(mods []string) []string {
	var out []string
	for _, m := range mods {
		if len(vocab.ExtractComboHints(m)) > 0 {
			out = append(out, m)
		}
	}
	return out
}
