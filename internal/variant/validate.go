package variant

import (
	"sort"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

// Validate runs the within-item variant checks and attaches flags to the
// item. Checks never mutate the variants themselves.
func Validate(item *types.Item) {
	if len(item.Variants) == 0 {
		return
	}
	checkZeroPrices(item)
	checkDuplicateKeys(item)
	checkPriceInversions(item)
	checkMixedKinds(item)
	checkSizeGaps(item)
}

func checkZeroPrices(item *types.Item) {
	for _, v := range item.Variants {
		if v.PriceCents <= 0 {
			item.AddFlag("zero_price_variant", types.SeverityWarn, map[string]any{
				"label":       v.Label,
				"price_cents": v.PriceCents,
			})
		}
	}
}

func checkDuplicateKeys(item *types.Item) {
	byKey := map[string][]string{}
	for _, v := range item.Variants {
		byKey[v.GroupKey] = append(byKey[v.GroupKey], v.Label)
	}
	for key, labels := range byKey {
		if len(labels) > 1 {
			item.AddFlag("duplicate_variant_labels", types.SeverityWarn, map[string]any{
				"group_key": key,
				"labels":    labels,
			})
		}
	}
}

// checkPriceInversions orders sized variants along their track and flags
// any adjacent pair where the larger size is cheaper. Variants on
// different tracks are never compared.
func checkPriceInversions(item *types.Item) {
	type ranked struct {
		v   *types.Variant
		ord int
	}
	byTrack := map[string][]ranked{}
	for _, v := range item.Variants {
		if v.NormalizedSize == "" || v.PriceCents <= 0 {
			continue
		}
		track := vocab.SizeTrack(v.NormalizedSize)
		if track == "" {
			continue
		}
		ord, ok := vocab.SizeOrdinal(v.NormalizedSize)
		if !ok {
			continue
		}
		byTrack[track] = append(byTrack[track], ranked{v: v, ord: ord})
	}
	for _, group := range byTrack {
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool { return group[i].ord < group[j].ord })
		for i := 1; i < len(group); i++ {
			smaller, larger := group[i-1], group[i]
			if smaller.ord == larger.ord {
				continue
			}
			if smaller.v.PriceCents > larger.v.PriceCents {
				item.AddFlag("variant_price_inversion", types.SeverityWarn, map[string]any{
					"smaller_label":       smaller.v.Label,
					"larger_label":        larger.v.Label,
					"smaller_price_cents": smaller.v.PriceCents,
					"larger_price_cents":  larger.v.PriceCents,
					"labels":              []string{smaller.v.Label, larger.v.Label},
				})
			}
		}
	}
}

// checkMixedKinds flags variant sets that mix label kinds. A size/other
// mix usually means a lost label and warns; size/combo and size/flavor
// mixes are normal menu shapes and only inform.
func checkMixedKinds(item *types.Item) {
	kinds := map[types.VariantKind]bool{}
	for _, v := range item.Variants {
		kinds[v.Kind] = true
	}
	if len(kinds) < 2 {
		return
	}
	severity := types.SeverityInfo
	if kinds[types.VariantSize] && kinds[types.VariantOther] {
		severity = types.SeverityWarn
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, string(k))
	}
	sort.Strings(names)
	item.AddFlag("mixed_variant_kinds", severity, map[string]any{"kinds": names})
}

// wordLadder is the core word-track progression used for gap detection.
var wordLadder = []string{"S", "M", "L", "XL"}

// checkSizeGaps flags a skipped rung in the word-size ladder: an item
// selling S, L, and XL almost certainly lost its M cell. Two-size items
// (the common Sm/Lg menu) never flag.
func checkSizeGaps(item *types.Item) {
	present := map[string]bool{}
	for _, v := range item.Variants {
		if v.NormalizedSize != "" {
			present[v.NormalizedSize] = true
		}
	}
	first, last, count := -1, -1, 0
	for i, s := range wordLadder {
		if present[s] {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}
	if count < 3 || last-first < 2 {
		return
	}
	var missing []string
	for i := first + 1; i < last; i++ {
		if !present[wordLadder[i]] {
			missing = append(missing, wordLadder[i])
		}
	}
	if len(missing) > 0 {
		item.AddFlag("size_gap", types.SeverityInfo, map[string]any{"missing": missing})
	}
}
