package grammar

import (
	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

// Resolve applies contextual reclassification over a whole page of
// classifications. Three passes, in order:
//
//  1. flatten multi_column lines into sequential per-segment entries
//  2. promote headings that behave like items (followed by a description
//     or dangling price, or sandwiched between items)
//  3. promote runs of consecutive non-section headings to items; real
//     menus never stack section titles
//
// Known section headings are never demoted. OriginalType preserves the
// pre-resolution classification. Resolve is idempotent: running it on its
// own output changes nothing.
func Resolve(classified []*types.Classification) []*types.Classification {
	flat := flattenColumns(classified)
	promoteByNeighbors(flat)
	promoteHeadingRuns(flat)
	return flat
}

// flattenColumns replaces every multi_column entry with one entry per
// column segment, each classified on its own. Segment entries keep the
// source line index.
func flattenColumns(classified []*types.Classification) []*types.Classification {
	out := make([]*types.Classification, 0, len(classified))
	for _, cls := range classified {
		if cls.Type != types.LineMultiColumn || len(cls.Columns) < 2 {
			out = append(out, cls)
			continue
		}
		for _, seg := range cls.Columns {
			lt, conf, reason := ClassifyLine(seg)
			out = append(out, &types.Classification{
				Index:        cls.Index,
				Raw:          cls.Raw,
				Cleaned:      seg,
				Type:         lt,
				OriginalType: types.LineMultiColumn,
				Confidence:   conf,
				Reason:       reason,
			})
		}
	}
	return out
}

// promoteByNeighbors turns a heading into a menu_item when its neighbors
// say so: a following description_only or price_only line means the
// "heading" was an item name, and an item sandwich means the same.
func promoteByNeighbors(classified []*types.Classification) {
	for i, cls := range classified {
		if cls.Type != types.LineHeading {
			continue
		}
		if vocab.IsKnownSectionHeading(cls.Cleaned) {
			continue
		}
		var next, prev types.LineType
		if i+1 < len(classified) {
			next = classified[i+1].Type
		}
		if i > 0 {
			prev = classified[i-1].Type
		}
		followedByBody := next == types.LineDescriptionOnly || next == types.LinePriceOnly
		sandwiched := prev == types.LineMenuItem && next == types.LineMenuItem
		if followedByBody || sandwiched {
			cls.Type = types.LineMenuItem
			cls.Confidence = 0.7
			cls.Reason = "heading_promoted_context"
		}
	}
}

// promoteHeadingRuns reclassifies runs of 2+ consecutive headings, none of
// which is a known section name, as menu_items.
func promoteHeadingRuns(classified []*types.Classification) {
	runStart := -1
	flush := func(end int) {
		if runStart < 0 || end-runStart < 2 {
			runStart = -1
			return
		}
		for j := runStart; j < end; j++ {
			classified[j].Type = types.LineMenuItem
			classified[j].Confidence = 0.65
			classified[j].Reason = "heading_run"
		}
		runStart = -1
	}
	for i, cls := range classified {
		if cls.Type == types.LineHeading && !vocab.IsKnownSectionHeading(cls.Cleaned) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(classified))
}
