package semantic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/servline/menuscan/internal/types"
)

func countRepairs(items []*types.Item) *types.RepairSummary {
	s := &types.RepairSummary{
		ByPriority: map[string]int{},
		ByType:     map[string]int{},
	}
	for _, it := range items {
		if len(it.Repairs) == 0 {
			continue
		}
		s.TotalItems++
		for _, rec := range it.Repairs {
			s.ByPriority[rec.Priority]++
			s.ByType[rec.Type]++
		}
	}
	return s
}

func measureCoverage(classified []*types.Classification, items []*types.Item) *types.Coverage {
	c := &types.Coverage{TotalLines: len(classified)}
	for _, cls := range classified {
		switch cls.Type {
		case types.LineMenuItem:
			c.ItemLines++
		case types.LineHeading:
			c.HeadingLines++
		case types.LineUnknown:
			c.UnknownLines++
		}
	}
	for _, it := range items {
		for _, v := range it.Variants {
			if v.PriceCents > 0 {
				c.ItemsWithPrices++
				break
			}
		}
	}
	return c
}

// topCounted returns up to limit keys of a count map, most frequent first,
// ties broken alphabetically for stable output.
func topCounted(counts map[string]int, limit int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func digestIssues(items []*types.Item) *types.IssueDigest {
	d := &types.IssueDigest{}

	typeCounts := map[string]int{}
	flagCounts := map[string]int{}
	for _, it := range items {
		for _, rec := range it.Repairs {
			typeCounts[rec.Type]++
		}
		for _, f := range it.Flags {
			flagCounts[f.Reason]++
		}
	}
	for _, t := range topCounted(typeCounts, 3) {
		d.TopIssues = append(d.TopIssues, fmt.Sprintf("%s (%d items)", t, typeCounts[t]))
	}
	d.CommonFlags = topCounted(flagCounts, 5)

	ranked := append([]*types.Item(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Confidence < ranked[j].Confidence })
	for _, it := range ranked {
		if it.Tier == types.TierHigh {
			continue
		}
		name := itemName(it)
		if name == "" {
			name = it.ID
		}
		d.WorstItems = append(d.WorstItems, name)
		if len(d.WorstItems) == 3 {
			break
		}
	}
	return d
}

func measureCategoryHealth(items []*types.Item) []types.CategoryHealth {
	byCategory := map[string][]*types.Item{}
	for _, it := range items {
		if it.Category != "" {
			byCategory[it.Category] = append(byCategory[it.Category], it)
		}
	}
	names := make([]string, 0, len(byCategory))
	for c := range byCategory {
		names = append(names, c)
	}
	sort.Strings(names)

	out := make([]types.CategoryHealth, 0, len(names))
	for _, c := range names {
		group := byCategory[c]
		sum, flagged := 0.0, 0
		for _, it := range group {
			sum += it.Confidence
			if len(it.Flags) > 0 {
				flagged++
			}
		}
		out = append(out, types.CategoryHealth{
			Category:       c,
			ItemCount:      len(group),
			MeanConfidence: round4(sum / float64(len(group))),
			FlaggedCount:   flagged,
		})
	}
	return out
}

func narrate(summary *types.MenuSummary, repairs *types.RepairSummary) string {
	if summary.TotalItems == 0 {
		return "No menu items were recovered from this page; the OCR text did not yield any structured content."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Recovered %d items with a mean confidence of %.2f (grade %s).",
		summary.TotalItems, summary.MeanConfidence, summary.Grade)
	if summary.HighCount > 0 {
		fmt.Fprintf(&b, " %d items are high confidence and ready to publish.", summary.HighCount)
	}
	needsWork := summary.MediumCount + summary.LowCount + summary.RejectCount
	if needsWork > 0 {
		fmt.Fprintf(&b, " %d items need review", needsWork)
		if critical := repairs.ByPriority[types.PriorityCritical]; critical > 0 {
			fmt.Fprintf(&b, ", including %d critical repairs", critical)
		}
		b.WriteString(".")
	}
	return b.String()
}

// GenerateReport assembles the menu-level quality report from the scored,
// tiered, repair-annotated document.
func GenerateReport(doc *types.Document, autoRepairs *types.AutoRepairResult) *types.Report {
	summary := doc.Summary
	if summary == nil {
		summary = Summarize(doc.Items)
	}
	if autoRepairs == nil {
		autoRepairs = &types.AutoRepairResult{}
	}
	repairs := countRepairs(doc.Items)
	return &types.Report{
		MenuConfidence:   summary,
		RepairSummary:    repairs,
		AutoRepairs:      autoRepairs,
		Coverage:         measureCoverage(doc.Classified, doc.Items),
		IssueDigest:      digestIssues(doc.Items),
		CategoryHealth:   measureCategoryHealth(doc.Items),
		QualityNarrative: narrate(summary, repairs),
	}
}
