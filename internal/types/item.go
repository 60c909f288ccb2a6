package types

// Flag severities, weakest to strongest.
const (
	SeverityInfo    = "info"
	SeverityWarn    = "warn"
	SeverityAutoFix = "auto_fix"
)

// Flag records a validation finding on an item. Details carries
// check-specific structured fields (offending labels, compared values).
type Flag struct {
	Reason   string         `json:"reason"`
	Severity string         `json:"severity"`
	Details  map[string]any `json:"details,omitempty"`
}

// VariantKind describes what a variant label denotes.
type VariantKind string

const (
	VariantSize   VariantKind = "size"
	VariantCombo  VariantKind = "combo"
	VariantFlavor VariantKind = "flavor"
	VariantStyle  VariantKind = "style"
	VariantOther  VariantKind = "other"
)

// Variant is one purchasable form of an item: a label, a price in integer
// cents, and how the label was understood. GroupKey is the normalized size
// when one exists, otherwise the lowercased label; duplicate detection and
// ordering checks key on it.
type Variant struct {
	Label          string        `json:"label"`
	Kind           VariantKind   `json:"kind"`
	PriceCents     int           `json:"price_cents"`
	NormalizedSize string        `json:"normalized_size,omitempty"`
	GroupKey       string        `json:"group_key"`
	FromGrid       bool          `json:"from_grid,omitempty"`
	Confidence     float64       `json:"confidence"`
	Score          *VariantScore `json:"score,omitempty"`
}

// VariantScore is the audit trail of a variant confidence computation.
// Every modifier that touched the score is retained.
type VariantScore struct {
	Base        float64  `json:"base"`
	LabelMod    float64  `json:"label_mod"`
	GrammarMod  float64  `json:"grammar_mod"`
	GridMod     float64  `json:"grid_mod"`
	FlagPenalty float64  `json:"flag_penalty"`
	FlagReasons []string `json:"flag_reasons,omitempty"`
	Final       float64  `json:"final"`
}

// Components are the ingredients extracted from an item description.
// Every value must appear in the source text; nothing is invented.
type Components struct {
	Toppings      []string `json:"toppings,omitempty"`
	Sauce         string   `json:"sauce,omitempty"`
	Preparation   string   `json:"preparation,omitempty"`
	FlavorOptions []string `json:"flavor_options,omitempty"`
}

// ParsedLine is the grammar decomposition of a menu item line.
// PriceMentions are integer cents in source order.
type ParsedLine struct {
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Modifiers       []string    `json:"modifiers,omitempty"`
	SizeMentions    []string    `json:"size_mentions,omitempty"`
	PriceMentions   []int       `json:"price_mentions,omitempty"`
	ParseConfidence float64     `json:"parse_confidence"`
	Components      *Components `json:"components,omitempty"`
}

// SemanticScore is the per-item semantic confidence audit trail. Raw signal
// scores and their weighted contributions are both kept so a reviewer can see
// which signal dragged an item down.
type SemanticScore struct {
	GrammarScore      float64 `json:"grammar_score"`
	GrammarWeighted   float64 `json:"grammar_weighted"`
	NameScore         float64 `json:"name_quality_score"`
	NameWeighted      float64 `json:"name_quality_weighted"`
	PriceScore        float64 `json:"price_score"`
	PriceWeighted     float64 `json:"price_weighted"`
	VariantScore      float64 `json:"variant_score"`
	VariantWeighted   float64 `json:"variant_weighted"`
	FlagPenaltyScore  float64 `json:"flag_penalty_score"`
	FlagPenaltyWeight float64 `json:"flag_penalty_weighted"`
	Final             float64 `json:"final"`
}

// Review tiers, ordered best to worst.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
	TierReject = "reject"
)

// Repair is a recommendation produced by the repair stage.
type Repair struct {
	Type                 string         `json:"type"`
	Priority             string         `json:"priority"`
	SourceSignal         string         `json:"source_signal,omitempty"`
	Message              string         `json:"message"`
	AutoFixable          bool           `json:"auto_fixable"`
	ProposedFix          map[string]any `json:"proposed_fix,omitempty"`
	SuggestionConfidence float64        `json:"suggestion_confidence,omitempty"`
	Applied              bool           `json:"applied,omitempty"`
}

// Repair priorities, most urgent first.
const (
	PriorityCritical  = "critical"
	PriorityImportant = "important"
	PrioritySuggested = "suggested"
)

// RepairAudit records one applied auto-repair: which field changed and the
// before/after values.
type RepairAudit struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// GridRef links an item back to the size header that supplied its variant
// columns.
type GridRef struct {
	SourceIndex int      `json:"source_index"`
	Columns     []string `json:"columns"`
}

// Item is a fully analyzed menu item.
type Item struct {
	ID                   string         `json:"id"`
	SourceIndex          int            `json:"source_index"`
	Name                 string         `json:"name"`
	Description          string         `json:"description,omitempty"`
	Category             string         `json:"category,omitempty"`
	CategorySuggestion   string         `json:"category_suggestion,omitempty"`
	SuggestionConfidence float64        `json:"suggestion_confidence,omitempty"`
	Grammar              *ParsedLine    `json:"grammar,omitempty"`
	Variants             []*Variant     `json:"variants,omitempty"`
	Flags                []*Flag        `json:"flags,omitempty"`
	Semantic             *SemanticScore `json:"semantic,omitempty"`
	Confidence           float64        `json:"semantic_confidence"`
	Scored               bool           `json:"-"`
	Tier                 string         `json:"tier,omitempty"`
	NeedsReview          bool           `json:"needs_review"`
	Repairs              []*Repair      `json:"repairs,omitempty"`
	AutoRepairs          []RepairAudit  `json:"auto_repairs_applied,omitempty"`
	Grid                 *GridRef       `json:"grid,omitempty"`
}

// AddFlag appends a flag to the item.
func (it *Item) AddFlag(reason, severity string, details map[string]any) {
	it.Flags = append(it.Flags, &Flag{Reason: reason, Severity: severity, Details: details})
}

// HasFlag reports whether the item carries a flag with the given reason.
func (it *Item) HasFlag(reason string) bool {
	for _, f := range it.Flags {
		if f.Reason == reason {
			return true
		}
	}
	return false
}

// PricedVariants returns the variants with a positive price.
func (it *Item) PricedVariants() []*Variant {
	out := make([]*Variant, 0, len(it.Variants))
	for _, v := range it.Variants {
		if v.PriceCents > 0 {
			out = append(out, v)
		}
	}
	return out
}

// MenuSummary aggregates per-item scores into a menu-level view.
type MenuSummary struct {
	TotalItems     int     `json:"total_items"`
	HighCount      int     `json:"high_count"`
	MediumCount    int     `json:"medium_count"`
	LowCount       int     `json:"low_count"`
	RejectCount    int     `json:"reject_count"`
	MeanConfidence float64 `json:"mean_confidence"`
	Grade          string  `json:"grade"`
}

// Report is the menu-level quality report emitted by the report stage.
type Report struct {
	MenuConfidence   *MenuSummary      `json:"menu_confidence"`
	RepairSummary    *RepairSummary    `json:"repair_summary"`
	AutoRepairs      *AutoRepairResult `json:"auto_repair_results"`
	Coverage         *Coverage         `json:"pipeline_coverage"`
	IssueDigest      *IssueDigest      `json:"issue_digest"`
	CategoryHealth   []CategoryHealth  `json:"category_health"`
	QualityNarrative string            `json:"quality_narrative"`
}

// RepairSummary counts recommendations by priority and type.
type RepairSummary struct {
	TotalItems int            `json:"total_items"`
	ByPriority map[string]int `json:"by_priority"`
	ByType     map[string]int `json:"by_type"`
}

// AutoRepairResult is returned by the auto-repair pass.
type AutoRepairResult struct {
	TotalItemsRepaired int `json:"total_items_repaired"`
	RepairsApplied     int `json:"repairs_applied"`
}

// Coverage reports how much of the input the pipeline structured.
type Coverage struct {
	TotalLines      int `json:"total_lines"`
	ItemLines       int `json:"item_lines"`
	HeadingLines    int `json:"heading_lines"`
	UnknownLines    int `json:"unknown_lines"`
	ItemsWithPrices int `json:"items_with_prices"`
}

// IssueDigest surfaces the most actionable problems in the menu.
type IssueDigest struct {
	TopIssues   []string `json:"top_issues"`
	WorstItems  []string `json:"worst_items"`
	CommonFlags []string `json:"common_flags"`
}

// CategoryHealth summarizes one category's item quality.
type CategoryHealth struct {
	Category       string  `json:"category"`
	ItemCount      int     `json:"item_count"`
	MeanConfidence float64 `json:"mean_confidence"`
	FlaggedCount   int     `json:"flagged_count"`
}

// Document is the unit of work that flows through the pipeline. Stages
// mutate it in place; the cmd layer serializes it at the end.
type Document struct {
	Lines      []Line            `json:"lines"`
	Classified []*Classification `json:"classified"`
	Items      []*Item           `json:"items"`
	Headings   []string          `json:"headings,omitempty"`
	Summary    *MenuSummary      `json:"menu_confidence,omitempty"`
	Report     *Report           `json:"report,omitempty"`
}
