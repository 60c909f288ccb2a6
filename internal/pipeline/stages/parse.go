package stages

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/servline/menuscan/internal/grammar"
	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/variant"
	"github.com/servline/menuscan/internal/vocab"
)

// ParseItems walks the resolved lines in page order, decomposes each menu
// item line into its grammar, tracks the current section and size-grid
// context, and attaches trailing description, price, and modifier lines to
// the item above them.
type ParseItems struct{}

// NewParseItems creates the item parsing stage.
func NewParseItems() *ParseItems { return &ParseItems{} }

func (s *ParseItems) Name() string           { return "parse-items" }
func (s *ParseItems) Dependencies() []string { return []string{"resolve"} }
func (s *ParseItems) Description() string {
	return "Decompose item lines into name, description, sizes, prices, and components"
}

func (s *ParseItems) Run(ctx context.Context, doc *types.Document) error {
	var (
		tracker  variant.Tracker
		category string
		last     *types.Item
	)

	for _, cls := range doc.Classified {
		tracker.Observe(cls)

		switch cls.Type {
		case types.LineHeading:
			doc.Headings = append(doc.Headings, cls.Cleaned)
			if vocab.IsKnownSectionHeading(cls.Cleaned) {
				category = normalizeCategory(cls.Cleaned)
			}
			last = nil

		case types.LineMenuItem:
			parsed := grammar.ParseItemLine(cls.Cleaned)
			item := &types.Item{
				ID:          uuid.NewString(),
				SourceIndex: cls.Index,
				Name:        parsed.Name,
				Description: parsed.Description,
				Category:    category,
				Grammar:     parsed,
			}
			if grid := tracker.Current(); grid != nil && len(parsed.PriceMentions) > 0 {
				item.Grid = &types.GridRef{SourceIndex: grid.SourceIndex, Columns: grid.Columns}
			}
			doc.Items = append(doc.Items, item)
			last = item

		case types.LineDescriptionOnly:
			if last != nil {
				appendDescription(last, cls.Cleaned)
			}

		case types.LinePriceOnly:
			if last != nil {
				trailing := grammar.ParseItemLine(cls.Cleaned)
				last.Grammar.PriceMentions = append(last.Grammar.PriceMentions, trailing.PriceMentions...)
			}

		case types.LineModifier:
			if last != nil {
				last.Grammar.Modifiers = append(last.Grammar.Modifiers, cls.Cleaned)
			}

		case types.LineSizeHeader:
			// Grid context handled by the tracker; a size header never
			// belongs to the item above it.
			last = nil
		}
	}
	return nil
}

// appendDescription folds a trailing description line into the item and
// re-extracts its components from the combined text.
func appendDescription(it *types.Item, text string) {
	if it.Description == "" {
		it.Description = text
	} else {
		it.Description += " " + text
	}
	it.Grammar.Description = it.Description
	it.Grammar.Components = grammar.ExtractComponents(it.Description)
}

// normalizeCategory canonicalizes a section heading for use as a category
// key: trailing OCR punctuation stripped, uppercased.
func normalizeCategory(heading string) string {
	return strings.ToUpper(strings.TrimRight(strings.TrimSpace(heading), "_!.:;- "))
}

var _ pipeline.Stage = (*ParseItems)(nil)
