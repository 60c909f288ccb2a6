package stages

import (
	"context"

	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/semantic"
	"github.com/servline/menuscan/internal/types"
)

// Score computes semantic confidence for every item, assigns review
// tiers, and aggregates the menu-level summary.
type Score struct{}

// NewScore creates the semantic scoring stage.
func NewScore() *Score { return &Score{} }

func (s *Score) Name() string           { return "score" }
func (s *Score) Dependencies() []string { return []string{"crossitem"} }
func (s *Score) Description() string {
	return "Score item confidence, assign review tiers, and grade the menu"
}

func (s *Score) Run(ctx context.Context, doc *types.Document) error {
	semantic.ScoreItems(doc.Items)
	semantic.AssignTiers(doc.Items)
	doc.Summary = semantic.Summarize(doc.Items)
	return nil
}

var _ pipeline.Stage = (*Score)(nil)
