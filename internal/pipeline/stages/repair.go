package stages

import (
	"context"

	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/semantic"
	"github.com/servline/menuscan/internal/types"
)

// Repair builds repair recommendations for every item and, when enabled,
// applies the auto-fixable ones and re-scores the repaired items.
type Repair struct {
	apply  bool
	result *types.AutoRepairResult
}

// NewRepair creates the repair stage. When apply is true, auto-fixable
// repairs are applied; otherwise they are only recommended.
func NewRepair(apply bool) *Repair { return &Repair{apply: apply} }

func (s *Repair) Name() string           { return "repair" }
func (s *Repair) Dependencies() []string { return []string{"score"} }
func (s *Repair) Description() string {
	return "Recommend repairs and optionally apply the mechanical fixes"
}

func (s *Repair) Run(ctx context.Context, doc *types.Document) error {
	semantic.RecommendAll(doc.Items)
	if s.apply {
		s.result = semantic.ApplyAutoRepairs(doc.Items)
		doc.Summary = semantic.Summarize(doc.Items)
	} else {
		s.result = &types.AutoRepairResult{}
	}
	return nil
}

// Result returns the outcome of the last run's auto-repair application.
func (s *Repair) Result() *types.AutoRepairResult { return s.result }

var _ pipeline.Stage = (*Repair)(nil)
