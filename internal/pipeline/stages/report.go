package stages

import (
	"context"

	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/semantic"
	"github.com/servline/menuscan/internal/types"
)

// Report assembles the final quality report from the scored, repaired
// document.
type Report struct {
	repair *Repair
}

// NewReport creates the report stage. It reads the repair stage's
// auto-repair outcome.
func NewReport(repair *Repair) *Report { return &Report{repair: repair} }

func (s *Report) Name() string           { return "report" }
func (s *Report) Dependencies() []string { return []string{"repair"} }
func (s *Report) Description() string {
	return "Assemble the menu-level quality report"
}

func (s *Report) Run(ctx context.Context, doc *types.Document) error {
	doc.Report = semantic.GenerateReport(doc, s.repair.Result())
	return nil
}

var _ pipeline.Stage = (*Report)(nil)
