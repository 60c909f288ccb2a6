package stages

import (
	"context"

	"github.com/servline/menuscan/internal/crossitem"
	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/types"
)

// CrossItem runs the menu-wide consistency checks: duplicates, price
// outliers, category isolation and suggestion, cross-category price
// coherence, and variant structure consistency.
type CrossItem struct {
	cfg crossitem.Config
}

// NewCrossItem creates the cross-item check stage.
func NewCrossItem(cfg crossitem.Config) *CrossItem { return &CrossItem{cfg: cfg} }

func (s *CrossItem) Name() string           { return "crossitem" }
func (s *CrossItem) Dependencies() []string { return []string{"build-variants"} }
func (s *CrossItem) Description() string {
	return "Flag inconsistencies across the whole menu"
}

func (s *CrossItem) Run(ctx context.Context, doc *types.Document) error {
	crossitem.Check(doc.Items, s.cfg)
	return nil
}

var _ pipeline.Stage = (*CrossItem)(nil)
