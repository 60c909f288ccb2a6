package stages

import (
	"context"

	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/variant"
)

// BuildVariants constructs the price variant set for every item, validates
// the per-item price structure, and scores each variant.
type BuildVariants struct{}

// NewBuildVariants creates the variant building stage.
func NewBuildVariants() *BuildVariants { return &BuildVariants{} }

func (s *BuildVariants) Name() string           { return "build-variants" }
func (s *BuildVariants) Dependencies() []string { return []string{"parse-items"} }
func (s *BuildVariants) Description() string {
	return "Build, validate, and score price variants for each item"
}

func (s *BuildVariants) Run(ctx context.Context, doc *types.Document) error {
	for _, it := range doc.Items {
		var grid *variant.Grid
		if it.Grid != nil {
			grid = &variant.Grid{SourceIndex: it.Grid.SourceIndex, Columns: it.Grid.Columns}
		}
		variant.Build(it, it.Grammar, grid)
		variant.Validate(it)
		variant.Score(it)
	}
	return nil
}

var _ pipeline.Stage = (*BuildVariants)(nil)
