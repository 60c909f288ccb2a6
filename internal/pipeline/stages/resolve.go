package stages

import (
	"context"

	"github.com/servline/menuscan/internal/grammar"
	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/types"
)

// Resolve reclassifies ambiguous lines using their neighbors: column
// segments are flattened, and headings that behave like items are
// promoted.
type Resolve struct{}

// NewResolve creates the contextual resolution stage.
func NewResolve() *Resolve { return &Resolve{} }

func (s *Resolve) Name() string           { return "resolve" }
func (s *Resolve) Dependencies() []string { return []string{"classify"} }
func (s *Resolve) Description() string {
	return "Resolve ambiguous line types from surrounding context"
}

func (s *Resolve) Run(ctx context.Context, doc *types.Document) error {
	doc.Classified = grammar.Resolve(doc.Classified)
	return nil
}

var _ pipeline.Stage = (*Resolve)(nil)
