package stages

import (
	"context"

	"github.com/servline/menuscan/internal/grammar"
	"github.com/servline/menuscan/internal/pipeline"
	"github.com/servline/menuscan/internal/types"
)

// Classify cleans every raw line and assigns its structural type.
type Classify struct{}

// NewClassify creates the classification stage.
func NewClassify() *Classify { return &Classify{} }

func (s *Classify) Name() string           { return "classify" }
func (s *Classify) Dependencies() []string { return nil }
func (s *Classify) Description() string {
	return "Clean OCR artifacts and classify each line by structural type"
}

func (s *Classify) Run(ctx context.Context, doc *types.Document) error {
	doc.Classified = grammar.Classify(doc.Lines)
	return nil
}

var _ pipeline.Stage = (*Classify)(nil)
