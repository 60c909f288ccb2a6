package pipeline

import (
	"context"

	"github.com/servline/menuscan/internal/types"
)

// Stage is the interface that all pipeline stages must implement.
// Stages are the core abstraction - each transforms the document in
// place and leaves its results for the stages downstream.
type Stage interface {
	// Identity
	Name() string           // e.g., "classify", "build-variants"
	Dependencies() []string // Stages that must complete first

	// Metadata
	Description() string

	// Run executes the stage against the document. A stage may read
	// anything earlier stages produced and must only write its own
	// outputs.
	Run(ctx context.Context, doc *types.Document) error
}
