// Package stages provides the built-in analysis stages: line
// classification, contextual resolution, item parsing, variant building,
// cross-item checks, semantic scoring, repair recommendation, and report
// generation.
package stages

import (
	"github.com/servline/menuscan/internal/crossitem"
	"github.com/servline/menuscan/internal/pipeline"
)

// Options configures the built-in stage set.
type Options struct {
	// Crossitem holds the tunable thresholds for cross-item checks.
	Crossitem crossitem.Config

	// ApplyRepairs applies auto-fixable repairs after recommendation.
	ApplyRepairs bool
}

// RegisterAll registers the full analysis pipeline on the registry in
// dependency order.
func RegisterAll(reg *pipeline.Registry, opts Options) error {
	repair := NewRepair(opts.ApplyRepairs)
	all := []pipeline.Stage{
		NewClassify(),
		NewResolve(),
		NewParseItems(),
		NewBuildVariants(),
		NewCrossItem(opts.Crossitem),
		NewScore(),
		repair,
		NewReport(repair),
	}
	for _, s := range all {
		if err := reg.Register(s); err != nil {
			return err
		}
	}
	return reg.Validate()
}
