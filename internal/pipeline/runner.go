package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/servline/menuscan/internal/svcctx"
	"github.com/servline/menuscan/internal/types"
)

// RunAll executes every registered stage in dependency order against the
// document. It stops at the first stage error or context cancellation.
func (r *Registry) RunAll(ctx context.Context, doc *types.Document) error {
	ordered, err := r.GetOrdered()
	if err != nil {
		return err
	}

	logger := svcctx.LoggerFrom(ctx)
	if logger == nil {
		logger = slog.Default()
	}

	for _, stage := range ordered {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		logger.Debug("running stage", "stage", stage.Name())
		if err := stage.Run(ctx, doc); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		logger.Debug("stage complete", "stage", stage.Name(), "duration", time.Since(start))
	}
	return nil
}
