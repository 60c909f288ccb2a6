package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/servline/menuscan/internal/types"
)

const maxRepairNeighbors = 5

// RepairDocumentNames sends each garbled-name recommendation without a
// proposed fix to the repairer and records the corrections it returns as
// auto-fixable proposals. Returns the number of proposals added.
func RepairDocumentNames(ctx context.Context, r NameRepairer, doc *types.Document, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	proposed := 0
	for _, it := range doc.Items {
		for _, rec := range it.Repairs {
			if rec.Type != "garbled_name" || rec.Applied || rec.ProposedFix != nil {
				continue
			}

			req := &RepairRequest{
				Garbled:     it.Name,
				Category:    it.Category,
				Description: it.Description,
				Neighbors:   cleanNeighborNames(doc.Items, it),
			}

			result, err := r.RepairName(ctx, req)
			if err != nil {
				if ctx.Err() != nil {
					return proposed, ctx.Err()
				}
				logger.Warn("name repair failed",
					"item", it.Name,
					"provider", r.Name(),
					"error", err)
				continue
			}

			repaired := strings.TrimSpace(result.Repaired)
			if repaired == "" || strings.EqualFold(repaired, it.Name) {
				continue
			}

			rec.ProposedFix = map[string]any{"name": repaired}
			rec.AutoFixable = true
			rec.SourceSignal = fmt.Sprintf("%s/%s", result.Provider, result.ModelUsed)
			proposed++

			logger.Debug("name repair proposed",
				"item", it.Name,
				"proposal", repaired,
				"attempts", result.Attempts)
		}
	}
	return proposed, nil
}

// cleanNeighborNames collects readable names near the garbled item,
// preferring the same category.
func cleanNeighborNames(items []*types.Item, target *types.Item) []string {
	var sameCategory, others []string
	for _, it := range items {
		if it == target || it.Name == "" {
			continue
		}
		if it.Category != "" && it.Category == target.Category {
			sameCategory = append(sameCategory, it.Name)
		} else {
			others = append(others, it.Name)
		}
	}

	neighbors := sameCategory
	if len(neighbors) < maxRepairNeighbors {
		neighbors = append(neighbors, others...)
	}
	if len(neighbors) > maxRepairNeighbors {
		neighbors = neighbors[:maxRepairNeighbors]
	}
	return neighbors
}
