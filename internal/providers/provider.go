// Package providers holds the LLM clients used for optional name repair.
package providers

import (
	"context"
	"fmt"
	"time"
)

// NameRepairer proposes clean spellings for OCR-garbled menu item names.
type NameRepairer interface {
	// Name returns the provider identifier (e.g., "openai").
	Name() string

	// RepairName asks the provider for a corrected item name.
	RepairName(ctx context.Context, req *RepairRequest) (*RepairResult, error)
}

// RepairRequest carries a garbled name plus the menu context around it.
type RepairRequest struct {
	// Garbled is the item name as extracted from the OCR text.
	Garbled string `json:"garbled"`

	// Category is the menu section the item belongs to, if known.
	Category string `json:"category,omitempty"`

	// Neighbors are nearby item names that read cleanly. They anchor the
	// model in the menu's cuisine and register.
	Neighbors []string `json:"neighbors,omitempty"`

	// Description is the item's description text, if any.
	Description string `json:"description,omitempty"`
}

// RepairResult is the provider's proposed correction.
type RepairResult struct {
	// Repaired is the corrected name. Empty means the provider declined.
	Repaired string `json:"repaired"`

	// Provider and model that produced the correction.
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Attempts counts API calls including retries.
	Attempts int `json:"attempts"`

	// Token counts, when the provider reports them.
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`

	ExecutionTime time.Duration `json:"execution_time"`
}

// RateLimitError signals a 429 from the upstream API.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
	StatusCode int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s)", e.Message, e.RetryAfter)
	}
	return e.Message
}
