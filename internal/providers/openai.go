package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIName              = "openai"
	openAIDefaultModel      = "gpt-4o-mini"
	openAIDefaultRateLimit  = 2.0
	openAIDefaultMaxRetries = 5

	repairSystemPrompt = `You fix OCR errors in restaurant menu item names.
Given a garbled name and surrounding menu context, reply with ONLY the
corrected item name, nothing else. Preserve the original capitalization
style. If the name cannot be confidently reconstructed, reply with the
single word UNKNOWN.`
)

// OpenAIConfig holds configuration for the OpenAI repair client.
type OpenAIConfig struct {
	APIKey     string
	Model      string        // "gpt-4o-mini" (default)
	RateLimit  float64       // Requests per second
	MaxRetries int           // Retry attempts
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // Optional (tests)
	HTTPClient *http.Client  // Optional (tests)
}

// OpenAIRepairer implements NameRepairer using the official OpenAI SDK.
type OpenAIRepairer struct {
	apiKey     string
	model      string
	rateLimit  float64
	maxRetries int
	limiter    *RateLimiter
	client     openai.Client
}

// NewOpenAIRepairer creates a new OpenAI name repairer.
func NewOpenAIRepairer(cfg OpenAIConfig) *OpenAIRepairer {
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = openAIDefaultRateLimit
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = openAIDefaultMaxRetries
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		// The SDK retries transport errors itself; backoff across 429s is
		// handled here via retry-go so the rate limiter sees every attempt.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIRepairer{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		rateLimit:  cfg.RateLimit,
		maxRetries: cfg.MaxRetries,
		limiter:    NewRateLimiter(cfg.RateLimit),
		client:     openai.NewClient(opts...),
	}
}

// Name returns the provider identifier.
func (c *OpenAIRepairer) Name() string {
	return OpenAIName
}

// Model returns the configured model.
func (c *OpenAIRepairer) Model() string {
	return c.model
}

// matchesConfig reports whether the client already reflects cfg,
// accounting for the defaults NewOpenAIRepairer applies to zero values.
func (c *OpenAIRepairer) matchesConfig(cfg RepairProviderConfig) bool {
	model := cfg.Model
	if model == "" {
		model = openAIDefaultModel
	}
	rate := cfg.RateLimit
	if rate <= 0 {
		rate = openAIDefaultRateLimit
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = openAIDefaultMaxRetries
	}
	return c.apiKey == cfg.APIKey &&
		c.model == model &&
		c.rateLimit == rate &&
		c.maxRetries == retries
}

// RepairName asks the model for a corrected item name.
func (c *OpenAIRepairer) RepairName(ctx context.Context, req *RepairRequest) (*RepairResult, error) {
	start := time.Now()

	if req == nil || strings.TrimSpace(req.Garbled) == "" {
		return nil, fmt.Errorf("garbled name is required")
	}

	result := &RepairResult{
		Provider:  OpenAIName,
		ModelUsed: c.model,
	}

	err := retry.Do(
		func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}
			result.Attempts++

			resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(repairSystemPrompt),
					openai.UserMessage(buildRepairPrompt(req)),
				},
				Model:       openai.ChatModel(c.model),
				Temperature: openai.Float(0),
				MaxTokens:   openai.Int(60),
			})
			if err != nil {
				return mapOpenAIError(err)
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("openai returned no choices")
			}

			result.Repaired = cleanRepairedName(resp.Choices[0].Message.Content)
			result.PromptTokens = int(resp.Usage.PromptTokens)
			result.CompletionTokens = int(resp.Usage.CompletionTokens)
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)

	result.ExecutionTime = time.Since(start)
	if err != nil {
		return result, err
	}
	return result, nil
}

// buildRepairPrompt assembles the user message from the request context.
func buildRepairPrompt(req *RepairRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Garbled name: %s\n", req.Garbled)
	if req.Category != "" {
		fmt.Fprintf(&b, "Menu section: %s\n", req.Category)
	}
	if req.Description != "" {
		fmt.Fprintf(&b, "Item description: %s\n", req.Description)
	}
	if len(req.Neighbors) > 0 {
		fmt.Fprintf(&b, "Nearby items: %s\n", strings.Join(req.Neighbors, ", "))
	}
	return b.String()
}

// cleanRepairedName strips quoting and the UNKNOWN sentinel from a reply.
func cleanRepairedName(content string) string {
	name := strings.TrimSpace(content)
	if idx := strings.IndexByte(name, '\n'); idx >= 0 {
		name = strings.TrimSpace(name[:idx])
	}
	name = strings.Trim(name, `"'`)
	if strings.EqualFold(name, "UNKNOWN") {
		return ""
	}
	return name
}

// isRetryable reports whether an attempt should be retried.
func isRetryable(err error) bool {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return true
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	// Transport errors (timeouts, resets) are worth retrying.
	return true
}

// mapOpenAIError converts SDK errors into package error types.
func mapOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			retryAfter := time.Duration(0)
			if apiErr.Response != nil {
				retryAfter = parseRetryAfter(apiErr.Response.Header.Get("Retry-After"))
			}
			return &RateLimitError{
				Message:    fmt.Sprintf("OpenAI rate limited: %s", apiErr.Message),
				RetryAfter: retryAfter,
				StatusCode: apiErr.StatusCode,
			}
		}
		if apiErr.Message != "" {
			return fmt.Errorf("OpenAI error (status %d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("OpenAI error (status %d)", apiErr.StatusCode)
	}
	return err
}

// parseRetryAfter reads a Retry-After header value in seconds.
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return 0
}

var _ NameRepairer = (*OpenAIRepairer)(nil)
