package providers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const MockName = "mock"

// MockRepairer is a NameRepairer for testing.
type MockRepairer struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	FailAfter    int // Fail after N requests (0 = never)
	ResponseName string

	// State
	requestCount atomic.Int64
}

// NewMockRepairer creates a mock repairer with sensible defaults.
func NewMockRepairer() *MockRepairer {
	return &MockRepairer{
		ResponseName: "Mock Item",
	}
}

// Name returns the provider identifier.
func (c *MockRepairer) Name() string {
	return MockName
}

// RequestCount returns the number of repair requests served.
func (c *MockRepairer) RequestCount() int64 {
	return c.requestCount.Load()
}

// RepairName returns the configured response.
func (c *MockRepairer) RepairName(ctx context.Context, req *RepairRequest) (*RepairResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	if c.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.Latency):
		}
	}

	if c.ShouldFail || (c.FailAfter > 0 && count > int64(c.FailAfter)) {
		return nil, fmt.Errorf("mock failure on request %d", count)
	}

	return &RepairResult{
		Repaired:      c.ResponseName,
		Provider:      MockName,
		ModelUsed:     "mock-model",
		Attempts:      1,
		ExecutionTime: time.Since(start),
	}, nil
}

var _ NameRepairer = (*MockRepairer)(nil)
