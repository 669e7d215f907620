package llm

import (
	"context"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

// Request contains completion parameters for one chat turn. History is
// oldest-first and already trimmed by the caller; UserText is appended as
// the final user turn by the provider.
type Request struct {
	System      string
	History     []domain.Turn
	UserText    string
	MaxTokens   int
	Temperature float64
}

// Response contains the completion result
type Response struct {
	Text      string
	Model     string
	Usage     domain.Usage
	LatencyMs int64
}

// Provider defines the interface for completion providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete issues one synchronous, non-streaming completion request
	Complete(ctx context.Context, req Request, model string) (*Response, error)
}

// NoResponseText is returned when the provider reply carries no text block.
const NoResponseText = "No response received"
