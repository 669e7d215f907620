package domain

import "time"

// ChatRequest is an inbound chat message
type ChatRequest struct {
	Message        string `json:"message" validate:"required,max=4000"`
	ConversationID string `json:"conversationId,omitempty"`
	UserID         string `json:"userId,omitempty"`
	Provider       string `json:"provider,omitempty" validate:"omitempty,oneof=anthropic openai ollama gemini"`
	Model          string `json:"model,omitempty"`
}

// Usage reports provider token consumption for one turn
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// ChatResponse is the result of one chat turn. Message is the assistant
// reply with recognized chart objects stripped out; it may be empty when
// ChartData is non-empty.
type ChatResponse struct {
	ID        string        `json:"id"`
	Query     string        `json:"query,omitempty"`
	Message   string        `json:"message"`
	ChartData []ChartUpdate `json:"chartData"`
	Timestamp time.Time     `json:"timestamp"`
	Usage     *Usage        `json:"usage,omitempty"`
}

// ConversationHistory is the payload for the history endpoint
type ConversationHistory struct {
	ConversationID string `json:"conversationId"`
	Messages       []Turn `json:"messages"`
	MessageCount   int    `json:"messageCount"`
}

// DashboardSummary is an LLM-generated territory overview plus any charts
// the model attached to it
type DashboardSummary struct {
	Summary   string        `json:"summary"`
	ChartData []ChartUpdate `json:"chartData"`
	Timestamp time.Time     `json:"timestamp"`
}
