package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Service runs advisory chat turns: it forwards the user message plus
// trimmed history to a completion provider, extracts chart payloads from the
// reply, updates conversation state, and pushes chart batches to the
// publisher.
type Service struct {
	store       domain.ConversationStore
	llmRouter   *llm.Router
	publisher   domain.ChartPublisher
	maxTurns    int
	maxTokens   int
	temperature float64
}

// NewService creates a new advisory chat service
func NewService(
	store domain.ConversationStore,
	llmRouter *llm.Router,
	publisher domain.ChartPublisher,
	maxTurns int,
	maxTokens int,
	temperature float64,
) *Service {
	if maxTurns <= 0 {
		maxTurns = domain.DefaultMaxTurns
	}
	return &Service{
		store:       store,
		llmRouter:   llmRouter,
		publisher:   publisher,
		maxTurns:    maxTurns,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Send processes one chat turn. History is only mutated after a successful
// completion: the user turn and the raw assistant turn are appended together
// and the conversation is trimmed to the configured bound.
func (s *Service) Send(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, &domain.ValidationError{Field: "message", Reason: "must be a non-empty string"}
	}

	key := domain.NewConversationKey(req.UserID, req.ConversationID)

	history, err := s.store.History(ctx, key)
	if err != nil {
		// Degrade to an empty history rather than failing the turn.
		log.Error().Err(err).Str("conversation", key.String()).Msg("failed to load conversation history")
		history = nil
	}

	resp, err := s.complete(ctx, req.Provider, req.Model, history, message)
	if err != nil {
		return nil, err
	}

	displayText, charts := ExtractCharts(resp.Text)

	if err := s.store.Append(ctx, key,
		domain.Turn{Role: domain.RoleUser, Content: message},
		domain.Turn{Role: domain.RoleAssistant, Content: resp.Text},
	); err != nil {
		log.Error().Err(err).Str("conversation", key.String()).Msg("failed to append conversation turns")
	} else if err := s.store.Trim(ctx, key, s.maxTurns); err != nil {
		log.Error().Err(err).Str("conversation", key.String()).Msg("failed to trim conversation")
	}

	s.publishCharts(ctx, charts)

	return s.buildResponse(resp, displayText, charts), nil
}

// QuickQuery runs one of the canned suggested queries as a history-less
// turn. Stored conversations are not touched.
func (s *Service) QuickQuery(ctx context.Context, queryType string) (*domain.ChatResponse, error) {
	query, ok := quickQueries[queryType]
	if !ok {
		return nil, &domain.ValidationError{Field: "queryType", Reason: "unknown query type"}
	}

	resp, err := s.complete(ctx, "", "", nil, query)
	if err != nil {
		return nil, err
	}

	displayText, charts := ExtractCharts(resp.Text)
	s.publishCharts(ctx, charts)

	out := s.buildResponse(resp, displayText, charts)
	out.Query = query
	return out, nil
}

// GenerateChart refreshes a single dashboard slot and returns only the
// extracted updates.
func (s *Service) GenerateChart(ctx context.Context, slot, userQuery string) ([]domain.ChartUpdate, error) {
	prompt, ok := chartPrompts[slot]
	if !ok {
		if userQuery == "" {
			return nil, &domain.ValidationError{Field: "chartType", Reason: "unknown chart type"}
		}
		prompt = fmt.Sprintf("Generate %s data based on: %s", slot, userQuery)
	}

	resp, err := s.complete(ctx, "", "", nil, prompt)
	if err != nil {
		return nil, err
	}

	_, charts := ExtractCharts(resp.Text)
	s.publishCharts(ctx, charts)
	return charts, nil
}

// DashboardSummary generates a territory overview across all chart slots
func (s *Service) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	resp, err := s.complete(ctx, "", "", nil, summaryQuery)
	if err != nil {
		return nil, err
	}

	displayText, charts := ExtractCharts(resp.Text)
	s.publishCharts(ctx, charts)

	return &domain.DashboardSummary{
		Summary:   displayText,
		ChartData: charts,
		Timestamp: time.Now().UTC(),
	}, nil
}

// History returns the stored turns for a conversation, oldest-first
func (s *Service) History(ctx context.Context, userID, conversationID string) (*domain.ConversationHistory, error) {
	key := domain.NewConversationKey(userID, conversationID)
	turns, err := s.store.History(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return &domain.ConversationHistory{
		ConversationID: key.ConversationID,
		Messages:       turns,
		MessageCount:   len(turns),
	}, nil
}

// ClearHistory drops all stored turns for a conversation
func (s *Service) ClearHistory(ctx context.Context, userID, conversationID string) error {
	key := domain.NewConversationKey(userID, conversationID)
	if err := s.store.Clear(ctx, key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *Service) complete(ctx context.Context, providerName, model string, history []domain.Turn, userText string) (*llm.Response, error) {
	provider, err := s.llmRouter.GetProvider(providerName)
	if err != nil {
		// An explicitly requested provider fails as caller input;
		// only the default falling over is a configuration fault.
		if providerName != "" {
			return nil, &domain.ValidationError{Field: "provider", Reason: err.Error()}
		}
		return nil, &domain.ConfigurationError{Setting: "llm provider: " + err.Error()}
	}

	resp, err := provider.Complete(ctx, llm.Request{
		System:      SystemPreamble,
		History:     history,
		UserText:    userText,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}, model)
	if err != nil {
		metrics.ChatTurnErrors.WithLabelValues(provider.Name()).Inc()
		return nil, err
	}

	metrics.ChatTurnsTotal.WithLabelValues(provider.Name()).Inc()
	metrics.UpstreamLatency.WithLabelValues(provider.Name()).Observe(float64(resp.LatencyMs) / 1000)
	return resp, nil
}

func (s *Service) publishCharts(ctx context.Context, charts []domain.ChartUpdate) {
	if len(charts) == 0 || s.publisher == nil {
		return
	}
	for _, c := range charts {
		metrics.ChartsExtracted.WithLabelValues(string(c.Kind)).Inc()
	}
	if err := s.publisher.Publish(ctx, charts); err != nil {
		log.Error().Err(err).Int("charts", len(charts)).Msg("failed to publish chart updates")
	}
}

func (s *Service) buildResponse(resp *llm.Response, displayText string, charts []domain.ChartUpdate) *domain.ChatResponse {
	usage := resp.Usage
	return &domain.ChatResponse{
		ID:        uuid.New().String(),
		Message:   displayText,
		ChartData: charts,
		Timestamp: time.Now().UTC(),
		Usage:     &usage,
	}
}
