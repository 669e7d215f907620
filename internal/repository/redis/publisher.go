package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

// ChartChannel is the pub/sub channel carrying chart-update batches for
// dashboard transports to consume.
const ChartChannel = "chart-updates"

// ChartPublisher publishes chart-update batches to a Redis pub/sub channel
type ChartPublisher struct {
	client *Client
}

// NewChartPublisher creates a new Redis chart publisher
func NewChartPublisher(client *Client) *ChartPublisher {
	return &ChartPublisher{client: client}
}

// Publish sends one batch of chart updates
func (p *ChartPublisher) Publish(ctx context.Context, updates []domain.ChartUpdate) error {
	data, err := json.Marshal(updates)
	if err != nil {
		return fmt.Errorf("failed to marshal chart updates: %w", err)
	}
	if err := p.client.rdb.Publish(ctx, ChartChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish chart updates: %w", err)
	}
	return nil
}
