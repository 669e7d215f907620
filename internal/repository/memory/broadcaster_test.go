package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

func TestBroadcaster_PublishReachesSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	batch := []domain.ChartUpdate{
		{Kind: domain.KindTerritoryTrend, Payload: json.RawMessage(`{"labels":["W1"]}`)},
	}

	if err := b.Publish(context.Background(), batch); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case got := <-ch:
		if len(got) != 1 || got[0].Kind != domain.KindTerritoryTrend {
			t.Errorf("unexpected batch: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}
}

func TestBroadcaster_CancelStopsDelivery(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	cancel()

	if err := b.Publish(context.Background(), []domain.ChartUpdate{{Kind: domain.KindMarketSnapshot}}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if _, open := <-ch; open {
		t.Error("expected channel closed after cancel")
	}
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	_, cancel := b.Subscribe()
	defer cancel()

	// Fill well past the subscriber buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(context.Background(), []domain.ChartUpdate{{Kind: domain.KindCoachingMetrics}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
