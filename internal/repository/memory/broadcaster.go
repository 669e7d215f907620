package memory

import (
	"context"
	"sync"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

// Broadcaster is an in-process chart-update publisher. Subscribers get a
// buffered channel; a subscriber that falls behind drops batches rather than
// blocking the chat turn.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[chan []domain.ChartUpdate]struct{}
}

// NewBroadcaster creates a new in-process broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan []domain.ChartUpdate]struct{}),
	}
}

// Subscribe registers a listener. The returned cancel function must be
// called to release the subscription.
func (b *Broadcaster) Subscribe() (<-chan []domain.ChartUpdate, func()) {
	ch := make(chan []domain.ChartUpdate, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans a chart batch out to all current subscribers
func (b *Broadcaster) Publish(ctx context.Context, updates []domain.ChartUpdate) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- updates:
		default:
			// Slow subscriber; drop the batch for it.
		}
	}
	return nil
}
