package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/smdv/password-vault/models"
)

// notifier fans change events out to subscribers. Delivery per live
// subscriber is at-least-once: each event is handed to a goroutine that
// blocks until the subscriber reads it or cancels. Ordering between events
// is not guaranteed.
type notifier struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*subscription
}

type subscription struct {
	ch   chan models.ChangeEvent
	done chan struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[uuid.UUID]*subscription)}
}

// Subscribe registers a new observer. The cancel func is idempotent and
// releases any in-flight deliveries for this subscriber.
func (n *notifier) Subscribe() (<-chan models.ChangeEvent, func()) {
	sub := &subscription{
		ch:   make(chan models.ChangeEvent, 16),
		done: make(chan struct{}),
	}
	id := uuid.New()

	n.mu.Lock()
	n.subs[id] = sub
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(sub.done)
		})
	}

	return sub.ch, cancel
}

// Publish delivers event to every current subscriber. It never blocks the
// caller: slow subscribers are drained by per-subscriber goroutines that
// give up only when the subscription is cancelled.
func (n *notifier) Publish(event models.ChangeEvent) {
	n.mu.RLock()
	targets := make([]*subscription, 0, len(n.subs))
	for _, sub := range n.subs {
		targets = append(targets, sub)
	}
	n.mu.RUnlock()

	for _, sub := range targets {
		go func(s *subscription) {
			select {
			case s.ch <- event:
			case <-s.done:
			}
		}(sub)
	}
}
