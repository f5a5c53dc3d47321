// Package bus provides the in-process implementation of the ChangeNotifier.
package bus

import (
	"log/slog"
	"sync"

	"ppoth/internal/domain/service"
)

type subscription struct {
	topics map[string]struct{} // empty means every topic
	fn     func(topic string)
}

type notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]subscription
	logger *slog.Logger
}

// New creates the process-wide change notifier. Lifetime matches the
// application; there is no teardown beyond dropping subscribers.
func New(logger *slog.Logger) service.ChangeNotifier {
	return &notifier{
		subs:   make(map[int]subscription),
		logger: logger,
	}
}

// Publish delivers topic synchronously to every matching subscriber. A
// subscriber that panics is the subscriber's bug; delivery is otherwise
// best-effort with no queue and no replay.
func (n *notifier) Publish(topic string) {
	n.mu.RLock()
	matched := make([]func(string), 0, len(n.subs))
	for _, sub := range n.subs {
		if len(sub.topics) == 0 {
			matched = append(matched, sub.fn)

			continue
		}
		if _, ok := sub.topics[topic]; ok {
			matched = append(matched, sub.fn)
		}
	}
	n.mu.RUnlock()

	n.logger.Debug("Publishing change event",
		slog.String("topic", topic),
		slog.Int("subscribers", len(matched)),
	)

	for _, fn := range matched {
		fn(topic)
	}
}

// Subscribe registers fn for the given topics (all topics when none are
// given) and returns the unsubscribe function.
func (n *notifier) Subscribe(fn func(topic string), topics ...string) func() {
	filter := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		filter[topic] = struct{}{}
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = subscription{topics: filter, fn: fn}
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}
