package event

import (
	"fmt"
	"sync"
)

// Topic helpers. One topic per instructor calendar, ticket class, and cart.
func SlotsTopic(instructorID int) string {
	return fmt.Sprintf("slots:%d", instructorID)
}

func ClassTopic(classID int) string {
	return fmt.Sprintf("class:%d", classID)
}

// ClassesTopic covers all ticket-class mutations. Instructor-scoped class
// streams subscribe here so newly created classes signal them too.
func ClassesTopic() string {
	return "classes"
}

func CartTopic(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Bus fans out change signals to SSE subscribers. Signals carry no payload:
// every subscriber recomputes a full snapshot on wake-up, so dropped or
// coalesced signals cannot lose state, only delay it until the next one.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]map[chan struct{}]struct{}
}

func NewBus() *Bus {
	return &Bus{
		topics: make(map[string]map[chan struct{}]struct{}),
	}
}

// Subscribe registers a subscriber on a topic and returns its signal channel.
// Capacity 1: a pending signal coalesces with later ones.
func (b *Bus) Subscribe(topic string) chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[chan struct{}]struct{})
		b.topics[topic] = subs
	}
	subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call for
// a channel that was already unsubscribed.
func (b *Bus) Unsubscribe(topic string, ch chan struct{}) {
	b.mu.Lock()
	if subs, ok := b.topics[topic]; ok {
		if _, member := subs[ch]; member {
			delete(subs, ch)
			close(ch)
		}
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
	b.mu.Unlock()
}

// Publish wakes every subscriber of a topic. Non-blocking: a subscriber that
// already has a signal pending is skipped.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.topics[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers reports the current subscriber count for a topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}
