package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishWakesAllSubscribers(t *testing.T) {
	bus := NewBus()
	topic := SlotsTopic(1)

	ch1 := bus.Subscribe(topic)
	ch2 := bus.Subscribe(topic)

	bus.Publish(topic)

	select {
	case <-ch1:
	case <-time.After(time.Second):
		t.Fatal("first subscriber was not signalled")
	}
	select {
	case <-ch2:
	case <-time.After(time.Second):
		t.Fatal("second subscriber was not signalled")
	}
}

func TestPublishCoalesces(t *testing.T) {
	bus := NewBus()
	topic := SlotsTopic(1)
	ch := bus.Subscribe(topic)

	// rapid mutations collapse into one pending signal
	bus.Publish(topic)
	bus.Publish(topic)
	bus.Publish(topic)

	<-ch
	select {
	case <-ch:
		t.Fatal("expected signals to coalesce")
	default:
	}
}

func TestUnsubscribeDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()
	topic := SlotsTopic(1)

	ch1 := bus.Subscribe(topic)
	ch2 := bus.Subscribe(topic)

	bus.Unsubscribe(topic, ch1)

	// publishing after a disconnect must not panic and must still reach ch2
	require.NotPanics(t, func() { bus.Publish(topic) })

	select {
	case <-ch2:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not signalled")
	}

	_, open := <-ch1
	assert.False(t, open, "unsubscribed channel should be closed")
}

func TestUnsubscribeTwice(t *testing.T) {
	bus := NewBus()
	topic := CartTopic(9)
	ch := bus.Subscribe(topic)

	bus.Unsubscribe(topic, ch)
	require.NotPanics(t, func() { bus.Unsubscribe(topic, ch) })
	assert.Equal(t, 0, bus.Subscribers(topic))
}

func TestTopicsAreIndependent(t *testing.T) {
	bus := NewBus()

	chSlots := bus.Subscribe(SlotsTopic(1))
	chClass := bus.Subscribe(ClassTopic(1))

	bus.Publish(SlotsTopic(1))

	select {
	case <-chSlots:
	case <-time.After(time.Second):
		t.Fatal("slots subscriber was not signalled")
	}
	select {
	case <-chClass:
		t.Fatal("class subscriber should not receive slots signals")
	default:
	}
}
