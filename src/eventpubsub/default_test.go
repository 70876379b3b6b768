package eventpubsub

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	N int
}

func TestBus(t *testing.T) {
	bus := New()

	var seen []int
	require.NoError(t, bus.Subscribe(ExpiriesUpdatedEvent, func(ev testEvent) {
		seen = append(seen, ev.N)
	}))

	var mu sync.Mutex
	asyncCount := 0
	require.NoError(t, bus.SubscribeAsync(ExpiriesUpdatedEvent, func(ev testEvent) {
		mu.Lock()
		asyncCount++
		mu.Unlock()
	}))

	bus.Publish(ExpiriesUpdatedEvent, testEvent{N: 1})
	bus.Publish(ExpiriesUpdatedEvent, testEvent{N: 2})
	bus.Publish(ExpiriesRefreshFailedEvent, testEvent{N: 3})
	bus.WaitAsync()

	assert.Equal(t, []int{1, 2}, seen)

	mu.Lock()
	assert.Equal(t, 2, asyncCount)
	mu.Unlock()

	assert.Error(t, bus.Subscribe(ExpiriesUpdatedEvent, "not a func"))
}

func TestBusesAreIsolated(t *testing.T) {
	a, b := New(), New()

	called := false
	require.NoError(t, b.Subscribe(ExpiriesUpdatedEvent, func(ev testEvent) { called = true }))

	a.Publish(ExpiriesUpdatedEvent, testEvent{})
	assert.False(t, called)
}
