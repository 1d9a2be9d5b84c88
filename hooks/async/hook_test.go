package asynchook

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingHooks struct {
	mu       sync.Mutex
	failed   int
	fallback int
	block    chan struct{}
}

func (c *countingHooks) EncodeFailed(string, error) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.failed++
	c.mu.Unlock()
}

func (c *countingHooks) FallbackUsed(string, string) {
	c.mu.Lock()
	c.fallback++
	c.mu.Unlock()
}

func TestDeliversBeforeClose(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 64)

	for i := 0; i < 10; i++ {
		h.FallbackUsed("t", "f")
	}
	h.EncodeFailed("t", errors.New("x"))
	h.Close()

	assert.Equal(t, 10, inner.fallback)
	assert.Equal(t, 1, inner.failed)
	assert.Zero(t, h.Dropped())
}

func TestDropsWhenFull(t *testing.T) {
	inner := &countingHooks{block: make(chan struct{})}
	h := New(inner, 1, 1)

	h.EncodeFailed("t", nil) // taken by the worker, which blocks
	h.EncodeFailed("t", nil) // may sit in the queue or be dropped
	for i := 0; i < 5; i++ {
		h.FallbackUsed("t", "f")
	}
	assert.NotZero(t, h.Dropped())

	close(inner.block)
	h.Close()
}

func TestEventsAfterCloseAreDropped(t *testing.T) {
	h := New(&countingHooks{}, 1, 4)
	h.Close()
	h.Close()

	assert.NotPanics(t, func() { h.FallbackUsed("t", "f") })
	assert.Equal(t, uint64(1), h.Dropped())
}
