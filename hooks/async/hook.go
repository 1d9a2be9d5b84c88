// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    FallbackEvery: 100, // sample logs: ~every 100th generic fallback
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	engine, _ := enumjson.New(enumjson.Options{
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/enumjson"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full or after Close, so the encode path never blocks.
type Hooks struct {
	inner   enumjson.Hooks
	q       chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	once    sync.Once
	dropped atomic.Uint64
}

var _ enumjson.Hooks = (*Hooks)(nil)

func New(inner enumjson.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) EncodeFailed(typeName string, err error) {
	h.try(func() { h.inner.EncodeFailed(typeName, err) })
}

func (h *Hooks) FallbackUsed(typeName, fieldName string) {
	h.try(func() { h.inner.FallbackUsed(typeName, fieldName) })
}
