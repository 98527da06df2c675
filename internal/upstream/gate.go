package upstream

import (
	"context"
	"sync"
)

// Gate bounds the number of in-flight upstream requests. Excess callers
// wait in FIFO order until a slot frees. There is no timeout on queued
// waiters beyond the caller's own context.
type Gate struct {
	mu      sync.Mutex
	limit   int
	active  int
	waiters []chan struct{}
}

// NewGate constructs a Gate admitting at most limit concurrent holders.
func NewGate(limit int) *Gate {
	if limit <= 0 {
		limit = 1
	}
	return &Gate{limit: limit}
}

// Acquire blocks until a slot is free or the context is done.
func (g *Gate) Acquire(ctx context.Context) error {
	g.mu.Lock()
	if g.active < g.limit {
		g.active++
		g.mu.Unlock()
		return nil
	}
	ready := make(chan struct{})
	g.waiters = append(g.waiters, ready)
	g.mu.Unlock()

	select {
	case <-ready:
		// Slot handed off by Release; active count already covers us.
		return nil
	case <-ctx.Done():
		if !g.abandon(ready) {
			// Release already woke us; pass the slot along.
			g.Release()
		}
		return ctx.Err()
	}
}

// Release frees a slot, waking the longest-waiting caller if any.
func (g *Gate) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.waiters) > 0 {
		next := g.waiters[0]
		g.waiters = g.waiters[1:]
		close(next)
		return
	}
	if g.active > 0 {
		g.active--
	}
}

// InFlight returns the number of currently held slots.
func (g *Gate) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// abandon removes ready from the wait queue, reporting whether it was
// still queued.
func (g *Gate) abandon(ready chan struct{}) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, w := range g.waiters {
		if w == ready {
			g.waiters = append(g.waiters[:i], g.waiters[i+1:]...)
			return true
		}
	}
	return false
}
