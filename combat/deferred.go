package combat

import (
	"sync"

	"github.com/milk9111/fps/ecs"
)

type pendingHit struct {
	target Target
	amount int
	source ecs.Entity
}

// Deferred funnels damage from concurrently updated actors into a single
// point. Wrap targets handed to parallel workers, then Flush once per tick
// from the simulation goroutine; hits land in the order they were queued.
type Deferred struct {
	mu      sync.Mutex
	pending []pendingHit
}

func NewDeferred() *Deferred {
	return &Deferred{}
}

// Wrap returns a Target that queues instead of applying.
func (d *Deferred) Wrap(t Target) Target {
	if t == nil {
		return nil
	}
	return TargetFunc(func(amount int, source ecs.Entity) {
		d.mu.Lock()
		d.pending = append(d.pending, pendingHit{target: t, amount: amount, source: source})
		d.mu.Unlock()
	})
}

// WrapResolver makes every target resolved through r deferred.
func (d *Deferred) WrapResolver(r Resolver) Resolver {
	return deferredResolver{d: d, next: r}
}

// Flush applies queued damage and reports how many hits were delivered.
func (d *Deferred) Flush() int {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, p := range batch {
		p.target.ApplyDamage(p.amount, p.source)
	}
	return len(batch)
}

func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

type deferredResolver struct {
	d    *Deferred
	next Resolver
}

func (r deferredResolver) Target(e ecs.Entity) (Target, bool) {
	if r.next == nil {
		return nil, false
	}
	t, ok := r.next.Target(e)
	if !ok {
		return nil, false
	}
	return r.d.Wrap(t), true
}
