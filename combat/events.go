package combat

import (
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
)

// Event is a gameplay notification for presentation-layer listeners.
type Event interface {
	Kind() string
}

type HealthChanged struct {
	Actor   ecs.Entity
	Current int
	Max     int
}

// Died is emitted once when an actor's health reaches zero. RemoveAt is the
// delay, in seconds, after which the host should remove the actor; zero
// keeps it in the world.
type Died struct {
	Actor    ecs.Entity
	RemoveAt float64
}

type WeaponFired struct {
	Owner         ecs.Entity
	AmmoRemaining int
}

type WeaponReloaded struct {
	Owner ecs.Entity
	Ammo  int
}

// HitResolved carries the impact point of a shot that struck something.
type HitResolved struct {
	Owner  ecs.Entity
	Target ecs.Entity
	Point  common.Vec3
}

// Scripted is raised by AI scripts through emit().
type Scripted struct {
	Actor ecs.Entity
	Name  string
}

func (HealthChanged) Kind() string  { return "health_changed" }
func (Died) Kind() string           { return "died" }
func (WeaponFired) Kind() string    { return "weapon_fired" }
func (WeaponReloaded) Kind() string { return "weapon_reloaded" }
func (HitResolved) Kind() string    { return "hit_resolved" }
func (Scripted) Kind() string       { return "scripted" }

// Listener receives events synchronously, in emission order.
type Listener func(Event)

// Emitter is what controllers publish through.
type Emitter interface {
	Emit(Event)
}

// Dispatcher fans events out to listeners in registration order. Delivery
// happens inside Emit, so a listener always observes the state that produced
// the event.
type Dispatcher struct {
	listeners []Listener
}

func NewDispatcher(listeners ...Listener) *Dispatcher {
	d := &Dispatcher{}
	for _, l := range listeners {
		d.Subscribe(l)
	}
	return d
}

func (d *Dispatcher) Subscribe(l Listener) {
	if d == nil || l == nil {
		return
	}
	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) Emit(evt Event) {
	if d == nil || evt == nil {
		return
	}
	for _, l := range d.listeners {
		l(evt)
	}
}

// Recorder is a listener that keeps every event. Handy for hosts that
// consume events after the tick, and for tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Listen(evt Event) {
	r.Events = append(r.Events, evt)
}

func (r *Recorder) Count(kind string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Last() Event {
	if len(r.Events) == 0 {
		return nil
	}
	return r.Events[len(r.Events)-1]
}

func (r *Recorder) Reset() {
	r.Events = nil
}
