package ecs

// TTL destroys its entity once Remaining seconds have elapsed. Hosts add it
// to schedule removal; nothing else in the world has to track the deadline.
type TTL struct {
	Remaining float64
}

var TTLComponent = NewComponentKind[TTL]()

// TTLSystem counts TTL components down and destroys expired entities.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *World, dt float64) {
	if w == nil {
		return
	}

	ForEach(w, TTLComponent, func(e Entity, ttl *TTL) {
		ttl.Remaining -= dt
		if ttl.Remaining > 0 {
			return
		}
		DestroyEntity(w, e)
	})
}
