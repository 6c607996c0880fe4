package combat

// Health is a clamped hit-point pool. The zero value is unusable; build one
// with NewHealth.
type Health struct {
	current int
	max     int
	dead    bool
}

// NewHealth creates a full pool. Non-positive max is raised to 1.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{current: max, max: max}
}

// Damage subtracts amount, clamping at zero, and reports whether this call
// was the lethal one. Damage on a depleted pool or with a non-positive amount
// does nothing.
func (h *Health) Damage(amount int) (applied bool, lethal bool) {
	if h == nil || h.dead || amount <= 0 {
		return false, false
	}
	h.current -= amount
	if h.current <= 0 {
		h.current = 0
		h.dead = true
		return true, true
	}
	return true, false
}

// SetMax changes the ceiling and clamps Current if needed.
func (h *Health) SetMax(v int) {
	if h == nil {
		return
	}
	if v <= 0 {
		v = 1
	}
	h.max = v
	if h.current > h.max {
		h.current = h.max
	}
}

// Current returns the current health value.
func (h *Health) Current() int {
	if h == nil {
		return 0
	}
	return h.current
}

// Max returns the maximum health value.
func (h *Health) Max() int {
	if h == nil {
		return 0
	}
	return h.max
}

// IsAlive reports whether the pool has not been depleted.
func (h *Health) IsAlive() bool {
	return h != nil && !h.dead
}
