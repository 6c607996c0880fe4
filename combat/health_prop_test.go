package combat

import (
	"testing"

	"pgregory.net/rapid"
)

func TestHealthStaysInBoundsAndDiesOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHealth(rapid.IntRange(-5, 500).Draw(t, "max"))
		hits := rapid.SliceOf(rapid.IntRange(-20, 120)).Draw(t, "hits")

		lethal := 0
		for _, amt := range hits {
			before := h.Current()
			applied, killed := h.Damage(amt)
			if killed {
				lethal++
			}
			if applied && h.Current() != max(before-amt, 0) {
				t.Fatalf("hit of %d took %d to %d", amt, before, h.Current())
			}
			if !applied && h.Current() != before {
				t.Fatalf("ignored hit changed health %d -> %d", before, h.Current())
			}
			if h.Current() < 0 || h.Current() > h.Max() {
				t.Fatalf("health %d escaped [0, %d]", h.Current(), h.Max())
			}
		}

		if lethal > 1 {
			t.Fatalf("pool died %d times", lethal)
		}
		if h.IsAlive() != (lethal == 0) {
			t.Fatalf("alive=%v after %d lethal hits", h.IsAlive(), lethal)
		}
	})
}
