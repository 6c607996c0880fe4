package weapon

import (
	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/prefabs"
)

// Aim reports where a shot leaves from and which way it travels.
type Aim func() (origin, dir common.Vec3)

// Weapon is hitscan fire control with a cooldown and a magazine.
type Weapon struct {
	owner  ecs.Entity
	spec   prefabs.WeaponSpec
	scan   combat.HitscanProvider
	aim    Aim
	events combat.Emitter

	ammo      int
	fireTimer float64
}

// New returns a weapon with a full magazine, ready to fire.
func New(owner ecs.Entity, spec prefabs.WeaponSpec, scan combat.HitscanProvider, aim Aim, events combat.Emitter) *Weapon {
	spec = spec.WithDefaults()
	return &Weapon{
		owner:  owner,
		spec:   spec,
		scan:   scan,
		aim:    aim,
		events: events,
		ammo:   spec.MaxAmmo,
	}
}

func (w *Weapon) Ammo() int {
	return w.ammo
}

func (w *Weapon) MaxAmmo() int {
	return w.spec.MaxAmmo
}

func (w *Weapon) FireTimer() float64 {
	return w.fireTimer
}

func (w *Weapon) Spec() prefabs.WeaponSpec {
	return w.spec
}

// ApplySpec swaps in reloaded tunables, clamping the loaded ammo to the new
// magazine size.
func (w *Weapon) ApplySpec(spec prefabs.WeaponSpec) {
	w.spec = spec.WithDefaults()
	if w.ammo > w.spec.MaxAmmo {
		w.ammo = w.spec.MaxAmmo
	}
}

func (w *Weapon) CanFire() bool {
	return w.fireTimer <= 0 && w.ammo > 0
}

// Fire spends a round and resolves the shot. It does nothing at all when the
// weapon can't fire.
func (w *Weapon) Fire() {
	if !w.CanFire() {
		return
	}
	w.ammo--
	w.fireTimer = w.spec.FireRate

	if hit, ok := w.cast(); ok {
		if hit.Target != nil {
			hit.Target.ApplyDamage(w.spec.Damage, w.owner)
		}
		w.emit(combat.HitResolved{Owner: w.owner, Target: hit.Entity, Point: hit.Point})
	}
	w.emit(combat.WeaponFired{Owner: w.owner, AmmoRemaining: w.ammo})
}

func (w *Weapon) cast() (combat.Hit, bool) {
	if w.scan == nil || w.aim == nil {
		return combat.Hit{}, false
	}
	origin, dir := w.aim()
	return w.scan.Cast(origin, dir, w.spec.Range, w.spec.LayerMask)
}

// Reload refills the magazine. There is no reserve pool or reload time.
func (w *Weapon) Reload() {
	w.ammo = w.spec.MaxAmmo
	w.emit(combat.WeaponReloaded{Owner: w.owner, Ammo: w.ammo})
}

// OnTick runs the cooldown down and fires when asked and able.
func (w *Weapon) OnTick(dt float64, fireRequested bool) {
	if w.spec.AutoReload && w.ammo == 0 {
		w.Reload()
	}

	w.fireTimer -= dt
	if w.fireTimer < 0 {
		w.fireTimer = 0
	}

	if fireRequested && w.CanFire() {
		w.Fire()
	}
}

func (w *Weapon) emit(ev combat.Event) {
	if w.events == nil {
		return
	}
	w.events.Emit(ev)
}
