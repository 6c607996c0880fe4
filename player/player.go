package player

import (
	"math"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/prefabs"
)

type Axis struct {
	X, Y float64
}

// Input is one tick's worth of device state, captured by the host. Move.X
// strafes right and Move.Y walks forward, both in [-1, 1]. Look deltas are
// raw mouse counts.
type Input struct {
	Move          Axis
	Jump          bool
	LookDX        float64
	LookDY        float64
	Fire          bool
	Reload        bool
	ToggleCapture bool
}

// Player is the first-person avatar: view angles, walking, jumping and a
// health pool enemies can hit.
type Player struct {
	entity ecs.Entity
	spec   prefabs.PlayerSpec
	body   combat.Body
	events combat.Emitter

	health combat.Health
	yaw    float64
	pitch  float64
}

func New(entity ecs.Entity, spec prefabs.PlayerSpec, body combat.Body, events combat.Emitter) *Player {
	spec = spec.WithDefaults()
	return &Player{
		entity: entity,
		spec:   spec,
		body:   body,
		events: events,
		health: combat.NewHealth(spec.Health),
	}
}

func (p *Player) Entity() ecs.Entity { return p.entity }
func (p *Player) Yaw() float64       { return p.yaw }
func (p *Player) Pitch() float64     { return p.pitch }
func (p *Player) Health() int        { return p.health.Current() }
func (p *Player) MaxHealth() int     { return p.health.Max() }
func (p *Player) IsAlive() bool      { return p.health.IsAlive() }

func (p *Player) Spec() prefabs.PlayerSpec {
	return p.spec
}

// ApplySpec swaps in reloaded tunables.
func (p *Player) ApplySpec(spec prefabs.PlayerSpec) {
	p.spec = spec.WithDefaults()
	p.health.SetMax(p.spec.Health)
	p.pitch = common.Clamp(p.pitch, -p.spec.PitchLimit, p.spec.PitchLimit)
}

// Look turns the view. Yaw is unbounded; pitch is clamped to the limit.
func (p *Player) Look(dx, dy float64) {
	p.yaw -= dx * p.spec.MouseSensitivity
	p.pitch -= dy * p.spec.MouseSensitivity
	p.pitch = common.Clamp(p.pitch, -p.spec.PitchLimit, p.spec.PitchLimit)
}

// Aim returns the eye position and view direction, for the weapon's hitscan.
func (p *Player) Aim() (origin, dir common.Vec3) {
	if p.body != nil {
		origin = p.body.Position()
	}
	origin.Y += p.spec.EyeHeight

	f := common.Forward(p.yaw).Scale(math.Cos(p.pitch))
	dir = f.Add(common.Up.Scale(math.Sin(p.pitch)))
	return origin, dir
}

// OnPhysicsTick applies view and movement input. A dead player ignores input.
func (p *Player) OnPhysicsTick(dt float64, in Input) {
	if !p.health.IsAlive() || p.body == nil {
		return
	}

	p.Look(in.LookDX, in.LookDY)

	v := p.body.Velocity()
	grounded := p.body.OnFloor()
	if !grounded {
		v.Y -= p.spec.Gravity * dt
	}
	if in.Jump && grounded {
		v.Y = p.spec.JumpVelocity
	}

	move := common.Right(p.yaw).Scale(in.Move.X).Add(common.Forward(p.yaw).Scale(in.Move.Y)).Normalized()
	if move != common.Zero {
		v.X = move.X * p.spec.Speed
		v.Z = move.Z * p.spec.Speed
	} else {
		v.X *= p.spec.Friction
		v.Z *= p.spec.Friction
	}

	p.body.SetVelocity(v)
	p.body.SetFacing(p.yaw)
}

// ApplyDamage implements combat.Target.
func (p *Player) ApplyDamage(amount int, source ecs.Entity) {
	applied, lethal := p.health.Damage(amount)
	if !applied {
		return
	}
	p.emit(combat.HealthChanged{Actor: p.entity, Current: p.health.Current(), Max: p.health.Max()})
	if lethal {
		if p.body != nil {
			p.body.SetVelocity(common.Zero)
		}
		p.emit(combat.Died{Actor: p.entity})
	}
}

func (p *Player) emit(ev combat.Event) {
	if p.events == nil {
		return
	}
	p.events.Emit(ev)
}
