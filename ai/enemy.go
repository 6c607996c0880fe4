package ai

import (
	"log"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/prefabs"
)

// Deps are the collaborators an enemy reaches through. Any of them may be
// nil; the branches that need a missing one do nothing.
type Deps struct {
	Body    combat.Body
	Space   combat.SpatialQuery
	Path    combat.PathProvider
	Targets combat.Resolver
	Events  combat.Emitter
}

// Enemy is a melee AI controller. It is driven by OnPhysicsTick and
// ApplyDamage from a single goroutine.
type Enemy struct {
	entity ecs.Entity
	spec   prefabs.EnemySpec
	fsm    *FSMDef
	deps   Deps

	health      combat.Health
	state       StateID
	attackTimer float64
	target      ecs.Entity

	scripts *scriptRuntime
	Debug   bool
}

// NewEnemy builds an enemy in its initial state with full health. A spec
// carrying an fsm block replaces the default state graph.
func NewEnemy(entity ecs.Entity, spec prefabs.EnemySpec, deps Deps) (*Enemy, error) {
	spec = spec.WithDefaults()
	fsm, err := compileFor(spec)
	if err != nil {
		return nil, err
	}

	return &Enemy{
		entity:  entity,
		spec:    spec,
		fsm:     fsm,
		deps:    deps,
		health:  combat.NewHealth(spec.Health),
		state:   fsm.Initial,
		target:  ecs.None,
		scripts: newScriptRuntime(),
	}, nil
}

func compileFor(spec prefabs.EnemySpec) (*FSMDef, error) {
	if spec.FSM == nil {
		return DefaultEnemyFSM(), nil
	}
	return CompileFSM(*spec.FSM)
}

func (e *Enemy) Entity() ecs.Entity {
	return e.entity
}

func (e *Enemy) State() StateID {
	return e.state
}

func (e *Enemy) Health() int {
	return e.health.Current()
}

func (e *Enemy) MaxHealth() int {
	return e.health.Max()
}

func (e *Enemy) AttackTimer() float64 {
	return e.attackTimer
}

func (e *Enemy) Target() ecs.Entity {
	return e.target
}

func (e *Enemy) Spec() prefabs.EnemySpec {
	return e.spec
}

// SetTarget points the enemy at another actor. ecs.None clears it.
func (e *Enemy) SetTarget(target ecs.Entity) {
	e.target = target
}

// ApplySpec swaps in reloaded tunables. Current health is clamped to the new
// maximum. The current state survives unless the new graph no longer has it,
// in which case the enemy falls back to the new initial state without running
// its hooks. A graph that fails to compile leaves the enemy untouched.
func (e *Enemy) ApplySpec(spec prefabs.EnemySpec) error {
	spec = spec.WithDefaults()
	fsm, err := compileFor(spec)
	if err != nil {
		return err
	}

	e.spec = spec
	e.fsm = fsm
	e.health.SetMax(spec.Health)
	e.scripts = newScriptRuntime()
	if e.state == Dead {
		return nil
	}
	if _, ok := fsm.States[e.state]; !ok {
		e.state = fsm.Initial
		e.attackTimer = 0
	}
	return nil
}

// OnPhysicsTick advances the state machine by at most one transition, then
// writes velocity into the body. Dead enemies ignore ticks.
func (e *Enemy) OnPhysicsTick(dt float64) {
	if e == nil || e.state == Dead {
		return
	}

	ctx := e.perceive(dt)
	if ctx.TargetFound {
		e.step(ctx)
	}
	e.move(dt)
}

func (e *Enemy) perceive(dt float64) *Context {
	ctx := &Context{Enemy: e, DT: dt, Distance: -1}
	if e.target == ecs.None || e.deps.Space == nil || e.deps.Body == nil {
		return ctx
	}
	pos, ok := e.deps.Space.PositionOf(e.target)
	if !ok {
		return ctx
	}
	ctx.TargetFound = true
	ctx.TargetPos = pos
	ctx.Distance = e.deps.Space.Distance(e.deps.Body.Position(), pos)
	return ctx
}

func (e *Enemy) step(ctx *Context) {
	def := e.fsm.States[e.state]
	runActions(def.While, ctx)
	if e.state == Dead {
		return
	}

	for _, tr := range e.fsm.Transitions[e.state] {
		if tr.Check(ctx) {
			if e.Debug {
				log.Printf("ai: entity=%s %s -> %s (%s)", e.entity, e.state, tr.To, tr.Name)
			}
			e.changeState(tr.To, ctx)
			return
		}
	}

	runActions(def.Stay, ctx)
}

func (e *Enemy) changeState(to StateID, ctx *Context) {
	if to == e.state {
		return
	}
	runActions(e.fsm.States[e.state].OnExit, ctx)
	e.state = to
	runActions(e.fsm.States[to].OnEnter, ctx)
}

func runActions(actions []Action, ctx *Context) {
	for _, a := range actions {
		if a != nil {
			a(ctx)
		}
	}
}

// move applies the movement contract for the state the tick ended in.
func (e *Enemy) move(dt float64) {
	body := e.deps.Body
	if body == nil {
		return
	}

	v := body.Velocity()
	if !body.OnFloor() {
		v.Y -= e.spec.Gravity * dt
	}

	if e.state == Chasing {
		if e.deps.Path != nil {
			if wp, ok := e.deps.Path.NextWaypoint(); ok {
				pos := body.Position()
				dir := wp.Sub(pos).Horizontal().Normalized()
				v.X = dir.X * e.spec.Speed
				v.Z = dir.Z * e.spec.Speed
				if dir != common.Zero {
					body.SetFacing(common.YawTowards(pos, wp))
				}
			}
		}
	} else {
		v.X *= e.spec.Damping
		v.Z *= e.spec.Damping
	}

	body.SetVelocity(v)
}

func (e *Enemy) attack() {
	if e.target == ecs.None || e.deps.Targets == nil {
		return
	}
	t, ok := e.deps.Targets.Target(e.target)
	if !ok || t == nil {
		return
	}
	t.ApplyDamage(e.spec.AttackDamage, e.entity)
}

// ApplyDamage implements combat.Target. A surviving enemy starts chasing
// whatever state it was in; the lethal hit moves it to Dead for good.
func (e *Enemy) ApplyDamage(amount int, source ecs.Entity) {
	if e == nil || e.state == Dead || amount <= 0 {
		return
	}

	_, lethal := e.health.Damage(amount)
	if lethal {
		// Listeners see the pool hit zero before the death notice.
		e.emit(combat.HealthChanged{Actor: e.entity, Current: 0, Max: e.health.Max()})
		e.die()
		return
	}

	e.retarget(source)
	if e.state != Chasing {
		e.changeState(Chasing, e.perceive(0))
	}
	e.emit(combat.HealthChanged{Actor: e.entity, Current: e.health.Current(), Max: e.health.Max()})
}

func (e *Enemy) retarget(source ecs.Entity) {
	if e.spec.RetargetOnDamage == nil || !*e.spec.RetargetOnDamage {
		return
	}
	if source == ecs.None || source == e.entity {
		return
	}
	if e.target != ecs.None && e.deps.Space != nil {
		if _, ok := e.deps.Space.PositionOf(e.target); ok {
			return
		}
	}
	e.target = source
}

func (e *Enemy) die() {
	ctx := e.perceive(0)
	runActions(e.fsm.States[e.state].OnExit, ctx)
	e.state = Dead
	e.attackTimer = 0
	runActions(e.fsm.States[Dead].OnEnter, ctx)

	if e.deps.Body != nil {
		e.deps.Body.SetVelocity(common.Zero)
		e.deps.Body.DisableCollision()
	}
	if e.Debug {
		log.Printf("ai: entity=%s died, removal in %.1fs", e.entity, e.spec.RemovalDelay)
	}
	e.emit(combat.Died{Actor: e.entity, RemoveAt: e.spec.RemovalDelay})
}

func (e *Enemy) emit(ev combat.Event) {
	if e.deps.Events == nil {
		return
	}
	e.deps.Events.Emit(ev)
}
