package arena

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/milk9111/fps/ai"
	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/nav"
	"github.com/milk9111/fps/physics"
	"github.com/milk9111/fps/player"
	"github.com/milk9111/fps/prefabs"
	"github.com/milk9111/fps/weapon"
)

// ErrNoPlayer is returned when a player or weapon edit arrives with no
// player in the arena.
var ErrNoPlayer = errors.New("arena: player not spawned")

type Options struct {
	// DeferDamage routes every hit through a combat.Deferred queue that is
	// flushed once the actor systems have run.
	DeferDamage bool
	Debug       bool
	Listeners   []combat.Listener
}

// Arena is the simulation host: one registry, one physics space, and the
// systems that advance every actor once per Step.
type Arena struct {
	World   *ecs.World
	Physics *physics.World
	Grid    *nav.Grid
	Events  *combat.Dispatcher

	spec      prefabs.ArenaSpec
	opts      Options
	scheduler *ecs.Scheduler
	deferred  *combat.Deferred
	targets   combat.Resolver

	player ecs.Entity
	input  player.Input
	tick   uint64
}

// New builds the level from spec: walls, the player and every enemy spawn.
func New(spec *prefabs.ArenaSpec, opts Options) (*Arena, error) {
	if spec == nil {
		return nil, fmt.Errorf("arena: nil spec")
	}

	a := &Arena{
		World:  ecs.NewWorld(),
		Grid:   nav.NewGrid(spec.Rows, spec.CellSize),
		Events: combat.NewDispatcher(opts.Listeners...),
		spec:   *spec,
		opts:   opts,
		player: ecs.None,
	}
	a.targets = a
	if opts.DeferDamage {
		a.deferred = combat.NewDeferred()
		a.targets = a.deferred.WrapResolver(a)
	}

	a.Physics = physics.NewWorld(a.targets)
	a.Physics.Debug = opts.Debug
	a.World.OnDestroy(a.Physics.Remove)
	a.Events.Subscribe(a.scheduleRemoval)

	a.buildWalls()

	a.scheduler = ecs.NewScheduler(
		ecs.SystemFunc(a.updatePlayer),
		ecs.SystemFunc(a.updateEnemies),
		ecs.SystemFunc(a.flushDamage),
		ecs.SystemFunc(a.stepPhysics),
		ecs.NewTTLSystem(),
	)

	if spec.Player.Prefab != "" {
		ps, err := prefabs.LoadSpec[prefabs.PlayerSpec](spec.Player.Prefab)
		if err != nil {
			return nil, err
		}
		ws, err := prefabs.LoadWeaponSpec()
		if err != nil {
			return nil, err
		}
		a.SpawnPlayer(ps, *ws, common.Vec3{X: spec.Player.X, Z: spec.Player.Z})
	}

	for _, spawn := range spec.Enemies {
		es, err := prefabs.LoadSpec[prefabs.EnemySpec](spawn.Prefab)
		if err != nil {
			return nil, err
		}
		e, err := a.SpawnEnemy(es, common.Vec3{X: spawn.X, Z: spawn.Z})
		if err != nil {
			return nil, fmt.Errorf("arena: spawn %s: %w", spawn.Prefab, err)
		}
		_ = ecs.Add(a.World, e, PrefabComponent, &Prefab{Name: spawn.Prefab})
	}

	return a, nil
}

// Load reads an arena spec by file name and builds it.
func Load(filename string, opts Options) (*Arena, error) {
	spec, err := prefabs.LoadArenaSpec(filename)
	if err != nil {
		return nil, err
	}
	return New(spec, opts)
}

func (a *Arena) buildWalls() {
	half := a.Grid.CellSize() / 2
	for _, c := range a.Grid.Walls() {
		center := a.Grid.Center(c)
		a.Physics.AddWall(
			common.Vec3{X: center.X - half, Z: center.Z - half},
			common.Vec3{X: center.X + half, Z: center.Z + half},
		)
	}
}

// SpawnPlayer adds the player and its weapon. Every enemy already in the
// arena, and every one spawned later, targets it.
func (a *Arena) SpawnPlayer(ps prefabs.PlayerSpec, ws prefabs.WeaponSpec, pos common.Vec3) ecs.Entity {
	ps = ps.WithDefaults()
	e := ecs.CreateEntity(a.World)
	body := a.Physics.AddActor(e, pos, ps.Radius, combat.LayerPlayer)

	p := player.New(e, ps, body, a.Events)
	w := weapon.New(e, ws, a.Physics, p.Aim, a.Events)
	_ = ecs.Add(a.World, e, PlayerComponent, p)
	_ = ecs.Add(a.World, e, WeaponComponent, w)

	a.player = e
	ecs.ForEach(a.World, EnemyComponent, func(_ ecs.Entity, enemy *ai.Enemy) {
		enemy.SetTarget(e)
	})
	return e
}

// SpawnEnemy adds an enemy with its own body and navigation agent.
func (a *Arena) SpawnEnemy(spec prefabs.EnemySpec, pos common.Vec3) (ecs.Entity, error) {
	spec = spec.WithDefaults()
	e := ecs.CreateEntity(a.World)
	body := a.Physics.AddActor(e, pos, spec.Radius, combat.LayerEnemy)
	agent := nav.NewAgent(a.Grid, body.Position)

	enemy, err := ai.NewEnemy(e, spec, ai.Deps{
		Body:    body,
		Space:   a.Physics,
		Path:    agent,
		Targets: a.targets,
		Events:  a.Events,
	})
	if err != nil {
		ecs.DestroyEntity(a.World, e)
		return ecs.None, err
	}
	enemy.Debug = a.opts.Debug
	enemy.SetTarget(a.player)

	_ = ecs.Add(a.World, e, EnemyComponent, enemy)
	_ = ecs.Add(a.World, e, NavComponent, agent)
	return e, nil
}

// Target implements combat.Resolver over the registry.
func (a *Arena) Target(e ecs.Entity) (combat.Target, bool) {
	if enemy, ok := ecs.Get(a.World, e, EnemyComponent); ok {
		return enemy, true
	}
	if p, ok := ecs.Get(a.World, e, PlayerComponent); ok {
		return p, true
	}
	return nil, false
}

// Step advances the whole arena by dt using the given input snapshot.
func (a *Arena) Step(dt float64, in player.Input) {
	if dt <= 0 {
		return
	}
	a.input = in
	a.tick++
	a.scheduler.Update(a.World, dt)
}

func (a *Arena) Ticks() uint64 {
	return a.tick
}

func (a *Arena) updatePlayer(w *ecs.World, dt float64) {
	p, ok := ecs.Get(w, a.player, PlayerComponent)
	if !ok {
		return
	}
	p.OnPhysicsTick(dt, a.input)

	gun, ok := ecs.Get(w, a.player, WeaponComponent)
	if !ok || !p.IsAlive() {
		return
	}
	if a.input.Reload {
		gun.Reload()
	}
	gun.OnTick(dt, a.input.Fire)
}

func (a *Arena) updateEnemies(w *ecs.World, dt float64) {
	ecs.ForEach(w, EnemyComponent, func(_ ecs.Entity, enemy *ai.Enemy) {
		enemy.OnPhysicsTick(dt)
	})
}

func (a *Arena) flushDamage(_ *ecs.World, _ float64) {
	if a.deferred == nil {
		return
	}
	if n := a.deferred.Flush(); n > 0 && a.opts.Debug {
		log.Printf("arena: tick=%d flushed %d deferred hits", a.tick, n)
	}
}

func (a *Arena) stepPhysics(_ *ecs.World, dt float64) {
	a.Physics.Step(dt)
}

// scheduleRemoval turns a death notice into a TTL on the dead actor.
func (a *Arena) scheduleRemoval(evt combat.Event) {
	died, ok := evt.(combat.Died)
	if !ok || died.RemoveAt <= 0 {
		return
	}
	if err := ecs.Add(a.World, died.Actor, ecs.TTLComponent, &ecs.TTL{Remaining: died.RemoveAt}); err != nil {
		log.Printf("arena: schedule removal of %s: %v", died.Actor, err)
	}
}

func (a *Arena) Spec() prefabs.ArenaSpec {
	return a.spec
}

func (a *Arena) PlayerEntity() ecs.Entity {
	return a.player
}

func (a *Arena) Player() (*player.Player, bool) {
	return ecs.Get(a.World, a.player, PlayerComponent)
}

func (a *Arena) Weapon() (*weapon.Weapon, bool) {
	return ecs.Get(a.World, a.player, WeaponComponent)
}

func (a *Arena) Enemy(e ecs.Entity) (*ai.Enemy, bool) {
	return ecs.Get(a.World, e, EnemyComponent)
}

// Enemies returns the live enemy handles, sorted.
func (a *Arena) Enemies() []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(a.World, EnemyComponent, func(e ecs.Entity, _ *ai.Enemy) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (a *Arena) NavAgent(e ecs.Entity) (*nav.Agent, bool) {
	return ecs.Get(a.World, e, NavComponent)
}

// PositionOf reports where an actor stands.
func (a *Arena) PositionOf(e ecs.Entity) (common.Vec3, bool) {
	return a.Physics.PositionOf(e)
}
