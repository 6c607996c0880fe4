package ai

import (
	"fmt"
	"log"
	"sort"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/prefabs"
)

type StateID string

const (
	Idle      StateID = "idle"
	Chasing   StateID = "chasing"
	Attacking StateID = "attacking"
	Dead      StateID = "dead"
)

// Context is what actions and checkers see for one tick. Target fields are
// only meaningful when TargetFound is set.
type Context struct {
	Enemy       *Enemy
	DT          float64
	TargetFound bool
	TargetPos   common.Vec3
	Distance    float64
}

type Action func(ctx *Context)

type Checker func(ctx *Context) bool

// StateDef lists the actions run around a state. While runs every tick
// before the transition checks; Stay runs only on ticks where no transition
// fired.
type StateDef struct {
	OnEnter []Action
	While   []Action
	Stay    []Action
	OnExit  []Action
}

type Transition struct {
	Name  string
	Check Checker
	To    StateID
}

type FSMDef struct {
	Initial     StateID
	States      map[StateID]StateDef
	Transitions map[StateID][]Transition
}

var actionRegistry = map[string]func(any) Action{
	"print": func(arg any) Action {
		msg := fmt.Sprint(arg)
		return func(ctx *Context) {
			log.Printf("ai: %s", msg)
		}
	},
	"seek_target": func(_ any) Action {
		return func(ctx *Context) {
			if ctx == nil || !ctx.TargetFound || ctx.Enemy.deps.Path == nil {
				return
			}
			ctx.Enemy.deps.Path.SetDestination(ctx.TargetPos)
		}
	},
	"stop": func(_ any) Action {
		return func(ctx *Context) {
			if ctx == nil || ctx.Enemy.deps.Body == nil {
				return
			}
			v := ctx.Enemy.deps.Body.Velocity()
			ctx.Enemy.deps.Body.SetVelocity(common.Vec3{Y: v.Y})
		}
	},
	"start_attack_timer": func(arg any) Action {
		seconds := asFloat(arg)
		return func(ctx *Context) {
			if ctx == nil {
				return
			}
			if seconds > 0 {
				ctx.Enemy.attackTimer = seconds
				return
			}
			ctx.Enemy.attackTimer = ctx.Enemy.spec.AttackCooldown
		}
	},
	// tick_attack counts the attack timer down and strikes when it runs out.
	// The timer is rearmed only while the target is still in reach, which
	// leaves it expired for attack_expired to pick up.
	"tick_attack": func(_ any) Action {
		return func(ctx *Context) {
			if ctx == nil {
				return
			}
			e := ctx.Enemy
			e.attackTimer -= ctx.DT
			if e.attackTimer > 0 {
				return
			}
			e.attack()
			if ctx.TargetFound && ctx.Distance <= e.spec.AttackRange {
				e.attackTimer = e.spec.AttackCooldown
				return
			}
			e.attackTimer = 0
		}
	},
	"attack": func(_ any) Action {
		return func(ctx *Context) {
			if ctx == nil {
				return
			}
			ctx.Enemy.attack()
		}
	},
	"emit": func(arg any) Action {
		name := fmt.Sprint(arg)
		return func(ctx *Context) {
			if ctx == nil {
				return
			}
			ctx.Enemy.emit(combat.Scripted{Actor: ctx.Enemy.entity, Name: name})
		}
	},
	"script": func(arg any) Action {
		path := fmt.Sprint(arg)
		return func(ctx *Context) {
			if ctx == nil {
				return
			}
			ctx.Enemy.runScript(path, ctx)
		}
	},
}

var checkerRegistry = map[string]func(any) Checker{
	"always": func(_ any) Checker {
		return func(ctx *Context) bool { return true }
	},
	"sees_target": func(_ any) Checker {
		return func(ctx *Context) bool {
			return ctx != nil && ctx.TargetFound && ctx.Distance <= ctx.Enemy.spec.DetectionRange
		}
	},
	"loses_target": func(_ any) Checker {
		return func(ctx *Context) bool {
			if ctx == nil || !ctx.TargetFound {
				return false
			}
			return ctx.Distance > ctx.Enemy.spec.DetectionRange*ctx.Enemy.spec.LoseTargetFactor
		}
	},
	"in_attack_range": func(_ any) Checker {
		return func(ctx *Context) bool {
			return ctx != nil && ctx.TargetFound && ctx.Distance <= ctx.Enemy.spec.AttackRange
		}
	},
	"attack_expired": func(_ any) Checker {
		return func(ctx *Context) bool {
			return ctx != nil && ctx.Enemy.attackTimer <= 0
		}
	},
}

// ActionNames lists the registered FSM action names, sorted.
func ActionNames() []string {
	return sortedKeys(actionRegistry)
}

// CheckerNames lists the registered transition checker names, sorted.
func CheckerNames() []string {
	return sortedKeys(checkerRegistry)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	case float32:
		return float64(t)
	default:
		return 0
	}
}

func buildActions(list []map[string]any) ([]Action, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]Action, 0, len(list))
	for _, entry := range list {
		for _, name := range sortedKeys(entry) {
			makeAction, ok := actionRegistry[name]
			if !ok {
				return nil, fmt.Errorf("fsm: unknown action %q", name)
			}
			out = append(out, makeAction(entry[name]))
		}
	}
	return out, nil
}

// CompileFSM resolves a YAML state graph against the action and checker
// registries. The dead state is always present, even when the graph omits
// it, since damage can reach it from anywhere. A chasing state is required
// for the same reason: a surviving enemy is forced into it on every hit.
func CompileFSM(spec prefabs.FSMSpec) (*FSMDef, error) {
	if spec.Initial == "" {
		return nil, fmt.Errorf("fsm: missing initial state")
	}
	if _, ok := spec.States[spec.Initial]; !ok {
		return nil, fmt.Errorf("fsm: initial state %q is not defined", spec.Initial)
	}
	if StateID(spec.Initial) == Dead {
		return nil, fmt.Errorf("fsm: initial state cannot be %q", Dead)
	}

	def := &FSMDef{
		Initial:     StateID(spec.Initial),
		States:      make(map[StateID]StateDef, len(spec.States)+1),
		Transitions: make(map[StateID][]Transition, len(spec.Transitions)),
	}

	for name, s := range spec.States {
		onEnter, err := buildActions(s.OnEnter)
		if err != nil {
			return nil, fmt.Errorf("%w (state %s)", err, name)
		}
		while, err := buildActions(s.While)
		if err != nil {
			return nil, fmt.Errorf("%w (state %s)", err, name)
		}
		stay, err := buildActions(s.Stay)
		if err != nil {
			return nil, fmt.Errorf("%w (state %s)", err, name)
		}
		onExit, err := buildActions(s.OnExit)
		if err != nil {
			return nil, fmt.Errorf("%w (state %s)", err, name)
		}
		def.States[StateID(name)] = StateDef{OnEnter: onEnter, While: while, Stay: stay, OnExit: onExit}
	}
	if _, ok := def.States[Dead]; !ok {
		def.States[Dead] = StateDef{}
	}

	for from, entries := range spec.Transitions {
		fromID := StateID(from)
		if _, ok := def.States[fromID]; !ok {
			return nil, fmt.Errorf("fsm: transitions from undefined state %q", from)
		}
		for _, entry := range entries {
			for _, name := range sortedKeys(entry) {
				maker, ok := checkerRegistry[name]
				if !ok {
					return nil, fmt.Errorf("fsm: unknown checker %q (state %s)", name, from)
				}
				to := StateID(entry[name])
				if _, ok := def.States[to]; !ok {
					return nil, fmt.Errorf("fsm: transition %s.%s leads to undefined state %q", from, name, to)
				}
				def.Transitions[fromID] = append(def.Transitions[fromID], Transition{Name: name, Check: maker(nil), To: to})
			}
		}
	}

	if _, ok := def.States[Chasing]; !ok {
		return nil, fmt.Errorf("fsm: graph has no %q state", Chasing)
	}

	return def, nil
}

// DefaultEnemyFSM is the stock melee enemy:
//
//	idle      -> chasing   target within detection range
//	chasing   -> idle      target beyond detection range * lose factor
//	chasing   -> attacking target within attack range
//	attacking -> chasing   attack timer ran out with the target out of reach
func DefaultEnemyFSM() *FSMDef {
	return &FSMDef{
		Initial: Idle,
		States: map[StateID]StateDef{
			Idle: {},
			Chasing: {
				OnEnter: []Action{actionRegistry["seek_target"](nil)},
				Stay:    []Action{actionRegistry["seek_target"](nil)},
			},
			Attacking: {
				OnEnter: []Action{actionRegistry["start_attack_timer"](nil)},
				While:   []Action{actionRegistry["tick_attack"](nil)},
			},
			Dead: {},
		},
		Transitions: map[StateID][]Transition{
			Idle: {
				{Name: "sees_target", Check: checkerRegistry["sees_target"](nil), To: Chasing},
			},
			Chasing: {
				{Name: "loses_target", Check: checkerRegistry["loses_target"](nil), To: Idle},
				{Name: "in_attack_range", Check: checkerRegistry["in_attack_range"](nil), To: Attacking},
			},
			Attacking: {
				{Name: "attack_expired", Check: checkerRegistry["attack_expired"](nil), To: Chasing},
			},
		},
	}
}
