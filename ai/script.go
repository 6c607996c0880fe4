package ai

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/prefabs"
)

// scriptRuntime caches compiled tengo scripts per path. Scripts that failed
// to load are remembered so the error is only logged once.
type scriptRuntime struct {
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func newScriptRuntime() *scriptRuntime {
	return &scriptRuntime{
		compiled: map[string]*tengo.Compiled{},
		failed:   map[string]bool{},
	}
}

func (rt *scriptRuntime) load(path string) (*tengo.Compiled, error) {
	if c, ok := rt.compiled[path]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	rt.compiled[path] = compiled
	return compiled, nil
}

func (e *Enemy) runScript(path string, ctx *Context) {
	path = strings.TrimSpace(path)
	if path == "" || e.scripts == nil || e.scripts.failed[path] {
		return
	}

	compiled, err := e.scripts.load(path)
	if err != nil {
		e.scripts.failed[path] = true
		log.Printf("ai: entity=%s load script %s error: %v", e.entity, path, err)
		return
	}

	if err := compiled.Set("engine", buildScriptEngine(ctx)); err != nil {
		log.Printf("ai: entity=%s script %s error: %v", e.entity, path, err)
		return
	}
	if err := compiled.Run(); err != nil {
		log.Printf("ai: entity=%s script %s error: %v", e.entity, path, err)
	}
}

func buildScriptEngine(ctx *Context) *tengo.ImmutableMap {
	e := ctx.Enemy
	values := map[string]tengo.Object{}

	values["distance"] = &tengo.UserFunction{Name: "distance", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if !ctx.TargetFound {
			return &tengo.Float{Value: -1}, nil
		}
		return &tengo.Float{Value: ctx.Distance}, nil
	}}

	values["health"] = &tengo.UserFunction{Name: "health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(e.health.Current())}, nil
	}}

	values["max_health"] = &tengo.UserFunction{Name: "max_health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(e.health.Max())}, nil
	}}

	values["state"] = &tengo.UserFunction{Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: string(e.state)}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e.deps.Body == nil {
			return vecObject(0, 0, 0), nil
		}
		p := e.deps.Body.Position()
		return vecObject(p.X, p.Y, p.Z), nil
	}}

	values["target_position"] = &tengo.UserFunction{Name: "target_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if !ctx.TargetFound {
			return tengo.UndefinedValue, nil
		}
		return vecObject(ctx.TargetPos.X, ctx.TargetPos.Y, ctx.TargetPos.Z), nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		e.emit(combat.Scripted{Actor: e.entity, Name: name})
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Printf("ai: entity=%s script: %s", e.entity, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vecObject(x, y, z float64) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: x},
		&tengo.Float{Value: y},
		&tengo.Float{Value: z},
	}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

// scriptError is returned by LintScripts for scripts that fail to compile.
type scriptError struct {
	path string
	err  error
}

func (e scriptError) Error() string {
	return fmt.Sprintf("ai: script %s: %v", e.path, e.err)
}

func (e scriptError) Unwrap() error {
	return e.err
}

// LintScripts compiles every script referenced by a graph and returns the
// first failure. Hosts call it before accepting a reloaded enemy spec.
func LintScripts(spec prefabs.EnemySpec) error {
	if spec.FSM == nil {
		return nil
	}
	rt := newScriptRuntime()
	for _, state := range spec.FSM.States {
		for _, list := range [][]map[string]any{state.OnEnter, state.While, state.Stay, state.OnExit} {
			for _, entry := range list {
				arg, ok := entry["script"]
				if !ok {
					continue
				}
				path := strings.TrimSpace(fmt.Sprint(arg))
				if _, err := rt.load(path); err != nil {
					return scriptError{path: path, err: err}
				}
			}
		}
	}
	return nil
}
