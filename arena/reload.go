package arena

import (
	"fmt"
	"log"

	"github.com/milk9111/fps/ai"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/prefabs"
)

// ApplyChange reloads whatever a prefab edit touches. It must be called
// between steps. On error the previous configuration stays live.
func (a *Arena) ApplyChange(c prefabs.Change) error {
	switch c.Kind {
	case prefabs.ChangeScript:
		return a.reloadEnemies(func(string) bool { return true })
	case prefabs.ChangeSpec:
	default:
		return nil
	}

	switch c.Name {
	case a.spec.Player.Prefab:
		return a.reloadPlayer(c.Name)
	case "weapon.yaml":
		return a.reloadWeapon()
	case "arena.yaml":
		log.Printf("arena: %s changed; layout edits apply on restart", c.Name)
		return nil
	}
	return a.reloadEnemies(func(name string) bool { return name == c.Name })
}

func (a *Arena) reloadPlayer(name string) error {
	p, ok := a.Player()
	if !ok {
		return ErrNoPlayer
	}
	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](name)
	if err != nil {
		return err
	}
	p.ApplySpec(spec)
	log.Printf("arena: reloaded %s", name)
	return nil
}

func (a *Arena) reloadWeapon() error {
	w, ok := a.Weapon()
	if !ok {
		return ErrNoPlayer
	}
	spec, err := prefabs.LoadWeaponSpec()
	if err != nil {
		return err
	}
	w.ApplySpec(*spec)
	log.Printf("arena: reloaded weapon.yaml")
	return nil
}

// reloadEnemies re-reads the spec of every enemy whose prefab matches. Specs
// are loaded and linted before any enemy is touched.
func (a *Arena) reloadEnemies(match func(name string) bool) error {
	specs := map[string]prefabs.EnemySpec{}
	var targets []ecs.Entity

	var loadErr error
	ecs.ForEach2(a.World, PrefabComponent, EnemyComponent, func(e ecs.Entity, pf *Prefab, _ *ai.Enemy) {
		if loadErr != nil || !match(pf.Name) {
			return
		}
		targets = append(targets, e)
		if _, ok := specs[pf.Name]; ok {
			return
		}
		spec, err := prefabs.LoadSpec[prefabs.EnemySpec](pf.Name)
		if err != nil {
			loadErr = err
			return
		}
		if spec.FSM != nil {
			if _, err := ai.CompileFSM(*spec.FSM); err != nil {
				loadErr = fmt.Errorf("arena: reload %s: %w", pf.Name, err)
				return
			}
		}
		if err := ai.LintScripts(spec); err != nil {
			loadErr = fmt.Errorf("arena: reload %s: %w", pf.Name, err)
			return
		}
		specs[pf.Name] = spec
	})
	if loadErr != nil {
		return loadErr
	}

	for _, e := range targets {
		pf, _ := ecs.Get(a.World, e, PrefabComponent)
		enemy, _ := ecs.Get(a.World, e, EnemyComponent)
		if err := enemy.ApplySpec(specs[pf.Name]); err != nil {
			return fmt.Errorf("arena: reload %s: %w", pf.Name, err)
		}
	}
	if len(targets) > 0 {
		log.Printf("arena: reloaded %d enemies", len(targets))
	}
	return nil
}
