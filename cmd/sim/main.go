package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/milk9111/fps/ai"
	"github.com/milk9111/fps/arena"
	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/player"
	"github.com/milk9111/fps/prefabs"
)

// sim runs an arena headless with a simple bot at the controls, for checking
// prefab balance without opening a window.
func main() {
	levelName := flag.String("level", "arena.yaml", "arena spec in prefabs/")
	prefabDir := flag.String("prefabs", "prefabs", "on-disk prefab directory checked before the embedded copies")
	ticks := flag.Int("ticks", 60*common.TPS, "number of ticks to simulate")
	bot := flag.Bool("bot", true, "turn toward and shoot the nearest enemy")
	verbose := flag.Bool("v", false, "log every combat event")
	flag.Parse()

	prefabs.Dir = *prefabDir

	rec := &combat.Recorder{}
	opts := arena.Options{Listeners: []combat.Listener{rec.Listen}}
	if *verbose {
		opts.Listeners = append(opts.Listeners, combat.LogListener(log.Default()))
	}

	a, err := arena.Load(*levelName, opts)
	if err != nil {
		log.Fatalf("failed to load arena %s: %v", *levelName, err)
	}

	dt := 1.0 / float64(common.TPS)
	for i := 0; i < *ticks; i++ {
		var in player.Input
		if *bot {
			in = steer(a)
		}
		a.Step(dt, in)

		if p, ok := a.Player(); ok && !p.IsAlive() {
			break
		}
		if len(liveEnemies(a)) == 0 {
			break
		}
	}

	report(a, rec)
}

func liveEnemies(a *arena.Arena) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range a.Enemies() {
		if enemy, ok := a.Enemy(e); ok && enemy.State() != ai.Dead {
			out = append(out, e)
		}
	}
	return out
}

// steer aims at the nearest live enemy and holds the trigger once the view
// is close enough to it.
func steer(a *arena.Arena) player.Input {
	var in player.Input
	p, ok := a.Player()
	if !ok {
		return in
	}
	self, _ := a.PositionOf(a.PlayerEntity())

	best := math.Inf(1)
	var aim common.Vec3
	for _, e := range liveEnemies(a) {
		pos, ok := a.PositionOf(e)
		if !ok {
			continue
		}
		if d := common.Distance(self, pos); d < best {
			best, aim = d, pos
		}
	}
	if math.IsInf(best, 1) {
		return in
	}

	want := common.YawTowards(self, aim)
	diff := math.Remainder(p.Yaw()-want, 2*math.Pi)
	in.LookDX = diff / p.Spec().MouseSensitivity
	in.Fire = math.Abs(diff) < 0.05

	if w, ok := a.Weapon(); ok && w.Ammo() == 0 {
		in.Reload = true
	}
	return in
}

func report(a *arena.Arena, rec *combat.Recorder) {
	fmt.Printf("arena %q after %d ticks (%.1fs)\n", a.Spec().Name, a.Ticks(), float64(a.Ticks())/float64(common.TPS))
	if p, ok := a.Player(); ok {
		fmt.Printf("  player health %d/%d\n", p.Health(), p.MaxHealth())
	}
	if w, ok := a.Weapon(); ok {
		fmt.Printf("  ammo %d/%d\n", w.Ammo(), w.MaxAmmo())
	}
	fmt.Printf("  enemies alive %d\n", len(liveEnemies(a)))
	for _, kind := range []string{"weapon_fired", "hit_resolved", "weapon_reloaded", "health_changed", "died", "scripted"} {
		fmt.Printf("  %-16s %d\n", kind, rec.Count(kind))
	}
}
