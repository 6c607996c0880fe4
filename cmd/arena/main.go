package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/fps/arena"
	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log combat events and AI transitions")
	watch := flag.Bool("watch", false, "hot reload prefabs from disk")
	levelName := flag.String("level", "arena.yaml", "arena spec in prefabs/")
	prefabDir := flag.String("prefabs", "prefabs", "on-disk prefab directory checked before the embedded copies")
	deferDamage := flag.Bool("defer", false, "queue damage and apply it once per tick")
	flag.Parse()

	prefabs.Dir = *prefabDir

	opts := arena.Options{Debug: *debug, DeferDamage: *deferDamage}
	if *debug {
		opts.Listeners = append(opts.Listeners, combat.LogListener(log.Default()))
	}

	a, err := arena.Load(*levelName, opts)
	if err != nil {
		log.Fatalf("failed to load arena %s: %v", *levelName, err)
	}

	game := NewGame(a)
	if *watch {
		w, err := prefabs.NewWatcher(prefabs.WatchDirs(*prefabDir)...)
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("fps arena")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

