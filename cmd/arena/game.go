package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/fps/ai"
	"github.com/milk9111/fps/arena"
	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tps        = common.TPS
)

var stateColors = map[ai.StateID]color.Color{
	ai.Idle:      colornames.Steelblue,
	ai.Chasing:   colornames.Orange,
	ai.Attacking: colornames.Crimson,
	ai.Dead:      colornames.Dimgray,
}

type Game struct {
	frames int

	arena   *arena.Arena
	input   *Input
	watcher *prefabs.Watcher
	shots   []shot
}

// shot is a tracer kept on screen for a few frames.
type shot struct {
	from, to common.Vec3
	ttl      int
}

func NewGame(a *arena.Arena) *Game {
	g := &Game{arena: a, input: NewInput()}
	a.Events.Subscribe(g.onEvent)
	return g
}

func (g *Game) onEvent(evt combat.Event) {
	hit, ok := evt.(combat.HitResolved)
	if !ok {
		return
	}
	p, ok := g.arena.Player()
	if !ok {
		return
	}
	from, _ := p.Aim()
	g.shots = append(g.shots, shot{from: from, to: hit.Point, ttl: 6})
}

func (g *Game) Update() error {
	g.frames++
	g.applyReloads()

	in := g.input.Update()
	g.arena.Step(1.0/float64(tps), in)

	live := g.shots[:0]
	for _, s := range g.shots {
		s.ttl--
		if s.ttl > 0 {
			live = append(live, s)
		}
	}
	g.shots = live
	return nil
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Events:
			if err := g.arena.ApplyChange(change); err != nil {
				log.Printf("reload %s: %v", change.Name, err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("prefab watch: %v", err)
		default:
			return
		}
	}
}

// toScreen maps the ground plane onto the window, fitting the grid.
func (g *Game) toScreen(p common.Vec3) (float32, float32, float32) {
	grid := g.arena.Grid
	scale := math.Min(baseWidth/grid.Width(), baseHeight/grid.Depth())
	x := baseWidth/2 + p.X*scale
	y := baseHeight/2 + p.Z*scale
	return float32(x), float32(y), float32(scale)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.drawGrid(screen)
	g.drawEnemies(screen)
	g.drawPlayer(screen)

	for _, s := range g.shots {
		x0, y0, _ := g.toScreen(s.from)
		x1, y1, _ := g.toScreen(s.to)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Yellow, true)
	}

	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	grid := g.arena.Grid
	for _, c := range grid.Walls() {
		x, y, scale := g.toScreen(grid.Center(c))
		size := float32(grid.CellSize()) * scale
		vector.FillRect(screen, x-size/2, y-size/2, size, size, colornames.Darkslategray, false)
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image) {
	for _, e := range g.arena.Enemies() {
		enemy, _ := g.arena.Enemy(e)
		pos, ok := g.arena.PositionOf(e)
		if !ok {
			continue
		}
		x, y, scale := g.toScreen(pos)
		r := float32(enemy.Spec().Radius) * scale
		vector.FillCircle(screen, x, y, r, stateColors[enemy.State()], true)

		if enemy.State() != ai.Dead {
			frac := float32(enemy.Health()) / float32(enemy.MaxHealth())
			vector.FillRect(screen, x-r, y-r-6, 2*r*frac, 3, colornames.Limegreen, false)
		}

		if agent, ok := g.arena.NavAgent(e); ok && enemy.State() == ai.Chasing {
			lastX, lastY := x, y
			for _, wp := range agent.Path() {
				wx, wy, _ := g.toScreen(wp)
				vector.StrokeLine(screen, lastX, lastY, wx, wy, 1, colornames.Lightgrey, true)
				lastX, lastY = wx, wy
			}
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p, ok := g.arena.Player()
	if !ok {
		return
	}
	pos, ok := g.arena.PositionOf(g.arena.PlayerEntity())
	if !ok {
		return
	}
	x, y, scale := g.toScreen(pos)
	r := float32(p.Spec().Radius) * scale
	clr := colornames.Lightseagreen
	if !p.IsAlive() {
		clr = colornames.Dimgray
	}
	vector.FillCircle(screen, x, y, r, clr, true)

	tip := pos.Add(common.Forward(p.Yaw()).Scale(1.5))
	tx, ty, _ := g.toScreen(tip)
	vector.StrokeLine(screen, x, y, tx, ty, 2, colornames.White, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %.1f  tick: %d", ebiten.ActualFPS(), g.arena.Ticks())
	if p, ok := g.arena.Player(); ok {
		msg += fmt.Sprintf("\nHP: %d/%d", p.Health(), p.MaxHealth())
	}
	if w, ok := g.arena.Weapon(); ok {
		msg += fmt.Sprintf("  ammo: %d/%d", w.Ammo(), w.MaxAmmo())
	}
	if !g.input.captured {
		msg += "\nclick or press Tab to capture the mouse"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
