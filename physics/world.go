package physics

import (
	"log"
	"math"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
)

const defaultActorHeight = 1.8

// World owns the chipmunk space. Horizontal motion and collision response
// come from chipmunk; vertical motion is a plain floor-at-zero integration.
type World struct {
	space    *cp.Space
	bodies   map[ecs.Entity]*Body
	walls    []*cp.Shape
	resolver combat.Resolver
	Debug    bool
}

func NewWorld(resolver combat.Resolver) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	return &World{
		space:    space,
		bodies:   make(map[ecs.Entity]*Body),
		resolver: resolver,
	}
}

// SetResolver swaps the target resolver used by Cast.
func (w *World) SetResolver(r combat.Resolver) {
	w.resolver = r
}

// Space returns the underlying chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddWall adds a static, infinitely tall box spanning the given corners on
// the ground plane.
func (w *World) AddWall(min, max common.Vec3) {
	bb := cp.BB{L: min.X, B: min.Z, R: max.X, T: max.Z}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(combat.LayerWorld), cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
	w.walls = append(w.walls, shape)
}

// AddActor registers an upright cylinder for e on the given layer.
func (w *World) AddActor(e ecs.Entity, pos common.Vec3, radius float64, layer uint32) *Body {
	if existing, ok := w.bodies[e]; ok {
		return existing
	}
	if radius <= 0 {
		radius = 0.5
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Z})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	shape.UserData = e

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{
		entity: e,
		body:   body,
		shape:  shape,
		layer:  layer,
		radius: radius,
		height: defaultActorHeight,
		y:      pos.Y,
	}
	b.onFloor = b.y <= 0
	w.bodies[e] = b
	if w.Debug {
		log.Printf("physics: added entity=%s layer=%04b radius=%.2f", e, layer, radius)
	}
	return b
}

// Remove takes e out of the space. Safe to call for unknown entities.
func (w *World) Remove(e ecs.Entity) {
	b, ok := w.bodies[e]
	if !ok {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.bodies, e)
}

func (w *World) Body(e ecs.Entity) (*Body, bool) {
	b, ok := w.bodies[e]
	return b, ok
}

// Step integrates every body by dt. Bodies with collision disabled belong to
// the dead and stay where they are.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.disabled {
			b.body.SetVelocity(0, 0)
			b.vy = 0
			continue
		}
		b.integrateVertical(dt)
	}
	w.space.Step(dt)
}

func (w *World) PositionOf(e ecs.Entity) (common.Vec3, bool) {
	b, ok := w.bodies[e]
	if !ok {
		return common.Vec3{}, false
	}
	return b.Position(), true
}

func (w *World) Distance(a, b common.Vec3) float64 {
	return common.Distance(a, b)
}

type segmentHit struct {
	shape *cp.Shape
	alpha float64
}

// Cast finds the nearest shape or floor point along the ray whose layer is
// in mask. Actors are only hit where the ray passes through their height.
func (w *World) Cast(origin, dir common.Vec3, maxDistance float64, mask uint32) (combat.Hit, bool) {
	if w == nil || maxDistance <= 0 {
		return combat.Hit{}, false
	}
	dir = dir.Normalized()
	if dir == (common.Vec3{}) {
		return combat.Hit{}, false
	}
	end := origin.Add(dir.Scale(maxDistance))

	floorAlpha := math.Inf(1)
	if dir.Y < 0 && origin.Y >= 0 {
		floorAlpha = (origin.Y / -dir.Y) / maxDistance
	}

	var hits []segmentHit
	if dir.Horizontal() != (common.Vec3{}) {
		filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
		w.space.SegmentQuery(
			cp.Vector{X: origin.X, Y: origin.Z},
			cp.Vector{X: end.X, Y: end.Z},
			0, filter,
			func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
				hits = append(hits, segmentHit{shape: shape, alpha: alpha})
			}, nil)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].alpha < hits[j].alpha })

	for _, h := range hits {
		if h.alpha > floorAlpha {
			break
		}
		point := origin.Add(dir.Scale(maxDistance * h.alpha))
		e, isActor := h.shape.UserData.(ecs.Entity)
		if !isActor {
			return combat.Hit{Point: point}, true
		}
		b, ok := w.bodies[e]
		if !ok || point.Y < b.y || point.Y > b.y+b.height {
			continue
		}
		hit := combat.Hit{Point: point, Entity: e}
		if w.resolver != nil {
			if t, ok := w.resolver.Target(e); ok {
				hit.Target = t
			}
		}
		return hit, true
	}

	if mask&combat.LayerWorld != 0 && !math.IsInf(floorAlpha, 1) && floorAlpha <= 1 {
		return combat.Hit{Point: origin.Add(dir.Scale(maxDistance * floorAlpha))}, true
	}
	return combat.Hit{}, false
}
