package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
)

// Body is one actor's presence in the world: a chipmunk circle on the
// ground plane (world X/Z map to chipmunk X/Y) plus a vertical coordinate the
// world integrates itself. It satisfies combat.Body.
type Body struct {
	entity ecs.Entity
	body   *cp.Body
	shape  *cp.Shape
	layer  uint32
	radius float64
	height float64

	y        float64
	vy       float64
	onFloor  bool
	disabled bool
}

func (b *Body) Entity() ecs.Entity {
	return b.entity
}

func (b *Body) Position() common.Vec3 {
	p := b.body.Position()
	return common.Vec3{X: p.X, Y: b.y, Z: p.Y}
}

// Teleport moves the body without changing its velocity.
func (b *Body) Teleport(pos common.Vec3) {
	b.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Z})
	b.y = pos.Y
	b.onFloor = b.y <= 0
}

func (b *Body) Velocity() common.Vec3 {
	v := b.body.Velocity()
	return common.Vec3{X: v.X, Y: b.vy, Z: v.Y}
}

func (b *Body) SetVelocity(v common.Vec3) {
	b.body.SetVelocity(v.X, v.Z)
	b.vy = v.Y
}

// SetFacing stores the yaw on the chipmunk body's angle.
func (b *Body) SetFacing(yaw float64) {
	b.body.SetAngle(yaw)
}

func (b *Body) Facing() float64 {
	return b.body.Angle()
}

func (b *Body) OnFloor() bool {
	return b.onFloor
}

func (b *Body) Radius() float64 {
	return b.radius
}

func (b *Body) Layer() uint32 {
	return b.layer
}

// DisableCollision drops the body out of every collision and ray query.
func (b *Body) DisableCollision() {
	if b.disabled {
		return
	}
	b.disabled = true
	b.shape.SetFilter(cp.SHAPE_FILTER_NONE)
}

func (b *Body) CollisionDisabled() bool {
	return b.disabled
}

func (b *Body) integrateVertical(dt float64) {
	b.y += b.vy * dt
	if b.y <= 0 {
		b.y = 0
		if b.vy < 0 {
			b.vy = 0
		}
		b.onFloor = true
		return
	}
	b.onFloor = false
}
