package combat

//go:generate go tool mockgen -destination=../mocks/combat_mock.go -package=mocks . Target,SpatialQuery,PathProvider,HitscanProvider,Resolver

import (
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
)

// Target is anything that can receive damage. Calls on a dead target are
// no-ops. source is the dealing actor, or ecs.None when unknown.
type Target interface {
	ApplyDamage(amount int, source ecs.Entity)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(amount int, source ecs.Entity)

func (f TargetFunc) ApplyDamage(amount int, source ecs.Entity) {
	if f == nil {
		return
	}
	f(amount, source)
}

// Resolver turns a weak actor reference into a damageable target. It reports
// false once the actor has left the world.
type Resolver interface {
	Target(e ecs.Entity) (Target, bool)
}

// SpatialQuery answers position questions about actors.
type SpatialQuery interface {
	PositionOf(e ecs.Entity) (common.Vec3, bool)
	Distance(a, b common.Vec3) float64
}

// PathProvider steers toward a destination one waypoint at a time.
// NextWaypoint reports false when the destination is reached or unreachable.
type PathProvider interface {
	SetDestination(pos common.Vec3)
	NextWaypoint() (common.Vec3, bool)
}

// Hit is the nearest obstruction found by a hitscan. Target is nil when the
// obstruction can't take damage (walls, props).
type Hit struct {
	Point  common.Vec3
	Entity ecs.Entity
	Target Target
}

// HitscanProvider casts an instantaneous ray. mask selects the collision
// layers the ray may stop on.
type HitscanProvider interface {
	Cast(origin, dir common.Vec3, maxDistance float64, mask uint32) (Hit, bool)
}

// Body is the movement collaborator a controller writes velocity into. The
// physics step that consumes the velocity belongs to the host.
type Body interface {
	Position() common.Vec3
	Velocity() common.Vec3
	SetVelocity(v common.Vec3)
	SetFacing(yaw float64)
	OnFloor() bool
	DisableCollision()
}

// Collision layers shared by the physics world and the weapon mask.
const (
	LayerPlayer uint32 = 1 << iota
	LayerEnemy
	LayerWorld
	LayerProp

	// LayerAllButPlayer is the default weapon mask.
	LayerAllButPlayer = LayerEnemy | LayerWorld | LayerProp
)
