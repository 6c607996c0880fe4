package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
)

type resolverMap map[ecs.Entity]combat.Target

func (m resolverMap) Target(e ecs.Entity) (combat.Target, bool) {
	t, ok := m[e]
	return t, ok
}

func newTestWorld(t *testing.T) (*World, *ecs.World) {
	t.Helper()
	return NewWorld(resolverMap{}), ecs.NewWorld()
}

func TestCastHitsNearestActorOnMask(t *testing.T) {
	w, reg := newTestWorld(t)
	near := ecs.CreateEntity(reg)
	far := ecs.CreateEntity(reg)
	w.AddActor(near, common.Vec3{Z: -5}, 0.5, combat.LayerEnemy)
	w.AddActor(far, common.Vec3{Z: -10}, 0.5, combat.LayerEnemy)

	var damaged int
	w.SetResolver(resolverMap{near: combat.TargetFunc(func(amount int, _ ecs.Entity) { damaged += amount })})

	hit, ok := w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 100, combat.LayerAllButPlayer)
	require.True(t, ok)
	assert.Equal(t, near, hit.Entity)
	assert.InDelta(t, -4.5, hit.Point.Z, 1e-6)
	assert.InDelta(t, 1.0, hit.Point.Y, 1e-6)
	require.NotNil(t, hit.Target)
	hit.Target.ApplyDamage(25, ecs.None)
	assert.Equal(t, 25, damaged)
}

func TestCastIgnoresLayersOutsideMask(t *testing.T) {
	w, reg := newTestWorld(t)
	player := ecs.CreateEntity(reg)
	enemy := ecs.CreateEntity(reg)
	w.AddActor(player, common.Vec3{Z: -2}, 0.5, combat.LayerPlayer)
	w.AddActor(enemy, common.Vec3{Z: -6}, 0.5, combat.LayerEnemy)

	hit, ok := w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 100, combat.LayerAllButPlayer)
	require.True(t, ok)
	assert.Equal(t, enemy, hit.Entity)

	_, ok = w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 100, combat.LayerProp)
	assert.False(t, ok)
}

func TestCastStopsAtWallsAndRange(t *testing.T) {
	w, reg := newTestWorld(t)
	enemy := ecs.CreateEntity(reg)
	w.AddWall(common.Vec3{X: -1, Z: -4}, common.Vec3{X: 1, Z: -3})
	w.AddActor(enemy, common.Vec3{Z: -8}, 0.5, combat.LayerEnemy)

	hit, ok := w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 100, combat.LayerAllButPlayer)
	require.True(t, ok)
	assert.Equal(t, ecs.None, hit.Entity)
	assert.Nil(t, hit.Target)
	assert.InDelta(t, -3.0, hit.Point.Z, 1e-6)

	_, ok = w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 2, combat.LayerAllButPlayer)
	assert.False(t, ok)
}

func TestCastPassesOverShortActors(t *testing.T) {
	w, reg := newTestWorld(t)
	enemy := ecs.CreateEntity(reg)
	w.AddActor(enemy, common.Vec3{Z: -5}, 0.5, combat.LayerEnemy)

	_, ok := w.Cast(common.Vec3{Y: 3}, common.Vec3{Z: -1}, 100, combat.LayerEnemy)
	assert.False(t, ok)
}

func TestCastDownwardHitsFloor(t *testing.T) {
	w, _ := newTestWorld(t)

	hit, ok := w.Cast(common.Vec3{Y: 2}, common.Vec3{Y: -1, Z: -1}, 100, combat.LayerWorld)
	require.True(t, ok)
	assert.InDelta(t, 0.0, hit.Point.Y, 1e-6)
	assert.InDelta(t, -2.0, hit.Point.Z, 1e-6)

	_, ok = w.Cast(common.Vec3{Y: 2}, common.Vec3{Y: -1, Z: -1}, 100, combat.LayerEnemy)
	assert.False(t, ok)
}

func TestDisabledBodyIsInvisibleToCasts(t *testing.T) {
	w, reg := newTestWorld(t)
	enemy := ecs.CreateEntity(reg)
	b := w.AddActor(enemy, common.Vec3{Z: -5}, 0.5, combat.LayerEnemy)

	b.DisableCollision()
	assert.True(t, b.CollisionDisabled())

	_, ok := w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 100, combat.LayerEnemy)
	assert.False(t, ok)
}

func TestStepIntegratesVelocityAndFloor(t *testing.T) {
	w, reg := newTestWorld(t)
	e := ecs.CreateEntity(reg)
	b := w.AddActor(e, common.Vec3{Y: 1}, 0.5, combat.LayerEnemy)
	assert.False(t, b.OnFloor())

	b.SetVelocity(common.Vec3{X: 3, Y: -10})
	w.Step(0.5)

	pos := b.Position()
	assert.InDelta(t, 1.5, pos.X, 1e-6)
	assert.Equal(t, 0.0, pos.Y)
	assert.True(t, b.OnFloor())
	assert.Equal(t, 0.0, b.Velocity().Y)

	b.SetFacing(1.25)
	assert.InDelta(t, 1.25, b.Facing(), 1e-9)
}

func TestStepLeavesDisabledBodyInPlace(t *testing.T) {
	w, reg := newTestWorld(t)
	e := ecs.CreateEntity(reg)
	b := w.AddActor(e, common.Vec3{Y: 1, Z: -3}, 0.5, combat.LayerEnemy)

	b.SetVelocity(common.Vec3{Z: 3, Y: 2})
	b.DisableCollision()
	for i := 0; i < 15; i++ {
		w.Step(0.1)
	}

	assert.Equal(t, common.Vec3{Y: 1, Z: -3}, b.Position())
	assert.Equal(t, common.Zero, b.Velocity())
}

func TestRemoveDropsActor(t *testing.T) {
	w, reg := newTestWorld(t)
	e := ecs.CreateEntity(reg)
	w.AddActor(e, common.Vec3{Z: -5}, 0.5, combat.LayerEnemy)

	pos, ok := w.PositionOf(e)
	require.True(t, ok)
	assert.Equal(t, -5.0, pos.Z)

	w.Remove(e)
	w.Remove(e)
	_, ok = w.PositionOf(e)
	assert.False(t, ok)
	_, ok = w.Cast(common.Vec3{Y: 1}, common.Vec3{Z: -1}, 100, combat.LayerEnemy)
	assert.False(t, ok)
}
