package player

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/prefabs"
)

const hero ecs.Entity = 4

type fakeBody struct {
	pos     common.Vec3
	vel     common.Vec3
	yaw     float64
	onFloor bool
}

func (b *fakeBody) Position() common.Vec3     { return b.pos }
func (b *fakeBody) Velocity() common.Vec3     { return b.vel }
func (b *fakeBody) SetVelocity(v common.Vec3) { b.vel = v }
func (b *fakeBody) SetFacing(yaw float64)     { b.yaw = yaw }
func (b *fakeBody) OnFloor() bool             { return b.onFloor }
func (b *fakeBody) DisableCollision()         {}

func newPlayer() (*Player, *fakeBody, *combat.Recorder) {
	body := &fakeBody{onFloor: true}
	rec := &combat.Recorder{}
	return New(hero, prefabs.PlayerSpec{}, body, combat.NewDispatcher(rec.Listen)), body, rec
}

func TestLookClampsPitch(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float64
		wantYaw   float64
		wantPitch float64
	}{
		{"still", 0, 0, 0, 0},
		{"turn_right", 100, 0, -0.3, 0},
		{"look_up", 0, -100, 0, 0.3},
		{"over_the_top", 0, -1000, 0, 1.5},
		{"under_the_floor", 0, 1000, 0, -1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _, _ := newPlayer()
			p.Look(tc.dx, tc.dy)
			assert.InDelta(t, tc.wantYaw, p.Yaw(), 1e-9)
			assert.InDelta(t, tc.wantPitch, p.Pitch(), 1e-9)
		})
	}
}

func TestWalkForwardFollowsYaw(t *testing.T) {
	p, body, _ := newPlayer()

	p.OnPhysicsTick(0.1, Input{Move: Axis{Y: 1}})
	assert.InDelta(t, 0.0, body.vel.X, 1e-9)
	assert.InDelta(t, -5.0, body.vel.Z, 1e-9)

	p.Look(-math.Pi/2/0.003, 0)
	p.OnPhysicsTick(0.1, Input{Move: Axis{Y: 1}})
	assert.InDelta(t, -5.0, body.vel.X, 1e-6)
	assert.InDelta(t, 0.0, body.vel.Z, 1e-6)
	assert.InDelta(t, p.Yaw(), body.yaw, 1e-9)
}

func TestDiagonalIsNormalized(t *testing.T) {
	p, body, _ := newPlayer()

	p.OnPhysicsTick(0.1, Input{Move: Axis{X: 1, Y: 1}})
	assert.InDelta(t, 5.0, body.vel.Horizontal().Len(), 1e-9)
}

func TestFrictionWithoutInput(t *testing.T) {
	p, body, _ := newPlayer()
	body.vel = common.Vec3{X: 4, Z: -2}

	p.OnPhysicsTick(0.1, Input{})
	assert.InDelta(t, 3.4, body.vel.X, 1e-9)
	assert.InDelta(t, -1.7, body.vel.Z, 1e-9)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	p, body, _ := newPlayer()

	p.OnPhysicsTick(0.1, Input{Jump: true})
	assert.Equal(t, 4.5, body.vel.Y)

	body.onFloor = false
	p.OnPhysicsTick(0.1, Input{Jump: true})
	assert.InDelta(t, 4.5-0.98, body.vel.Y, 1e-9)
}

func TestAimFromEye(t *testing.T) {
	p, body, _ := newPlayer()
	body.pos = common.Vec3{X: 2, Z: 3}

	origin, dir := p.Aim()
	assert.Equal(t, common.Vec3{X: 2, Y: 1.6, Z: 3}, origin)
	assert.InDelta(t, -1.0, dir.Z, 1e-9)

	p.Look(0, -1000)
	_, dir = p.Aim()
	assert.InDelta(t, 1.0, dir.Len(), 1e-9)
	assert.InDelta(t, math.Sin(1.5), dir.Y, 1e-9)
}

func TestDamageAndDeath(t *testing.T) {
	p, body, rec := newPlayer()

	p.ApplyDamage(30, 9)
	assert.Equal(t, 70, p.Health())
	assert.Equal(t, combat.HealthChanged{Actor: hero, Current: 70, Max: 100}, rec.Last())

	p.ApplyDamage(0, 9)
	assert.Len(t, rec.Events, 1)

	body.vel = common.Vec3{X: 3, Y: -1}
	p.ApplyDamage(80, 9)
	assert.False(t, p.IsAlive())
	assert.Equal(t, common.Zero, body.vel, "the lethal hit stops the body")
	require.Len(t, rec.Events, 3)
	assert.Equal(t, combat.HealthChanged{Actor: hero, Current: 0, Max: 100}, rec.Events[1])
	assert.Equal(t, combat.Died{Actor: hero}, rec.Events[2])

	p.ApplyDamage(10, 9)
	assert.Len(t, rec.Events, 3)

	body.vel = common.Vec3{X: 1}
	p.OnPhysicsTick(0.1, Input{Move: Axis{Y: 1}})
	assert.Equal(t, common.Vec3{X: 1}, body.vel, "dead players ignore input")
}
