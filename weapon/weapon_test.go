package weapon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/fps/combat"
	"github.com/milk9111/fps/common"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/mocks"
	"github.com/milk9111/fps/prefabs"
)

const (
	owner ecs.Entity = 7
	enemy ecs.Entity = 9
)

func forwardAim() (common.Vec3, common.Vec3) {
	return common.Vec3{Y: 1.6}, common.Vec3{Z: -1}
}

func newWeapon(t *testing.T, spec prefabs.WeaponSpec) (*Weapon, *mocks.MockHitscanProvider, *combat.Recorder) {
	t.Helper()
	scan := mocks.NewMockHitscanProvider(gomock.NewController(t))
	rec := &combat.Recorder{}
	return New(owner, spec, scan, forwardAim, combat.NewDispatcher(rec.Listen)), scan, rec
}

func TestNewWeaponIsLoaded(t *testing.T) {
	w, _, _ := newWeapon(t, prefabs.WeaponSpec{Damage: 25})

	assert.Equal(t, 30, w.Ammo())
	assert.Equal(t, 30, w.MaxAmmo())
	assert.Equal(t, 0.0, w.FireTimer())
	assert.True(t, w.CanFire())
}

func TestCanFire(t *testing.T) {
	tests := []struct {
		name  string
		ammo  int
		timer float64
		want  bool
	}{
		{"ready", 5, 0, true},
		{"cooling_down", 5, 0.05, false},
		{"empty", 0, 0, false},
		{"empty_and_cooling", 0, 0.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := New(owner, prefabs.WeaponSpec{}, nil, nil, nil)
			w.ammo = tc.ammo
			w.fireTimer = tc.timer
			assert.Equal(t, tc.want, w.CanFire())
			assert.Equal(t, tc.want, w.CanFire(), "CanFire must not mutate")
		})
	}
}

func TestFireHitsTarget(t *testing.T) {
	w, scan, rec := newWeapon(t, prefabs.WeaponSpec{Damage: 25})
	target := mocks.NewMockTarget(gomock.NewController(t))

	scan.EXPECT().Cast(common.Vec3{Y: 1.6}, common.Vec3{Z: -1}, 1000.0, combat.LayerAllButPlayer).
		Return(combat.Hit{Point: common.Vec3{Y: 1.6, Z: -4}, Entity: enemy, Target: target}, true)
	target.EXPECT().ApplyDamage(25, owner)

	w.Fire()
	assert.Equal(t, 29, w.Ammo())
	assert.Equal(t, 0.1, w.FireTimer())
	require.Len(t, rec.Events, 2)
	assert.Equal(t, combat.HitResolved{Owner: owner, Target: enemy, Point: common.Vec3{Y: 1.6, Z: -4}}, rec.Events[0])
	assert.Equal(t, combat.WeaponFired{Owner: owner, AmmoRemaining: 29}, rec.Events[1])
}

func TestFireAtWallStillFires(t *testing.T) {
	w, scan, rec := newWeapon(t, prefabs.WeaponSpec{Damage: 25})
	scan.EXPECT().Cast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(combat.Hit{Point: common.Vec3{Z: -3}}, true)

	w.Fire()
	assert.Equal(t, 29, w.Ammo())
	assert.Equal(t, 1, rec.Count("hit_resolved"))
	assert.Equal(t, 1, rec.Count("weapon_fired"))
}

func TestFireMissEmitsFired(t *testing.T) {
	w, scan, rec := newWeapon(t, prefabs.WeaponSpec{Damage: 25})
	scan.EXPECT().Cast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(combat.Hit{}, false)

	w.Fire()
	require.Len(t, rec.Events, 1)
	assert.Equal(t, combat.WeaponFired{Owner: owner, AmmoRemaining: 29}, rec.Events[0])
}

func TestFireWithoutProviderIsMiss(t *testing.T) {
	rec := &combat.Recorder{}
	w := New(owner, prefabs.WeaponSpec{}, nil, forwardAim, combat.NewDispatcher(rec.Listen))

	w.Fire()
	assert.Equal(t, 29, w.Ammo())
	assert.Equal(t, 1, rec.Count("weapon_fired"))
	assert.Zero(t, rec.Count("hit_resolved"))
}

func TestSecondShotOnEmptyMagazineIsNoop(t *testing.T) {
	w, scan, rec := newWeapon(t, prefabs.WeaponSpec{Damage: 25, FireRate: 0.5, MaxAmmo: 1})
	scan.EXPECT().Cast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(combat.Hit{}, false).Times(1)

	w.Fire()
	assert.Equal(t, 0, w.Ammo())
	assert.Equal(t, 0.5, w.FireTimer())
	assert.Equal(t, 1, rec.Count("weapon_fired"))

	w.OnTick(0.1, false)
	w.Fire()
	assert.Equal(t, 0, w.Ammo())
	assert.InDelta(t, 0.4, w.FireTimer(), 1e-9)
	assert.Equal(t, 1, rec.Count("weapon_fired"))
}

func TestReloadFromEmpty(t *testing.T) {
	w, _, rec := newWeapon(t, prefabs.WeaponSpec{})
	w.ammo = 0

	w.Reload()
	assert.Equal(t, 30, w.Ammo())
	assert.Equal(t, combat.WeaponReloaded{Owner: owner, Ammo: 30}, rec.Last())

	w.Reload()
	assert.Equal(t, 30, w.Ammo())
	assert.Equal(t, 2, rec.Count("weapon_reloaded"))
}

func TestOnTickCooldownAndFire(t *testing.T) {
	w, scan, rec := newWeapon(t, prefabs.WeaponSpec{Damage: 25, FireRate: 0.25})
	scan.EXPECT().Cast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(combat.Hit{}, false).Times(2)

	w.OnTick(0.1, true)
	assert.Equal(t, 29, w.Ammo())

	w.OnTick(0.1, true)
	w.OnTick(0.1, true)
	assert.Equal(t, 29, w.Ammo())
	assert.InDelta(t, 0.05, w.FireTimer(), 1e-9)

	w.OnTick(0.1, false)
	assert.Equal(t, 0.0, w.FireTimer(), "timer floors at zero")

	w.OnTick(0.1, true)
	assert.Equal(t, 28, w.Ammo())
	assert.Equal(t, 2, rec.Count("weapon_fired"))
}

func TestAutoReload(t *testing.T) {
	w, scan, rec := newWeapon(t, prefabs.WeaponSpec{MaxAmmo: 2, FireRate: 0.1, AutoReload: true})
	scan.EXPECT().Cast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(combat.Hit{}, false).AnyTimes()

	w.OnTick(0.1, true)
	w.OnTick(0.1, true)
	require.Equal(t, 0, w.Ammo())
	assert.Zero(t, rec.Count("weapon_reloaded"))

	w.OnTick(0.1, false)
	assert.Equal(t, 2, w.Ammo())
	assert.Equal(t, 1, rec.Count("weapon_reloaded"))
}

func TestApplySpecClampsAmmo(t *testing.T) {
	w, _, _ := newWeapon(t, prefabs.WeaponSpec{})
	w.ApplySpec(prefabs.WeaponSpec{MaxAmmo: 12, Damage: 40})

	assert.Equal(t, 12, w.Ammo())
	assert.Equal(t, 40, w.Spec().Damage)
}
