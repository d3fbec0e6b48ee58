package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-trio/internal/config"
	"github.com/vovakirdan/arcade-trio/internal/engine"
)

func testWeapon() config.WeaponConfig {
	return config.WeaponConfig{Name: "test", Damage: 5, Magazine: 3, Cooldown: 2, Reload: 4, BulletSpeed: 8, Pellets: 1, Lifetime: 10}
}

func TestWeaponFireAndCooldown(t *testing.T) {
	w := NewWeapon(testWeapon())

	require.True(t, w.Fire())
	assert.Equal(t, 2, w.Ammo)
	assert.False(t, w.Fire(), "cooling down")

	w.Tick()
	assert.False(t, w.Fire())
	w.Tick()
	assert.True(t, w.Fire())
}

func TestWeaponEmptyMagazine(t *testing.T) {
	w := NewWeapon(testWeapon())
	w.Ammo = 0
	assert.False(t, w.Ready())
	assert.False(t, w.Fire())
}

func TestWeaponReload(t *testing.T) {
	s := engine.NewScheduler()
	w := NewWeapon(testWeapon())

	assert.False(t, w.StartReload(s, nil), "a full magazine does not reload")

	w.Ammo = 1
	done := 0
	require.True(t, w.StartReload(s, func() { done++ }))
	assert.False(t, w.StartReload(s, nil), "reload already pending")
	assert.False(t, w.Fire(), "cannot fire while reloading")

	for range 3 {
		s.Advance()
	}
	assert.True(t, w.Reloading())
	s.Advance()
	assert.False(t, w.Reloading())
	assert.Equal(t, 3, w.Ammo)
	assert.Equal(t, 1, done)
}

func TestWeaponRefillCancelsReload(t *testing.T) {
	s := engine.NewScheduler()
	w := NewWeapon(testWeapon())
	w.Ammo = 0
	done := 0
	w.StartReload(s, func() { done++ })

	w.Refill()
	for range 10 {
		s.Advance()
	}
	assert.Equal(t, 3, w.Ammo)
	assert.Zero(t, done)
}

func TestArsenalCycles(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	a := NewArsenal(cfg.Weapons)

	assert.Equal(t, "pistol", a.Current().Spec.Name)
	assert.Equal(t, "rifle", a.Next().Spec.Name)
	assert.Equal(t, "shotgun", a.Next().Spec.Name)
	assert.Equal(t, "pistol", a.Next().Spec.Name)

	a.Next()
	a.Current().Ammo = 0
	a.Reset()
	assert.Equal(t, "pistol", a.Current().Spec.Name)
	assert.Equal(t, cfg.Weapons[1].Magazine, a.weapons[1].Ammo)
}

func TestEmptyArsenal(t *testing.T) {
	a := NewArsenal(nil)
	assert.Nil(t, a.Current())
	assert.Nil(t, a.Next())
}

func TestWeaponLabel(t *testing.T) {
	s := engine.NewScheduler()
	w := NewWeapon(testWeapon())
	assert.Equal(t, "test 3/3", w.Label())

	w.Ammo = 0
	w.StartReload(s, nil)
	assert.Equal(t, "test reloading", w.Label())
}
