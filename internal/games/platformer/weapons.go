package platformer

import (
	"fmt"

	"github.com/vovakirdan/arcade-trio/internal/config"
	"github.com/vovakirdan/arcade-trio/internal/engine"
)

// Weapon is one gun: a magazine, a fire cooldown and a scheduled reload.
type Weapon struct {
	Spec     config.WeaponConfig
	Ammo     int
	cooldown int
	reload   *engine.Task
}

// NewWeapon creates a weapon with a full magazine.
func NewWeapon(spec config.WeaponConfig) *Weapon {
	return &Weapon{Spec: spec, Ammo: spec.Magazine}
}

// Reloading reports whether a reload is pending.
func (w *Weapon) Reloading() bool {
	return w.reload.Pending()
}

// Ready reports whether the weapon can fire this frame.
func (w *Weapon) Ready() bool {
	return w.cooldown == 0 && w.Ammo > 0 && !w.Reloading()
}

// Tick counts the fire cooldown down by one frame.
func (w *Weapon) Tick() {
	if w.cooldown > 0 {
		w.cooldown--
	}
}

// Fire spends one round and starts the cooldown.
func (w *Weapon) Fire() bool {
	if !w.Ready() {
		return false
	}
	w.Ammo--
	w.cooldown = w.Spec.Cooldown
	return true
}

// StartReload schedules the magazine refill. done runs when it completes.
// Returns false if a reload is pending or the magazine is already full.
func (w *Weapon) StartReload(s *engine.Scheduler, done func()) bool {
	if w.Reloading() || w.Ammo >= w.Spec.Magazine {
		return false
	}
	w.reload = s.After(w.Spec.Reload, func() {
		w.Ammo = w.Spec.Magazine
		if done != nil {
			done()
		}
	})
	return true
}

// Refill fills the magazine immediately, cancelling any pending reload.
func (w *Weapon) Refill() {
	w.reload.Cancel()
	w.reload = nil
	w.Ammo = w.Spec.Magazine
}

// reset restores the weapon to its spawn state. The caller is responsible
// for cancelling scheduled reloads.
func (w *Weapon) reset() {
	w.Ammo = w.Spec.Magazine
	w.cooldown = 0
	w.reload = nil
}

// Label describes the weapon for the HUD.
func (w *Weapon) Label() string {
	if w.Reloading() {
		return fmt.Sprintf("%s reloading", w.Spec.Name)
	}
	return fmt.Sprintf("%s %d/%d", w.Spec.Name, w.Ammo, w.Spec.Magazine)
}

// Arsenal is the player's set of weapons. The same Weapon values live for
// the whole game and are reset in place between runs.
type Arsenal struct {
	weapons []*Weapon
	current int
}

// NewArsenal creates an arsenal from config, in order.
func NewArsenal(specs []config.WeaponConfig) *Arsenal {
	a := &Arsenal{}
	for _, spec := range specs {
		a.weapons = append(a.weapons, NewWeapon(spec))
	}
	return a
}

// Current returns the selected weapon, or nil if there are none.
func (a *Arsenal) Current() *Weapon {
	if len(a.weapons) == 0 {
		return nil
	}
	return a.weapons[a.current]
}

// Next selects the following weapon, wrapping around.
func (a *Arsenal) Next() *Weapon {
	if len(a.weapons) == 0 {
		return nil
	}
	a.current = (a.current + 1) % len(a.weapons)
	return a.weapons[a.current]
}

// Tick advances every weapon's cooldown.
func (a *Arsenal) Tick() {
	for _, w := range a.weapons {
		w.Tick()
	}
}

// RefillAll fills every magazine.
func (a *Arsenal) RefillAll() {
	for _, w := range a.weapons {
		w.Refill()
	}
}

// Reset selects the first weapon and restores every magazine.
func (a *Arsenal) Reset() {
	a.current = 0
	for _, w := range a.weapons {
		w.reset()
	}
}
