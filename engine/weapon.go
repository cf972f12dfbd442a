package engine

import (
	"time"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Weapon tracks magazine, reserve and cooldown
// Timestamps are simulated match time, not wall clock
type Weapon struct {
	MagazineCapacity int
	ReserveAmmo      int
	RoundsInMagazine int
	FireInterval     time.Duration
	LastFire         time.Duration
}

// NewWeapon returns a fully loaded weapon
func NewWeapon() Weapon {
	w := Weapon{}
	w.Reset()
	return w
}

// Reset refills magazine and reserve and clears the cooldown
func (w *Weapon) Reset() {
	w.MagazineCapacity = parameter.WeaponMagazineCapacity
	w.ReserveAmmo = parameter.WeaponReserveAmmo
	w.RoundsInMagazine = parameter.WeaponMagazineCapacity
	w.FireInterval = parameter.WeaponFireInterval
	w.LastFire = -parameter.WeaponFireInterval
}

// CanFire reports whether a round is chambered and the cooldown has elapsed
func (w *Weapon) CanFire(now time.Duration) bool {
	return w.RoundsInMagazine > 0 && now-w.LastFire >= w.FireInterval
}

// TryFire consumes one round when CanFire holds
func (w *Weapon) TryFire(now time.Duration) bool {
	if !w.CanFire(now) {
		return false
	}
	w.RoundsInMagazine--
	w.LastFire = now
	return true
}

// Reload moves rounds from reserve into the magazine and returns how many moved
func (w *Weapon) Reload() int {
	need := w.MagazineCapacity - w.RoundsInMagazine
	if need > w.ReserveAmmo {
		need = w.ReserveAmmo
	}
	if need <= 0 {
		return 0
	}
	w.RoundsInMagazine += need
	w.ReserveAmmo -= need
	return need
}
