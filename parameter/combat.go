package parameter

import (
	"time"
)

// Weapon
const (
	// WeaponMagazineCapacity is rounds per magazine
	WeaponMagazineCapacity = 30

	// WeaponReserveAmmo is reserve rounds at match start
	WeaponReserveAmmo = 120

	// WeaponFireInterval is the minimum time between shots
	WeaponFireInterval = 100 * time.Millisecond

	// WeaponRange is the hit-scan ray length in meters
	WeaponRange = 500.0
)

// Damage dealt by the player
const (
	// CombatDamageHeadshot is damage applied when the head region is struck
	CombatDamageHeadshot = 100

	// CombatDamageBody is damage applied on any other region
	CombatDamageBody = 40
)

// Score awards
const (
	ScoreHeadshot = 50
	ScoreBodyHit  = 10
	ScoreKill     = 100
)

// Hostile behavior, per-second hazard rates at normal difficulty
// Derived from 0.001 and 0.0005 per frame at 60 frames per second
const (
	// HostileRangedRate is ranged shots per second while within engagement radius
	HostileRangedRate = 0.001 * 60

	// HostileRangedRadius is the ranged engagement distance
	HostileRangedRadius = 50.0

	// HostileRangedDamage is player damage per ranged hit
	HostileRangedDamage = 15

	// HostileMeleeRate is melee strikes per second while within melee radius
	HostileMeleeRate = 0.0005 * 60

	// HostileMeleeRadius is the melee reach
	HostileMeleeRadius = 3.0

	// HostileMeleeDamage is player damage per melee strike
	HostileMeleeDamage = 20
)

// Blood effect
const (
	// BloodParticleCount is particles per impact burst
	BloodParticleCount = 10

	// BloodParticleLifetime is seconds each particle lives
	BloodParticleLifetime = 0.8

	// BloodParticleSpeed is initial speed along the surface normal
	BloodParticleSpeed = 4.0

	// BloodParticleSpread is the random lateral speed added to each particle
	BloodParticleSpread = 2.0
)
