package core

// SoundEvent identifies a combat sound; every consumer switches over the full set
type SoundEvent int

const (
	SoundShoot      SoundEvent = iota // Player weapon discharge
	SoundHit                          // Body hit on an enemy
	SoundHeadshot                     // Head hit on an enemy
	SoundEnemyShoot                   // Ranged enemy fires at the player
	SoundHurt                         // Melee contact damage
	SoundReload                       // Magazine refilled
	SoundEventCount
)

var soundEventNames = [SoundEventCount]string{
	"shoot", "hit", "headshot", "enemy_shoot", "hurt", "reload",
}

func (s SoundEvent) String() string {
	if s < 0 || s >= SoundEventCount {
		return "unknown"
	}
	return soundEventNames[s]
}
