// internal/defs/weapons.go
package defs

// WeaponDefinition holds all the static data for a specific weapon.
type WeaponDefinition struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Pattern       PatternType `json:"pattern"`
	AttackSpeedMs int         `json:"attack_speed_ms"` // cooldown between volleys
	Damage        int         `json:"damage"`
	BulletSize    float64     `json:"bullet_size"`
	BulletSpeed   float64     `json:"bullet_speed"`
	Count         int         `json:"count,omitempty"`  // bullets per volley, SHOTGUN only
	Spread        float64     `json:"spread,omitempty"` // radians between neighbours, SHOTGUN only
	UnlockLevel   int         `json:"unlock_level"`     // 1 = owned from the start
}

// DefaultWeapons is the built-in weapon set.
var DefaultWeapons = []WeaponDefinition{
	{
		ID:            "WEAPON_BASIC",
		Name:          "Basic",
		Pattern:       PatternBasic,
		AttackSpeedMs: 1000,
		Damage:        10,
		BulletSize:    5,
		BulletSpeed:   7,
		UnlockLevel:   1,
	},
	{
		ID:            "WEAPON_SHOTGUN",
		Name:          "Shotgun",
		Pattern:       PatternShotgun,
		AttackSpeedMs: 2000,
		Damage:        8,
		BulletSize:    5,
		BulletSpeed:   7,
		Count:         5,
		Spread:        0.2,
		UnlockLevel:   3,
	},
}
