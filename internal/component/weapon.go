// internal/component/weapon.go
package component

import (
	"time"

	"go-survivor/internal/defs"
)

// AngleSource supplies random directions to fire patterns.
type AngleSource interface {
	Angle() float64
}

// FirePattern lays out the bullets of one volley. Cooldown handling is
// shared by all patterns and lives on Weapon.
type FirePattern interface {
	Volley(rng AngleSource) []Shot
}

// BasicPattern fires one bullet in a random direction.
type BasicPattern struct {
	Bullet Shot
}

func (p BasicPattern) Volley(rng AngleSource) []Shot {
	shot := p.Bullet
	shot.Angle = rng.Angle()
	return []Shot{shot}
}

// ShotgunPattern fires Count bullets centred on a random direction,
// Spread radians apart.
type ShotgunPattern struct {
	Bullet Shot
	Count  int
	Spread float64
}

func (p ShotgunPattern) Volley(rng AngleSource) []Shot {
	base := rng.Angle()
	shots := make([]Shot, 0, p.Count)
	half := p.Count / 2
	for i := 0; i < p.Count; i++ {
		shot := p.Bullet
		shot.Angle = base + p.Spread*float64(i-half)
		shots = append(shots, shot)
	}
	return shots
}

// Weapon fires on its own schedule, independent of the base auto-fire.
type Weapon struct {
	DefID          string
	Name           string
	AttackSpeed    time.Duration
	LastAttackTime time.Time
	Pattern        FirePattern
}

// NewWeapon builds a weapon from its definition. The cooldown starts at
// acquiredAt, so a new weapon waits a full AttackSpeed before its first volley.
func NewWeapon(def defs.WeaponDefinition, acquiredAt time.Time) (*Weapon, error) {
	bullet := Shot{Size: def.BulletSize, Speed: def.BulletSpeed, Damage: def.Damage}
	var pattern FirePattern
	switch def.Pattern {
	case defs.PatternBasic:
		pattern = BasicPattern{Bullet: bullet}
	case defs.PatternShotgun:
		pattern = ShotgunPattern{Bullet: bullet, Count: def.Count, Spread: def.Spread}
	default:
		return nil, defs.ErrUnknownPattern
	}
	return &Weapon{
		DefID:          def.ID,
		Name:           def.Name,
		AttackSpeed:    time.Duration(def.AttackSpeedMs) * time.Millisecond,
		LastAttackTime: acquiredAt,
		Pattern:        pattern,
	}, nil
}

// Update fires a volley if the cooldown has elapsed at now, returning the
// shots to spawn. It returns nil while cooling down.
func (w *Weapon) Update(now time.Time, rng AngleSource) []Shot {
	if now.Sub(w.LastAttackTime) < w.AttackSpeed {
		return nil
	}
	w.LastAttackTime = now
	return w.Pattern.Volley(rng)
}
