// internal/system/projectile.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/utils"
)

// ProjectileSystem advances bullets and resolves their hits.
type ProjectileSystem struct {
	world  *entity.World
	tuning config.Tuning
	combat *CombatSystem
}

func NewProjectileSystem(world *entity.World, tuning config.Tuning, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, tuning: tuning, combat: combat}
}

// Update moves every bullet one step. A bullet damages only the first enemy
// it overlaps and is spent; enemies that die are removed on the spot so a
// later bullet in the same tick cannot hit them. Spent bullets and bullets
// beyond range of the player are dropped.
func (s *ProjectileSystem) Update() {
	p := s.world.Player
	for _, b := range s.world.Bullets.Items() {
		b.Advance()
		if b.Used {
			continue
		}
		for _, e := range s.world.Enemies.Items() {
			if !utils.DetectCollision(b.Circle(), e.Circle()) {
				continue
			}
			e.TakeDamage(b.Damage)
			b.Used = true
			if e.Dead() {
				s.combat.Kill(e)
			}
			break
		}
	}
	s.world.Bullets.RemoveIf(func(b *component.Bullet) bool {
		return b.Used || b.OutOfBounds(p.X, p.Y, s.tuning.BulletRange)
	})
}
