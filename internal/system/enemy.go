// internal/system/enemy.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/utils"
)

// EnemySystem moves enemies near the player and resolves contact.
type EnemySystem struct {
	world  *entity.World
	tuning config.Tuning
	combat *CombatSystem
}

func NewEnemySystem(world *entity.World, tuning config.Tuning, combat *CombatSystem) *EnemySystem {
	return &EnemySystem{world: world, tuning: tuning, combat: combat}
}

// Update steps every enemy within the active radius toward the player.
// Enemies farther out stay frozen. An enemy that touches the player hits it
// once and is removed.
func (s *EnemySystem) Update() {
	p := s.world.Player
	active := s.tuning.ActiveRadius()
	var touching []*component.Enemy
	for _, e := range s.world.Enemies.Items() {
		if !utils.WithinDistance(e.X, e.Y, p.X, p.Y, active) {
			continue
		}
		e.Pursue(p.X, p.Y)
		if utils.DetectCollision(p.Circle(), e.Circle()) {
			touching = append(touching, e)
		}
	}
	for _, e := range touching {
		s.combat.Contact(e)
	}
}
