// internal/system/combat.go
package system

import (
	"log/slog"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// CombatSystem settles kills and contact damage.
type CombatSystem struct {
	world  *entity.World
	tuning config.Tuning
	events *event.Dispatcher
}

func NewCombatSystem(world *entity.World, tuning config.Tuning, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, tuning: tuning, events: events}
}

// Kill removes a dead enemy, drops a jewel where it stood and scores it.
// Dropped jewels belong to no chunk and live until collected.
func (s *CombatSystem) Kill(e *component.Enemy) {
	if !s.world.RemoveEnemy(e) {
		return
	}
	if jewel, err := component.NewJewel(s.world.NewEntity(), e.X, e.Y, s.tuning.JewelSize); err == nil {
		s.world.Jewels.Add(jewel)
	} else {
		slog.Warn("kill drop rejected", "enemy", e.EntityID, "err", err)
	}
	s.world.Score += s.tuning.KillScore
	s.events.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{ID: e.EntityID, X: e.X, Y: e.Y},
	})
}

// Contact applies an enemy's attack to the player and consumes the enemy.
func (s *CombatSystem) Contact(e *component.Enemy) {
	if !s.world.RemoveEnemy(e) {
		return
	}
	p := s.world.Player
	p.TakeDamage(e.AttackStrength)
	s.events.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{EnemyID: e.EntityID, Damage: e.AttackStrength, Health: p.Health},
	})
	if p.Dead() {
		s.events.Dispatch(event.Event{Type: event.PlayerDied, Data: p.Level})
	}
}
