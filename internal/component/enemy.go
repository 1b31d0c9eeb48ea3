// internal/component/enemy.go
package component

import (
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
)

// Enemy pursues the player and is consumed on contact.
type Enemy struct {
	EntityID types.EntityID
	Position
	Size           float64
	Speed          float64
	Health         int
	MaxHealth      int
	AttackStrength int

	// Home is the chunk that generated the enemy, nil for spawner enemies.
	Home *types.ChunkCoord
}

// EnemyStats are the starting values of a new enemy.
type EnemyStats struct {
	Size   float64
	Speed  float64
	Health int
	Attack int
}

func NewEnemy(id types.EntityID, x, y float64, stats EnemyStats) (*Enemy, error) {
	if err := validate("enemy", x, y, stats.Size, stats.Speed); err != nil {
		return nil, err
	}
	return &Enemy{
		EntityID:       id,
		Position:       Position{X: x, Y: y},
		Size:           stats.Size,
		Speed:          stats.Speed,
		Health:         stats.Health,
		MaxHealth:      stats.Health,
		AttackStrength: stats.Attack,
	}, nil
}

func (e *Enemy) ID() types.EntityID { return e.EntityID }

func (e *Enemy) Circle() utils.Circle {
	return utils.Circle{X: e.X, Y: e.Y, R: e.Size}
}

// Pursue moves the enemy one tick straight toward (tx, ty).
func (e *Enemy) Pursue(tx, ty float64) {
	e.X, e.Y = utils.StepToward(e.X, e.Y, tx, ty, e.Speed)
}

func (e *Enemy) TakeDamage(damage int) {
	e.Health -= damage
}

func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// HealthFraction is used by renderers for the health bar.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	f := float64(e.Health) / float64(e.MaxHealth)
	if f < 0 {
		return 0
	}
	return f
}
