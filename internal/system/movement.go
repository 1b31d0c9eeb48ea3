// internal/system/movement.go
package system

import (
	"go-survivor/internal/entity"
	"go-survivor/internal/input"
)

// MovementSystem moves the player from the held direction keys.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// MovePlayer applies one tick of movement. Axes are independent, so a
// diagonal covers more ground than a straight line. It reports whether any
// direction key was held.
func (s *MovementSystem) MovePlayer(keys *input.KeySet) bool {
	if keys == nil || !keys.AnyMovement() {
		return false
	}
	p := s.world.Player
	dx, dy := keys.Direction()
	p.X += float64(dx) * p.Speed
	p.Y += float64(dy) * p.Speed
	return true
}
