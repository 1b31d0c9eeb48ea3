// internal/system/targeting.go
package system

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/utils"
)

// TargetingSystem picks the enemy the player aims at.
type TargetingSystem struct {
	world  *entity.World
	tuning config.Tuning
}

func NewTargetingSystem(world *entity.World, tuning config.Tuning) *TargetingSystem {
	return &TargetingSystem{world: world, tuning: tuning}
}

// Nearest returns the closest enemy within the acquisition radius, or nil.
// A zero radius means any distance. Ties go to the earliest enemy.
func (s *TargetingSystem) Nearest() *component.Enemy {
	p := s.world.Player
	best := math.Inf(1)
	if s.tuning.AcquisitionRadius > 0 {
		best = s.tuning.AcquisitionRadius * s.tuning.AcquisitionRadius
	}
	var target *component.Enemy
	for _, e := range s.world.Enemies.Items() {
		d := utils.DistanceSq(p.X, p.Y, e.X, e.Y)
		if d < best || (target == nil && d == best) {
			best = d
			target = e
		}
	}
	return target
}

// Update re-aims the player at the nearest enemy and returns it. With no
// target the aim resets to 0.
func (s *TargetingSystem) Update() *component.Enemy {
	p := s.world.Player
	target := s.Nearest()
	if target == nil {
		p.AimAngle = 0
		return nil
	}
	p.AimAngle = utils.Bearing(p.X, p.Y, target.X, target.Y)
	return target
}
