// internal/system/weapon.go
package system

import (
	"log/slog"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// WeaponSystem turns the player's auto-fire and acquired weapons into bullets.
type WeaponSystem struct {
	world  *entity.World
	tuning config.Tuning
	rng    *utils.PRNGService
	events *event.Dispatcher
}

func NewWeaponSystem(world *entity.World, tuning config.Tuning, rng *utils.PRNGService, events *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{
		world:  world,
		tuning: tuning,
		rng:    rng,
		events: events,
	}
}

// AutoFire shoots one bullet along the aim angle at the current target once
// the cooldown has elapsed. Without a target nothing is fired.
func (s *WeaponSystem) AutoFire(now time.Time, target *component.Enemy) bool {
	if target == nil {
		return false
	}
	p := s.world.Player
	if !p.LastFireTime.IsZero() && now.Sub(p.LastFireTime) < s.tuning.AutoFireCooldown() {
		return false
	}
	shot := component.Shot{
		Angle:  p.AimAngle,
		Size:   s.tuning.BulletSize,
		Speed:  s.tuning.BulletSpeed,
		Damage: s.tuning.AutoFireDamage,
	}
	if !s.spawn(shot) {
		return false
	}
	p.LastFireTime = now
	return true
}

// UpdateWeapons lets every acquired weapon fire on its own cooldown.
// Returns the number of bullets spawned.
func (s *WeaponSystem) UpdateWeapons(now time.Time) int {
	fired := 0
	for _, w := range s.world.Player.Weapons {
		for _, shot := range w.Update(now, s.rng) {
			if s.spawn(shot) {
				fired++
			}
		}
	}
	return fired
}

func (s *WeaponSystem) spawn(shot component.Shot) bool {
	p := s.world.Player
	bullet, err := component.NewBullet(s.world.NewEntity(), p.X, p.Y, shot)
	if err != nil {
		slog.Warn("bullet rejected", "err", err)
		return false
	}
	s.world.Bullets.Add(bullet)
	s.events.Dispatch(event.Event{Type: event.BulletFired, Data: bullet.EntityID})
	return true
}
