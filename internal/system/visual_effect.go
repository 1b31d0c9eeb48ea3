// internal/system/visual_effect.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// VisualEffectSystem turns combat events into short-lived effects and ages
// them every tick.
type VisualEffectSystem struct {
	world *entity.World
}

func NewVisualEffectSystem(world *entity.World, events *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world}
	events.SubscribeAll(s, event.EnemyKilled, event.PlayerHit, event.LevelUp)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	p := s.world.Player
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			s.add(component.EffectBurst, data.X, data.Y, config.BurstRadius, config.BurstTicks, false)
		}
	case event.PlayerHit:
		s.add(component.EffectDamageFlash, p.X, p.Y, p.Size*2, config.DamageFlashTicks, true)
	case event.LevelUp:
		s.add(component.EffectLevelUp, p.X, p.Y, config.LevelUpRadius, config.LevelUpTicks, true)
	}
}

func (s *VisualEffectSystem) add(kind component.EffectKind, x, y, maxRadius float64, ticks int, follow bool) {
	s.world.Effects.Add(&component.Effect{
		EntityID:  s.world.NewEntity(),
		Position:  component.Position{X: x, Y: y},
		Kind:      kind,
		MaxRadius: maxRadius,
		Duration:  ticks,
		Follow:    follow,
	})
}

// Update advances every effect by one tick and drops the finished ones.
func (s *VisualEffectSystem) Update() int {
	p := s.world.Player
	return s.world.Effects.RemoveIf(func(e *component.Effect) bool {
		if e.Follow {
			e.X, e.Y = p.X, p.Y
		}
		return e.Advance()
	})
}
