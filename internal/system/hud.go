// internal/system/hud.go
package system

import "go-survivor/internal/entity"

//go:generate go tool mockgen -destination=./mocks/hud_mock.go -package=mocks . HUD

// HUD is the heads-up display surface a frontend provides.
type HUD interface {
	SetVisible(visible bool)
	SetHealth(health, maxHealth int)
	SetLevel(level int)
	SetScore(score int)
	SetExp(exp, next int)
}

// HUDSystem pushes player stats to the HUD, but only the values that
// changed since the last push.
type HUDSystem struct {
	world *entity.World
	hud   HUD

	health, maxHealth int
	level             int
	score             int
	exp, next         int
}

// NewHUDSystem accepts a nil hud; every push is then a no-op.
func NewHUDSystem(world *entity.World, hud HUD) *HUDSystem {
	return &HUDSystem{world: world, hud: hud}
}

// Sync writes every value unconditionally and refreshes the cache.
func (s *HUDSystem) Sync() {
	if s.hud == nil {
		return
	}
	p := s.world.Player
	s.health, s.maxHealth = p.Health, p.MaxHealth
	s.level = p.Level
	s.score = s.world.Score
	s.exp, s.next = p.Exp, p.NextLevelExp
	s.hud.SetHealth(s.health, s.maxHealth)
	s.hud.SetLevel(s.level)
	s.hud.SetScore(s.score)
	s.hud.SetExp(s.exp, s.next)
}

// Update pushes whatever changed.
func (s *HUDSystem) Update() {
	if s.hud == nil {
		return
	}
	p := s.world.Player
	if p.Health != s.health || p.MaxHealth != s.maxHealth {
		s.health, s.maxHealth = p.Health, p.MaxHealth
		s.hud.SetHealth(s.health, s.maxHealth)
	}
	if p.Level != s.level {
		s.level = p.Level
		s.hud.SetLevel(s.level)
	}
	if s.world.Score != s.score {
		s.score = s.world.Score
		s.hud.SetScore(s.score)
	}
	if p.Exp != s.exp || p.NextLevelExp != s.next {
		s.exp, s.next = p.Exp, p.NextLevelExp
		s.hud.SetExp(s.exp, s.next)
	}
}

// MultiHUD forwards every update to each of its HUDs.
type MultiHUD []HUD

func (m MultiHUD) SetVisible(visible bool) {
	for _, h := range m {
		h.SetVisible(visible)
	}
}

func (m MultiHUD) SetHealth(health, maxHealth int) {
	for _, h := range m {
		h.SetHealth(health, maxHealth)
	}
}

func (m MultiHUD) SetLevel(level int) {
	for _, h := range m {
		h.SetLevel(level)
	}
}

func (m MultiHUD) SetScore(score int) {
	for _, h := range m {
		h.SetScore(score)
	}
}

func (m MultiHUD) SetExp(exp, next int) {
	for _, h := range m {
		h.SetExp(exp, next)
	}
}
