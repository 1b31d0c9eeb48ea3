// internal/system/player_system.go
package system

import (
	"log/slog"
	"math"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// PlayerSystem handles jewel pickup, experience and leveling.
type PlayerSystem struct {
	world   *entity.World
	tuning  config.Tuning
	weapons *defs.WeaponLibrary
	events  *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, tuning config.Tuning, weapons *defs.WeaponLibrary, events *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:   world,
		tuning:  tuning,
		weapons: weapons,
		events:  events,
	}
}

// EquipStarting gives the player every weapon available from level 1.
func (s *PlayerSystem) EquipStarting(now time.Time) {
	for _, def := range s.weapons.Starting() {
		s.equip(def, now)
	}
}

// UpdateJewels pulls nearby jewels toward the player and collects the ones
// it touches. Jewels outside the active radius are left alone.
func (s *PlayerSystem) UpdateJewels(now time.Time) int {
	p := s.world.Player
	active := s.tuning.ActiveRadius()
	collected := 0
	for _, j := range s.world.Jewels.Items() {
		if !utils.WithinDistance(j.X, j.Y, p.X, p.Y, active) {
			continue
		}
		j.Attract(p.X, p.Y, s.tuning.AttractionRadius, s.tuning.JewelSpeed)
		if utils.DetectCollision(p.Circle(), j.Circle()) {
			j.Collected = true
			s.collect(j, now)
			collected++
		}
	}
	if collected > 0 {
		s.world.RemoveJewelsIf(func(j *component.Jewel) bool { return j.Collected })
	}
	return collected
}

func (s *PlayerSystem) collect(j *component.Jewel, now time.Time) {
	p := s.world.Player
	p.Exp += s.tuning.JewelExp
	s.world.Score += s.tuning.JewelScore
	s.events.Dispatch(event.Event{Type: event.JewelCollected, Data: j.EntityID})
	s.CheckLevelUp(now)
}

// CheckLevelUp levels the player once if the threshold is reached. With
// ChainLevelUps set it keeps going until experience is below the threshold.
func (s *PlayerSystem) CheckLevelUp(now time.Time) int {
	p := s.world.Player
	levels := 0
	for p.Exp >= p.NextLevelExp {
		s.levelUp(now)
		levels++
		if !s.tuning.ChainLevelUps {
			break
		}
	}
	return levels
}

func (s *PlayerSystem) levelUp(now time.Time) {
	p := s.world.Player
	p.Level++
	p.PrevLevelExp = p.NextLevelExp
	p.NextLevelExp = int(math.Floor(float64(p.NextLevelExp) * s.tuning.LevelExpGrowth))
	p.Heal()
	p.Speed += s.tuning.SpeedPerLevel

	for _, def := range s.weapons.UnlockedAt(p.Level) {
		s.equip(def, now)
	}

	slog.Debug("level up", "level", p.Level, "next", p.NextLevelExp)
	s.events.Dispatch(event.Event{
		Type: event.LevelUp,
		Data: event.LevelUpData{Level: p.Level, NextLevelExp: p.NextLevelExp},
	})
}

func (s *PlayerSystem) equip(def defs.WeaponDefinition, now time.Time) {
	w, err := component.NewWeapon(def, now)
	if err != nil {
		slog.Warn("weapon rejected", "weapon", def.ID, "err", err)
		return
	}
	p := s.world.Player
	p.Weapons = append(p.Weapons, w)
	s.events.Dispatch(event.Event{Type: event.WeaponUnlocked, Data: def.ID})
}
