// internal/system/stats.go
package system

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// Summary describes a finished (or running) run.
type Summary struct {
	RunID       string        `msgpack:"run_id" json:"run_id"`
	Seed        int64         `msgpack:"seed" json:"seed"`
	Score       int           `msgpack:"score" json:"score"`
	Level       int           `msgpack:"level" json:"level"`
	Kills       int           `msgpack:"kills" json:"kills"`
	Jewels      int           `msgpack:"jewels" json:"jewels"`
	DamageTaken int           `msgpack:"damage_taken" json:"damage_taken"`
	Weapons     int           `msgpack:"weapons" json:"weapons"`
	Survived    time.Duration `msgpack:"survived" json:"survived"`
}

// String is the text copied to the clipboard on the game over screen.
func (s Summary) String() string {
	return fmt.Sprintf("Survived %s | Level %d | Score %d | Kills %d | Jewels %d | Run %s",
		s.Survived.Truncate(time.Second), s.Level, s.Score, s.Kills, s.Jewels, s.RunID)
}

// StatsSystem tallies a run from gameplay events.
type StatsSystem struct {
	world   *entity.World
	summary Summary
	started time.Time
	ended   time.Time
}

func NewStatsSystem(world *entity.World, events *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{world: world}
	events.SubscribeAll(s, event.EnemyKilled, event.JewelCollected, event.PlayerHit, event.WeaponUnlocked)
	return s
}

// Begin starts a new run at now.
func (s *StatsSystem) Begin(now time.Time, seed int64) {
	s.summary = Summary{RunID: uuid.NewString(), Seed: seed}
	s.started = now
	s.ended = time.Time{}
}

// End freezes the survival time at now.
func (s *StatsSystem) End(now time.Time) {
	if s.ended.IsZero() {
		s.ended = now
	}
}

// RunID identifies the current run.
func (s *StatsSystem) RunID() string {
	return s.summary.RunID
}

func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.summary.Kills++
	case event.JewelCollected:
		s.summary.Jewels++
	case event.PlayerHit:
		if data, ok := e.Data.(event.PlayerHitData); ok {
			s.summary.DamageTaken += data.Damage
		}
	case event.WeaponUnlocked:
		s.summary.Weapons++
	}
}

// Summary returns the current tallies combined with the world's state.
func (s *StatsSystem) Summary(now time.Time) Summary {
	out := s.summary
	out.Score = s.world.Score
	out.Level = s.world.Player.Level
	end := s.ended
	if end.IsZero() {
		end = now
	}
	if !s.started.IsZero() {
		out.Survived = end.Sub(s.started)
	}
	return out
}
