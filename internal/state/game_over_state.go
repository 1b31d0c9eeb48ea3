// internal/state/game_over_state.go
package state

import (
	"time"

	"go-survivor/internal/input"
	"go-survivor/internal/system"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the run summary until Enter starts over.
type GameOverState struct {
	sm      *Machine
	summary system.Summary
}

func NewGameOverState(sm *Machine) *GameOverState {
	return &GameOverState{sm: sm}
}

func (s *GameOverState) ID() ID { return GameOver }

func (s *GameOverState) Enter(now time.Time) {
	s.summary = s.sm.game.Summary(now)
	s.sm.logger.Info("run finished", "run", s.summary.RunID, "level", s.summary.Level, "score", s.summary.Score, "kills", s.summary.Kills)
}

func (s *GameOverState) HandleKey(key input.Key) {
	switch key {
	case input.KeyEnter:
		s.sm.game.Reset(s.sm.now())
		s.sm.SetState(NewStartScreenState(s.sm))
	case input.KeyCopy:
		if s.sm.clipboard == nil {
			return
		}
		if err := s.sm.clipboard.WriteAll(s.summary.String()); err != nil {
			s.sm.logger.Warn("failed to copy summary", "err", err)
		}
	}
}

func (s *GameOverState) Update(now time.Time) {}

func (s *GameOverState) Draw(r Renderer) {
	r.DrawGameOver(s.summary)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Summary() system.Summary { return s.summary }
