// internal/state/game_state.go
package state

import (
	"time"

	"go-survivor/internal/input"
)

var _ State = (*PlayingState)(nil)

// PlayingState runs the simulation.
type PlayingState struct {
	sm *Machine
}

func NewPlayingState(sm *Machine) *PlayingState {
	return &PlayingState{sm: sm}
}

func (s *PlayingState) ID() ID { return Playing }

func (s *PlayingState) Enter(now time.Time) {}

func (s *PlayingState) HandleKey(key input.Key) {
	if key == input.KeyEscape {
		s.sm.SetState(NewPausedState(s.sm))
	}
}

func (s *PlayingState) Update(now time.Time) {
	g := s.sm.game
	g.Tick(now, s.sm.keys)
	if g.Over() {
		s.sm.SetState(NewGameOverState(s.sm))
	}
}

func (s *PlayingState) Draw(r Renderer) {
	r.DrawWorld(s.sm.game.Frame())
}

func (s *PlayingState) Exit() {}
