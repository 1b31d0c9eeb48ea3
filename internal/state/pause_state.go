// internal/state/pause_state.go
package state

import (
	"time"

	"go-survivor/internal/config"
	"go-survivor/internal/input"
)

var _ State = (*PausedState)(nil)
var _ State = (*ConfirmDialogState)(nil)

// PausedState freezes the simulation and offers Resume or Main Menu.
type PausedState struct {
	sm       *Machine
	selected int
}

func NewPausedState(sm *Machine) *PausedState {
	return &PausedState{sm: sm, selected: config.PauseOptionResume}
}

func (s *PausedState) ID() ID { return Paused }

func (s *PausedState) Enter(now time.Time) {}

func (s *PausedState) HandleKey(key input.Key) {
	switch key {
	case input.KeyEscape:
		s.sm.SetState(NewPlayingState(s.sm))
	case input.KeyUp:
		s.selected = config.PauseOptionResume
	case input.KeyDown:
		s.selected = config.PauseOptionMenu
	case input.KeyEnter:
		if s.selected == config.PauseOptionMenu {
			s.sm.SetState(NewConfirmDialogState(s.sm))
			return
		}
		s.sm.SetState(NewPlayingState(s.sm))
	}
}

func (s *PausedState) Update(now time.Time) {}

func (s *PausedState) Draw(r Renderer) {
	r.DrawWorld(s.sm.game.Frame())
	r.DrawPause(s.selected)
}

func (s *PausedState) Exit() {}

func (s *PausedState) Selected() int { return s.selected }

// ConfirmDialogState asks before abandoning the run. It starts on "No".
type ConfirmDialogState struct {
	sm  *Machine
	yes bool
}

func NewConfirmDialogState(sm *Machine) *ConfirmDialogState {
	return &ConfirmDialogState{sm: sm}
}

func (s *ConfirmDialogState) ID() ID { return ConfirmDialog }

func (s *ConfirmDialogState) Enter(now time.Time) {}

func (s *ConfirmDialogState) HandleKey(key input.Key) {
	switch key {
	case input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown:
		s.yes = !s.yes
	case input.KeyEnter:
		if s.yes {
			s.sm.game.Reset(s.sm.now())
			s.sm.SetState(NewStartScreenState(s.sm))
			return
		}
		s.sm.SetState(NewPausedState(s.sm))
	case input.KeyEscape:
		s.sm.SetState(NewPausedState(s.sm))
	}
}

func (s *ConfirmDialogState) Update(now time.Time) {}

func (s *ConfirmDialogState) Draw(r Renderer) {
	r.DrawWorld(s.sm.game.Frame())
	r.DrawConfirm(s.yes)
}

func (s *ConfirmDialogState) Exit() {}

func (s *ConfirmDialogState) Yes() bool { return s.yes }
