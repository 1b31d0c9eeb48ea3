// internal/state/menu_state.go
package state

import (
	"time"

	"go-survivor/internal/config"
	"go-survivor/internal/input"
)

var _ State = (*StartScreenState)(nil)
var _ State = (*SettingsState)(nil)

// StartScreenState is the title menu: Start or Settings.
type StartScreenState struct {
	sm       *Machine
	selected int
}

func NewStartScreenState(sm *Machine) *StartScreenState {
	return &StartScreenState{sm: sm, selected: config.MenuOptionStart}
}

func (s *StartScreenState) ID() ID { return StartScreen }

func (s *StartScreenState) Enter(now time.Time) {}

func (s *StartScreenState) HandleKey(key input.Key) {
	switch key {
	case input.KeyUp:
		s.selected = config.MenuOptionStart
	case input.KeyDown:
		s.selected = config.MenuOptionSettings
	case input.KeyEnter:
		if s.selected == config.MenuOptionSettings {
			s.sm.SetState(NewSettingsState(s.sm))
			return
		}
		s.sm.SetState(NewLoadingState(s.sm))
	}
}

func (s *StartScreenState) Update(now time.Time) {}

func (s *StartScreenState) Draw(r Renderer) {
	r.DrawStartScreen(s.selected)
}

func (s *StartScreenState) Exit() {}

// Selected returns the highlighted menu option.
func (s *StartScreenState) Selected() int { return s.selected }

// SettingsState picks the player color.
type SettingsState struct {
	sm *Machine
}

func NewSettingsState(sm *Machine) *SettingsState {
	return &SettingsState{sm: sm}
}

func (s *SettingsState) ID() ID { return Settings }

func (s *SettingsState) Enter(now time.Time) {}

func (s *SettingsState) HandleKey(key input.Key) {
	n := len(config.PlayerPalette)
	switch key {
	case input.KeyLeft:
		s.apply((s.sm.colorIndex - 1 + n) % n)
	case input.KeyRight:
		s.apply((s.sm.colorIndex + 1) % n)
	case input.KeyEnter, input.KeyEscape:
		s.sm.SetState(NewStartScreenState(s.sm))
	}
}

func (s *SettingsState) apply(idx int) {
	s.sm.colorIndex = idx
	s.sm.game.SetColorIndex(idx)
}

func (s *SettingsState) Update(now time.Time) {}

func (s *SettingsState) Draw(r Renderer) {
	r.DrawSettings(s.sm.colorIndex)
}

func (s *SettingsState) Exit() {}
