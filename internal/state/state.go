// internal/state/state.go
package state

import (
	"log/slog"
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/clock"
	"go-survivor/internal/input"
	"go-survivor/internal/system"
)

//go:generate go tool mockgen -destination=./mocks/state_mock.go -package=mocks . Renderer,Clipboard

// ID names a screen.
type ID string

const (
	StartScreen   ID = "StartScreen"
	Settings      ID = "Settings"
	Loading       ID = "Loading"
	Playing       ID = "Playing"
	Paused        ID = "Paused"
	ConfirmDialog ID = "ConfirmDialog"
	GameOver      ID = "GameOver"
)

// State is one screen of the game.
type State interface {
	ID() ID
	Enter(now time.Time)
	HandleKey(key input.Key)
	Update(now time.Time)
	Draw(r Renderer)
	Exit()
}

// Renderer draws screens. Frontends implement it.
type Renderer interface {
	DrawStartScreen(selected int)
	DrawSettings(colorIndex int)
	DrawLoading(progress float64)
	DrawWorld(frame app.Frame)
	DrawPause(selected int)
	DrawConfirm(yes bool)
	DrawGameOver(summary system.Summary)
}

// Clipboard receives the run summary on the game over screen.
type Clipboard interface {
	WriteAll(text string) error
}

// Machine owns the current screen, the held keys and the game.
type Machine struct {
	current    State
	game       *app.Game
	clock      clock.Clock
	clipboard  Clipboard
	keys       *input.KeySet
	colorIndex int
	logger     *slog.Logger
}

// NewMachine returns a machine on the start screen. clipboard may be nil.
func NewMachine(game *app.Game, clk clock.Clock, clipboard Clipboard) *Machine {
	m := &Machine{
		game:      game,
		clock:     clk,
		clipboard: clipboard,
		keys:      input.NewKeySet(),
		logger:    slog.Default().With("component", "state"),
	}
	m.SetState(NewStartScreenState(m))
	return m
}

// SetState exits the current state and enters the new one.
func (m *Machine) SetState(newState State) {
	var from ID
	if m.current != nil {
		from = m.current.ID()
		m.current.Exit()
	}
	m.current = newState
	if m.current != nil {
		m.logger.Debug("state change", "from", from, "to", m.current.ID())
		m.current.Enter(m.clock.Now())
	}
}

func (m *Machine) Current() State {
	return m.current
}

// CurrentID returns the ID of the current state, or "" if there is none.
func (m *Machine) CurrentID() ID {
	if m.current == nil {
		return ""
	}
	return m.current.ID()
}

func (m *Machine) Game() *app.Game {
	return m.game
}

func (m *Machine) Keys() *input.KeySet {
	return m.keys
}

func (m *Machine) ColorIndex() int {
	return m.colorIndex
}

// HandleEvent records every key transition in the held set and routes
// key-down events to the current state.
func (m *Machine) HandleEvent(ev input.Event) {
	m.keys.Apply(ev)
	if ev.Down && m.current != nil {
		m.current.HandleKey(ev.Key)
	}
}

func (m *Machine) Update(now time.Time) {
	if m.current != nil {
		m.current.Update(now)
	}
}

func (m *Machine) Draw(r Renderer) {
	if m.current != nil {
		m.current.Draw(r)
	}
}

// Blur handles loss of window focus: play pauses and held keys are
// released, since their key-up events will not arrive.
func (m *Machine) Blur() {
	m.keys.Clear()
	if m.CurrentID() == Playing {
		m.SetState(NewPausedState(m))
	}
}

// Focus never resumes play on its own.
func (m *Machine) Focus() {}

func (m *Machine) now() time.Time {
	return m.clock.Now()
}

// MultiRenderer draws every screen with each of its renderers in turn.
type MultiRenderer []Renderer

func (m MultiRenderer) DrawStartScreen(selected int) {
	for _, r := range m {
		r.DrawStartScreen(selected)
	}
}

func (m MultiRenderer) DrawSettings(colorIndex int) {
	for _, r := range m {
		r.DrawSettings(colorIndex)
	}
}

func (m MultiRenderer) DrawLoading(progress float64) {
	for _, r := range m {
		r.DrawLoading(progress)
	}
}

func (m MultiRenderer) DrawWorld(frame app.Frame) {
	for _, r := range m {
		r.DrawWorld(frame)
	}
}

func (m MultiRenderer) DrawPause(selected int) {
	for _, r := range m {
		r.DrawPause(selected)
	}
}

func (m MultiRenderer) DrawConfirm(yes bool) {
	for _, r := range m {
		r.DrawConfirm(yes)
	}
}

func (m MultiRenderer) DrawGameOver(summary system.Summary) {
	for _, r := range m {
		r.DrawGameOver(summary)
	}
}
