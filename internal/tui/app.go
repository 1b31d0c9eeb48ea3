// internal/tui/app.go
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-survivor/internal/clock"
	"go-survivor/internal/loop"
	"go-survivor/internal/state"
)

// App runs the game in a terminal.
type App struct {
	screen    tcell.Screen
	machine   *state.Machine
	scheduler *loop.Scheduler
	hud       *HUD
	hold      *KeyHold
	clock     clock.Clock
}

func NewApp(screen tcell.Screen, machine *state.Machine, renderer state.Renderer, hud *HUD, clk clock.Clock) *App {
	return &App{
		screen:    screen,
		machine:   machine,
		scheduler: loop.NewScheduler(machine, renderer, hud),
		hud:       hud,
		hold:      NewKeyHold(),
		clock:     clk,
	}
}

// Run polls terminal events on a separate goroutine and drives the
// scheduler from a ticker until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableFocus()
	ticker := time.NewTicker(loop.Interval / 2)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			now := a.clock.Now()
			for _, ev := range a.hold.Expire(now) {
				a.machine.HandleEvent(ev)
			}
			if a.scheduler.Frame(now) {
				a.hud.Draw(a.screen)
				a.screen.Show()
			}
		}
	}
}

// handleEvent returns false when the user asked to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		key, ok := TranslateKey(ev)
		if !ok {
			return true
		}
		for _, e := range a.hold.Press(key, a.clock.Now()) {
			a.machine.HandleEvent(e)
		}
	case *tcell.EventFocus:
		if ev.Focused {
			a.machine.Focus()
			return true
		}
		a.hold.Reset()
		a.machine.Blur()
		slog.Debug("terminal lost focus")
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
