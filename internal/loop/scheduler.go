// internal/loop/scheduler.go
package loop

import (
	"time"

	"go-survivor/internal/config"
	"go-survivor/internal/state"
	"go-survivor/internal/system"
)

// Interval is the minimum wall-clock time between two simulation steps.
const Interval = time.Second / config.TargetTPS

// Scheduler gates frame callbacks down to at most TargetTPS steps per
// second. Each step updates and draws the current screen once.
type Scheduler struct {
	machine  *state.Machine
	renderer state.Renderer
	hud      system.HUD

	lastStep  time.Time
	lastState state.ID
	started   bool
	steps     uint64
}

// NewScheduler accepts a nil hud.
func NewScheduler(machine *state.Machine, renderer state.Renderer, hud system.HUD) *Scheduler {
	return &Scheduler{
		machine:  machine,
		renderer: renderer,
		hud:      hud,
	}
}

// Frame is called once per animation frame. It reports whether a step ran.
func (s *Scheduler) Frame(now time.Time) bool {
	if !s.started {
		s.started = true
		s.lastStep = now
		return false
	}
	if now.Sub(s.lastStep) < Interval {
		return false
	}
	s.lastStep = now
	s.steps++

	if id := s.machine.CurrentID(); id != s.lastState {
		s.lastState = id
		if s.hud != nil {
			s.hud.SetVisible(HUDVisible(id))
		}
	}
	s.machine.Update(now)
	s.machine.Draw(s.renderer)
	return true
}

// Steps returns the number of steps executed so far.
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// HUDVisible reports whether the HUD is shown on screen id.
func HUDVisible(id state.ID) bool {
	switch id {
	case state.Playing, state.Paused, state.ConfirmDialog:
		return true
	}
	return false
}
