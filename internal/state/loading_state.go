// internal/state/loading_state.go
package state

import (
	"time"

	"go-survivor/internal/input"
)

var _ State = (*LoadingState)(nil)

// LoadingState shows a progress bar for at least the configured minimum
// while the world is generated. Generation is queued on Enter and runs on
// the next Update, so the first loading frame is drawn before the work.
type LoadingState struct {
	sm        *Machine
	started   time.Time
	pending   func(now time.Time)
	generated bool
	progress  float64
}

func NewLoadingState(sm *Machine) *LoadingState {
	return &LoadingState{sm: sm}
}

func (s *LoadingState) ID() ID { return Loading }

func (s *LoadingState) Enter(now time.Time) {
	s.started = now
	s.generated = false
	s.progress = 0
	s.pending = func(now time.Time) {
		s.sm.game.Start(now)
		s.generated = true
	}
}

func (s *LoadingState) HandleKey(key input.Key) {}

func (s *LoadingState) Update(now time.Time) {
	if s.pending != nil {
		run := s.pending
		s.pending = nil
		run(now)
	}

	minWait := s.sm.game.Tuning.LoadingMin()
	elapsed := now.Sub(s.started)
	s.progress = 1
	if minWait > 0 && elapsed < minWait {
		s.progress = float64(elapsed) / float64(minWait)
	}
	if elapsed >= minWait && s.generated {
		s.sm.SetState(NewPlayingState(s.sm))
	}
}

func (s *LoadingState) Draw(r Renderer) {
	r.DrawLoading(s.progress)
}

func (s *LoadingState) Exit() {}

// Progress returns the fraction of the minimum loading time elapsed.
func (s *LoadingState) Progress() float64 { return s.progress }
