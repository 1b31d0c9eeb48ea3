package state_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"go-survivor/internal/app"
	"go-survivor/internal/clock"
	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"go-survivor/internal/state"
	"go-survivor/internal/state/mocks"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newMachine(t *testing.T, cb state.Clipboard) (*state.Machine, *clock.Mock) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.RenderDistance = 1
	g, err := app.NewGame(app.Options{Tuning: &tuning, Seed: 5})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	clk := clock.NewMock(epoch)
	return state.NewMachine(g, clk, cb), clk
}

func press(m *state.Machine, keys ...input.Key) {
	for _, k := range keys {
		m.HandleEvent(input.Event{Key: k, Down: true})
		m.HandleEvent(input.Event{Key: k, Down: false})
	}
}

func assertState(t *testing.T, m *state.Machine, want state.ID) {
	t.Helper()
	if got := m.CurrentID(); got != want {
		t.Fatalf("state = %s, want %s", got, want)
	}
}

// startPlaying drives the machine from the start screen into play.
func startPlaying(t *testing.T, m *state.Machine, clk *clock.Mock) {
	t.Helper()
	press(m, input.KeyEnter)
	assertState(t, m, state.Loading)
	m.Update(clk.Now())
	m.Update(clk.Advance(config.DefaultTuning().LoadingMin()))
	assertState(t, m, state.Playing)
}

func TestStartScreenMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	m, _ := newMachine(t, nil)
	assertState(t, m, state.StartScreen)

	r.EXPECT().DrawStartScreen(config.MenuOptionSettings)
	press(m, input.KeyDown)
	m.Draw(r)

	press(m, input.KeyEnter)
	assertState(t, m, state.Settings)

	r.EXPECT().DrawSettings(len(config.PlayerPalette) - 1)
	press(m, input.KeyLeft)
	m.Draw(r)
	if got := m.Game().World.Player.ColorIndex; got != len(config.PlayerPalette)-1 {
		t.Fatalf("color index = %d, want wrap to the last color", got)
	}

	press(m, input.KeyRight, input.KeyRight)
	if m.ColorIndex() != 1 {
		t.Fatalf("color index = %d, want 1", m.ColorIndex())
	}
	press(m, input.KeyEscape)
	assertState(t, m, state.StartScreen)

	r.EXPECT().DrawStartScreen(config.MenuOptionStart)
	m.Draw(r)
}

func TestLoadingWaitsForMinimumAndGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	m, clk := newMachine(t, nil)

	press(m, input.KeyEnter)
	assertState(t, m, state.Loading)
	if len(m.Game().World.Chunks) != 0 {
		t.Fatal("world generated before the first loading update")
	}

	m.Update(clk.Advance(100 * time.Millisecond))
	assertState(t, m, state.Loading)
	if len(m.Game().World.Chunks) != 9 {
		t.Fatalf("chunks = %d after the deferred generation, want 9", len(m.Game().World.Chunks))
	}
	r.EXPECT().DrawLoading(gomock.Any()).Do(func(p float64) {
		if p < 0.19 || p > 0.21 {
			t.Errorf("progress = %v, want 0.2", p)
		}
	})
	m.Draw(r)

	m.Update(clk.Advance(399 * time.Millisecond))
	assertState(t, m, state.Loading)
	m.Update(clk.Advance(time.Millisecond))
	assertState(t, m, state.Playing)
}

func TestPauseAndConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	m, clk := newMachine(t, nil)
	startPlaying(t, m, clk)

	press(m, input.KeyEscape)
	assertState(t, m, state.Paused)
	press(m, input.KeyEscape)
	assertState(t, m, state.Playing)

	press(m, input.KeyEscape, input.KeyDown)
	r.EXPECT().DrawWorld(gomock.Any())
	r.EXPECT().DrawPause(config.PauseOptionMenu)
	m.Draw(r)

	press(m, input.KeyEnter)
	assertState(t, m, state.ConfirmDialog)
	r.EXPECT().DrawWorld(gomock.Any())
	r.EXPECT().DrawConfirm(false)
	m.Draw(r)

	// Confirm defaults to No.
	press(m, input.KeyEnter)
	assertState(t, m, state.Paused)

	press(m, input.KeyDown, input.KeyEnter, input.KeyRight, input.KeyEnter)
	assertState(t, m, state.StartScreen)
	if len(m.Game().World.Chunks) != 0 || m.Game().World.Score != 0 {
		t.Fatal("confirming did not reset the run")
	}
}

func TestPausedDoesNotTick(t *testing.T) {
	m, clk := newMachine(t, nil)
	startPlaying(t, m, clk)
	press(m, input.KeyEscape)
	before := m.Game().Ticks()
	for i := 0; i < 10; i++ {
		m.Update(clk.Advance(time.Second / config.TargetTPS))
	}
	if m.Game().Ticks() != before {
		t.Fatal("simulation advanced while paused")
	}
}

func TestBlurPausesAndReleasesKeys(t *testing.T) {
	m, clk := newMachine(t, nil)
	startPlaying(t, m, clk)

	m.HandleEvent(input.Event{Key: input.KeyRight, Down: true})
	m.Update(clk.Advance(time.Second / config.TargetTPS))
	x := m.Game().World.Player.X
	if x <= 0 {
		t.Fatalf("held key did not move the player, x = %v", x)
	}

	m.Blur()
	assertState(t, m, state.Paused)
	if m.Keys().Held(input.KeyRight) {
		t.Fatal("held keys survived blur")
	}
	m.Focus()
	assertState(t, m, state.Paused)

	press(m, input.KeyEnter)
	assertState(t, m, state.Playing)
	m.Update(clk.Advance(time.Second / config.TargetTPS))
	if m.Game().World.Player.X != x {
		t.Fatal("player kept moving after blur released the keys")
	}
}

func TestGameOverCopiesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mocks.NewMockClipboard(ctrl)
	r := mocks.NewMockRenderer(ctrl)
	m, clk := newMachine(t, cb)
	startPlaying(t, m, clk)

	m.Game().World.Player.Health = 0
	m.Update(clk.Advance(time.Second / config.TargetTPS))
	assertState(t, m, state.GameOver)

	cb.EXPECT().WriteAll(gomock.Any()).DoAndReturn(func(text string) error {
		if !strings.Contains(text, "Level 1") {
			t.Errorf("summary text %q", text)
		}
		return errors.New("no clipboard")
	})
	press(m, input.KeyCopy)
	assertState(t, m, state.GameOver)

	r.EXPECT().DrawGameOver(gomock.Any())
	m.Draw(r)

	press(m, input.KeyEnter)
	assertState(t, m, state.StartScreen)
	if m.Game().World.Player.Health != m.Game().World.Player.MaxHealth {
		t.Fatal("game over did not reset the run")
	}
}

func TestMultiRendererDrawsWithEach(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockRenderer(ctrl)
	b := mocks.NewMockRenderer(ctrl)
	gomock.InOrder(
		a.EXPECT().DrawStartScreen(0),
		b.EXPECT().DrawStartScreen(0),
	)
	m, _ := newMachine(t, nil)
	m.Draw(state.MultiRenderer{a, b})
}
