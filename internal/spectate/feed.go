// internal/spectate/feed.go
package spectate

import (
	"log/slog"
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/state"
	"go-survivor/internal/system"
)

// MaxRate is the most snapshots per second sent to spectators.
const MaxRate = 30

var (
	_ state.Renderer = (*Feed)(nil)
	_ system.HUD     = (*Feed)(nil)
)

// Feed records what the local screen shows and publishes it to a Hub.
// It sits next to the real renderer and HUD; Publish is called once per
// simulation step and drops frames above MaxRate.
type Feed struct {
	hub    *Hub
	runID  func() string
	snap   Snapshot
	last   time.Time
	minGap time.Duration
	step   uint64
}

// NewFeed publishes to hub. runID is asked for the current run on every
// publish, since runs change when the player starts over.
func NewFeed(hub *Hub, runID func() string) *Feed {
	return &Feed{
		hub:    hub,
		runID:  runID,
		minGap: time.Second / MaxRate,
	}
}

func (f *Feed) screen(name string, selected int) {
	f.snap.Screen = name
	f.snap.Selected = selected
	f.snap.Progress = 0
	f.snap.Summary = nil
}

// clearWorld drops the world from menus drawn without it.
func (f *Feed) clearWorld() {
	f.snap.Player = nil
	f.snap.Enemies = f.snap.Enemies[:0]
	f.snap.Jewels = f.snap.Jewels[:0]
	f.snap.Bullets = f.snap.Bullets[:0]
	f.snap.Effects = f.snap.Effects[:0]
}

func (f *Feed) DrawStartScreen(selected int) {
	f.screen(ScreenStart, selected)
	f.clearWorld()
}

func (f *Feed) DrawSettings(colorIndex int) {
	f.screen(ScreenSettings, colorIndex)
	f.clearWorld()
}

func (f *Feed) DrawLoading(progress float64) {
	f.screen(ScreenLoading, 0)
	f.snap.Progress = progress
}

func (f *Feed) DrawWorld(frame app.Frame) {
	f.screen(ScreenPlaying, 0)
	f.snap.fillWorld(frame)
}

func (f *Feed) DrawPause(selected int) {
	f.snap.Screen = ScreenPaused
	f.snap.Selected = selected
}

func (f *Feed) DrawConfirm(yes bool) {
	f.snap.Screen = ScreenConfirm
	f.snap.Selected = 0
	if yes {
		f.snap.Selected = 1
	}
}

func (f *Feed) DrawGameOver(summary system.Summary) {
	f.screen(ScreenGameOver, 0)
	f.snap.Summary = &summary
}

func (f *Feed) SetVisible(visible bool) { f.snap.HUD.Visible = visible }

func (f *Feed) SetHealth(health, maxHealth int) {
	f.snap.HUD.Health, f.snap.HUD.MaxHealth = health, maxHealth
}

func (f *Feed) SetLevel(level int) { f.snap.HUD.Level = level }
func (f *Feed) SetScore(score int) { f.snap.HUD.Score = score }

func (f *Feed) SetExp(exp, next int) {
	f.snap.HUD.Exp, f.snap.HUD.Next = exp, next
}

// Publish sends the current snapshot if enough time has passed since the
// last one. It reports whether a snapshot went out.
func (f *Feed) Publish(now time.Time) bool {
	f.step++
	if !f.last.IsZero() && now.Sub(f.last) < f.minGap {
		return false
	}
	if f.hub.Clients() == 0 {
		return false
	}
	f.snap.RunID = f.runID()
	f.snap.Step = f.step
	data, err := f.snap.Encode()
	if err != nil {
		slog.Error("spectator snapshot dropped", "err", err)
		return false
	}
	f.last = now
	f.hub.Broadcast(data)
	return true
}

// Snapshot returns a copy of the snapshot being built.
func (f *Feed) Snapshot() Snapshot {
	return f.snap
}
