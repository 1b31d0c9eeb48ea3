package system

import (
	"strings"
	"testing"
	"time"

	"go-survivor/internal/config"
	"go-survivor/internal/event"
)

func TestStatsTallyEvents(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	stats := NewStatsSystem(f.world, f.events)
	stats.Begin(epoch, 42)

	f.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{}})
	f.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{}})
	f.events.Dispatch(event.Event{Type: event.JewelCollected})
	f.events.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Damage: 12}})
	f.world.Score = 77

	stats.End(epoch.Add(90 * time.Second))
	s := stats.Summary(epoch.Add(time.Hour))

	if s.Kills != 2 || s.Jewels != 1 || s.DamageTaken != 12 || s.Score != 77 || s.Seed != 42 {
		t.Fatalf("summary = %+v", s)
	}
	if s.Survived != 90*time.Second {
		t.Fatalf("survived = %v, want 90s", s.Survived)
	}
	if s.RunID == "" || !strings.Contains(s.String(), s.RunID) {
		t.Fatalf("summary text %q lacks the run id", s.String())
	}

	stats.Begin(epoch, 1)
	if again := stats.Summary(epoch); again.Kills != 0 || again.RunID == s.RunID {
		t.Fatalf("Begin did not start a fresh run: %+v", again)
	}
}
