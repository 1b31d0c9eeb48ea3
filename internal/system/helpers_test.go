package system

import (
	"testing"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	tuning config.Tuning
	world  *entity.World
	events *event.Dispatcher
	rng    *utils.PRNGService
}

func newFixture(t *testing.T, tuning config.Tuning) *fixture {
	t.Helper()
	if err := tuning.Validate(); err != nil {
		t.Fatalf("tuning: %v", err)
	}
	return &fixture{
		tuning: tuning,
		world:  entity.NewWorld(tuning),
		events: event.NewDispatcher(),
		rng:    utils.NewPRNGService(42),
	}
}

func (f *fixture) addEnemy(t *testing.T, x, y float64, stats component.EnemyStats) *component.Enemy {
	t.Helper()
	e, err := component.NewEnemy(f.world.NewEntity(), x, y, stats)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	f.world.Enemies.Add(e)
	return e
}

func (f *fixture) addJewel(t *testing.T, x, y float64) *component.Jewel {
	t.Helper()
	j, err := component.NewJewel(f.world.NewEntity(), x, y, f.tuning.JewelSize)
	if err != nil {
		t.Fatalf("NewJewel: %v", err)
	}
	f.world.Jewels.Add(j)
	return j
}

// recorder collects every event of the subscribed types.
type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

func (r *recorder) count(typ event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == typ {
			n++
		}
	}
	return n
}
