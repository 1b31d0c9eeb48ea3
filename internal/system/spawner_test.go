package system

import (
	"testing"
	"time"

	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

func TestSpawnerRespectsInterval(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	s := NewSpawnerSystem(f.world, f.tuning, f.rng, f.events)

	if s.Update(epoch) == nil {
		t.Fatal("first update should spawn")
	}
	if s.Update(epoch.Add(999*time.Millisecond)) != nil {
		t.Fatal("spawned before the interval elapsed")
	}
	if s.Update(epoch.Add(time.Second)) == nil {
		t.Fatal("did not spawn once the interval elapsed")
	}
	if f.world.Enemies.Len() != 2 {
		t.Fatalf("enemies = %d, want 2", f.world.Enemies.Len())
	}
}

func TestSpawnerStaysInBand(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	f.world.Player.X, f.world.Player.Y = -1200, 3400
	s := NewSpawnerSystem(f.world, f.tuning, f.rng, f.events)

	now := epoch
	for i := 0; i < 50; i++ {
		e := s.Update(now)
		if e == nil {
			t.Fatalf("update %d did not spawn", i)
		}
		d := utils.Distance(e.X, e.Y, f.world.Player.X, f.world.Player.Y)
		if d < f.tuning.SpawnMinRadius-1e-9 || d > f.tuning.SpawnMaxRadius+1e-9 {
			t.Fatalf("spawned at distance %v, outside [%v, %v]", d, f.tuning.SpawnMinRadius, f.tuning.SpawnMaxRadius)
		}
		now = now.Add(f.tuning.SpawnInterval())
	}
}

func TestSpawnerNeverExceedsCap(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.MaxEnemies = 7
	f := newFixture(t, tuning)
	s := NewSpawnerSystem(f.world, f.tuning, f.rng, f.events)

	now := epoch
	for i := 0; i < 1000; i++ {
		s.Update(now)
		if f.world.Enemies.Len() > tuning.MaxEnemies {
			t.Fatalf("population %d exceeds cap %d", f.world.Enemies.Len(), tuning.MaxEnemies)
		}
		now = now.Add(250 * time.Millisecond)
	}
	if f.world.Enemies.Len() != tuning.MaxEnemies {
		t.Fatalf("population = %d, want the cap %d", f.world.Enemies.Len(), tuning.MaxEnemies)
	}
}

func TestSpawnerDisabledInStreamingMode(t *testing.T) {
	f := newFixture(t, config.StreamingTuning())
	s := NewSpawnerSystem(f.world, f.tuning, f.rng, f.events)
	if s.Update(epoch) != nil {
		t.Fatal("spawner ran while disabled")
	}

	f.addEnemy(t, 0, f.tuning.DespawnRadius()*3, EnemyStatsForLevel(f.tuning, 1, f.rng))
	if n := s.Despawn(); n != 0 || f.world.Enemies.Len() != 1 {
		t.Fatalf("Despawn removed %d while disabled", n)
	}
}

func TestEnemyStatsScaleWithLevel(t *testing.T) {
	tuning := config.DefaultTuning()
	rng := utils.NewPRNGService(7)

	base := EnemyStatsForLevel(tuning, 1, rng)
	if base.Health != 5 || base.Attack != 10 {
		t.Fatalf("level 1 stats = %+v", base)
	}
	if base.Speed < 1 || base.Speed >= 1.5 {
		t.Fatalf("level 1 speed %v outside [1, 1.5)", base.Speed)
	}

	l3 := EnemyStatsForLevel(tuning, 3, rng)
	if l3.Health != 15 || l3.Attack != 14 {
		t.Fatalf("level 3 stats = %+v", l3)
	}
	if l3.Speed < 1.2 || l3.Speed >= 1.7 {
		t.Fatalf("level 3 speed %v outside [1.2, 1.7)", l3.Speed)
	}
}

func TestDespawnDropsFarEnemies(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	stats := EnemyStatsForLevel(f.tuning, 1, f.rng)
	near := f.addEnemy(t, 600, 0, stats)
	f.addEnemy(t, 0, f.tuning.DespawnRadius()+1, stats)
	edge := f.addEnemy(t, -f.tuning.DespawnRadius(), 0, stats)

	s := NewSpawnerSystem(f.world, f.tuning, f.rng, f.events)
	if n := s.Despawn(); n != 1 {
		t.Fatalf("Despawn removed %d, want 1", n)
	}
	if _, ok := f.world.Enemies.Get(near.EntityID); !ok {
		t.Error("near enemy was removed")
	}
	if _, ok := f.world.Enemies.Get(edge.EntityID); !ok {
		t.Error("enemy exactly at the despawn radius was removed")
	}
}
