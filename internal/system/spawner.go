// internal/system/spawner.go
package system

import (
	"math"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// EnemyStatsForLevel returns the starting stats of an enemy spawned while
// the player is at level. Every stat grows linearly with level.
func EnemyStatsForLevel(t config.Tuning, level int, rng *utils.PRNGService) component.EnemyStats {
	steps := level - 1
	if steps < 0 {
		steps = 0
	}
	return component.EnemyStats{
		Size:   t.EnemySize,
		Speed:  t.EnemyBaseSpeed + t.EnemySpeedPerLevel*float64(steps) + rng.Float64()*t.EnemySpeedJitter,
		Health: t.EnemyBaseHealth + t.EnemyHealthPerLevel*steps,
		Attack: t.EnemyBaseAttack + t.EnemyAttackPerLevel*steps,
	}
}

// SpawnerSystem keeps enemies coming: one at a time, in a ring around the
// player, gated by a population cap and a minimum interval.
type SpawnerSystem struct {
	world     *entity.World
	tuning    config.Tuning
	rng       *utils.PRNGService
	events    *event.Dispatcher
	lastSpawn time.Time
}

func NewSpawnerSystem(world *entity.World, tuning config.Tuning, rng *utils.PRNGService, events *event.Dispatcher) *SpawnerSystem {
	return &SpawnerSystem{
		world:  world,
		tuning: tuning,
		rng:    rng,
		events: events,
	}
}

// Reset clears the interval gate so the first tick of a new run may spawn.
func (s *SpawnerSystem) Reset() {
	s.lastSpawn = time.Time{}
}

// Update spawns at most one enemy.
func (s *SpawnerSystem) Update(now time.Time) *component.Enemy {
	if !s.tuning.SpawnerEnabled {
		return nil
	}
	if s.world.Enemies.Len() >= s.tuning.MaxEnemies {
		return nil
	}
	if !s.lastSpawn.IsZero() && now.Sub(s.lastSpawn) < s.tuning.SpawnInterval() {
		return nil
	}
	enemy := s.spawnEnemy()
	if enemy != nil {
		s.lastSpawn = now
	}
	return enemy
}

func (s *SpawnerSystem) spawnEnemy() *component.Enemy {
	p := s.world.Player
	angle := s.rng.Angle()
	radius := s.rng.Range(s.tuning.SpawnMinRadius, s.tuning.SpawnMaxRadius)
	x := p.X + math.Cos(angle)*radius
	y := p.Y + math.Sin(angle)*radius

	enemy, err := component.NewEnemy(s.world.NewEntity(), x, y, EnemyStatsForLevel(s.tuning, p.Level, s.rng))
	if err != nil {
		return nil
	}
	s.world.Enemies.Add(enemy)
	s.events.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy.EntityID})
	return enemy
}

// Despawn removes enemies farther than the despawn radius from the player.
// Chunk-generated worlds run without the spawner and leave teardown to
// chunk unloading, so Despawn does nothing while the spawner is off.
func (s *SpawnerSystem) Despawn() int {
	if !s.tuning.SpawnerEnabled {
		return 0
	}
	p := s.world.Player
	limit := s.tuning.DespawnRadius()
	limitSq := limit * limit
	return s.world.RemoveEnemiesIf(func(e *component.Enemy) bool {
		if utils.DistanceSq(e.X, e.Y, p.X, p.Y) <= limitSq {
			return false
		}
		s.events.Dispatch(event.Event{Type: event.EnemyDespawned, Data: e.EntityID})
		return true
	})
}
