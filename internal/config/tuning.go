// internal/config/tuning.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay number. Distances are world units, speeds are
// units per tick, intervals are milliseconds of wall-clock time.
type Tuning struct {
	// Player
	PlayerSize      float64 `json:"player_size"`
	PlayerSpeed     float64 `json:"player_speed"`
	PlayerMaxHealth int     `json:"player_max_health"`
	SpeedPerLevel   float64 `json:"speed_per_level"`
	FirstLevelExp   int     `json:"first_level_exp"`
	LevelExpGrowth  float64 `json:"level_exp_growth"`
	ChainLevelUps   bool    `json:"chain_level_ups"`

	// World streaming
	ChunkSize       float64 `json:"chunk_size"`
	RenderDistance  int     `json:"render_distance"`
	TreeSpacing     int     `json:"tree_spacing"`
	TreeModulo      int     `json:"tree_modulo"`
	TreeSize        float64 `json:"tree_size"`
	JewelsPerChunk  int     `json:"jewels_per_chunk"`
	EnemiesPerChunk int     `json:"enemies_per_chunk"`

	// Jewels
	JewelSize        float64 `json:"jewel_size"`
	JewelExp         int     `json:"jewel_exp"`
	JewelScore       int     `json:"jewel_score"`
	AttractionRadius float64 `json:"attraction_radius"`
	JewelSpeed       float64 `json:"jewel_speed"`

	// Enemies
	EnemySize           float64 `json:"enemy_size"`
	EnemyBaseSpeed      float64 `json:"enemy_base_speed"`
	EnemySpeedJitter    float64 `json:"enemy_speed_jitter"`
	EnemyBaseHealth     int     `json:"enemy_base_health"`
	EnemyBaseAttack     int     `json:"enemy_base_attack"`
	EnemySpeedPerLevel  float64 `json:"enemy_speed_per_level"`
	EnemyHealthPerLevel int     `json:"enemy_health_per_level"`
	EnemyAttackPerLevel int     `json:"enemy_attack_per_level"`
	KillScore           int     `json:"kill_score"`

	// Spawner
	SpawnerEnabled  bool    `json:"spawner_enabled"`
	MaxEnemies      int     `json:"max_enemies"`
	SpawnIntervalMs int     `json:"spawn_interval_ms"`
	SpawnMinRadius  float64 `json:"spawn_min_radius"`
	SpawnMaxRadius  float64 `json:"spawn_max_radius"`
	DespawnFactor   float64 `json:"despawn_factor"`

	// Combat
	ActiveRadiusFactor float64 `json:"active_radius_factor"`
	AcquisitionRadius  float64 `json:"acquisition_radius"` // 0 = unbounded
	AutoFireCooldownMs int     `json:"auto_fire_cooldown_ms"`
	BulletSize         float64 `json:"bullet_size"`
	BulletSpeed        float64 `json:"bullet_speed"`
	AutoFireDamage     int     `json:"auto_fire_damage"`
	BulletRange        float64 `json:"bullet_range"`

	LoadingMinMs int `json:"loading_min_ms"`
}

// DefaultTuning returns the refined design: continuous spawner, chunks carry
// terrain and jewels only, targeting capped at 250 units.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSize:      15,
		PlayerSpeed:     3,
		PlayerMaxHealth: 100,
		SpeedPerLevel:   0.1,
		FirstLevelExp:   100,
		LevelExpGrowth:  1.5,

		ChunkSize:      500,
		RenderDistance: 5,
		TreeSpacing:    50,
		TreeModulo:     200,
		TreeSize:       20,
		JewelsPerChunk: 3,

		JewelSize:        8,
		JewelExp:         20,
		JewelScore:       5,
		AttractionRadius: 100,
		JewelSpeed:       2,

		EnemySize:           20,
		EnemyBaseSpeed:      1,
		EnemySpeedJitter:    0.5,
		EnemyBaseHealth:     5,
		EnemyBaseAttack:     10,
		EnemySpeedPerLevel:  0.1,
		EnemyHealthPerLevel: 5,
		EnemyAttackPerLevel: 2,
		KillScore:           10,

		SpawnerEnabled:  true,
		MaxEnemies:      60,
		SpawnIntervalMs: 1000,
		SpawnMinRadius:  550,
		SpawnMaxRadius:  650,
		DespawnFactor:   2,

		ActiveRadiusFactor: 1.5,
		AcquisitionRadius:  250,
		AutoFireCooldownMs: 500,
		BulletSize:         5,
		BulletSpeed:        7,
		AutoFireDamage:     10,
		BulletRange:        1000,

		LoadingMinMs: 500,
	}
}

// StreamingTuning returns the earlier design: every chunk spawns its own
// enemies, there is no continuous spawner and targeting is unbounded.
func StreamingTuning() Tuning {
	t := DefaultTuning()
	t.EnemiesPerChunk = 5
	t.SpawnerEnabled = false
	t.AcquisitionRadius = 0
	return t
}

// ActiveRadius is the distance within which enemies and jewels are updated.
func (t Tuning) ActiveRadius() float64 {
	return t.ChunkSize * t.ActiveRadiusFactor
}

// DespawnRadius is the distance beyond which enemies are dropped.
func (t Tuning) DespawnRadius() float64 {
	return t.SpawnMaxRadius * t.DespawnFactor
}

func (t Tuning) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnIntervalMs) * time.Millisecond
}

func (t Tuning) AutoFireCooldown() time.Duration {
	return time.Duration(t.AutoFireCooldownMs) * time.Millisecond
}

func (t Tuning) LoadingMin() time.Duration {
	return time.Duration(t.LoadingMinMs) * time.Millisecond
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	positive := map[string]float64{
		"player_size":          t.PlayerSize,
		"player_speed":         t.PlayerSpeed,
		"chunk_size":           t.ChunkSize,
		"tree_size":            t.TreeSize,
		"jewel_size":           t.JewelSize,
		"enemy_size":           t.EnemySize,
		"bullet_size":          t.BulletSize,
		"bullet_speed":         t.BulletSpeed,
		"bullet_range":         t.BulletRange,
		"level_exp_growth":     t.LevelExpGrowth,
		"active_radius_factor": t.ActiveRadiusFactor,
	}
	for name, v := range positive {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, name, v)
		}
	}
	if t.PlayerMaxHealth <= 0 {
		return fmt.Errorf("%w: player_max_health must be positive", ErrInvalidTuning)
	}
	if t.FirstLevelExp <= 0 {
		return fmt.Errorf("%w: first_level_exp must be positive", ErrInvalidTuning)
	}
	if t.LevelExpGrowth < 1 {
		return fmt.Errorf("%w: level_exp_growth must be >= 1", ErrInvalidTuning)
	}
	if t.RenderDistance < 0 {
		return fmt.Errorf("%w: render_distance must not be negative", ErrInvalidTuning)
	}
	if t.TreeSpacing <= 0 || t.TreeModulo <= 0 {
		return fmt.Errorf("%w: tree_spacing and tree_modulo must be positive", ErrInvalidTuning)
	}
	if t.JewelsPerChunk < 0 || t.EnemiesPerChunk < 0 {
		return fmt.Errorf("%w: per-chunk counts must not be negative", ErrInvalidTuning)
	}
	if t.SpawnerEnabled {
		if t.MaxEnemies <= 0 || t.SpawnIntervalMs <= 0 {
			return fmt.Errorf("%w: spawner needs max_enemies and spawn_interval_ms", ErrInvalidTuning)
		}
		if t.SpawnMinRadius < 0 || t.SpawnMaxRadius < t.SpawnMinRadius {
			return fmt.Errorf("%w: spawn band [%v, %v]", ErrInvalidTuning, t.SpawnMinRadius, t.SpawnMaxRadius)
		}
		if t.DespawnFactor < 1 {
			return fmt.Errorf("%w: despawn_factor must be >= 1", ErrInvalidTuning)
		}
	}
	if t.AcquisitionRadius < 0 {
		return fmt.Errorf("%w: acquisition_radius must not be negative", ErrInvalidTuning)
	}
	return nil
}

// LoadTuning overlays the JSON file at path on top of DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// GetEnvDefault returns the environment value for key or defaultValue when unset.
func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
