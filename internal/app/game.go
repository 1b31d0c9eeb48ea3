// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"go-survivor/internal/system"
	"go-survivor/internal/utils"
)

// Options configure a Game. Zero values fall back to defaults.
type Options struct {
	Tuning  *config.Tuning
	Weapons *defs.WeaponLibrary
	Seed    int64
	HUD     system.HUD
	Logger  *slog.Logger
}

// Game holds the simulation: the world and the systems that act on it.
type Game struct {
	Tuning          config.Tuning
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ChunkSystem        *system.ChunkSystem
	SpawnerSystem      *system.SpawnerSystem
	MovementSystem     *system.MovementSystem
	TargetingSystem    *system.TargetingSystem
	WeaponSystem       *system.WeaponSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	EnemySystem        *system.EnemySystem
	PlayerSystem       *system.PlayerSystem
	HUDSystem          *system.HUDSystem
	StatsSystem        *system.StatsSystem
	VisualEffectSystem *system.VisualEffectSystem

	logger *slog.Logger
	ticks  uint64
	over   bool
}

// NewGame builds a game with an empty world. Call Start before ticking.
func NewGame(opts Options) (*Game, error) {
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	weapons := opts.Weapons
	if weapons == nil {
		weapons = defs.DefaultWeaponLibrary()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	world := entity.NewWorld(tuning)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		Tuning:          tuning,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		logger:          logger,
	}
	g.ChunkSystem = system.NewChunkSystem(world, tuning, rng, eventDispatcher)
	g.SpawnerSystem = system.NewSpawnerSystem(world, tuning, rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(world)
	g.TargetingSystem = system.NewTargetingSystem(world, tuning)
	g.WeaponSystem = system.NewWeaponSystem(world, tuning, rng, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, tuning, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world, tuning, g.CombatSystem)
	g.EnemySystem = system.NewEnemySystem(world, tuning, g.CombatSystem)
	g.PlayerSystem = system.NewPlayerSystem(world, tuning, weapons, eventDispatcher)
	g.HUDSystem = system.NewHUDSystem(world, opts.HUD)
	g.StatsSystem = system.NewStatsSystem(world, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.LevelUp, event.WeaponUnlocked, event.PlayerDied)

	return g, nil
}

// GameEventListener logs the events that matter outside the simulation.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp:
		if data, ok := e.Data.(event.LevelUpData); ok {
			l.game.logger.Debug("level up", "level", data.Level, "next_exp", data.NextLevelExp)
		}
	case event.WeaponUnlocked:
		l.game.logger.Debug("weapon unlocked", "weapon", e.Data)
	case event.PlayerDied:
		l.game.logger.Debug("player health ran out", "level", e.Data)
	}
}

// Reset discards the current run: fresh player (same color), empty
// collections, empty chunk table, zero score.
func (g *Game) Reset(now time.Time) {
	g.World.Reset(g.Tuning)
	g.ChunkSystem.Reset()
	g.SpawnerSystem.Reset()
	g.StatsSystem.Begin(now, g.Rng.Seed())
	g.PlayerSystem.EquipStarting(now)
	g.HUDSystem.Sync()
	g.ticks = 0
	g.over = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.WorldReset})
}

// Start resets the run and generates the chunks around the spawn point.
func (g *Game) Start(now time.Time) {
	g.Reset(now)
	g.ChunkSystem.Refresh()
	g.logger.Debug("world generated", "chunks", len(g.World.Chunks), "trees", g.World.Trees.Len(), "jewels", g.World.Jewels.Len())
}

// Tick advances the simulation by one step.
func (g *Game) Tick(now time.Time, keys *input.KeySet) {
	if g.over {
		return
	}
	g.ticks++

	if g.MovementSystem.MovePlayer(keys) {
		g.ChunkSystem.RefreshIfMoved()
	}
	g.SpawnerSystem.Update(now)

	target := g.TargetingSystem.Update()
	g.WeaponSystem.AutoFire(now, target)
	g.WeaponSystem.UpdateWeapons(now)
	g.ProjectileSystem.Update()

	g.SpawnerSystem.Despawn()
	g.EnemySystem.Update()
	g.PlayerSystem.UpdateJewels(now)
	g.VisualEffectSystem.Update()

	g.HUDSystem.Update()

	// A level-up later in the tick heals, so only the health left at the
	// end of the tick decides the run.
	if g.World.Player.Dead() {
		g.over = true
		g.StatsSystem.End(now)
		g.logger.Info("game over", "level", g.World.Player.Level, "score", g.World.Score, "ticks", g.ticks)
	}
}

// Over reports whether the player's health has run out.
func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

// SetColorIndex selects the player's palette color. It survives resets.
func (g *Game) SetColorIndex(idx int) {
	g.World.Player.ColorIndex = idx
}

func (g *Game) RunID() string {
	return g.StatsSystem.RunID()
}

func (g *Game) Summary(now time.Time) system.Summary {
	return g.StatsSystem.Summary(now)
}

// Frame is everything a renderer needs to draw one frame of play.
type Frame struct {
	CameraX, CameraY float64
	Player           component.Player
	Score            int
	Trees            []*component.Tree
	Jewels           []*component.Jewel
	Enemies          []*component.Enemy
	Bullets          []*component.Bullet
	Effects          []*component.Effect
}

// CameraFor returns the offset that centers the player on a w×h screen.
func (f Frame) CameraFor(w, h float64) (float64, float64) {
	return w/2 - f.Player.X, h/2 - f.Player.Y
}

// Frame snapshots the world for rendering. The camera is centered on the
// player for the default screen size.
func (g *Game) Frame() Frame {
	f := Frame{
		Player:  *g.World.Player,
		Score:   g.World.Score,
		Trees:   g.World.Trees.Snapshot(),
		Jewels:  g.World.Jewels.Snapshot(),
		Enemies: g.World.Enemies.Snapshot(),
		Bullets: g.World.Bullets.Snapshot(),
		Effects: g.World.Effects.Snapshot(),
	}
	f.CameraX, f.CameraY = f.CameraFor(config.ScreenWidth, config.ScreenHeight)
	return f
}
