// internal/entity/ecs.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/types"
)

// World owns all simulation state: the player, every entity collection and
// the chunk table. Systems hold a pointer to it; nothing else is global.
type World struct {
	NextID  types.EntityID
	Player  *component.Player
	Bullets Collection[*component.Bullet]
	Enemies Collection[*component.Enemy]
	Jewels  Collection[*component.Jewel]
	Trees   Collection[*component.Tree]
	Effects Collection[*component.Effect]
	Chunks  map[types.ChunkCoord]*component.Chunk
	Score   int
}

func NewWorld(t config.Tuning) *World {
	return &World{
		NextID: 1,
		Player: component.NewPlayer(t),
		Chunks: make(map[types.ChunkCoord]*component.Chunk),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// RemoveEnemy drops e from the world and from its home chunk's records.
func (w *World) RemoveEnemy(e *component.Enemy) bool {
	if !w.Enemies.Remove(e.EntityID) {
		return false
	}
	w.forgetEnemy(e)
	return true
}

// RemoveEnemiesIf is Enemies.RemoveIf that also keeps chunk records in step.
func (w *World) RemoveEnemiesIf(remove func(*component.Enemy) bool) int {
	return w.Enemies.RemoveIf(func(e *component.Enemy) bool {
		if !remove(e) {
			return false
		}
		w.forgetEnemy(e)
		return true
	})
}

// RemoveJewelsIf is Jewels.RemoveIf that also keeps chunk records in step.
func (w *World) RemoveJewelsIf(remove func(*component.Jewel) bool) int {
	return w.Jewels.RemoveIf(func(j *component.Jewel) bool {
		if !remove(j) {
			return false
		}
		if c := w.home(j.Home); c != nil {
			c.ForgetJewel(j.EntityID)
		}
		return true
	})
}

func (w *World) forgetEnemy(e *component.Enemy) {
	if c := w.home(e.Home); c != nil {
		c.ForgetEnemy(e.EntityID)
	}
}

func (w *World) home(coord *types.ChunkCoord) *component.Chunk {
	if coord == nil {
		return nil
	}
	return w.Chunks[*coord]
}

// Reset empties the world and gives it a fresh player, keeping the
// player's cosmetic color. IDs keep counting up so stale references from a
// previous run can never match a new entity.
func (w *World) Reset(t config.Tuning) {
	colorIndex := w.Player.ColorIndex
	w.Player = component.NewPlayer(t)
	w.Player.ColorIndex = colorIndex
	w.Bullets.Clear()
	w.Enemies.Clear()
	w.Jewels.Clear()
	w.Trees.Clear()
	w.Effects.Clear()
	w.Chunks = make(map[types.ChunkCoord]*component.Chunk)
	w.Score = 0
}
