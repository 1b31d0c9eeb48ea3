// internal/system/chunk.go
package system

import (
	"log/slog"
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
	pkgutils "go-survivor/pkg/utils"
)

// ChunkCoordinate returns the grid coordinate of the chunk containing (x, y).
func ChunkCoordinate(x, y, chunkSize float64) types.ChunkCoord {
	return types.ChunkCoord{
		X: int(math.Floor(x / chunkSize)),
		Y: int(math.Floor(y / chunkSize)),
	}
}

// ChunkSystem streams the infinite world: chunks inside the render distance
// of the player's chunk exist, everything else is torn down.
type ChunkSystem struct {
	world  *entity.World
	tuning config.Tuning
	rng    *utils.PRNGService
	events *event.Dispatcher

	lastX, lastY float64
	refreshed    bool
}

func NewChunkSystem(world *entity.World, tuning config.Tuning, rng *utils.PRNGService, events *event.Dispatcher) *ChunkSystem {
	return &ChunkSystem{
		world:  world,
		tuning: tuning,
		rng:    rng,
		events: events,
	}
}

// Reset forgets the last refresh position so the next call regenerates.
func (s *ChunkSystem) Reset() {
	s.refreshed = false
}

// RefreshIfMoved refreshes the active set only if the player moved since the
// previous refresh. It reports whether a refresh ran.
func (s *ChunkSystem) RefreshIfMoved() bool {
	p := s.world.Player
	if s.refreshed && p.X == s.lastX && p.Y == s.lastY {
		return false
	}
	s.Refresh()
	return true
}

// Refresh materializes every chunk within the render distance of the
// player's chunk and unloads every chunk outside it.
func (s *ChunkSystem) Refresh() (loaded, unloaded int) {
	p := s.world.Player
	center := ChunkCoordinate(p.X, p.Y, s.tuning.ChunkSize)
	r := s.tuning.RenderDistance

	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			coord := types.ChunkCoord{X: center.X + dx, Y: center.Y + dy}
			if _, ok := s.world.Chunks[coord]; !ok {
				s.generateChunk(coord)
				loaded++
			}
		}
	}

	for coord := range s.world.Chunks {
		if !s.InRange(coord, center) {
			s.unloadChunk(coord)
			unloaded++
		}
	}

	s.lastX, s.lastY = p.X, p.Y
	s.refreshed = true
	if loaded > 0 || unloaded > 0 {
		slog.Debug("chunks refreshed", "center", center.String(), "loaded", loaded, "unloaded", unloaded, "total", len(s.world.Chunks))
	}
	return loaded, unloaded
}

// InRange reports whether coord is inside the render square around center.
func (s *ChunkSystem) InRange(coord, center types.ChunkCoord) bool {
	return pkgutils.Chebyshev(coord.X, coord.Y, center.X, center.Y) <= s.tuning.RenderDistance
}

func (s *ChunkSystem) generateChunk(coord types.ChunkCoord) {
	chunk := &component.Chunk{Coord: coord}
	home := coord
	size := s.tuning.ChunkSize
	originX := float64(coord.X) * size
	originY := float64(coord.Y) * size

	for i := 0; i < s.tuning.EnemiesPerChunk; i++ {
		x := originX + s.rng.Float64()*size
		y := originY + s.rng.Float64()*size
		enemy, err := component.NewEnemy(s.world.NewEntity(), x, y, EnemyStatsForLevel(s.tuning, 1, s.rng))
		if err != nil {
			slog.Warn("chunk enemy rejected", "chunk", coord.String(), "err", err)
			continue
		}
		enemy.Home = &home
		s.world.Enemies.Add(enemy)
		chunk.Enemies = append(chunk.Enemies, enemy.EntityID)
	}

	for i := 0; i < s.tuning.JewelsPerChunk; i++ {
		x := originX + s.rng.Float64()*size
		y := originY + s.rng.Float64()*size
		jewel, err := component.NewJewel(s.world.NewEntity(), x, y, s.tuning.JewelSize)
		if err != nil {
			slog.Warn("chunk jewel rejected", "chunk", coord.String(), "err", err)
			continue
		}
		jewel.Home = &home
		s.world.Jewels.Add(jewel)
		chunk.Jewels = append(chunk.Jewels, jewel.EntityID)
	}

	// Terrain is a fixed pattern over world coordinates, so a chunk looks the
	// same every time it is regenerated.
	isize := int(size)
	step := s.tuning.TreeSpacing
	for x := 0; x < isize; x += step {
		for y := 0; y < isize; y += step {
			worldX := coord.X*isize + x
			worldY := coord.Y*isize + y
			if (worldX+worldY)%s.tuning.TreeModulo != 0 {
				continue
			}
			tree, err := component.NewTree(s.world.NewEntity(), float64(worldX), float64(worldY), s.tuning.TreeSize)
			if err != nil {
				continue
			}
			s.world.Trees.Add(tree)
			chunk.Trees = append(chunk.Trees, tree.EntityID)
		}
	}

	s.world.Chunks[coord] = chunk
	s.events.Dispatch(event.Event{Type: event.ChunkLoaded, Data: coord})
}

func (s *ChunkSystem) unloadChunk(coord types.ChunkCoord) {
	chunk, ok := s.world.Chunks[coord]
	if !ok {
		return
	}
	s.world.Enemies.RemoveIDs(chunk.Enemies)
	s.world.Jewels.RemoveIDs(chunk.Jewels)
	s.world.Trees.RemoveIDs(chunk.Trees)
	delete(s.world.Chunks, coord)
	s.events.Dispatch(event.Event{Type: event.ChunkUnloaded, Data: coord})
}
