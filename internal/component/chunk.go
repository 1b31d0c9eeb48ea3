// internal/component/chunk.go
package component

import "go-survivor/internal/types"

// Chunk records the entities a world chunk spawned, by ID, so teardown
// removes exactly those and nothing else.
type Chunk struct {
	Coord   types.ChunkCoord
	Trees   []types.EntityID
	Jewels  []types.EntityID
	Enemies []types.EntityID
}

func (c *Chunk) ForgetEnemy(id types.EntityID) {
	c.Enemies = without(c.Enemies, id)
}

func (c *Chunk) ForgetJewel(id types.EntityID) {
	c.Jewels = without(c.Jewels, id)
}

func without(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
