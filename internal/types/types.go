// internal/types/types.go
package types

import "fmt"

// EntityID identifies any live entity in the world.
// Zero is never handed out and means "no entity".
type EntityID uint64

// ChunkCoord is the integer grid coordinate of a world chunk.
type ChunkCoord struct {
	X, Y int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
