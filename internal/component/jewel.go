// internal/component/jewel.go
package component

import (
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
)

// Jewel is an experience pickup.
type Jewel struct {
	EntityID types.EntityID
	Position
	Size      float64
	Collected bool

	// Home is the chunk that generated the jewel, nil for kill drops.
	Home *types.ChunkCoord
}

func NewJewel(id types.EntityID, x, y, size float64) (*Jewel, error) {
	if err := validate("jewel", x, y, size, 0); err != nil {
		return nil, err
	}
	return &Jewel{EntityID: id, Position: Position{X: x, Y: y}, Size: size}, nil
}

func (j *Jewel) ID() types.EntityID { return j.EntityID }

func (j *Jewel) Circle() utils.Circle {
	return utils.Circle{X: j.X, Y: j.Y, R: j.Size}
}

// Attract moves the jewel toward the player when the player's attraction
// circle overlaps it.
func (j *Jewel) Attract(px, py, radius, speed float64) bool {
	if !utils.DetectCollision(j.Circle(), utils.Circle{X: px, Y: py, R: radius}) {
		return false
	}
	j.X, j.Y = utils.StepToward(j.X, j.Y, px, py, speed)
	return true
}
