// internal/component/bullet.go
package component

import (
	"fmt"
	"math"

	"go-survivor/internal/types"
	"go-survivor/internal/utils"
)

// Bullet flies in a straight line from where it was fired.
type Bullet struct {
	EntityID types.EntityID
	Position
	Size   float64
	Speed  float64
	Angle  float64 // fixed at spawn
	Damage int
	Used   bool // hit something, removed at the end of the bullet pass
}

// Shot describes one bullet of a volley before it exists in the world.
type Shot struct {
	Angle  float64
	Size   float64
	Speed  float64
	Damage int
}

func NewBullet(id types.EntityID, x, y float64, shot Shot) (*Bullet, error) {
	if err := validate("bullet", x, y, shot.Size, shot.Speed); err != nil {
		return nil, err
	}
	if !utils.Finite(shot.Angle) {
		return nil, fmt.Errorf("%w: bullet angle %v", ErrInvalidEntity, shot.Angle)
	}
	return &Bullet{
		EntityID: id,
		Position: Position{X: x, Y: y},
		Size:     shot.Size,
		Speed:    shot.Speed,
		Angle:    shot.Angle,
		Damage:   shot.Damage,
	}, nil
}

func (b *Bullet) ID() types.EntityID { return b.EntityID }

func (b *Bullet) Circle() utils.Circle {
	return utils.Circle{X: b.X, Y: b.Y, R: b.Size}
}

// Advance moves the bullet one tick along its angle.
func (b *Bullet) Advance() {
	b.X += math.Cos(b.Angle) * b.Speed
	b.Y += math.Sin(b.Angle) * b.Speed
}

// OutOfBounds reports whether the bullet is farther than maxDistance from
// (px, py). A bullet exactly maxDistance away is still in bounds.
func (b *Bullet) OutOfBounds(px, py, maxDistance float64) bool {
	return !utils.WithinDistance(b.X, b.Y, px, py, maxDistance)
}
