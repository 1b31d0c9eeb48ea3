// internal/component/position.go
package component

import (
	"errors"
	"fmt"

	"go-survivor/internal/utils"
)

// ErrInvalidEntity is returned when an entity is constructed with a
// non-finite position or a negative or non-finite size or speed.
var ErrInvalidEntity = errors.New("invalid entity")

// Position is a point on the world plane.
type Position struct {
	X, Y float64
}

func validate(kind string, x, y, size, speed float64) error {
	if !utils.Finite(x, y) {
		return fmt.Errorf("%w: %s position (%v, %v)", ErrInvalidEntity, kind, x, y)
	}
	if !utils.Finite(size, speed) || size < 0 || speed < 0 {
		return fmt.Errorf("%w: %s size %v speed %v", ErrInvalidEntity, kind, size, speed)
	}
	return nil
}
