// internal/component/tree.go
package component

import (
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
)

// Tree is decorative terrain. It has no update logic.
type Tree struct {
	EntityID types.EntityID
	Position
	Size float64
}

func NewTree(id types.EntityID, x, y, size float64) (*Tree, error) {
	if err := validate("tree", x, y, size, 0); err != nil {
		return nil, err
	}
	return &Tree{EntityID: id, Position: Position{X: x, Y: y}, Size: size}, nil
}

func (t *Tree) ID() types.EntityID { return t.EntityID }

func (t *Tree) Circle() utils.Circle {
	return utils.Circle{X: t.X, Y: t.Y, R: t.Size}
}
