package engine

import (
	"fmt"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// Cell is one addressable coordinate of a plateau. It is a handle: occupancy
// is not stored here but resolved through the owning plateau on each call.
// Obtain cells with Plateau.GetCell; the plateau caches them so equal
// coordinates always yield the same *Cell.
type Cell struct {
	pos     Position
	plateau *Plateau
}

func (c *Cell) X() int             { return c.pos.X }
func (c *Cell) Y() int             { return c.pos.Y }
func (c *Cell) Position() Position { return c.pos }
func (c *Cell) Plateau() *Plateau  { return c.plateau }

// Occupant returns the rover on this cell, if any.
func (c *Cell) Occupant() (*Rover, bool) {
	r, _ := c.plateau.RoverAt(c)
	return r, r != nil
}

// IsOccupied reports whether a rover currently stands on this cell.
func (c *Cell) IsOccupied() bool {
	_, ok := c.Occupant()
	return ok
}

// Rover returns the rover on this cell and fails when the cell is empty.
// Use IsOccupied or Occupant when emptiness is expected.
func (c *Cell) Rover() (*Rover, error) {
	r, ok := c.Occupant()
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "no rover found at the specified cell %s", c)
	}
	return r, nil
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.pos.X, c.pos.Y)
}
