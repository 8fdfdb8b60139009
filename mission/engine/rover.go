package engine

import (
	"fmt"
	"strconv"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// Rover is a mobile agent on a plateau. Its cell is authoritative: the
// plateau answers occupancy queries by asking its rovers where they are.
type Rover struct {
	name      string
	cell      *Cell
	direction Direction
}

// Name returns the placement-order name ("Rvr0", "Rvr1", ...).
func (r *Rover) Name() string {
	return r.name
}

// Cell returns the rover's current cell.
func (r *Rover) Cell() *Cell {
	return r.cell
}

// Position returns the coordinate of the rover's current cell.
func (r *Rover) Position() Position {
	return r.cell.Position()
}

// Direction returns the way the rover is facing.
func (r *Rover) Direction() Direction {
	return r.direction
}

// Plateau returns the plateau the rover was placed on.
func (r *Rover) Plateau() *Plateau {
	return r.cell.Plateau()
}

// Move advances the rover one cell in its facing direction and returns the
// new cell. The rover is left untouched when the target lies outside the
// plateau or is already occupied.
func (r *Rover) Move() (*Cell, error) {
	p := r.cell.Plateau()
	nx, ny := NextPosition(r.cell.X(), r.cell.Y(), r.direction)

	if !p.Contains(nx, ny) {
		return nil, apperrors.WithMetadata(apperrors.CodeOutOfBounds,
			fmt.Sprintf("attempt to move rover %s outside the plateau bounds (to (%d, %d) facing %s)", r.name, nx, ny, r.direction.Name()),
			map[string]string{
				apperrors.MetaRover: r.name,
				apperrors.MetaX:     strconv.Itoa(nx),
				apperrors.MetaY:     strconv.Itoa(ny),
			})
	}

	next, err := p.GetCell(nx, ny)
	if err != nil {
		return nil, err
	}

	if other, _ := p.RoverAt(next); other != nil {
		return nil, apperrors.WithMetadata(apperrors.CodeCellOccupied,
			fmt.Sprintf("the destined location %s is already occupied by rover %s", next, other.Name()),
			map[string]string{
				apperrors.MetaRover: other.Name(),
				apperrors.MetaX:     strconv.Itoa(nx),
				apperrors.MetaY:     strconv.Itoa(ny),
			})
	}

	r.cell = next
	return next, nil
}

// RotateLeft turns the rover a quarter turn counter-clockwise.
func (r *Rover) RotateLeft() Direction {
	r.direction = LeftOf(r.direction)
	return r.direction
}

// RotateRight turns the rover a quarter turn clockwise.
func (r *Rover) RotateRight() Direction {
	r.direction = RightOf(r.direction)
	return r.direction
}

// Report returns the "X Y D" line printed for a finished rover.
func (r *Rover) Report() string {
	return fmt.Sprintf("%d %d %s", r.cell.X(), r.cell.Y(), r.direction)
}

func (r *Rover) String() string {
	return fmt.Sprintf("[%s, %s, %s]", r.name, r.cell, r.direction)
}
