package engine

import (
	"fmt"
	"strconv"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
	"github.com/wricardo/mars-rover/mission/geometry"
)

// Plateau is the bounded grid rovers are placed on. Its lower-left corner is
// always (0, 0). Cells are created lazily and cached so every lookup of the
// same coordinate yields the same *Cell. Rovers are kept in placement order
// and are never removed.
//
// A Plateau is not safe for concurrent use; callers that share one across
// goroutines must serialize PlaceRover, RoverAt and Rover.Move.
type Plateau struct {
	bounds geometry.Rect
	cells  map[Position]*Cell
	rovers []*Rover
}

// NewPlateau creates a plateau spanning [0, width-1] x [0, height-1].
func NewPlateau(width, height int) (*Plateau, error) {
	if width <= 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidBounds,
			fmt.Sprintf("X limit cannot be <= 0 (width %d)", width),
			map[string]string{apperrors.MetaField: "x"})
	}
	if height <= 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidBounds,
			fmt.Sprintf("Y limit cannot be <= 0 (height %d)", height),
			map[string]string{apperrors.MetaField: "y"})
	}

	bounds, err := geometry.NewRect(0, 0, width, height)
	if err != nil {
		return nil, err
	}

	return &Plateau{
		bounds: bounds,
		cells:  make(map[Position]*Cell),
	}, nil
}

// NewPlateauFromUpperRight creates a plateau whose upper-right cell is
// (upperX, upperY), the form used by the first line of a mission file.
func NewPlateauFromUpperRight(upperX, upperY int) (*Plateau, error) {
	return NewPlateau(upperX+1, upperY+1)
}

// Bounds returns the plateau rectangle.
func (p *Plateau) Bounds() geometry.Rect {
	return p.bounds
}

// Contains reports whether (x, y) lies on the plateau.
func (p *Plateau) Contains(x, y int) bool {
	return p.bounds.Contains(x, y)
}

// GetCell returns the cell at (x, y), creating and caching it on first use.
func (p *Plateau) GetCell(x, y int) (*Cell, error) {
	if !p.bounds.Contains(x, y) {
		return nil, outOfBoundsError(x, y)
	}

	pos := Position{X: x, Y: y}
	cell, ok := p.cells[pos]
	if !ok {
		cell = &Cell{pos: pos, plateau: p}
		p.cells[pos] = cell
	}
	return cell, nil
}

// RoverCount returns the number of rovers ever placed.
func (p *Plateau) RoverCount() int {
	return len(p.rovers)
}

// Rovers returns the rovers in placement order.
func (p *Plateau) Rovers() []*Rover {
	out := make([]*Rover, len(p.rovers))
	copy(out, p.rovers)
	return out
}

// RoverAt returns the rover currently reporting cell as its location, or nil
// when the cell is empty.
func (p *Plateau) RoverAt(cell *Cell) (*Rover, error) {
	if cell == nil {
		return nil, apperrors.New(apperrors.CodeNullArgument, "specified cell is nil")
	}
	for _, r := range p.rovers {
		if r.cell == cell {
			return r, nil
		}
	}
	return nil, nil
}

// PlaceRover lands a new rover at (x, y) facing dir.
func (p *Plateau) PlaceRover(x, y int, dir Direction) (*Rover, error) {
	if !dir.Valid() {
		return nil, apperrors.WithMetadata(apperrors.CodeMalformedInput,
			fmt.Sprintf("invalid direction %d", int(dir)),
			map[string]string{apperrors.MetaField: "direction"})
	}

	cell, err := p.GetCell(x, y)
	if err != nil {
		return nil, err
	}

	if other, _ := p.RoverAt(cell); other != nil {
		return nil, occupiedError(other, cell)
	}

	rover := &Rover{
		name:      RoverNamePrefix + strconv.Itoa(p.RoverCount()),
		cell:      cell,
		direction: dir,
	}
	p.rovers = append(p.rovers, rover)

	return rover, nil
}

func outOfBoundsError(x, y int) error {
	return apperrors.WithMetadata(apperrors.CodeOutOfBounds,
		fmt.Sprintf("the specified cell position (%d, %d) does not lie in the plateau boundary", x, y),
		map[string]string{
			apperrors.MetaX: strconv.Itoa(x),
			apperrors.MetaY: strconv.Itoa(y),
		})
}

func occupiedError(occupant *Rover, cell *Cell) error {
	return apperrors.WithMetadata(apperrors.CodeCellOccupied,
		fmt.Sprintf("rover '%s' is already present at cell %s", occupant.Name(), cell),
		map[string]string{
			apperrors.MetaRover: occupant.Name(),
			apperrors.MetaX:     strconv.Itoa(cell.X()),
			apperrors.MetaY:     strconv.Itoa(cell.Y()),
		})
}
