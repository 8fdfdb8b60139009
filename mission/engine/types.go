package engine

import (
	"fmt"
	"strings"
)

// Direction is a compass point. The ordinal order is significant:
// rotating right adds one modulo NumDirections.
type Direction int

const (
	North Direction = iota
	East
	South
	West

	// NumDirections is the size of the compass.
	NumDirections = 4

	// RoverNamePrefix is prepended to the placement index to name rovers.
	RoverNamePrefix = "Rvr"
)

var directionLetters = [NumDirections]string{"N", "E", "S", "W"}
var directionNames = [NumDirections]string{"North", "East", "South", "West"}

// Valid reports whether d is one of the four compass points.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// String returns the single-letter form used in rover records ("N", "E", ...).
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionLetters[d]
}

// Name returns the full compass name ("North", "East", ...).
func (d Direction) Name() string {
	if !d.Valid() {
		return d.String()
	}
	return directionNames[d]
}

// ParseDirection converts a record letter (N, E, S or W) to a Direction.
func ParseDirection(text string) (Direction, bool) {
	switch text {
	case "N":
		return North, true
	case "E":
		return East, true
	case "S":
		return South, true
	case "W":
		return West, true
	}
	return North, false
}

// MarshalText encodes the direction as its record letter.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts a record letter or a full compass name.
func (d *Direction) UnmarshalText(text []byte) error {
	s := string(text)
	if parsed, ok := ParseDirection(s); ok {
		*d = parsed
		return nil
	}
	for i, name := range directionNames {
		if strings.EqualFold(name, s) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("invalid direction %q", s)
}

// Position is an (x, y) coordinate on a plateau.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
