package engine

// LeftOf returns the direction a quarter turn counter-clockwise from d.
// It does not change any rover; see Rover.RotateLeft.
func LeftOf(d Direction) Direction {
	c := int(d) - 1
	if c < 0 {
		c += NumDirections
	}
	return Direction(c)
}

// RightOf returns the direction a quarter turn clockwise from d.
func RightOf(d Direction) Direction {
	return Direction((int(d) + 1) % NumDirections)
}

// NextPosition returns the coordinate one step from (x, y) facing d.
// No bounds checking is done here; the rover checks against its plateau.
func NextPosition(x, y int, d Direction) (int, int) {
	switch d {
	case North:
		y++
	case East:
		x++
	case South:
		y--
	case West:
		x--
	}
	return x, y
}
