// Package engine provides the plateau model for the rover simulator.
//
// The engine package implements:
//   - The Plateau: a bounded grid with its lower-left corner at (0, 0)
//   - Cells: cached coordinate handles whose occupancy is derived from the plateau
//   - Rovers: agents with a cell and a facing direction that move and rotate
//   - The compass: pure left/right/next-position functions
//
// Core Types:
//
// Plateau owns the bounds, the cell cache and the rover registry. Rover holds
// the authoritative position; Plateau.RoverAt scans the registry to answer
// "who is here". Every failure is a coded error from mission/errors
// (INVALID_BOUNDS, OUT_OF_BOUNDS, CELL_OCCUPIED, NULL_ARGUMENT).
//
// Usage:
//
//	plateau, err := engine.NewPlateauFromUpperRight(5, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rover, err := plateau.PlaceRover(1, 2, engine.North)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rover.RotateLeft()
//	if _, err := rover.Move(); err != nil {
//		log.Printf("move rejected: %v", err)
//	}
//	fmt.Println(rover.Report()) // "0 2 W"
//
// Movement Rules:
//
// A move is rejected, leaving the rover where it was, when the target
// coordinate falls outside the plateau or another rover already stands there.
// Rotations always succeed.
package engine
