// Package command turns rover records into operations on a plateau.
//
// A record is two lines of text:
//
//	1 2 N        position: X Y D, D one of N, E, S, W
//	LMLMLMLMM    commands: zero or more of L (turn left), R (turn right), M (move)
//
// Both lines are validated with participle grammars before anything touches
// the plateau; a malformed record fails with MALFORMED_INPUT and the error
// metadata names the failing field (x, y, direction, position or command).
// Once validated, the rover is placed and the commands are replayed left to
// right. The first failing move stops the replay and its error is returned
// as raised by the engine.
//
// Usage:
//
//	plateau, _ := engine.NewPlateauFromUpperRight(5, 5)
//	out, err := command.Execute(plateau, "1 2 N", "LMLMLMLMM")
//	if err != nil {
//		log.Printf("rover failed after %d commands: %v", out.Executed, err)
//	}
//	fmt.Println(out.Rover.Report()) // "1 3 N"
package command
