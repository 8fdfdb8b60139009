package service

import (
	"github.com/wricardo/mars-rover/mission/command"
	"github.com/wricardo/mars-rover/mission/engine"
)

// Placement is a rover coordinate plus facing.
type Placement struct {
	X         int              `json:"x"`
	Y         int              `json:"y"`
	Direction engine.Direction `json:"direction"`
}

func placementOf(r *engine.Rover) *Placement {
	pos := r.Position()
	return &Placement{X: pos.X, Y: pos.Y, Direction: r.Direction()}
}

// RecordResult contains the result of one rover record
type RecordResult struct {
	Index        int    `json:"index"`      // 1-based record number
	StartLine    int    `json:"start_line"` // line number of the position line
	PositionText string `json:"position_text"`
	CommandText  string `json:"command_text"`

	Rover string     `json:"rover,omitempty"` // empty when the rover was never placed
	Start *Placement `json:"start,omitempty"`
	End   *Placement `json:"end,omitempty"`

	Success          bool   `json:"success"`
	Output           string `json:"output,omitempty"` // "X Y D" for successful rovers
	Error            string `json:"error,omitempty"`
	ErrorCode        string `json:"error_code,omitempty"`         // MALFORMED_INPUT|OUT_OF_BOUNDS|CELL_OCCUPIED|...
	StoppedOnCommand int    `json:"stopped_on_command,omitempty"` // 1-based index of the command that failed
	CommandsExecuted int    `json:"commands_executed"`
}

// RunResult contains the result of a whole mission
type RunResult struct {
	RunID     string         `json:"run_id"`
	Bounds    command.Bounds `json:"bounds"`
	Records   []RecordResult `json:"records"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`

	// Plateau is the final state of the simulation.
	Plateau *engine.Plateau `json:"-"`
}

// Outputs returns the "X Y D" lines of successful rovers, in input order.
func (r *RunResult) Outputs() []string {
	var out []string
	for _, rec := range r.Records {
		if rec.Success {
			out = append(out, rec.Output)
		}
	}
	return out
}
