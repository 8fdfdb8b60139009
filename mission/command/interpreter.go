package command

import (
	"fmt"

	"github.com/wricardo/mars-rover/mission/engine"
	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// Command is a single rover instruction.
type Command byte

const (
	RotateLeft  Command = 'L'
	RotateRight Command = 'R'
	Move        Command = 'M'
)

func (c Command) String() string {
	return string(rune(c))
}

// Apply runs the command against a rover. Only Move can fail.
func (c Command) Apply(r *engine.Rover) error {
	switch c {
	case RotateLeft:
		r.RotateLeft()
	case RotateRight:
		r.RotateRight()
	case Move:
		if _, err := r.Move(); err != nil {
			return err
		}
	default:
		return apperrors.WithMetadata(apperrors.CodeMalformedInput,
			fmt.Sprintf("unknown rover command %q", rune(c)),
			map[string]string{apperrors.MetaField: "command"})
	}
	return nil
}

// Step describes one executed (or rejected) command.
type Step struct {
	Index    int // 1-based position in the command line
	Command  Command
	Rover    *engine.Rover
	Position engine.Position
	Facing   engine.Direction
	Err      error
}

// Outcome is what Execute learned about a record, whether or not it succeeded.
// Rover is nil when the record never got placed.
type Outcome struct {
	Record   *Record
	Rover    *engine.Rover
	Executed int
}

// Interpreter places rovers from records and replays their commands.
type Interpreter struct {
	trace func(Step)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTrace registers a callback invoked after every command.
func WithTrace(fn func(Step)) Option {
	return func(in *Interpreter) {
		in.trace = fn
	}
}

// NewInterpreter creates an interpreter.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Execute validates a rover record, places the rover on p and replays its
// commands left to right. Validation happens before placement, so a malformed
// record leaves the plateau untouched. Execution stops at the first failing
// command; the rover keeps whatever state it reached. Errors from the plateau
// and rover are returned unchanged.
//
// The returned Outcome is never nil.
func (in *Interpreter) Execute(p *engine.Plateau, positionText, commandText string) (*Outcome, error) {
	out := &Outcome{}
	if p == nil {
		return out, apperrors.New(apperrors.CodeNullArgument, "specified plateau is nil")
	}

	rec, err := ParseRecord(positionText, commandText)
	if err != nil {
		return out, err
	}
	out.Record = rec

	rover, err := p.PlaceRover(rec.X, rec.Y, rec.Direction)
	if err != nil {
		return out, err
	}
	out.Rover = rover

	out.Executed, err = in.Replay(rover, rec.Commands)
	return out, err
}

// Replay runs cmds against rover and returns how many succeeded.
func (in *Interpreter) Replay(rover *engine.Rover, cmds []Command) (int, error) {
	if rover == nil {
		return 0, apperrors.New(apperrors.CodeNullArgument, "specified rover is nil")
	}

	for i, c := range cmds {
		err := c.Apply(rover)
		if in.trace != nil {
			in.trace(Step{
				Index:    i + 1,
				Command:  c,
				Rover:    rover,
				Position: rover.Position(),
				Facing:   rover.Direction(),
				Err:      err,
			})
		}
		if err != nil {
			return i, err
		}
	}
	return len(cmds), nil
}

// Execute runs a record with a default interpreter.
func Execute(p *engine.Plateau, positionText, commandText string) (*Outcome, error) {
	return NewInterpreter().Execute(p, positionText, commandText)
}
