package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/wricardo/mars-rover/mission/command"
	"github.com/wricardo/mars-rover/mission/engine"
	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// Runner drives a whole mission: one plateau, then rover records in order.
type Runner struct {
	logger *log.Logger
	trace  bool
	newID  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithTrace logs every executed command.
func WithTrace(enabled bool) Option {
	return func(r *Runner) {
		r.trace = enabled
	}
}

// WithRunID overrides run ID generation.
func WithRunID(fn func() string) Option {
	return func(r *Runner) {
		r.newID = fn
	}
}

// NewRunner creates a runner that reports to logger. A nil logger discards
// all output.
func NewRunner(logger *log.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &Runner{
		logger: logger,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads the bounds line, builds the plateau and processes every rover
// record. Record failures are logged and recorded in the result; processing
// continues with the next record. A missing or invalid bounds line, a read
// error or a cancelled context aborts the run; the partial result is returned
// alongside the error whenever a plateau exists.
func (r *Runner) Run(ctx context.Context, src LineSource) (*RunResult, error) {
	boundsText, ok, err := src.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to read plateau co-ordinates: %w", err)
	}
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeMalformedInput, "mission input is empty",
			map[string]string{apperrors.MetaField: "bounds"})
	}

	bounds, err := command.ParseBounds(boundsText)
	if err != nil {
		r.logger.Printf("Error processing plateau co-ordinates at line %d. %v", src.Line(), err)
		return nil, err
	}
	plateau, err := engine.NewPlateauFromUpperRight(bounds.UpperX, bounds.UpperY)
	if err != nil {
		r.logger.Printf("Error creating plateau at line %d. %v", src.Line(), err)
		return nil, err
	}

	result := &RunResult{
		RunID:   r.newID(),
		Bounds:  *bounds,
		Plateau: plateau,
	}
	r.logger.Printf("Run %s: plateau %s", result.RunID, plateau.Bounds())

	interp := r.interpreter()
	for {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("mission run %s cancelled: %w", result.RunID, err)
		}

		positionText, ok, err := src.Next()
		if err != nil {
			return result, fmt.Errorf("failed to read rover position: %w", err)
		}
		if !ok {
			break
		}
		if strings.TrimSpace(positionText) == "" {
			continue
		}
		startLine := src.Line()

		commandText, ok, err := src.Next()
		if err != nil {
			return result, fmt.Errorf("failed to read rover commands: %w", err)
		}
		if !ok {
			commandText = ""
		}

		rec := r.runRecord(interp, plateau, len(result.Records)+1, startLine, positionText, commandText)
		if rec.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Records = append(result.Records, rec)

		if !ok {
			break
		}
	}

	return result, nil
}

func (r *Runner) runRecord(interp *command.Interpreter, plateau *engine.Plateau, index, startLine int, positionText, commandText string) RecordResult {
	rec := RecordResult{
		Index:        index,
		StartLine:    startLine,
		PositionText: positionText,
		CommandText:  commandText,
	}
	r.logger.Printf("Input: %s (%s)", positionText, commandText)

	out, err := interp.Execute(plateau, positionText, commandText)
	if out.Record != nil {
		rec.Start = &Placement{X: out.Record.X, Y: out.Record.Y, Direction: out.Record.Direction}
	}
	if out.Rover != nil {
		rec.Rover = out.Rover.Name()
		rec.End = placementOf(out.Rover)
	}
	rec.CommandsExecuted = out.Executed

	if err != nil {
		rec.Error = err.Error()
		rec.ErrorCode = string(apperrors.CodeOf(err))
		if out.Rover != nil {
			rec.StoppedOnCommand = out.Executed + 1
		}
		r.logger.Printf("Error processing rover information at lines (%d, %d). %v", startLine, startLine+1, err)
		return rec
	}

	rec.Success = true
	rec.Output = out.Rover.Report()
	r.logger.Printf("Output: %s", rec.Output)
	return rec
}

func (r *Runner) interpreter() *command.Interpreter {
	if !r.trace {
		return command.NewInterpreter()
	}
	return command.NewInterpreter(command.WithTrace(func(s command.Step) {
		if s.Err != nil {
			r.logger.Printf("  %s #%d %s: %v", s.Rover.Name(), s.Index, s.Command, s.Err)
			return
		}
		r.logger.Printf("  %s #%d %s -> %d %d %s", s.Rover.Name(), s.Index, s.Command, s.Position.X, s.Position.Y, s.Facing)
	}))
}

// RunLines runs a mission held in memory.
func (r *Runner) RunLines(ctx context.Context, lines []string) (*RunResult, error) {
	return r.Run(ctx, NewSliceSource(lines))
}
