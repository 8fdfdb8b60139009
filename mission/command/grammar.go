package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/wricardo/mars-rover/mission/engine"
	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// Bounds is the first line of a mission: the plateau's upper-right corner.
type Bounds struct {
	UpperX int `json:"upper_x"`
	UpperY int `json:"upper_y"`
}

type boundsLine struct {
	UpperX string `parser:"@Int"`
	UpperY string `parser:"@Int"`
}

// positionLine captures the three raw tokens of "X Y D"; each token is
// validated separately so the error can name the field that failed.
type positionLine struct {
	X   string `parser:"@Word"`
	Y   string `parser:"@Word"`
	Dir string `parser:"@Word"`
}

// commandLine accepts one contiguous run of L/R/M, optionally padded.
type commandLine struct {
	Commands string `parser:"@Commands?"`
}

var (
	boundsParser = participle.MustBuild[boundsLine](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "Int", Pattern: `[0-9]+`},
			{Name: "Whitespace", Pattern: `\s+`},
		})),
		participle.Elide("Whitespace"),
	)

	positionParser = participle.MustBuild[positionLine](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "Word", Pattern: `[^\s]+`},
			{Name: "Whitespace", Pattern: `\s+`},
		})),
		participle.Elide("Whitespace"),
	)

	commandParser = participle.MustBuild[commandLine](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "Commands", Pattern: `[LRM]+`},
			{Name: "Whitespace", Pattern: `\s+`},
		})),
		participle.Elide("Whitespace"),
	)
)

// Record is one validated rover record: where to land and what to do.
type Record struct {
	X         int              `json:"x"`
	Y         int              `json:"y"`
	Direction engine.Direction `json:"direction"`
	Commands  []Command        `json:"-"`
}

// CommandText returns the commands as the letters they were parsed from.
func (r *Record) CommandText() string {
	var b strings.Builder
	for _, c := range r.Commands {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// ParseBounds parses "<upperX> <upperY>".
func ParseBounds(text string) (*Bounds, error) {
	if strings.TrimSpace(text) == "" {
		return nil, malformed("bounds", "plateau co-ordinates are empty", nil)
	}
	line, err := boundsParser.ParseString("bounds", text)
	if err != nil {
		return nil, malformed("bounds", "invalid plateau co-ordinates. Format: <upper x> <upper y>", err)
	}

	upperX, okX := parseCoordinate(line.UpperX)
	upperY, okY := parseCoordinate(line.UpperY)
	if !okX || !okY {
		return nil, malformed("bounds", fmt.Sprintf("plateau co-ordinates out of range: %s %s", line.UpperX, line.UpperY), nil)
	}
	return &Bounds{UpperX: upperX, UpperY: upperY}, nil
}

// ParsePosition parses "X Y D" where X and Y are non-negative integers and D
// is one of N, E, S, W.
func ParsePosition(text string) (x, y int, dir engine.Direction, err error) {
	if strings.TrimSpace(text) == "" {
		return 0, 0, engine.North, malformed("position", "position information is empty or zero-length", nil)
	}

	pos, perr := positionParser.ParseString("position", text)
	if perr != nil {
		return 0, 0, engine.North, malformed("position", "position information is not in valid format. Format: X Y D", perr)
	}

	x, ok := parseCoordinate(pos.X)
	if !ok {
		return 0, 0, engine.North, malformed("x", fmt.Sprintf("X position %q is not in valid format. Format: non-negative number (<= plateau upper X)", pos.X), nil)
	}
	y, ok = parseCoordinate(pos.Y)
	if !ok {
		return 0, 0, engine.North, malformed("y", fmt.Sprintf("Y position %q is not in valid format. Format: non-negative number (<= plateau upper Y)", pos.Y), nil)
	}
	dir, ok = engine.ParseDirection(pos.Dir)
	if !ok {
		return 0, 0, engine.North, malformed("direction", fmt.Sprintf("direction %q is not valid. Format: N or E or W or S", pos.Dir), nil)
	}

	return x, y, dir, nil
}

// ParseCommands parses a command line. An empty or blank line is a valid,
// empty program.
func ParseCommands(text string) ([]Command, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	line, err := commandParser.ParseString("command", text)
	if err != nil {
		return nil, malformed("command", "rover command is not in valid format. Format: [L][M][R]", err)
	}

	cmds := make([]Command, 0, len(line.Commands))
	for i := 0; i < len(line.Commands); i++ {
		cmds = append(cmds, Command(line.Commands[i]))
	}
	return cmds, nil
}

// ParseRecord validates both lines of a rover record. Nothing is placed on
// any plateau here.
func ParseRecord(positionText, commandText string) (*Record, error) {
	x, y, dir, err := ParsePosition(positionText)
	if err != nil {
		return nil, err
	}

	cmds, err := ParseCommands(commandText)
	if err != nil {
		return nil, err
	}

	return &Record{X: x, Y: y, Direction: dir, Commands: cmds}, nil
}

func parseCoordinate(text string) (int, bool) {
	n, err := strconv.ParseUint(text, 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func malformed(field, message string, cause error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeMalformedInput, message,
		map[string]string{apperrors.MetaField: field}, cause)
}
