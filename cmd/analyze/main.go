// Command analyze prints quick, human-readable heuristics about mission files
// in the missions directory. It summarizes plateau size, rover count and
// command mix, and highlights rovers whose path leaves the plateau even when
// every other rover is ignored.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wricardo/mars-rover/mission/command"
	"github.com/wricardo/mars-rover/mission/config"
	"github.com/wricardo/mars-rover/mission/engine"
	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// AnalysisRover is one rover record as seen by the analysis.
type AnalysisRover struct {
	Line     int
	Position string
	Commands string
}

// CommandMix counts commands by kind.
type CommandMix struct {
	Left, Right, Move int
}

func (m CommandMix) Total() int {
	return m.Left + m.Right + m.Move
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	dir := settings.MissionsDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		log.Fatalf("Failed to open missions: %v", err)
	}
	missions, err := manager.ListMissions()
	if err != nil {
		log.Fatalf("Failed to list missions: %v", err)
	}

	for _, info := range missions {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		mission, err := manager.LoadMission(info.Name)
		if err != nil {
			fmt.Printf("Error loading mission: %v\n", err)
			continue
		}
		analyzeMission(os.Stdout, mission)
	}
}

// collectRovers pairs mission lines into rover records the way a run does.
func collectRovers(lines []string) []AnalysisRover {
	var rovers []AnalysisRover
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		rover := AnalysisRover{Line: i + 1, Position: lines[i]}
		if i+1 < len(lines) {
			rover.Commands = lines[i+1]
		}
		rovers = append(rovers, rover)
		i++
	}
	return rovers
}

func countCommands(rovers []AnalysisRover) CommandMix {
	var mix CommandMix
	for _, r := range rovers {
		for _, c := range r.Commands {
			switch command.Command(c) {
			case command.RotateLeft:
				mix.Left++
			case command.RotateRight:
				mix.Right++
			case command.Move:
				mix.Move++
			}
		}
	}
	return mix
}

// soloRun executes a rover alone on a fresh plateau.
func soloRun(bounds *command.Bounds, r AnalysisRover) (*command.Outcome, error) {
	p, err := engine.NewPlateauFromUpperRight(bounds.UpperX, bounds.UpperY)
	if err != nil {
		return &command.Outcome{}, err
	}
	return command.Execute(p, r.Position, r.Commands)
}

func analyzeMission(w io.Writer, mission *config.Mission) {
	bounds, err := mission.Bounds()
	if err != nil {
		fmt.Fprintf(w, "Error parsing plateau: %v\n", err)
		return
	}

	rovers := collectRovers(mission.Lines)
	mix := countCommands(rovers)

	fmt.Fprintf(w, "Name: %s\n", mission.Name)
	fmt.Fprintf(w, "Plateau: %d x %d (upper right %d %d)\n", bounds.UpperX+1, bounds.UpperY+1, bounds.UpperX, bounds.UpperY)
	fmt.Fprintf(w, "Rovers: %d\n", len(rovers))
	fmt.Fprintf(w, "Commands: %d (L %d, R %d, M %d)\n", mix.Total(), mix.Left, mix.Right, mix.Move)

	var leaving, malformed []string
	for _, r := range rovers {
		out, err := soloRun(bounds, r)
		switch {
		case err == nil:
		case apperrors.IsCode(err, apperrors.CodeMalformedInput):
			malformed = append(malformed, fmt.Sprintf("line %d: %v", r.Line, err))
		case apperrors.IsCode(err, apperrors.CodeOutOfBounds):
			if out.Rover == nil {
				leaving = append(leaving, fmt.Sprintf("line %d: lands outside the plateau at %s", r.Line, strings.TrimSpace(r.Position)))
			} else {
				leaving = append(leaving, fmt.Sprintf("line %d: leaves the plateau on command %d", r.Line, out.Executed+1))
			}
		default:
			malformed = append(malformed, fmt.Sprintf("line %d: %v", r.Line, err))
		}
	}

	if len(malformed) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d rover records are malformed\n", len(malformed))
		for _, m := range malformed {
			fmt.Fprintf(w, "   %s\n", m)
		}
	}

	if len(leaving) > 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: %d rovers leave the plateau even without collisions!\n", len(leaving))
		for i, l := range leaving {
			if i < 5 { // Show first 5 offenders
				fmt.Fprintf(w, "   %s\n", l)
			}
		}
		if len(leaving) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(leaving)-5)
		}
	} else {
		fmt.Fprintf(w, "✅ Every rover stays on the plateau when run alone\n")
	}
}
