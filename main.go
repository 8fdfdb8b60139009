// Command rovers runs rover missions on a rectangular plateau.
//
// It supports four subcommands:
//  1. "run" (default) – executes a mission from a file, stdin or the missions directory
//  2. "validate" – checks mission files and prints a report
//  3. "missions" – lists the named missions in the missions directory
//  4. "mcp" – serves the mission tools over MCP stdio
//
// Settings come from the environment (ROVER_*), optionally seeded from a
// .env file; command-line flags override them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/mars-rover/mission/config"
	"github.com/wricardo/mars-rover/mission/service"
	"github.com/wricardo/mars-rover/transport/mcp"
	"github.com/wricardo/mars-rover/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Mars Rover Mission Control"
)

var errValidationFailed = errors.New("one or more missions are invalid")

// app holds the settings and standard streams shared by every subcommand.
type app struct {
	settings *config.Settings
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// main loads settings, builds the command tree and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if loaded, err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	} else if loaded {
		log.Println("Loaded environment variables from .env file")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{settings: settings, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	err = a.command().Run(ctx, os.Args)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "rovers",
		Usage:     "drive rovers across a plateau",
		UsageText: "rovers [OPTIONS] [FILE]\nrovers run --mission sample\nrovers validate missions/*.txt",
		Version:   Version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags:     a.flags(),
		Action:    a.runMission,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "execute a mission and print the final rover positions",
				ArgsUsage: "[FILE]",
				Action:    a.runMission,
			},
			{
				Name:      "validate",
				Usage:     "check mission files without running them",
				ArgsUsage: "[FILE...]",
				Action:    a.validateMissions,
			},
			{
				Name:   "missions",
				Usage:  "list named missions",
				Action: a.listMissions,
			},
			{
				Name:   "mcp",
				Usage:  "serve mission tools over MCP stdio",
				Action: a.serveMCP,
			},
		},
	}
}

// flags are declared on the root command and inherited by every subcommand.
func (a *app) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Value:   a.settings.Input,
			Usage:   "mission file to run, - for stdin",
		},
		&cli.StringFlag{
			Name:    "mission",
			Aliases: []string{"m"},
			Usage:   "named mission from the missions directory",
		},
		&cli.StringFlag{
			Name:  "missions-dir",
			Value: a.settings.MissionsDir,
			Usage: "directory containing named missions",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   a.settings.Format,
			Usage:   "output format: text or json",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Value: a.settings.Debug,
			Usage: "enable debug logging and per-command trace",
		},
	}
}

func (a *app) logger(debug bool) *log.Logger {
	flags := log.LstdFlags
	if debug {
		flags |= log.Lshortfile
	}
	return log.New(a.stderr, "", flags)
}

// runMission executes one mission and writes its result to stdout.
func (a *app) runMission(ctx context.Context, cmd *cli.Command) error {
	settings := config.Settings{
		Input:       cmd.String("input"),
		MissionsDir: cmd.String("missions-dir"),
		Format:      cmd.String("format"),
		Debug:       cmd.Bool("debug"),
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if cmd.Args().Len() > 0 {
		settings.Input = cmd.Args().First()
	}

	logger := a.logger(settings.Debug)

	src, name, closeFn, err := a.openSource(settings, cmd.String("mission"))
	if err != nil {
		return err
	}
	defer closeFn()

	logger.Printf("Starting %s v%s (mission: %s)", AppName, Version, name)

	runner := service.NewRunner(logger, service.WithTrace(settings.Debug))
	result, err := runner.Run(ctx, src)
	if err != nil {
		return fmt.Errorf("mission %s aborted: %w", name, err)
	}
	logger.Printf("Run %s finished: %d succeeded, %d failed", result.RunID, result.Succeeded, result.Failed)

	return service.Write(a.stdout, settings.Format, result)
}

// openSource resolves the mission input: a named mission wins over a file,
// and "-" reads stdin.
func (a *app) openSource(settings config.Settings, missionName string) (service.LineSource, string, func(), error) {
	if missionName != "" {
		manager, err := config.NewManager(settings.MissionsDir)
		if err != nil {
			return nil, "", nil, err
		}
		mission, err := manager.LoadMission(missionName)
		if err != nil {
			return nil, "", nil, err
		}
		return service.NewSliceSource(mission.Lines), mission.Name, func() {}, nil
	}

	if settings.Input == "" || settings.Input == "-" {
		return service.NewScannerSource(a.stdin), "stdin", func() {}, nil
	}

	f, err := os.Open(settings.Input)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open mission file: %w", err)
	}
	return service.NewScannerSource(f), settings.Input, func() { f.Close() }, nil
}

// validateMissions validates the given files, or every mission in the
// missions directory when none are given.
func (a *app) validateMissions(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join(cmd.String("missions-dir"), "*"+config.MissionExt))
		if err != nil {
			return fmt.Errorf("error finding mission files: %w", err)
		}
		files = matches
	}
	if len(files) == 0 {
		return fmt.Errorf("no mission files found in %s", cmd.String("missions-dir"))
	}

	results := make([]validate.ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validate.ValidateMission(file))
	}

	if !validate.PrintReport(a.stdout, results) {
		return errValidationFailed
	}
	return nil
}

// listMissions prints the missions directory as a table or JSON.
func (a *app) listMissions(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if err := (&config.Settings{Format: format}).Validate(); err != nil {
		return err
	}

	manager, err := config.NewManager(cmd.String("missions-dir"))
	if err != nil {
		return err
	}
	missions, err := manager.ListMissions()
	if err != nil {
		return err
	}

	if format == config.FormatJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(missions)
	}

	fmt.Fprintf(a.stdout, "%-20s %-10s %s\n", "MISSION", "PLATEAU", "ROVERS")
	for _, m := range missions {
		fmt.Fprintf(a.stdout, "%-20s %-10s %d\n", m.Name, fmt.Sprintf("%dx%d", m.UpperX+1, m.UpperY+1), m.Records)
	}
	return nil
}

// serveMCP runs the MCP stdio server. Logs go to stderr so stdout stays a
// clean protocol stream.
func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	var missions *config.Manager
	if m, err := config.NewManager(cmd.String("missions-dir")); err == nil {
		missions = m
	} else {
		log.Printf("Warning: missions directory unavailable: %v", err)
	}

	logger := a.logger(cmd.Bool("debug"))
	logger.Printf("Starting %s v%s (mode: mcp-stdio)", AppName, Version)
	return mcp.NewServer(AppName, Version, missions, logger).ServeStdio()
}
