// Package validate checks mission files without running them for real. It
// checks:
//   - the plateau line (two non-negative integers)
//   - every position line (X Y D) and command line (L, R, M only)
//   - placements inside the plateau and on free cells
//   - command paths that leave the plateau or hit another rover
//
// Every problem is collected; validation does not stop at the first one.
package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mars-rover/mission/command"
	"github.com/wricardo/mars-rover/mission/config"
	"github.com/wricardo/mars-rover/mission/service"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidateMission loads and validates a single mission file.
func ValidateMission(filePath string) ValidationResult {
	data, err := os.ReadFile(filePath)
	if err != nil {
		result := ValidationResult{File: filepath.Base(filePath), Errors: []string{}}
		result.fail("Failed to read file: %v", err)
		return result
	}

	mission := config.ParseMission(strings.TrimSuffix(filepath.Base(filePath), config.MissionExt), filePath, string(data))
	return ValidateLines(filepath.Base(filePath), mission.Lines)
}

// ValidateLines validates a mission held in memory. The mission is dry-run on
// a scratch plateau so placement and movement problems surface too.
func ValidateLines(file string, lines []string) ValidationResult {
	result := ValidationResult{
		File:   file,
		Valid:  true,
		Errors: []string{},
	}

	if len(lines) == 0 {
		result.fail("Mission is empty")
		return result
	}

	bounds, err := command.ParseBounds(lines[0])
	if err != nil {
		result.fail("Line 1: %v", err)
		// Without a plateau only the record syntax can be checked
		checkSyntax(&result, lines)
		return result
	}

	run, err := service.NewRunner(nil, service.WithRunID(func() string { return "validate" })).
		RunLines(context.Background(), lines)
	if err != nil {
		result.fail("Line 1: %v", err)
		return result
	}

	commands := 0
	for _, rec := range run.Records {
		commands += len(strings.TrimSpace(rec.CommandText))
		if rec.Success {
			continue
		}
		if rec.StoppedOnCommand > 0 {
			result.fail("Lines (%d, %d): %s stopped on command %d: %s",
				rec.StartLine, rec.StartLine+1, rec.Rover, rec.StoppedOnCommand, rec.Error)
			continue
		}
		result.fail("Lines (%d, %d): %s", rec.StartLine, rec.StartLine+1, rec.Error)
	}

	if len(run.Records) == 0 {
		result.fail("Mission has no rover records")
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Plateau: upper right %d %d", bounds.UpperX, bounds.UpperY))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Rovers: %d", len(run.Records)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Commands: %d", commands))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Final positions: %s", strings.Join(run.Outputs(), ", ")))
	}

	return result
}

// checkSyntax parses every record without placing anything.
func checkSyntax(result *ValidationResult, lines []string) {
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		start := i + 1
		commandText := ""
		if i+1 < len(lines) {
			commandText = lines[i+1]
		}
		if _, err := command.ParseRecord(lines[i], commandText); err != nil {
			result.fail("Lines (%d, %d): %v", start, start+1, err)
		}
		i++
	}
}

// PrintReport writes a concise report for results and reports whether every
// file was valid.
func PrintReport(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All missions are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some missions have errors")
	}
	return allValid
}
