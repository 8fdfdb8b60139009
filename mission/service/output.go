package service

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteText writes one "X Y D" line per successful rover.
func WriteText(w io.Writer, result *RunResult) error {
	for _, line := range result.Outputs() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the full run result as indented JSON.
func WriteJSON(w io.Writer, result *RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode run result: %w", err)
	}
	return nil
}

// Write dispatches on format ("text" or "json").
func Write(w io.Writer, format string, result *RunResult) error {
	switch format {
	case "", "text":
		return WriteText(w, result)
	case "json":
		return WriteJSON(w, result)
	default:
		return fmt.Errorf("unknown output format %q (expected text or json)", format)
	}
}
