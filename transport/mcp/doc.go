// Package mcp provides a Model Context Protocol server for mission control.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - run_mission: execute a mission and report final rover positions
//   - validate_mission: check a mission without running it for real
//   - list_missions: list named missions from the missions directory
//
// Missions are passed inline as text or by name. Every call runs on a fresh
// plateau; no state is kept between calls.
//
// Usage:
//
//	srv := mcp.NewServer(AppName, Version, manager, logger)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
