// Package config provides settings and mission file management for the rovers
// CLI.
//
// Settings come from the environment (optionally seeded from a .env file):
//
//	ROVER_INPUT          mission file to run, "-" for stdin
//	ROVER_MISSIONS_DIR   directory holding named missions
//	ROVER_FORMAT         output format, text or json
//	ROVER_DEBUG          verbose logging and per-command trace
//
// Missions:
//
// A named mission is a plain text file <dir>/<name>.txt. The Manager reads
// it once and caches its lines; parsing and execution belong to the service
// package.
//
//	manager, err := config.NewManager("missions")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mission, err := manager.LoadMission("sample")
//	missions, err := manager.ListMissions()
package config
