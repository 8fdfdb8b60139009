package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mars-rover/mission/command"
	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// MissionExt is the file extension of mission files.
const MissionExt = ".txt"

var ErrMissionNotFound = apperrors.New(apperrors.CodeNotFound, "mission not found")

// Mission is a mission file held in memory, one entry per line.
type Mission struct {
	Name  string
	Path  string
	Lines []string
}

// MissionInfo summarises a mission file
type MissionInfo struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	UpperX   int    `json:"upper_x"`
	UpperY   int    `json:"upper_y"`
	Records  int    `json:"records"`
}

// Manager handles mission file loading and caching
type Manager struct {
	missionsDir string
	missions    map[string]*Mission
	mu          sync.RWMutex
}

// NewManager creates a new mission manager
func NewManager(missionsDir string) (*Manager, error) {
	info, err := os.Stat(missionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missions directory does not exist: %s", missionsDir)
		}
		return nil, fmt.Errorf("failed to stat missions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("missions path is not a directory: %s", missionsDir)
	}

	return &Manager{
		missionsDir: missionsDir,
		missions:    make(map[string]*Mission),
	}, nil
}

// LoadMission loads a mission by name, with or without the .txt extension
func (m *Manager) LoadMission(name string) (*Mission, error) {
	name = strings.TrimSuffix(name, MissionExt)
	if name == "" || name != filepath.Base(name) {
		return nil, apperrors.WithMetadata(apperrors.CodeNotFound,
			fmt.Sprintf("mission %q not found", name),
			map[string]string{apperrors.MetaField: "mission"})
	}

	m.mu.RLock()
	if mission, exists := m.missions[name]; exists {
		m.mu.RUnlock()
		return mission, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if mission, exists := m.missions[name]; exists {
		return mission, nil
	}

	mission, err := m.readMission(name)
	if err != nil {
		return nil, err
	}

	m.missions[name] = mission
	return mission, nil
}

// ReloadMission drops a cached mission and reads it again from disk.
func (m *Manager) ReloadMission(name string) error {
	name = strings.TrimSuffix(name, MissionExt)

	m.mu.Lock()
	delete(m.missions, name)
	m.mu.Unlock()

	_, err := m.LoadMission(name)
	return err
}

// RefreshCache clears every cached mission.
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missions = make(map[string]*Mission)
}

// ListMissions returns information about every mission whose plateau line
// parses. Missions are sorted by name.
func (m *Manager) ListMissions() ([]*MissionInfo, error) {
	entries, err := os.ReadDir(m.missionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read missions directory: %w", err)
	}

	var missions []*MissionInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MissionExt) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), MissionExt)
		mission, err := m.LoadMission(name)
		if err != nil {
			continue
		}

		bounds, err := mission.Bounds()
		if err != nil {
			// Skip missions without a usable plateau line
			continue
		}

		missions = append(missions, &MissionInfo{
			Name:     name,
			Filename: entry.Name(),
			UpperX:   bounds.UpperX,
			UpperY:   bounds.UpperY,
			Records:  mission.RecordCount(),
		})
	}

	sort.Slice(missions, func(i, j int) bool {
		return missions[i].Name < missions[j].Name
	})
	return missions, nil
}

func (m *Manager) readMission(name string) (*Mission, error) {
	path := filepath.Join(m.missionsDir, name+MissionExt)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.WrapWithMetadata(apperrors.CodeNotFound,
				fmt.Sprintf("mission %q not found", name),
				map[string]string{apperrors.MetaField: "mission"}, err)
		}
		return nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	return ParseMission(name, path, string(data)), nil
}

// ParseMission splits raw mission text into lines. Line endings may be
// "\n" or "\r\n"; a final newline does not produce an extra line.
func ParseMission(name, path, text string) *Mission {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	return &Mission{Name: name, Path: path, Lines: lines}
}

// Bounds parses the plateau line of the mission.
func (m *Mission) Bounds() (*command.Bounds, error) {
	if len(m.Lines) == 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeMalformedInput, "mission file is empty",
			map[string]string{apperrors.MetaField: "bounds"})
	}
	return command.ParseBounds(m.Lines[0])
}

// RecordCount returns the number of rover records, pairing lines the same
// way a run does: blank lines are skipped where a position line is expected
// and a trailing position line counts as a record.
func (m *Mission) RecordCount() int {
	count := 0
	for i := 1; i < len(m.Lines); i++ {
		if strings.TrimSpace(m.Lines[i]) == "" {
			continue
		}
		count++
		i++ // command line
	}
	return count
}
