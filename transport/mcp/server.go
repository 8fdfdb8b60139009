package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mars-rover/mission/config"
	"github.com/wricardo/mars-rover/mission/service"
	"github.com/wricardo/mars-rover/validate"
)

// Server exposes mission control as MCP tools.
type Server struct {
	missions  *config.Manager
	logger    *log.Logger
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server. missions may be nil, in which case only
// inline mission text is accepted.
func NewServer(name, version string, missions *config.Manager, logger *log.Logger) *Server {
	s := &Server{
		missions: missions,
		logger:   logger,
	}

	s.mcpServer = server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mars Rover Mission Control - MCP Interface

A mission is plain text. The first line is the plateau's upper-right corner
("5 5"). Every rover then takes two lines: its landing position "X Y D"
(D is N, E, S or W) and a command line of L (turn left), R (turn right)
and M (move one cell forward).

AVAILABLE TOOLS:
- run_mission: Execute a mission and report every rover's final position
- validate_mission: Check a mission without keeping any state
- list_missions: List named missions from the missions directory

Rovers run one after another on the same plateau; a rover that fails stays
where it stopped and blocks the ones that follow.`),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	missionProperties := map[string]interface{}{
		"mission": map[string]interface{}{
			"type":        "string",
			"description": "Mission text: plateau line followed by position/command line pairs",
		},
		"mission_name": map[string]interface{}{
			"type":        "string",
			"description": "Name of a mission in the missions directory (used when mission is empty)",
		},
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "run_mission",
		Description: "Execute a mission and report every rover's final position",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: missionProperties,
		},
	}, s.handleRunMission)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_mission",
		Description: "Check a mission for malformed lines, bad placements and rovers that leave the plateau",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: missionProperties,
		},
	}, s.handleValidateMission)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_missions",
		Description: "List named missions with plateau size and rover count",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListMissions)
}

// Tool handlers

func (s *Server) handleRunMission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, lines, err := s.missionLines(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := service.NewRunner(s.logger).RunLines(ctx, lines)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Mission %s aborted: %v", name, err)), nil
	}

	return mcp.NewToolResultText(formatRunResult(name, result)), nil
}

func (s *Server) handleValidateMission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, lines, err := s.missionLines(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := validate.ValidateLines(name, lines)

	var b strings.Builder
	validate.PrintReport(&b, []validate.ValidationResult{result})
	return mcp.NewToolResultText(strings.TrimSpace(b.String())), nil
}

func (s *Server) handleListMissions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.missions == nil {
		return mcp.NewToolResultError("no missions directory configured"), nil
	}

	missions, err := s.missions.ListMissions()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(missions) == 0 {
		return mcp.NewToolResultText("No missions found"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Missions (%d):\n", len(missions))
	for _, m := range missions {
		fmt.Fprintf(&b, "- %s: plateau %dx%d, %d rovers\n", m.Name, m.UpperX+1, m.UpperY+1, m.Records)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// missionLines resolves the mission from inline text or, failing that, the
// missions directory.
func (s *Server) missionLines(request mcp.CallToolRequest) (string, []string, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	text, _ := args["mission"].(string)
	name, _ := args["mission_name"].(string)

	if strings.TrimSpace(text) != "" {
		return "inline", config.ParseMission("inline", "", text).Lines, nil
	}
	if name == "" {
		return "", nil, fmt.Errorf("either mission or mission_name is required")
	}
	if s.missions == nil {
		return "", nil, fmt.Errorf("no missions directory configured")
	}

	mission, err := s.missions.LoadMission(name)
	if err != nil {
		return "", nil, err
	}
	return mission.Name, mission.Lines, nil
}

func formatRunResult(name string, result *service.RunResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mission %s (run %s)\n", name, result.RunID)
	fmt.Fprintf(&b, "Plateau: upper right %d %d\n", result.Bounds.UpperX, result.Bounds.UpperY)
	fmt.Fprintf(&b, "Rovers: %d succeeded, %d failed\n\n", result.Succeeded, result.Failed)

	for _, rec := range result.Records {
		label := rec.Rover
		if label == "" {
			label = "(not placed)"
		}
		if rec.Success {
			fmt.Fprintf(&b, "✓ #%d %s: %s -> %s\n", rec.Index, label, rec.PositionText, rec.Output)
			continue
		}
		fmt.Fprintf(&b, "✗ #%d %s: %s [%s] %s\n", rec.Index, label, rec.PositionText, rec.ErrorCode, rec.Error)
		if rec.End != nil {
			fmt.Fprintf(&b, "   stopped at %d %d %s after %d commands\n", rec.End.X, rec.End.Y, rec.End.Direction, rec.CommandsExecuted)
		}
	}
	return b.String()
}
