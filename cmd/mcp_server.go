package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/tasktrees/internal/version"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// mcpServer exposes the window state store as MCP tools.
type mcpServer struct {
	env *appEnv
	mcp *mcpserver.MCPServer
}

func newMCPServer(env *appEnv) *mcpServer {
	s := &mcpServer{env: env}
	s.mcp = mcpserver.NewMCPServer("tasktrees", version.Version)
	s.registerTools()
	return s
}

// MCPConfig selects how the MCP server is exposed.
type MCPConfig struct {
	Transport string
	Port      int
}

func (s *mcpServer) serve(cfg MCPConfig) error {
	s.env.log.Info("serving MCP", zap.String("transport", cfg.Transport), zap.Int("port", cfg.Port))
	switch cfg.Transport {
	case "stdio", "":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("window_state_path",
			mcp.WithDescription("Return the path of the TaskTrees window state file"),
		),
		s.handlePath,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_state_get",
			mcp.WithDescription("Return the window geometry TaskTrees will restore on next launch, and whether a saved file exists"),
		),
		s.handleGet,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_state_reset",
			mcp.WithDescription("Delete the saved window state so TaskTrees opens with default geometry"),
		),
		s.handleReset,
	)
}

// resultToText serializes a result to YAML for an MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handlePath(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.env.store.ResolvePath()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(path), nil
}

func (s *mcpServer) handleGet(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.env.store.ResolvePath()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state, found := s.env.store.Load(path)
	return mcp.NewToolResultText(resultToText(StateResult{Path: path, Found: found, State: state})), nil
}

func (s *mcpServer) handleReset(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.env.store.ResolvePath()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.env.store.Remove(path); err != nil {
		s.env.log.Warn("window state reset failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(StateActionResult{OK: true, Action: "reset", Path: path})), nil
}
