package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the saved window state",
	Long: `Start a Model Context Protocol (MCP) server that exposes the saved window
state as tools:

  window_state_path    Path of window_state.json
  window_state_get     Decoded window state and whether the file exists
  window_state_reset   Delete the saved state

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  tasktrees serve
  tasktrees serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.log.Close()

	srv := newMCPServer(env)
	if err := srv.serve(MCPConfig{Transport: transport, Port: port}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
