package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve the streamable HTTP transport instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Tools:
  summarize        summarise text passed in the call
  summarize_file   summarise a local file

Resources:
  precis://languages          supported languages
  precis://languages/{code}   one language profile

Examples:
  # Stdio mode (default, for Claude Desktop)
  precis mcp

  # HTTP mode (for MCP Inspector, remote access)
  precis mcp --http localhost:8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "precis": {
        "command": "/path/to/precis",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().String("http", "", "Serve HTTP on this address instead of stdio (e.g. localhost:8080)")
	mcpCmd.Flags().Int("rate-limit", -1, "Tool calls per second (0 = unlimited, default from settings)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if summaryService == nil {
		return fmt.Errorf("mcp: %w", errNotConfigured)
	}

	addr, err := cmd.Flags().GetString("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	server, err := newMCPServer(cmd)
	if err != nil {
		return err
	}

	if addr != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}

func newMCPServer(cmd *cobra.Command) (*mcp.Server, error) {
	limit := mcpRateLimit
	if cmd.Flags().Changed("rate-limit") {
		limit, _ = cmd.Flags().GetInt("rate-limit")
	}
	if limit < 0 {
		return nil, fmt.Errorf("--rate-limit must be >= 0, got %d", limit)
	}

	ports := &mcp.Ports{
		Summary:  summaryService,
		Document: documentService,
		Settings: settingsService,
	}
	return mcp.NewServer(ports, mcp.WithRateLimit(limit))
}
