package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	daylogmcp "github.com/gorewood/daylog/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(factory serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run daylog as a Model Context Protocol (MCP) server over stdio.

This exposes the daily log as MCP tools so an agent can record tasks and
reflections for you. Entries go through the same store and vault as the CLI.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "daylog": {
        "command": "daylog",
        "args": ["serve"]
      }
    }
  }

Available tools: add_entry, batch_add, list_logs, show_day`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := factory()
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			server := daylogmcp.NewServer(buildVersion(), service)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
