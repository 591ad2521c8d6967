// Package mcp provides a Model Context Protocol server for daylog.
// It exposes the journal as MCP tools so an agent can log tasks and
// reflections and read past days.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daylog/internal/journal"
)

// NewServer creates an MCP server with all daylog tools registered.
func NewServer(version string, service *journal.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "daylog",
		Version: version,
	}, nil)
	registerTools(server, service)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools.
// Tasks are only ever appended, but a reflection is replaced.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all daylog tools to the server.
func registerTools(server *mcp.Server, service *journal.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_entry",
		Description: "Append a task and/or set the reflection for today, then export today's note to the vault. A new reflection replaces the previous one.",
		Annotations: writeAnnotations(),
	}, handleAddEntry(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "batch_add",
		Description: "Merge tasks and reflections into several dates at once. Keys are YYYY-MM-DD; tasks are appended, a non-empty reflection replaces the stored one. Every touched date is exported.",
		Annotations: writeAnnotations(),
	}, handleBatchAdd(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_logs",
		Description: "Return the whole daily log: every date with its tasks and reflection.",
		Annotations: readOnlyAnnotations(),
	}, handleListLogs(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_day",
		Description: "Return one day's entry and its rendered Markdown note. Defaults to today.",
		Annotations: readOnlyAnnotations(),
	}, handleShowDay(service))
}
