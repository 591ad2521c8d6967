package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daylog/internal/export"
	"github.com/gorewood/daylog/internal/journal"
	"github.com/gorewood/daylog/internal/ledger"
)

// ListLogsInput is the input for the list_logs tool (no parameters needed).
type ListLogsInput struct{}

// ListLogsOutput is the output for the list_logs tool.
type ListLogsOutput struct {
	Count int        `json:"count" jsonschema:"number of logged dates"`
	Logs  ledger.Log `json:"logs"  jsonschema:"entries keyed by date"`
}

func handleListLogs(service *journal.Service) mcp.ToolHandlerFor[ListLogsInput, ListLogsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListLogsInput) (*mcp.CallToolResult, ListLogsOutput, error) {
		log, err := service.List()
		if err != nil {
			return nil, ListLogsOutput{}, fmt.Errorf("loading log: %w", err)
		}
		return nil, ListLogsOutput{Count: len(log), Logs: log}, nil
	}
}

// ShowDayInput is the input for the show_day tool.
type ShowDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"date key (YYYY-MM-DD); defaults to today"`
}

// ShowDayOutput is the output for the show_day tool.
type ShowDayOutput struct {
	Date     string        `json:"date"     jsonschema:"date key"`
	Found    bool          `json:"found"    jsonschema:"whether the date has an entry"`
	Entry    *ledger.Entry `json:"entry"    jsonschema:"the entry, empty when not found"`
	Markdown string        `json:"markdown" jsonschema:"the note as it is exported to the vault"`
}

func handleShowDay(service *journal.Service) mcp.ToolHandlerFor[ShowDayInput, ShowDayOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowDayInput) (*mcp.CallToolResult, ShowDayOutput, error) {
		date := input.Date
		if date == "" {
			date = service.Today()
		}

		entry, found, err := service.Day(date)
		if err != nil {
			return nil, ShowDayOutput{}, err
		}
		if !found {
			entry = ledger.NewEntry()
		}
		return nil, ShowDayOutput{
			Date:     date,
			Found:    found,
			Entry:    entry,
			Markdown: export.FormatMarkdown(date, entry),
		}, nil
	}
}
