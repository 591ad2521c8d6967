package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daylog/internal/journal"
	"github.com/gorewood/daylog/internal/ledger"
)

// AddEntryInput is the input for the add_entry tool.
type AddEntryInput struct {
	Task       string `json:"task,omitempty"       jsonschema:"task to append to today's list"`
	Reflection string `json:"reflection,omitempty" jsonschema:"reflection text; replaces today's reflection"`
}

// AddEntryOutput is the output for the add_entry tool.
type AddEntryOutput struct {
	Date   string        `json:"date"   jsonschema:"today's date key"`
	Entry  *ledger.Entry `json:"entry"  jsonschema:"today's entry after the update"`
	Export ExportStatus  `json:"export" jsonschema:"outcome of the vault export"`
}

func handleAddEntry(service *journal.Service) mcp.ToolHandlerFor[AddEntryInput, AddEntryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddEntryInput) (*mcp.CallToolResult, AddEntryOutput, error) {
		result, err := service.AddEntry(input.Task, input.Reflection)
		if err != nil {
			return nil, AddEntryOutput{}, fmt.Errorf("adding entry: %w", err)
		}
		return nil, AddEntryOutput{
			Date:   result.Date,
			Entry:  result.Entry,
			Export: toExportStatus(result.Export),
		}, nil
	}
}

// BatchAddInput is the input for the batch_add tool.
type BatchAddInput struct {
	Entries map[string]ledger.Partial `json:"entries" jsonschema:"partial entries keyed by date (YYYY-MM-DD)"`
}

// BatchAddOutput is the output for the batch_add tool.
type BatchAddOutput struct {
	Count   int            `json:"count"   jsonschema:"number of dates updated"`
	Exports []ExportStatus `json:"exports" jsonschema:"per-date export outcomes in processing order"`
}

func handleBatchAdd(service *journal.Service) mcp.ToolHandlerFor[BatchAddInput, BatchAddOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BatchAddInput) (*mcp.CallToolResult, BatchAddOutput, error) {
		batch, err := ledger.BatchFromMap(input.Entries)
		if err != nil {
			return nil, BatchAddOutput{}, err
		}

		result, err := service.BatchAdd(batch)
		if err != nil {
			return nil, BatchAddOutput{}, fmt.Errorf("applying batch: %w", err)
		}
		return nil, BatchAddOutput{
			Count:   len(result.Dates),
			Exports: toExportStatuses(result.Exports),
		}, nil
	}
}
