package mcp

import (
	"github.com/gorewood/daylog/internal/journal"
)

// ExportStatus reports where a date's note was written, or why it was not.
type ExportStatus struct {
	Date    string `json:"date"              jsonschema:"date key (YYYY-MM-DD)"`
	Path    string `json:"path"              jsonschema:"note file path in the vault"`
	Warning string `json:"warning,omitempty" jsonschema:"export failure; the log itself was still saved"`
}

// toExportStatus converts a journal export result for tool output.
func toExportStatus(result journal.ExportResult) ExportStatus {
	status := ExportStatus{Date: result.Date, Path: result.Path}
	if result.Err != nil {
		status.Warning = result.Err.Error()
	}
	return status
}

// toExportStatuses converts a slice of journal export results.
func toExportStatuses(results []journal.ExportResult) []ExportStatus {
	statuses := make([]ExportStatus, 0, len(results))
	for _, result := range results {
		statuses = append(statuses, toExportStatus(result))
	}
	return statuses
}
