package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/daylog/internal/export"
	"github.com/gorewood/daylog/internal/journal"
	"github.com/gorewood/daylog/internal/ledger"
	"github.com/gorewood/daylog/internal/output"
)

// runAddEntry records a task and/or reflection for today and exports the day.
func runAddEntry(cmd *cobra.Command, factory serviceFactory, task, reflection string) error {
	printer := newPrinter(cmd)

	service, err := factory()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := service.AddEntry(task, reflection)
	if err != nil {
		printer.Error(err)
		return err
	}

	return outputAddResult(printer, result)
}

// outputAddResult reports an added entry. A failed export is a warning; the
// entry is already saved.
func outputAddResult(printer *output.Printer, result *journal.AddResult) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "updated",
			"date":   result.Date,
			"entry":  entryToMap(result.Entry),
			"export": exportToMap(result.Export),
		})
	}

	_ = printer.Success(map[string]any{"message": "Entry added for " + result.Date})
	outputExport(printer, result.Export)
	return nil
}

// runListLogs prints the whole log as JSON. The output is JSON in both modes.
func runListLogs(cmd *cobra.Command, factory serviceFactory) error {
	printer := newPrinter(cmd)

	service, err := factory()
	if err != nil {
		printer.Error(err)
		return err
	}

	log, err := service.List()
	if err != nil {
		printer.Error(err)
		return err
	}

	return export.FormatJSON(printer, log)
}

// outputExport prints one export outcome in human mode.
func outputExport(printer *output.Printer, result journal.ExportResult) {
	if !result.OK() {
		printer.Warn("could not export %s to %s: %v", result.Date, result.Path, result.Err)
		return
	}
	printer.KeyValue("Exported", result.Path)
}

// exportToMap converts an export result for JSON output.
func exportToMap(result journal.ExportResult) map[string]any {
	data := map[string]any{
		"date": result.Date,
		"path": result.Path,
		"ok":   result.OK(),
	}
	if result.Err != nil {
		data["error"] = result.Err.Error()
	}
	return data
}

// exportsToMaps converts a slice of export results for JSON output.
func exportsToMaps(results []journal.ExportResult) []map[string]any {
	maps := make([]map[string]any, 0, len(results))
	for _, result := range results {
		maps = append(maps, exportToMap(result))
	}
	return maps
}

// entryToMap converts an Entry to a map for JSON output.
func entryToMap(entry *ledger.Entry) map[string]any {
	if entry == nil {
		entry = ledger.NewEntry()
	}
	tasks := make([]string, len(entry.Tasks))
	copy(tasks, entry.Tasks)
	return map[string]any{
		"tasks":      tasks,
		"reflection": entry.Reflection,
	}
}
