package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/daylog/internal/journal"
	"github.com/gorewood/daylog/internal/output"
)

// runBatchAdd merges a batch of dated entries and exports every touched date.
// The batch is read and validated before the store is opened, so malformed
// input never changes the log.
func runBatchAdd(cmd *cobra.Command, factory serviceFactory, source string) error {
	printer := newPrinter(cmd)

	service, err := factory()
	if err != nil {
		printer.Error(err)
		return err
	}

	batch, err := journal.ReadBatchSource(source, cmd.InOrStdin())
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := service.BatchAdd(batch)
	if err != nil {
		printer.Error(err)
		return err
	}

	return outputBatchResult(printer, result)
}

// outputBatchResult reports a completed batch.
func outputBatchResult(printer *output.Printer, result *journal.BatchResult) error {
	failed := result.Failed()

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":  "updated",
			"count":   len(result.Dates),
			"dates":   result.Dates,
			"exports": exportsToMaps(result.Exports),
			"failed":  len(failed),
		})
	}

	_ = printer.Success(map[string]any{"message": batchMessage(len(result.Dates))})
	for _, export := range result.Exports {
		outputExport(printer, export)
	}
	return nil
}

// batchMessage returns the summary line for a batch of n dates.
func batchMessage(n int) string {
	switch n {
	case 0:
		return "Batch was empty; nothing to add"
	case 1:
		return "Batch entries added for 1 date"
	default:
		return fmt.Sprintf("Batch entries added for %d dates", n)
	}
}
