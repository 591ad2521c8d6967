package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/daylog/internal/journal"
	"github.com/gorewood/daylog/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd(factory serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "export [<date>...]",
		Short: "Re-export notes to the vault",
		Long: `Write the Markdown note for each given date into the vault again.
With no dates, every day in the log is exported in date order.

The log itself is never modified. Unknown dates are rejected before
anything is written.

Examples:
  daylog export                        # Rebuild every note
  daylog export 2024-01-01 2024-01-02  # Specific days
  daylog export --json                 # Report paths as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, factory, args)
		},
	}
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, factory serviceFactory, dates []string) error {
	printer := newPrinter(cmd)

	service, err := factory()
	if err != nil {
		printer.Error(err)
		return err
	}

	results, err := service.ExportAll(dates...)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := outputExportResults(printer, results); err != nil {
		return err
	}

	if failed := countFailed(results); failed > 0 {
		err := output.NewSystemError(fmt.Sprintf("%d of %d exports failed", failed, len(results)))
		if !printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}
	return nil
}

// outputExportResults reports every export outcome.
func outputExportResults(printer *output.Printer, results []journal.ExportResult) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":  "exported",
			"count":   len(results),
			"exports": exportsToMaps(results),
			"failed":  countFailed(results),
		})
	}

	if len(results) == 0 {
		printer.Println("No entries to export")
		return nil
	}
	for _, result := range results {
		outputExport(printer, result)
	}
	return nil
}

func countFailed(results []journal.ExportResult) int {
	n := 0
	for _, result := range results {
		if !result.OK() {
			n++
		}
	}
	return n
}
