package export

import (
	"github.com/gorewood/daylog/internal/ledger"
	"github.com/gorewood/daylog/internal/output"
)

// FormatJSON writes the whole log as an indented JSON object.
// A nil log is written as {} so the output is always an object.
func FormatJSON(printer *output.Printer, log ledger.Log) error {
	if log == nil {
		log = ledger.Log{}
	}
	return printer.WriteJSON(log)
}
