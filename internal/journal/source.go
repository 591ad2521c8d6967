package journal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gorewood/daylog/internal/ledger"
	"github.com/gorewood/daylog/internal/output"
)

// ReadBatchSource resolves a --batch-add argument into a parsed batch.
//
// The argument is inline JSON when it starts with "{" (after whitespace),
// standard input when it is "-", and a file path otherwise. Every failure is
// a user error and happens before any store access.
func ReadBatchSource(arg string, stdin io.Reader) (ledger.Batch, error) {
	data, origin, err := readBatchBytes(arg, stdin)
	if err != nil {
		return nil, err
	}

	batch, err := ledger.ParseBatch(data)
	if err != nil {
		return nil, output.NewUserErrorWithCause(
			fmt.Sprintf("invalid batch input (%s): %v", origin, err), err)
	}
	return batch, nil
}

// readBatchBytes returns the raw payload and a short description of where it came from.
func readBatchBytes(arg string, stdin io.Reader) ([]byte, string, error) {
	trimmed := strings.TrimSpace(arg)
	switch {
	case trimmed == "":
		return nil, "", output.NewUserError("batch input is empty")
	case strings.HasPrefix(trimmed, "{"):
		return []byte(trimmed), "inline JSON", nil
	case trimmed == "-":
		if stdin == nil {
			return nil, "", output.NewUserError("batch input from stdin requested but no stdin available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", output.NewUserErrorWithCause("failed to read batch input from stdin", err)
		}
		return data, "stdin", nil
	default:
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, "", output.NewUserErrorWithCause(
				fmt.Sprintf("batch input is neither inline JSON nor a readable file: %v", err), err)
		}
		return data, arg, nil
	}
}
