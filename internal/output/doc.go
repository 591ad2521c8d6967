// Package output provides structured output and error handling for the daylog CLI.
//
// Every command writes through a Printer so that the same code path serves
// both people at a terminal and scripts reading --json output.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Entry added for 2024-01-01", "date": "2024-01-01"})
//	printer.Warn("export failed for %s: %v", date, err)
//	printer.Error(err)
//
// In JSON mode success data is written as an indented object, errors as
// {"error": "message", "code": N} and warnings as {"warning": "message"}.
// In human mode errors and warnings go to the error writer set by WithStderr.
//
// # Styling
//
// Human output uses lipgloss styles. They are cleared when the writer is not
// a terminal or when --color never is in effect (see ResolveColorMode).
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success or help
//	output.ExitUserError   // 1: bad flags, missing config, unparsable batch input
//	output.ExitSystemError // 2: store file unreadable, corrupt, or unwritable
//
// Errors built with NewUserError and NewSystemError carry their exit code;
// GetExitCode recovers it at the top of main.
package output
