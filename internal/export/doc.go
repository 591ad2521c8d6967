// Package export renders daily log entries as Markdown notes and writes them
// into the notes vault.
//
// # Markdown
//
// FormatMarkdown is pure: the same date and entry always produce the same
// bytes.
//
//	# 2024-01-01
//
//	## Tasks
//
//	- [ ] Write the report
//	- [ ] Call the plumber
//
//	## Reflection
//
//	Productive morning, slow afternoon.
//
// An entry without tasks renders "No tasks logged." and an entry without a
// reflection renders "No reflection added." in place of the section body.
//
// # Vault
//
// A VaultSink writes one note per date to <root>/<date>.md, replacing any
// existing file. It never creates the root directory; a missing or unwritable
// vault is reported to the caller as an error.
//
// # JSON
//
// FormatJSON writes the whole log to a printer for --list-logs.
package export
