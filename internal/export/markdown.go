package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/daylog/internal/ledger"
)

// Placeholders for empty sections.
const (
	NoTasksText      = "No tasks logged."
	NoReflectionText = "No reflection added."
)

// FormatMarkdown formats one day's entry as a Markdown note.
func FormatMarkdown(date string, entry *ledger.Entry) string {
	if entry == nil {
		entry = ledger.NewEntry()
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n\n", date)
	writeTasks(&builder, entry.Tasks)
	builder.WriteString("\n")
	writeReflection(&builder, entry.Reflection)

	return builder.String()
}

// writeTasks writes the Tasks section as unchecked checkbox items.
func writeTasks(builder *strings.Builder, tasks []string) {
	builder.WriteString("## Tasks\n\n")
	if len(tasks) == 0 {
		builder.WriteString(NoTasksText + "\n")
		return
	}
	for _, task := range tasks {
		fmt.Fprintf(builder, "- [ ] %s\n", task)
	}
}

// writeReflection writes the Reflection section verbatim.
func writeReflection(builder *strings.Builder, reflection string) {
	builder.WriteString("## Reflection\n\n")
	if reflection == "" {
		builder.WriteString(NoReflectionText + "\n")
		return
	}
	builder.WriteString(reflection)
	if !strings.HasSuffix(reflection, "\n") {
		builder.WriteString("\n")
	}
}
