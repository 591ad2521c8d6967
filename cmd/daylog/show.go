package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gorewood/daylog/internal/export"
	"github.com/gorewood/daylog/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd(factory serviceFactory) *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "show [<date>]",
		Short: "Display one day's note",
		Long: `Display the note for a date (default: today) exactly as it is exported.

On a terminal the Markdown is rendered; when piped, or with --raw, the plain
Markdown is printed. Nothing is written to the store or the vault.

Examples:
  daylog show                # Today's note
  daylog show 2024-01-01     # A specific day
  daylog show --raw > day.md # Plain Markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, factory, args, rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print plain Markdown even on a terminal")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, factory serviceFactory, args []string, raw bool) error {
	printer := newPrinter(cmd)

	service, err := factory()
	if err != nil {
		printer.Error(err)
		return err
	}

	day := service.Today()
	if len(args) > 0 {
		day = args[0]
	}

	entry, found, err := service.Day(day)
	if err != nil {
		printer.Error(err)
		return err
	}
	if !found {
		err := output.NewUserError(fmt.Sprintf("no entry for %s", day))
		printer.Error(err)
		return err
	}

	markdown := export.FormatMarkdown(day, entry)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":     day,
			"entry":    entryToMap(entry),
			"markdown": markdown,
		})
	}

	if raw || !printer.IsTTY() {
		printer.Print("%s", markdown)
		return nil
	}
	printer.Print("%s", renderMarkdown(markdown))
	return nil
}

// renderMarkdown renders markdown for terminal display.
// The input is returned unchanged if the renderer cannot be built or fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
