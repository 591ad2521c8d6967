// Package main provides the entry point for the daylog CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/daylog/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlagValue(cmd, "json") == "true"
}

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) string {
	return persistentFlagValue(cmd, "color")
}

// persistentFlagValue looks a flag up on cmd, then on the root's persistent flags.
func persistentFlagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// newPrinter builds the printer for a command from its output writers and flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(reportError),
	)
	return output.GetExitCode(err)
}

// reportError prints errors the commands did not already report.
// Every *output.ExitError has been printed by an output.Printer; anything
// else (flag parsing, unknown commands) goes to fang's default handler.
func reportError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// rootFlags holds the action flags of the root command.
type rootFlags struct {
	addTask       string
	addReflection string
	batchAdd      string
	listLogs      bool
}

// newRootCmd creates the root command for the daylog CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(nil)
}

// newRootCmdInternal creates the root command with an optional service factory.
// If factory is nil, the service is built from the user's configuration
// when a command first needs it.
func newRootCmdInternal(factory serviceFactory) *cobra.Command {
	if factory == nil {
		factory = defaultServiceFactory
	}

	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "daylog",
		Short: "A daily log of tasks and reflections",
		Long: `Daylog - a daily log of tasks and reflections.

Each calendar day gets one entry holding an ordered task list and a
reflection. Entries live in a JSON store and every touched day is exported
as a Markdown note into your notes vault (vaultPath in config.json).

Examples:
  daylog --add-task "Write the quarterly report"
  daylog --add-reflection "Slow start, strong finish"
  daylog --add-task "Review PR" --add-reflection "Good focus today"
  daylog --batch-add '{"2024-01-01": {"tasks": ["a", "b"]}}'
  daylog --batch-add backfill.json
  daylog --list-logs`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, factory, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addTask, "add-task", "", "Append a task to today's entry")
	cmd.Flags().StringVar(&flags.addReflection, "add-reflection", "", "Set today's reflection (replaces any earlier one)")
	cmd.Flags().StringVar(&flags.batchAdd, "batch-add", "",
		"Merge entries for several dates: inline JSON, a JSON file path, or - for stdin")
	cmd.Flags().BoolVar(&flags.listLogs, "list-logs", false, "Print the whole log as JSON")
	cmd.MarkFlagsMutuallyExclusive("add-task", "batch-add", "list-logs")
	cmd.MarkFlagsMutuallyExclusive("add-reflection", "batch-add", "list-logs")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")

	lipgloss.SetHasDarkBackground(true)

	addCommands(cmd, factory)

	return cmd
}

// runRoot dispatches on the action flags. With none set it shows help.
func runRoot(cmd *cobra.Command, factory serviceFactory, flags rootFlags) error {
	changed := cmd.Flags().Changed
	switch {
	case changed("add-task") || changed("add-reflection"):
		return runAddEntry(cmd, factory, flags.addTask, flags.addReflection)
	case changed("batch-add"):
		return runBatchAdd(cmd, factory, flags.batchAdd)
	case flags.listLogs:
		return runListLogs(cmd, factory)
	default:
		return cmd.Help()
	}
}

// addCommands adds all subcommands.
func addCommands(cmd *cobra.Command, factory serviceFactory) {
	cmd.AddCommand(newInitCmd(nil))
	cmd.AddCommand(newShowCmd(factory))
	cmd.AddCommand(newExportCmd(factory))
	cmd.AddCommand(newServeCmd(factory))
}
