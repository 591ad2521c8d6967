package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/daylog/internal/config"
	"github.com/gorewood/daylog/internal/output"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	vault       string
	store       string
	force       bool
	createVault bool
	dryRun      bool
}

// initStepResult tracks the result of a single initialization step.
type initStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed", "dry_run"
	Message string `json:"message,omitempty"`

	err error
}

// initStyleSet holds lipgloss styles for init output.
type initStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// initStyles returns a TTY-aware style set.
func initStyles(isTTY bool) initStyleSet {
	if !isTTY {
		return initStyleSet{}
	}
	return initStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// newInitCmd creates the init command. configDir resolves the directory
// config.json is written to; nil means config.Dir.
func newInitCmd(configDir func() string) *cobra.Command {
	if configDir == nil {
		configDir = config.Dir
	}
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the daylog configuration",
		Long: `Write config.json to the daylog config directory.

The config directory is $DAYLOG_CONFIG_HOME, else $XDG_CONFIG_HOME/daylog,
else ~/.config/daylog (%AppData%\daylog on Windows).

Examples:
  daylog init --vault ~/Notes/Daily                 # Point daylog at a vault
  daylog init --vault ~/Notes/Daily --create-vault  # Also create the folder
  daylog init --vault ~/Notes --force               # Replace an existing config
  daylog init --vault ~/Notes --dry-run             # Show what would be done`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, configDir(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.vault, "vault", "", "Notes vault directory that receives daily notes")
	cmd.Flags().StringVar(&flags.store, "store", "", "Log store file (default: <config dir>/daily_logs.json)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Replace an existing config.json")
	cmd.Flags().BoolVar(&flags.createVault, "create-vault", false, "Create the vault directory if it does not exist")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")
	_ = cmd.MarkFlagRequired("vault")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, dir string, flags *initFlags) error {
	printer := newPrinter(cmd)
	styles := initStyles(printer.IsTTY())

	cfg, err := initConfig(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	configStep := initConfigStep(dir, cfg, flags)
	vaultStep := initStepResult{Name: "vault", Status: "skipped", Message: "config was not written"}
	if configStep.Status != "failed" {
		vaultStep = initVaultStep(cfg.VaultPath, flags)
	}
	steps := []initStepResult{configStep, vaultStep}

	if printer.IsJSON() {
		status := "initialized"
		if flags.dryRun {
			status = "dry_run"
		}
		if err := printer.Success(map[string]any{
			"status":      status,
			"config_path": filepath.Join(dir, config.FileName),
			"vault_path":  cfg.VaultPath,
			"steps":       steps,
		}); err != nil {
			return err
		}
	} else {
		printer.Section("daylog init")
		for _, step := range steps {
			printInitStep(printer, styles, step)
		}
	}

	if err := initStepsError(steps); err != nil {
		if !printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}

	if !printer.IsJSON() && !flags.dryRun {
		printer.Println()
		printer.Print("%s\n", styles.heading.Render(styles.pass.Render("Daylog initialized!")))
		printer.Print("  %s\n", styles.dim.Render("Log your first task:"))
		printer.Print("  %s\n", styles.accent.Render(`daylog --add-task "Set up daylog"`))
	}
	return nil
}

// initStepsError returns the error of the first failed step.
// A step's own exit error keeps its exit code; other failures are user errors.
func initStepsError(steps []initStepResult) error {
	for _, step := range steps {
		if step.Status != "failed" {
			continue
		}
		var exitErr *output.ExitError
		if errors.As(step.err, &exitErr) {
			return exitErr
		}
		return output.NewUserErrorWithCause(step.Name+": "+step.Message, step.err)
	}
	return nil
}

// initConfig builds the configuration to write from the flags.
// The vault path is made absolute against the working directory.
func initConfig(flags *initFlags) (*config.Config, error) {
	vault, err := absPath(flags.vault)
	if err != nil {
		return nil, err
	}
	cfg := &config.Config{VaultPath: vault}

	if flags.store != "" {
		if cfg.StorePath, err = absPath(flags.store); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func absPath(path string) (string, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", output.NewUserErrorWithCause("invalid path: "+path, err)
	}
	return abs, nil
}

// initConfigStep writes config.json.
func initConfigStep(dir string, cfg *config.Config, flags *initFlags) initStepResult {
	step := initStepResult{Name: "config"}
	if flags.dryRun {
		step.Status = "dry_run"
		step.Message = "would write " + filepath.Join(dir, config.FileName)
		return step
	}

	path, err := config.Save(dir, cfg, flags.force)
	if err != nil {
		step.Status = "failed"
		step.Message = err.Error()
		step.err = err
		return step
	}
	step.Status = "ok"
	step.Message = path
	return step
}

// initVaultStep checks the vault directory and optionally creates it.
// A missing vault is not fatal; exports warn until it exists.
func initVaultStep(vault string, flags *initFlags) initStepResult {
	step := initStepResult{Name: "vault"}

	info, err := os.Stat(vault)
	switch {
	case err == nil && info.IsDir():
		step.Status = "ok"
		step.Message = vault
		return step
	case err == nil:
		step.Status = "failed"
		step.Message = vault + " is not a directory"
		return step
	case !errors.Is(err, os.ErrNotExist):
		step.Status = "failed"
		step.Message = err.Error()
		step.err = output.NewSystemErrorWithCause("cannot inspect vault "+vault, err)
		return step
	}

	if !flags.createVault {
		step.Status = "skipped"
		step.Message = vault + " does not exist yet (use --create-vault)"
		return step
	}
	if flags.dryRun {
		step.Status = "dry_run"
		step.Message = "would create " + vault
		return step
	}
	if err := os.MkdirAll(vault, 0o755); err != nil {
		step.Status = "failed"
		step.Message = err.Error()
		step.err = output.NewSystemErrorWithCause("failed to create vault "+vault, err)
		return step
	}
	step.Status = "ok"
	step.Message = "created " + vault
	return step
}

// printInitStep prints a single step result in human format.
func printInitStep(printer *output.Printer, styles initStyleSet, step initStepResult) {
	printer.Print("  %s %s", styledStepIcon(styles, step.Status), step.Name)
	if step.Message != "" {
		printer.Print(" %s", styles.dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles initStyleSet, status string) string {
	switch status {
	case "ok":
		return styles.pass.Render("ok")
	case "skipped":
		return styles.skip.Render("--")
	case "dry_run":
		return styles.accent.Render(">")
	case "failed":
		return styles.fail.Render("!!")
	default:
		return "?"
	}
}
