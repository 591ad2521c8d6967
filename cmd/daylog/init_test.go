package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/daylog/internal/config"
	"github.com/gorewood/daylog/internal/output"
)

// runInitIn runs "daylog init" with the config directory set to dir.
func runInitIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DAYLOG_CONFIG_HOME", dir)
	t.Setenv(config.EnvVaultPath, "")
	t.Setenv(config.EnvStorePath, "")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"init"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestInit_WritesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")
	vault := t.TempDir()

	out, err := runInitIn(t, dir, "--vault", vault)
	require.NoError(t, err)
	assert.Contains(t, out, "Daylog initialized!")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, vault, cfg.VaultPath)
	assert.Equal(t, filepath.Join(dir, config.StoreFileName), cfg.StorePath)
}

func TestInit_StoreFlag(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(t.TempDir(), "logs.json")

	_, err := runInitIn(t, dir, "--vault", t.TempDir(), "--store", store)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, store, cfg.StorePath)
}

func TestInit_RequiresVault(t *testing.T) {
	dir := t.TempDir()

	_, err := runInitIn(t, dir)
	require.Error(t, err)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
	assert.NoFileExists(t, filepath.Join(dir, config.FileName))
}

func TestInit_ExistingConfig(t *testing.T) {
	dir := t.TempDir()
	first := t.TempDir()
	second := t.TempDir()

	_, err := runInitIn(t, dir, "--vault", first)
	require.NoError(t, err)

	_, err = runInitIn(t, dir, "--vault", second)
	require.Error(t, err)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
	assert.Contains(t, err.Error(), "already exists")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, first, cfg.VaultPath)

	_, err = runInitIn(t, dir, "--vault", second, "--force")
	require.NoError(t, err)
	cfg, err = config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, second, cfg.VaultPath)
}

func TestInit_MissingVault(t *testing.T) {
	dir := t.TempDir()
	vault := filepath.Join(t.TempDir(), "Daily")

	out, err := runInitIn(t, dir, "--vault", vault)
	require.NoError(t, err)
	assert.Contains(t, out, "use --create-vault")
	assert.NoDirExists(t, vault)

	_, err = runInitIn(t, dir, "--vault", vault, "--force", "--create-vault")
	require.NoError(t, err)
	assert.DirExists(t, vault)
}

func TestInit_DryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")
	vault := filepath.Join(t.TempDir(), "Daily")

	out, err := runInitIn(t, dir, "--vault", vault, "--create-vault", "--dry-run", "--json")
	require.NoError(t, err)

	var got struct {
		Status string           `json:"status"`
		Steps  []initStepResult `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dry_run", got.Status)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "dry_run", got.Steps[0].Status)
	assert.Equal(t, "dry_run", got.Steps[1].Status)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
	assert.NoDirExists(t, vault)
}

func TestInit_VaultIsFile(t *testing.T) {
	dir := t.TempDir()
	vault := filepath.Join(t.TempDir(), "file.md")
	require.NoError(t, os.WriteFile(vault, []byte("x"), 0o600))

	_, err := runInitIn(t, dir, "--vault", vault)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestStyledStepIcon(t *testing.T) {
	styles := initStyles(false)
	assert.Equal(t, "ok", styledStepIcon(styles, "ok"))
	assert.Equal(t, "--", styledStepIcon(styles, "skipped"))
	assert.Equal(t, ">", styledStepIcon(styles, "dry_run"))
	assert.Equal(t, "!!", styledStepIcon(styles, "failed"))
	assert.Equal(t, "?", styledStepIcon(styles, "unknown"))
}

func TestInit_FailedConfigSkipsVault(t *testing.T) {
	dir := t.TempDir()
	_, err := runInitIn(t, dir, "--vault", t.TempDir())
	require.NoError(t, err)

	vault := filepath.Join(t.TempDir(), "Daily")
	out, err := runInitIn(t, dir, "--vault", vault, "--create-vault")
	require.Error(t, err)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
	assert.Contains(t, out, "config was not written")
	assert.NoDirExists(t, vault)
}

func TestInit_ConfigWriteFailureIsSystemError(t *testing.T) {
	// The config directory path is a regular file, so it cannot be created.
	dir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o600))

	_, err := runInitIn(t, dir, "--vault", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, output.ExitSystemError, output.GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to create config directory")
}

func TestInit_PrintsHeading(t *testing.T) {
	out, err := runInitIn(t, t.TempDir(), "--vault", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "daylog init\n───────────\n")
}

func TestInitStepsError(t *testing.T) {
	systemErr := output.NewSystemError("disk full")

	tests := []struct {
		name     string
		steps    []initStepResult
		wantCode int
		wantMsg  string
	}{
		{
			name:     "all ok",
			steps:    []initStepResult{{Name: "config", Status: "ok"}, {Name: "vault", Status: "skipped"}},
			wantCode: output.ExitSuccess,
		},
		{
			name:     "step exit code is kept",
			steps:    []initStepResult{{Name: "config", Status: "failed", Message: "disk full", err: systemErr}},
			wantCode: output.ExitSystemError,
			wantMsg:  "disk full",
		},
		{
			name:     "plain failure is a user error",
			steps:    []initStepResult{{Name: "config", Status: "ok"}, {Name: "vault", Status: "failed", Message: "/x is not a directory"}},
			wantCode: output.ExitUserError,
			wantMsg:  "vault: /x is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := initStepsError(tt.steps)
			assert.Equal(t, tt.wantCode, output.GetExitCode(err))
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
