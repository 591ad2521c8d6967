package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/daylog/internal/export"
	"github.com/gorewood/daylog/internal/ledger"
	"github.com/gorewood/daylog/internal/output"
)

func TestExport_All(t *testing.T) {
	env := newTestEnv(t)
	log := ledger.Log{
		"2024-01-01": {Tasks: []string{"a"}, Reflection: ""},
		"2024-01-02": {Tasks: []string{}, Reflection: "b"},
	}
	seedLog(t, env, log)
	before, err := os.ReadFile(env.cfg.StorePath)
	require.NoError(t, err)

	stdout, _, err := env.run("export")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(env.cfg.VaultPath, "2024-01-01.md"))
	assert.Contains(t, stdout, filepath.Join(env.cfg.VaultPath, "2024-01-02.md"))

	for date, entry := range log {
		assert.Equal(t, export.FormatMarkdown(date, entry), env.note(t, date))
	}

	after, err := os.ReadFile(env.cfg.StorePath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "export must not rewrite the store")
}

func TestExport_Dates(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env, ledger.Log{
		"2024-01-01": ledger.NewEntry(),
		"2024-01-02": ledger.NewEntry(),
	})

	_, _, err := env.run("export", "2024-01-02")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.cfg.VaultPath, "2024-01-02.md"))
	assert.NoFileExists(t, filepath.Join(env.cfg.VaultPath, "2024-01-01.md"))
}

func TestExport_UnknownDateExportsNothing(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env, ledger.Log{"2024-01-01": ledger.NewEntry()})

	_, _, err := env.run("export", "2024-01-01", "2024-06-01")
	require.Error(t, err)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
	assert.Contains(t, err.Error(), "no entry for 2024-06-01")
	assert.NoFileExists(t, filepath.Join(env.cfg.VaultPath, "2024-01-01.md"))
}

func TestExport_EmptyLog(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No entries to export")
}

func TestExport_MissingVaultIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env, ledger.Log{"2024-01-01": ledger.NewEntry()})
	env.cfg.VaultPath = filepath.Join(t.TempDir(), "missing")

	_, stderr, err := env.run("export")
	require.Error(t, err)
	assert.Equal(t, output.ExitSystemError, output.GetExitCode(err))
	assert.Contains(t, err.Error(), "1 of 1 exports failed")
	assert.Contains(t, stderr, "could not export 2024-01-01")
}

func TestExport_JSON(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env, ledger.Log{"2024-01-01": ledger.NewEntry()})

	stdout, _, err := env.run("export", "--json")
	require.NoError(t, err)

	var got struct {
		Status  string `json:"status"`
		Count   int    `json:"count"`
		Failed  int    `json:"failed"`
		Exports []struct {
			Date string `json:"date"`
			Path string `json:"path"`
		} `json:"exports"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "exported", got.Status)
	assert.Equal(t, 1, got.Count)
	assert.Zero(t, got.Failed)
	require.Len(t, got.Exports, 1)
	assert.Equal(t, "2024-01-01", got.Exports[0].Date)
	assert.Equal(t, filepath.Join(env.cfg.VaultPath, "2024-01-01.md"), got.Exports[0].Path)
}
