package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/daylog/internal/output"
)

// File names inside the configuration directory.
const (
	// FileName is the primary configuration file.
	FileName = "config.json"
	// StoreFileName is the default log store file.
	StoreFileName = "daily_logs.json"
	// EnvFileName is the optional dotenv file read before the configuration.
	EnvFileName = "env"
)

// Environment variables that override file values.
const (
	EnvConfigHome = "DAYLOG_CONFIG_HOME"
	EnvVaultPath  = "DAYLOG_VAULT_PATH"
	EnvStorePath  = "DAYLOG_STORE_PATH"
)

// candidates lists the accepted configuration files in lookup order.
var candidates = []string{FileName, "config.yaml", "config.yml", "config.toml"}

// ErrNotFound is the cause of the error Load returns when no configuration
// file exists.
var ErrNotFound = errors.New("config file not found")

// Config is the daylog configuration.
type Config struct {
	// VaultPath is the notes vault directory that receives exported days.
	VaultPath string `json:"vaultPath" yaml:"vaultPath" toml:"vaultPath"`
	// StorePath is the log store file. Defaults to <config dir>/daily_logs.json.
	StorePath string `json:"storePath,omitempty" yaml:"storePath,omitempty" toml:"storePath,omitempty"`

	// Source is the file the configuration was read from.
	Source string `json:"-" yaml:"-" toml:"-"`
}

// Load finds and reads the configuration in dir, applies environment
// overrides, resolves paths, and validates the result.
// A missing file is a user error naming the expected config.json path.
func Load(dir string) (*Config, error) {
	if dir == "" {
		return nil, output.NewUserError("cannot determine the daylog config directory; set DAYLOG_CONFIG_HOME")
	}

	path, ok := find(dir)
	if !ok {
		return nil, output.NewUserErrorWithCause(
			fmt.Sprintf("config file not found: %s (run 'daylog init --vault <dir>')", filepath.Join(dir, FileName)),
			ErrNotFound)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.resolve(dir); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// find returns the first candidate file present in dir.
func find(dir string) (string, bool) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// LoadFile decodes a single configuration file. The format follows the
// extension: .json, .yaml/.yml, or .toml.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{Source: path}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = loadJSON(cfg, path)
	case ".yaml", ".yml":
		err = loadYAML(cfg, path)
	case ".toml":
		err = loadTOML(cfg, path)
	default:
		return nil, output.NewUserError("unsupported config format: " + path)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadJSON(cfg *Config, path string) error {
	data, err := readConfig(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return parseError(path, err)
	}
	return nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := readConfig(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return parseError(path, err)
	}
	return nil
}

func loadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return output.NewSystemErrorWithCause("failed to read config file: "+path, err)
		}
		return parseError(path, err)
	}
	return nil
}

func readConfig(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}
	return data, nil
}

func parseError(path string, err error) error {
	return output.NewUserErrorWithCause(fmt.Sprintf("failed to parse config file %s: %v", path, err), err)
}

// ApplyEnvOverrides replaces file values with DAYLOG_VAULT_PATH and
// DAYLOG_STORE_PATH when they are set.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvVaultPath); v != "" {
		c.VaultPath = v
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		c.StorePath = v
	}
}

// resolve expands ~ and anchors relative paths at the config directory.
func (c *Config) resolve(dir string) error {
	if c.StorePath == "" {
		c.StorePath = StoreFileName
	}

	var err error
	if c.VaultPath != "" {
		if c.VaultPath, err = resolvePath(c.VaultPath, dir); err != nil {
			return err
		}
	}
	c.StorePath, err = resolvePath(c.StorePath, dir)
	return err
}

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.VaultPath) == "" {
		source := c.Source
		if source == "" {
			source = "configuration"
		}
		return output.NewUserError(fmt.Sprintf("vaultPath is not set in %s (or %s)", source, EnvVaultPath))
	}
	return nil
}

// resolvePath expands a leading ~ and joins relative paths onto base.
func resolvePath(path, base string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(base, expanded), nil
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot expand ~ in "+path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Save writes cfg as config.json in dir, creating dir if needed.
// An existing file is only replaced when overwrite is true.
func Save(dir string, cfg *Config, overwrite bool) (string, error) {
	if dir == "" {
		return "", output.NewUserError("cannot determine the daylog config directory; set DAYLOG_CONFIG_HOME")
	}
	path := filepath.Join(dir, FileName)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, output.NewUserError("config file already exists: " + path + " (use --force to replace it)")
		}
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return path, output.NewSystemErrorWithCause("failed to serialize config", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, output.NewSystemErrorWithCause("failed to create config directory: "+dir, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return path, output.NewSystemErrorWithCause("failed to write config file: "+path, err)
	}
	return path, nil
}
