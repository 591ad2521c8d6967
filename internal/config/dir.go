// Package config locates and loads the daylog configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName is the directory name daylog uses under a config root.
const appName = "daylog"

// dirEnv is the part of the process environment Dir depends on.
type dirEnv struct {
	getenv  func(string) string
	goos    string
	homeDir func() (string, error)
}

// Dir returns the daylog configuration directory, or "" when none can be
// determined. The first match wins:
//
//	$DAYLOG_CONFIG_HOME
//	$XDG_CONFIG_HOME/daylog   (any platform)
//	%AppData%\daylog          (Windows)
//	~/.config/daylog
func Dir() string {
	return dirEnv{getenv: os.Getenv, goos: runtime.GOOS, homeDir: os.UserHomeDir}.resolve()
}

func (e dirEnv) resolve() string {
	if dir := e.getenv(EnvConfigHome); dir != "" {
		return dir
	}
	for _, root := range e.roots() {
		if root != "" {
			return filepath.Join(root, appName)
		}
	}
	return ""
}

// roots lists the candidate parents of the daylog directory in lookup order.
func (e dirEnv) roots() []string {
	roots := []string{e.getenv("XDG_CONFIG_HOME")}
	if e.goos == "windows" {
		roots = append(roots, e.getenv("APPDATA"))
	}
	if home, err := e.homeDir(); err == nil && home != "" {
		roots = append(roots, filepath.Join(home, ".config"))
	}
	return roots
}
