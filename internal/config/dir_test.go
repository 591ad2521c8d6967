package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeDirEnv(goos string, vars map[string]string, home string) dirEnv {
	return dirEnv{
		getenv: func(key string) string { return vars[key] },
		goos:   goos,
		homeDir: func() (string, error) {
			if home == "" {
				return "", errors.New("no home")
			}
			return home, nil
		},
	}
}

func TestDirEnv_Resolve(t *testing.T) {
	tests := []struct {
		name string
		goos string
		vars map[string]string
		home string
		want string
	}{
		{
			name: "explicit override wins",
			goos: "linux",
			vars: map[string]string{EnvConfigHome: "/custom/path", "XDG_CONFIG_HOME": "/xdg"},
			home: "/home/ada",
			want: "/custom/path",
		},
		{
			name: "xdg beats home",
			goos: "linux",
			vars: map[string]string{"XDG_CONFIG_HOME": "/xdg"},
			home: "/home/ada",
			want: filepath.Join("/xdg", "daylog"),
		},
		{
			name: "xdg beats appdata on windows",
			goos: "windows",
			vars: map[string]string{"XDG_CONFIG_HOME": "/xdg", "APPDATA": "/appdata"},
			home: "/home/ada",
			want: filepath.Join("/xdg", "daylog"),
		},
		{
			name: "appdata on windows",
			goos: "windows",
			vars: map[string]string{"APPDATA": "/appdata"},
			home: "/home/ada",
			want: filepath.Join("/appdata", "daylog"),
		},
		{
			name: "appdata ignored elsewhere",
			goos: "darwin",
			vars: map[string]string{"APPDATA": "/appdata"},
			home: "/Users/ada",
			want: filepath.Join("/Users/ada", ".config", "daylog"),
		},
		{
			name: "home fallback",
			goos: "linux",
			home: "/home/ada",
			want: filepath.Join("/home/ada", ".config", "daylog"),
		},
		{
			name: "nothing to go on",
			goos: "linux",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fakeDirEnv(tt.goos, tt.vars, tt.home).resolve())
		})
	}
}

func TestDir_ReadsProcessEnv(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	assert.Equal(t, filepath.Join("/xdg/config", "daylog"), Dir())

	t.Setenv(EnvConfigHome, "/custom/path")
	assert.Equal(t, "/custom/path", Dir())
}
