// Package paths resolves the directories workbench reads and writes.
//
// WORKBENCH_HOME relocates everything under one portable root; otherwise
// the XDG env vars apply, then the platform defaults under the home
// directory.
package paths

import (
	"os"
	"path/filepath"
)

const appDir = "workbench"

// baseDir resolves one XDG base: $WORKBENCH_HOME/<portable>, else the XDG
// env var, else the fallback path under the home directory.
func baseDir(portable, xdgVar string, fallback ...string) string {
	if root := os.Getenv("WORKBENCH_HOME"); root != "" {
		return filepath.Join(root, portable)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func appPath(base string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(base, appDir)
}

// ConfigDir is where workbench.yml and keybindings.toml live.
func ConfigDir() string {
	return appPath(baseDir("config", "XDG_CONFIG_HOME", ".config"))
}

// StateDir holds session state; logs live beneath it.
func StateDir() string {
	return appPath(baseDir("state", "XDG_STATE_HOME", ".local", "state"))
}

// LogsDir is the log file directory, under StateDir.
func LogsDir() string {
	if state := StateDir(); state != "" {
		return filepath.Join(state, "logs")
	}
	return ""
}
