package logutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/logging"
	"github.com/grovetools/workbench/pkg/paths"
	"github.com/grovetools/workbench/util/pathutil"
)

// FindLogFile determines the log file to read for the given component. A
// configured file sink wins; otherwise the newest matching file in the
// default logs directory is used. An empty component matches any file.
// Returns the log file path and the directory it lives in.
func FindLogFile(cfg *config.Config, component string) (logFile string, logsDir string, err error) {
	var logCfg logging.Config
	if cfg != nil {
		if unmarshalErr := cfg.UnmarshalExtension("logging", &logCfg); unmarshalErr != nil {
			// Continue with defaults if the logging section doesn't parse.
		}
	}

	if logCfg.File.Enabled && logCfg.File.Path != "" {
		expanded := pathutil.Expand(logCfg.File.Path)
		return expanded, filepath.Dir(expanded), nil
	}

	logsDir = paths.LogsDir()
	logFile, err = FindLatestLogFile(logsDir, component)
	return logFile, logsDir, err
}

// FindLatestLogFile finds the most recently modified non-empty log file in a
// directory, optionally restricted to one component's files. Empty files are
// only returned when nothing else matches.
func FindLatestLogFile(dir, component string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("could not read log directory %s: %w", dir, err)
	}

	var latestFile os.FileInfo
	var latestPath string
	var latestNonEmptyFile os.FileInfo
	var latestNonEmptyPath string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if component != "" && !strings.HasPrefix(entry.Name(), component+"-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latestFile == nil || info.ModTime().After(latestFile.ModTime()) {
			latestFile = info
			latestPath = filepath.Join(dir, entry.Name())
		}
		if info.Size() > 0 {
			if latestNonEmptyFile == nil || info.ModTime().After(latestNonEmptyFile.ModTime()) {
				latestNonEmptyFile = info
				latestNonEmptyPath = filepath.Join(dir, entry.Name())
			}
		}
	}

	if latestNonEmptyFile != nil {
		return latestNonEmptyPath, nil
	}
	if latestFile == nil {
		if component != "" {
			return "", fmt.Errorf("no log files for component %q in %s", component, dir)
		}
		return "", fmt.Errorf("no log files found in %s", dir)
	}
	return latestPath, nil
}
