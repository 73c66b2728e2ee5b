package logutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/workbench/config"
)

func writeLog(t *testing.T, dir, name, content string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindLatestLogFilePicksNewest(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "workspace-2026-08-23.log", "old\n", 48*time.Hour)
	want := writeLog(t, dir, "workspace-2026-08-25.log", "new\n", time.Hour)

	got, err := FindLatestLogFile(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("FindLatestLogFile = %s, want %s", got, want)
	}
}

func TestFindLatestLogFilePrefersNonEmpty(t *testing.T) {
	dir := t.TempDir()
	want := writeLog(t, dir, "workspace-2026-08-24.log", "content\n", 24*time.Hour)
	writeLog(t, dir, "workspace-2026-08-25.log", "", time.Hour)

	got, err := FindLatestLogFile(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("FindLatestLogFile = %s, want non-empty %s", got, want)
	}
}

func TestFindLatestLogFileComponentFilter(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "workspace-2026-08-25.log", "ws\n", time.Hour)
	want := writeLog(t, dir, "bridge-2026-08-25.log", "br\n", 2*time.Hour)

	got, err := FindLatestLogFile(dir, "bridge")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("FindLatestLogFile(bridge) = %s, want %s", got, want)
	}

	if _, err := FindLatestLogFile(dir, "settings"); err == nil {
		t.Error("expected error for component with no log files")
	}
}

func TestFindLatestLogFileEmptyDir(t *testing.T) {
	if _, err := FindLatestLogFile(t.TempDir(), ""); err == nil {
		t.Error("expected error for directory with no log files")
	}
}

func TestFindLogFileConfiguredSinkWins(t *testing.T) {
	dir := t.TempDir()
	sink := filepath.Join(dir, "wb.log")

	cfg := &config.Config{
		Extensions: map[string]interface{}{
			"logging": map[string]interface{}{
				"file": map[string]interface{}{
					"enabled": true,
					"path":    sink,
				},
			},
		},
	}

	logFile, logsDir, err := FindLogFile(cfg, "workspace")
	if err != nil {
		t.Fatal(err)
	}
	if logFile != sink {
		t.Errorf("FindLogFile = %s, want configured sink %s", logFile, sink)
	}
	if logsDir != dir {
		t.Errorf("logs dir = %s, want %s", logsDir, dir)
	}
}

func TestFindLogFileFallsBackToLogsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORKBENCH_HOME", home)

	logsDir := filepath.Join(home, "state", "workbench", "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeLog(t, logsDir, "workspace-2026-08-25.log", "line\n", time.Hour)

	logFile, gotDir, err := FindLogFile(nil, "workspace")
	if err != nil {
		t.Fatal(err)
	}
	if logFile != want {
		t.Errorf("FindLogFile = %s, want %s", logFile, want)
	}
	if gotDir != logsDir {
		t.Errorf("logs dir = %s, want %s", gotDir, logsDir)
	}
}
