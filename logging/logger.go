package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/pkg/paths"
	"github.com/grovetools/workbench/util/pathutil"
)

var (
	mu      sync.Mutex
	loggers = make(map[string]*logrus.Entry)
)

// NewLogger returns the shared logger for a component, creating it on first
// use. Configuration comes from the logging extension of workbench.yml with
// WORKBENCH_LOG_* environment overrides on top.
func NewLogger(component string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()
	if entry, ok := loggers[component]; ok {
		return entry
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	logger := logrus.New()
	logger.SetLevel(resolveLevel(logCfg))
	if os.Getenv("WORKBENCH_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}
	logger.SetFormatter(formatterFor(logCfg))
	logger.SetOutput(openSinks(component, logCfg, logger))

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func resolveLevel(logCfg Config) logrus.Level {
	name := os.Getenv("WORKBENCH_LOG_LEVEL")
	if name == "" {
		name = logCfg.Level
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatterFor(logCfg Config) logrus.Formatter {
	switch logCfg.Format.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	}
	return &TextFormatter{Config: logCfg.Format}
}

// openSinks assembles the output writer: the log file plus, depending on
// the structured_to_stderr mode, stderr. With no usable sink the logger is
// silenced; a stray default to stderr would corrupt a TUI that owns the
// terminal.
func openSinks(component string, logCfg Config, logger *logrus.Logger) io.Writer {
	var writers []io.Writer
	if file := openLogFile(component, logCfg, logger); file != nil {
		writers = append(writers, file)
	}
	if stderrEnabled(logCfg, logger.GetLevel()) {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	}
	return io.MultiWriter(writers...)
}

// openLogFile opens the configured sink, or the shared per-component file
// under the logs dir that the logs command discovers. Failures on the
// default path stay quiet.
func openLogFile(component string, logCfg Config, logger *logrus.Logger) io.Writer {
	var path string
	if logCfg.File.Enabled && logCfg.File.Path != "" {
		path = pathutil.Expand(logCfg.File.Path)
	} else {
		dir := paths.LogsDir()
		if dir == "" {
			return nil
		}
		path = filepath.Join(dir, component+"-"+time.Now().Format("2006-01-02")+".log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		if logCfg.File.Enabled {
			logger.Warnf("Failed to create log directory %s: %v", filepath.Dir(path), err)
		}
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		if logCfg.File.Enabled {
			logger.Warnf("Failed to open log file %s: %v", path, err)
		}
		return nil
	}
	return file
}

// stderrEnabled decides whether structured lines also reach stderr. Auto
// mode keeps interactive sessions quiet unless debugging.
func stderrEnabled(logCfg Config, level logrus.Level) bool {
	mode := logCfg.Format.StructuredToStderr
	if mode == "" {
		mode = "auto"
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	debug := os.Getenv("WORKBENCH_DEBUG") == "1" || level == logrus.DebugLevel
	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return debug || !interactive
}
