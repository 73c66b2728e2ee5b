package logging

// Config defines the structure for logging configuration in workbench.yml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the WORKBENCH_LOG_LEVEL environment variable.
	Level string `yaml:"level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the WORKBENCH_LOG_CALLER=true environment variable.
	ReportCaller bool `yaml:"report_caller"`

	// File configures logging to a file.
	File FileSinkConfig `yaml:"file"`

	// Format configures the appearance of the log output.
	Format FormatConfig `yaml:"format"`

	// Show lists the only components whose lines the logs command prints.
	Show []string `yaml:"show,omitempty"`

	// Hide lists components whose lines the logs command suppresses. Show
	// wins when both are set.
	Hide []string `yaml:"hide,omitempty"`
}

// IsComponentVisible reports whether lines from the given component should be
// printed under the config's show/hide lists. An unlisted component is
// visible unless a show list is present.
func IsComponentVisible(component string, cfg *Config) bool {
	if cfg == nil {
		return true
	}
	if len(cfg.Show) > 0 {
		for _, c := range cfg.Show {
			if c == component {
				return true
			}
		}
		return false
	}
	for _, c := range cfg.Hide {
		if c == component {
			return false
		}
	}
	return true
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is the full path to the log file.
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"` // "text" (default) or "json"
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `yaml:"preset"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `yaml:"disable_timestamp"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `yaml:"disable_component"`
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never". A TUI owns the terminal,
	// so "auto" suppresses stderr output in interactive sessions.
	StructuredToStderr string `yaml:"structured_to_stderr"`
}
