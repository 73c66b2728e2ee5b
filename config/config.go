package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/workbench/errors"
	"github.com/grovetools/workbench/pkg/paths"
	"github.com/grovetools/workbench/schema"
)

// ConfigFileName is the canonical name of the workbench configuration file.
const ConfigFileName = "workbench.yml"

// OverrideFileName holds local, usually git-ignored, overrides that are merged
// over the main configuration.
const OverrideFileName = ".workbench.override.yml"

// configFileNames are the accepted names, in priority order.
var configFileNames = []string{"workbench.yml", "workbench.yaml", ".workbench.yml"}

// Load finds and loads the workbench configuration. It searches from the
// current directory upward, then falls back to the XDG config directory.
func Load() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadDefault loads the configuration like Load, but returns a defaulted
// empty configuration instead of an error when no config file exists.
// Callers that only need optional settings (logging, theme) use this.
func LoadDefault() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		cfg := &Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from the given path, merging any override file
// and modular keybinding files found next to it.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file")
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid config file %s", path))
	}

	dir := filepath.Dir(path)

	// Local overrides take precedence over the main file. The override is a
	// partial document, so it skips schema validation; the merged result is
	// validated instead.
	overridePath := filepath.Join(dir, OverrideFileName)
	if overrideData, err := os.ReadFile(overridePath); err == nil {
		var override Config
		if err := yaml.Unmarshal([]byte(expandEnvVars(string(overrideData))), &override); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid,
				fmt.Sprintf("invalid override file %s", overridePath))
		}
		cfg = mergeConfigs(cfg, &override)
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("invalid override file %s", overridePath))
		}
	}

	// Modular keybindings may live beside the config as TOML.
	if err := loadKeybindingsTOML(cfg, dir); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromBytes parses, validates and defaults a configuration document.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	if err := schema.ValidateConfig([]byte(expanded)); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "config validation failed")
	}

	return &cfg, nil
}

// loadKeybindingsTOML merges keybindings.toml from the config's directory, if
// present, over any keybindings already defined in YAML. go-toml does not
// invoke custom unmarshalers, so the document goes through
// UnmarshalKeybindingsTOML explicitly.
func loadKeybindingsTOML(cfg *Config, dir string) error {
	tomlPath := filepath.Join(dir, "keybindings.toml")
	data, err := os.ReadFile(tomlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read keybindings.toml")
	}

	kb, err := UnmarshalKeybindingsTOML(data)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid keybindings file %s", tomlPath))
	}

	if cfg.TUI == nil {
		cfg.TUI = &TUIConfig{}
	}
	if cfg.TUI.Keybindings == nil {
		cfg.TUI.Keybindings = kb
		return nil
	}
	cfg.TUI.Keybindings = mergeKeybindings(cfg.TUI.Keybindings, kb)
	return nil
}

// FindConfigFile searches for a workbench config file starting in the current
// directory and walking up to the filesystem root, then checks the user config
// directory. Returns the path of the first file found.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to get working directory")
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	userConfig := filepath.Join(paths.ConfigDir(), ConfigFileName)
	if info, err := os.Stat(userConfig); err == nil && !info.IsDir() {
		return userConfig, nil
	}

	return "", errors.ConfigNotFound(ConfigFileName)
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} references with values from the environment.
// The ${VAR:-default} form substitutes the default when VAR is unset or empty.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name := groups[1]
		hasDefault := groups[2] != ""
		def := groups[3]

		if value := os.Getenv(name); value != "" {
			return value
		}
		if hasDefault {
			return def
		}
		return ""
	})
}

// TUIName returns the configured profile name, or the fallback when unset.
// Keybinding overrides are looked up under this name.
func (c *Config) TUIName(fallback string) string {
	if c != nil && c.Name != "" {
		return strings.ToLower(c.Name)
	}
	return fallback
}
