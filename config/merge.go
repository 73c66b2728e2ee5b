package config

// mergeConfigs merges override on top of base. Scalars and lists in override
// replace those in base when set; maps merge key by key. Neither input is
// mutated.
func mergeConfigs(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base

	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.Version != "" {
		merged.Version = override.Version
	}

	merged.TUI = mergeTUI(base.TUI, override.TUI)
	merged.Workbench = mergeWorkbench(base.Workbench, override.Workbench)
	merged.Bridge = mergeBridge(base.Bridge, override.Bridge)

	if len(override.Extensions) > 0 {
		merged.Extensions = make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			merged.Extensions[k] = v
		}
		for k, v := range override.Extensions {
			merged.Extensions[k] = v
		}
	}

	return &merged
}

func mergeTUI(base, override *TUIConfig) *TUIConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base
	if override.Icons != "" {
		merged.Icons = override.Icons
	}
	if override.Theme != "" {
		merged.Theme = override.Theme
	}
	if override.Preset != "" {
		merged.Preset = override.Preset
	}
	merged.Keybindings = mergeKeybindings(base.Keybindings, override.Keybindings)
	return &merged
}

func mergeWorkbench(base, override *WorkbenchConfig) *WorkbenchConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base
	if len(override.HiddenButtons) > 0 {
		merged.HiddenButtons = override.HiddenButtons
	}
	if len(override.Placement) > 0 {
		merged.Placement = make(map[string]string, len(base.Placement)+len(override.Placement))
		for k, v := range base.Placement {
			merged.Placement[k] = v
		}
		for k, v := range override.Placement {
			merged.Placement[k] = v
		}
	}
	if len(override.OpenDocks) > 0 {
		merged.OpenDocks = override.OpenDocks
	}
	return &merged
}

func mergeBridge(base, override *BridgeConfig) *BridgeConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base
	if override.Enabled != nil {
		merged.Enabled = override.Enabled
	}
	if override.Listen != "" {
		merged.Listen = override.Listen
	}
	return &merged
}

// mergeKeybindings merges override sections over base. Within a section,
// override actions replace base actions; TUI override maps merge by TUI name.
func mergeKeybindings(base, override *KeybindingsConfig) *KeybindingsConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := &KeybindingsConfig{
		Navigation: mergeSection(base.Navigation, override.Navigation),
		Actions:    mergeSection(base.Actions, override.Actions),
		Docks:      mergeSection(base.Docks, override.Docks),
		System:     mergeSection(base.System, override.System),
	}

	if len(base.TUIOverrides) > 0 || len(override.TUIOverrides) > 0 {
		merged.TUIOverrides = make(map[string]map[string]KeybindingSectionConfig)
		for tui, sections := range base.TUIOverrides {
			merged.TUIOverrides[tui] = sections
		}
		for tui, sections := range override.TUIOverrides {
			if existing, ok := merged.TUIOverrides[tui]; ok {
				combined := make(map[string]KeybindingSectionConfig, len(existing)+len(sections))
				for name, section := range existing {
					combined[name] = section
				}
				for name, section := range sections {
					combined[name] = mergeSection(existing[name], section)
				}
				merged.TUIOverrides[tui] = combined
			} else {
				merged.TUIOverrides[tui] = sections
			}
		}
	}

	return merged
}

func mergeSection(base, override KeybindingSectionConfig) KeybindingSectionConfig {
	if len(base) == 0 {
		return override
	}
	if len(override) == 0 {
		return base
	}
	merged := make(KeybindingSectionConfig, len(base)+len(override))
	for action, keys := range base {
		merged[action] = keys
	}
	for action, keys := range override {
		merged[action] = keys
	}
	return merged
}
