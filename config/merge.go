package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Frame.Interval != "" {
		result.Frame.Interval = override.Frame.Interval
	}

	result.Sticky = mergeSticky(result.Sticky, override.Sticky)
	result.View = mergeView(result.View, override.View)
	result.TUI = mergeTUI(result.TUI, override.TUI)

	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(result.Extensions)+len(override.Extensions))
		for key, value := range result.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			// Same extension on both sides: shallow-merge the maps
			if baseMap, ok := merged[key].(map[string]interface{}); ok {
				if overrideMap, ok := value.(map[string]interface{}); ok {
					mergedMap := make(map[string]interface{}, len(baseMap)+len(overrideMap))
					for k, v := range baseMap {
						mergedMap[k] = v
					}
					for k, v := range overrideMap {
						mergedMap[k] = v
					}
					merged[key] = mergedMap
					continue
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

func mergeSticky(base, override StickyConfig) StickyConfig {
	result := base

	if override.Relative {
		result.Relative = true
	}
	if override.TopOffset != 0 {
		result.TopOffset = override.TopOffset
	}
	if override.BottomOffset != 0 {
		result.BottomOffset = override.BottomOffset
	}
	if override.DisableCompensation {
		result.DisableCompensation = true
	}
	if override.DisableHardwareAcceleration {
		result.DisableHardwareAcceleration = true
	}
	if override.ClassName != "" {
		result.ClassName = override.ClassName
	}

	return result
}

func mergeView(base, override ViewConfig) ViewConfig {
	result := base

	if override.HeadingLevel != 0 {
		result.HeadingLevel = override.HeadingLevel
	}
	if len(override.Include) > 0 {
		result.Include = override.Include
	}
	if len(override.Exclude) > 0 {
		result.Exclude = override.Exclude
	}
	if override.Follow {
		result.Follow = true
	}
	if override.ShowScrollbar != nil {
		result.ShowScrollbar = override.ShowScrollbar
	}
	if override.ShowStatus != nil {
		result.ShowStatus = override.ShowStatus
	}

	return result
}

func mergeTUI(base, override *TUIConfig) *TUIConfig {
	if override == nil {
		return base
	}
	if base == nil {
		copied := *override
		return &copied
	}

	result := *base
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Preset != "" {
		result.Preset = override.Preset
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if override.Keybindings != nil {
		if result.Keybindings == nil {
			result.Keybindings = &KeybindingsConfig{}
		}
		merged := *result.Keybindings
		merged.Navigation = mergeSection(merged.Navigation, override.Keybindings.Navigation)
		merged.Actions = mergeSection(merged.Actions, override.Keybindings.Actions)
		merged.System = mergeSection(merged.System, override.Keybindings.System)
		result.Keybindings = &merged
	}

	return &result
}

func mergeSection(base, override KeybindingSectionConfig) KeybindingSectionConfig {
	if len(override) == 0 {
		return base
	}
	result := make(KeybindingSectionConfig, len(base)+len(override))
	for action, keys := range base {
		result[action] = keys
	}
	for action, keys := range override {
		result[action] = keys
	}
	return result
}

// Overlay returns s with the set fields of override applied. A nil
// override leaves s unchanged.
func (s StickyConfig) Overlay(override *StickyConfig) StickyConfig {
	if override == nil {
		return s
	}
	return mergeSticky(s, *override)
}
