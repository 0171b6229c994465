package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/grovetools/sticky/errors"
)

var (
	validThemes  = []string{"kanagawa", "gruvbox", "terminal"}
	validPresets = []string{"vim", "emacs", "arrows"}
	validIcons   = []string{"nerd", "ascii"}
	validClasses = []string{"header", "title", "highlight", "muted", "info", "accent"}
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validateFrame(&c.Frame); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid frame configuration")
	}

	if err := validateSticky(&c.Sticky); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid sticky configuration")
	}

	if err := validateView(&c.View); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid view configuration")
	}

	if c.TUI != nil {
		if err := validateTUI(c.TUI); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid tui configuration")
		}
	}

	return nil
}

func validateFrame(frame *FrameConfig) error {
	if frame.Interval == "" {
		return nil
	}
	d, err := time.ParseDuration(frame.Interval)
	if err != nil {
		return errors.InvalidInput("frame.interval", frame.Interval, "must be a duration such as 16ms")
	}
	if d <= 0 {
		return errors.InvalidInput("frame.interval", frame.Interval, "must be positive")
	}
	return nil
}

func validateSticky(sticky *StickyConfig) error {
	if math.IsNaN(sticky.TopOffset) || math.IsInf(sticky.TopOffset, 0) {
		return errors.InvalidInput("sticky.top_offset", sticky.TopOffset, "must be a finite number")
	}
	if math.IsNaN(sticky.BottomOffset) || math.IsInf(sticky.BottomOffset, 0) {
		return errors.InvalidInput("sticky.bottom_offset", sticky.BottomOffset, "must be a finite number")
	}
	if sticky.ClassName != "" && !contains(validClasses, sticky.ClassName) {
		return errors.InvalidInput("sticky.class_name", sticky.ClassName,
			fmt.Sprintf("must be one of: %s", strings.Join(validClasses, ", ")))
	}
	return nil
}

func validateView(view *ViewConfig) error {
	if view.HeadingLevel != 0 && (view.HeadingLevel < 1 || view.HeadingLevel > 6) {
		return errors.InvalidInput("view.heading_level", view.HeadingLevel, "must be between 1 and 6")
	}
	for _, pattern := range append(append([]string{}, view.Include...), view.Exclude...) {
		if strings.TrimSpace(pattern) == "" {
			return errors.InvalidInput("view.include/exclude", pattern, "patterns cannot be empty")
		}
	}
	return nil
}

func validateTUI(tui *TUIConfig) error {
	if tui.Theme != "" && !contains(validThemes, tui.Theme) {
		return errors.InvalidInput("tui.theme", tui.Theme,
			fmt.Sprintf("must be one of: %s", strings.Join(validThemes, ", ")))
	}
	if tui.Preset != "" && !contains(validPresets, tui.Preset) {
		return errors.InvalidInput("tui.preset", tui.Preset,
			fmt.Sprintf("must be one of: %s", strings.Join(validPresets, ", ")))
	}
	if tui.Icons != "" && !contains(validIcons, tui.Icons) {
		return errors.InvalidInput("tui.icons", tui.Icons,
			fmt.Sprintf("must be one of: %s", strings.Join(validIcons, ", ")))
	}
	if tui.Keybindings != nil {
		sections := map[string]KeybindingSectionConfig{
			"navigation": tui.Keybindings.Navigation,
			"actions":    tui.Keybindings.Actions,
			"system":     tui.Keybindings.System,
		}
		for section, bindings := range sections {
			for action, keys := range bindings {
				if len(keys) == 0 {
					return errors.InvalidInput(fmt.Sprintf("tui.keybindings.%s.%s", section, action), keys,
						"at least one key is required")
				}
			}
		}
	}
	return nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
