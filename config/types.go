package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DefaultFrameInterval is the frame budget used when no interval is configured.
const DefaultFrameInterval = 16 * time.Millisecond

// Config is the root of a sticky.yml / sticky.toml file.
type Config struct {
	Version string       `yaml:"version" toml:"version" json:"version" jsonschema:"description=Configuration version (e.g. '1.0')"`
	Frame   FrameConfig  `yaml:"frame,omitempty" toml:"frame,omitempty" json:"frame,omitempty" jsonschema:"description=Frame scheduling for geometry recomputation"`
	Sticky  StickyConfig `yaml:"sticky,omitempty" toml:"sticky,omitempty" json:"sticky,omitempty" jsonschema:"description=Default options for sticky section headers"`
	View    ViewConfig   `yaml:"view,omitempty" toml:"view,omitempty" json:"view,omitempty" jsonschema:"description=Document viewer settings"`
	TUI     *TUIConfig   `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=Terminal interface settings"`

	// Extensions captures all other top-level keys (e.g. logging).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// FrameConfig controls how often geometry is recomputed.
type FrameConfig struct {
	// Interval is a Go duration string; at most one recomputation runs per interval.
	Interval string `yaml:"interval,omitempty" toml:"interval,omitempty" json:"interval,omitempty" jsonschema:"description=Frame interval as a Go duration (default 16ms)"`
}

// Duration parses Interval, falling back to DefaultFrameInterval.
func (f FrameConfig) Duration() time.Duration {
	if f.Interval == "" {
		return DefaultFrameInterval
	}
	d, err := time.ParseDuration(f.Interval)
	if err != nil || d <= 0 {
		return DefaultFrameInterval
	}
	return d
}

// StickyConfig mirrors the per-element sticky options.
type StickyConfig struct {
	Relative                    bool    `yaml:"relative,omitempty" toml:"relative,omitempty" json:"relative,omitempty" jsonschema:"description=Measure against the local scroll container instead of the viewport"`
	TopOffset                   float64 `yaml:"top_offset,omitempty" toml:"top_offset,omitempty" json:"top_offset,omitempty" jsonschema:"description=Rows past the container top before the header sticks"`
	BottomOffset                float64 `yaml:"bottom_offset,omitempty" toml:"bottom_offset,omitempty" json:"bottom_offset,omitempty" jsonschema:"description=Rows before the container bottom at which the header releases"`
	DisableCompensation         bool    `yaml:"disable_compensation,omitempty" toml:"disable_compensation,omitempty" json:"disable_compensation,omitempty" jsonschema:"description=Do not reserve placeholder rows while stuck"`
	DisableHardwareAcceleration bool    `yaml:"disable_hardware_acceleration,omitempty" toml:"disable_hardware_acceleration,omitempty" json:"disable_hardware_acceleration,omitempty" jsonschema:"description=Omit the compositing hint from stuck styles"`
	ClassName                   string  `yaml:"class_name,omitempty" toml:"class_name,omitempty" json:"class_name,omitempty" jsonschema:"description=Theme style applied to the header wrapper (header, title, highlight, muted, info)"`
}

// ViewConfig controls how documents are split into sections and displayed.
type ViewConfig struct {
	HeadingLevel  int      `yaml:"heading_level,omitempty" toml:"heading_level,omitempty" json:"heading_level,omitempty" jsonschema:"description=Deepest markdown heading level that starts a section (1-6),minimum=1,maximum=6"`
	Include       []string `yaml:"include,omitempty" toml:"include,omitempty" json:"include,omitempty" jsonschema:"description=Glob patterns of files to include when viewing a directory"`
	Exclude       []string `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=Glob patterns of files to skip when viewing a directory"`
	Follow        bool     `yaml:"follow,omitempty" toml:"follow,omitempty" json:"follow,omitempty" jsonschema:"description=Keep appending lines written to the last file"`
	ShowScrollbar *bool    `yaml:"show_scrollbar,omitempty" toml:"show_scrollbar,omitempty" json:"show_scrollbar,omitempty" jsonschema:"description=Draw a scrollbar next to the document"`
	ShowStatus    *bool    `yaml:"show_status,omitempty" toml:"show_status,omitempty" json:"show_status,omitempty" jsonschema:"description=Draw the status bar"`
}

// TUIConfig holds terminal interface settings.
type TUIConfig struct {
	Theme       string             `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme,enum=kanagawa,enum=gruvbox,enum=terminal"`
	Preset      string             `yaml:"preset,omitempty" toml:"preset,omitempty" json:"preset,omitempty" jsonschema:"description=Keybinding preset,enum=vim,enum=emacs,enum=arrows"`
	Icons       string             `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"description=Icon set,enum=nerd,enum=ascii"`
	Keybindings *KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Custom keybinding overrides"`
}

// KeybindingSectionConfig maps action names (e.g. "up", "quit") to key combinations.
type KeybindingSectionConfig map[string][]string

// KeybindingsConfig defines custom keybindings per section.
type KeybindingsConfig struct {
	Navigation KeybindingSectionConfig `yaml:"navigation,omitempty" toml:"navigation,omitempty" json:"navigation,omitempty" jsonschema:"description=Navigation keybindings (up, down, page_up, page_down, top, bottom, next_section, prev_section)"`
	Actions    KeybindingSectionConfig `yaml:"actions,omitempty" toml:"actions,omitempty" json:"actions,omitempty" jsonschema:"description=Action keybindings (follow, toggle_compensation, toggle_relative)"`
	System     KeybindingSectionConfig `yaml:"system,omitempty" toml:"system,omitempty" json:"system,omitempty" jsonschema:"description=System keybindings (quit, help)"`
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Frame.Interval == "" {
		c.Frame.Interval = DefaultFrameInterval.String()
	}
	if c.View.HeadingLevel == 0 {
		c.View.HeadingLevel = 2
	}
	if c.View.ShowScrollbar == nil {
		trueVal := true
		c.View.ShowScrollbar = &trueVal
	}
	if c.View.ShowStatus == nil {
		trueVal := true
		c.View.ShowStatus = &trueVal
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	if c.TUI.Preset == "" {
		c.TUI.Preset = "vim"
	}
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. A missing key leaves
// the target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the origin of a configuration value.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// OverrideSource holds a raw configuration from an override file and its path.
type OverrideSource struct {
	Path   string
	Config *Config
}

// LayeredConfig holds the raw configuration from each source file,
// as well as the final merged configuration, for analysis purposes.
type LayeredConfig struct {
	Default   *Config
	Global    *Config
	Project   *Config
	Overrides []OverrideSource
	Final     *Config
	FilePaths map[ConfigSource]string
}
