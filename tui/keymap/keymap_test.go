package keymap

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/sticky/config"
)

func firstKey(b key.Binding) string {
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		km      Base
		up      string
		top     string
		nextSec string
	}{
		{"vim", DefaultVim(), "k", "gg", "]]"},
		{"emacs", DefaultEmacs(), "ctrl+p", "alt+<", "alt+}"},
		{"arrows", DefaultArrows(), "up", "home", "tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstKey(tt.km.Up); got != tt.up {
				t.Errorf("Up = %q, want %q", got, tt.up)
			}
			if got := firstKey(tt.km.Top); got != tt.top {
				t.Errorf("Top = %q, want %q", got, tt.top)
			}
			if got := firstKey(tt.km.NextSection); got != tt.nextSec {
				t.Errorf("NextSection = %q, want %q", got, tt.nextSec)
			}
		})
	}
}

func TestLoad_NilConfig(t *testing.T) {
	km := Load(nil)
	if got := firstKey(km.Up); got != "k" {
		t.Errorf("expected vim defaults, got Up=%q", got)
	}
}

func TestLoad_PresetSelection(t *testing.T) {
	tests := []struct {
		preset string
		want   string
	}{
		{"vim", "j"},
		{"emacs", "ctrl+n"},
		{"arrows", "down"},
		{"", "j"},
		{"unknown", "j"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg := &config.Config{TUI: &config.TUIConfig{Preset: tt.preset}}
			if got := firstKey(Load(cfg).Down); got != tt.want {
				t.Errorf("Down = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg := &config.Config{
		TUI: &config.TUIConfig{
			Preset: "emacs",
			Keybindings: &config.KeybindingsConfig{
				Navigation: config.KeybindingSectionConfig{
					"next_section": {"tab", "]"},
					"page_down":    {},
				},
				Actions: config.KeybindingSectionConfig{
					"toggle_compensation": {"C"},
				},
				System: config.KeybindingSectionConfig{
					"quit": {"Q"},
				},
			},
		},
	}

	km := Load(cfg)

	if got := km.NextSection.Keys(); !reflect.DeepEqual(got, []string{"tab", "]"}) {
		t.Errorf("NextSection keys = %v", got)
	}
	if got := km.NextSection.Help().Desc; got != "next section" {
		t.Errorf("override should keep help text, got %q", got)
	}
	if got := km.NextSection.Help().Key; got != "tab" {
		t.Errorf("help key should be the first override key, got %q", got)
	}
	if got := firstKey(km.ToggleCompensation); got != "C" {
		t.Errorf("ToggleCompensation = %q", got)
	}
	if got := firstKey(km.Quit); got != "Q" {
		t.Errorf("Quit = %q", got)
	}
	// Empty lists are ignored
	if got := firstKey(km.PageDown); got != "ctrl+v" {
		t.Errorf("PageDown = %q, want emacs default", got)
	}
	// Untouched bindings keep the preset
	if got := firstKey(km.Up); got != "ctrl+p" {
		t.Errorf("Up = %q, want emacs default", got)
	}
}

func TestSections(t *testing.T) {
	km := DefaultVim()
	sections := km.Sections()

	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	want := []string{SectionNavigation, SectionActions, SectionSystem}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("sections = %v, want %v", names, want)
	}

	full := km.FullHelp()
	if len(full) != len(sections) || len(full[0]) != len(sections[0].Bindings) {
		t.Error("FullHelp should mirror Sections")
	}
}

func TestSectionFilterEnabled(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithDisabled())
	s := NewSection("Custom", disabled)
	if !s.IsEmpty() {
		t.Error("section with only disabled bindings should be empty")
	}

	s = NewSection("Custom", disabled, DefaultVim().Quit)
	if got := s.FilterEnabled(); len(got) != 1 {
		t.Errorf("FilterEnabled returned %d bindings", len(got))
	}
}

func TestConfigKey(t *testing.T) {
	tests := map[string]string{
		"Up":                 "up",
		"NextSection":        "next_section",
		"ToggleCompensation": "toggle_compensation",
		"PageDown":           "page_down",
	}
	for in, want := range tests {
		if got := ConfigKey(in); got != want {
			t.Errorf("ConfigKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExport(t *testing.T) {
	sections := Export(DefaultVim())
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	found := false
	for _, b := range sections[0].Bindings {
		if b.Description == "next section" {
			found = true
			if b.ConfigKey != "next_section" {
				t.Errorf("ConfigKey = %q", b.ConfigKey)
			}
			if !b.Enabled {
				t.Error("binding should be enabled")
			}
		}
	}
	if !found {
		t.Error("next section binding not exported")
	}
}

type customKeyMap struct {
	Base
	Reload key.Binding
	label  string
}

func TestApplyOverridesEmbedded(t *testing.T) {
	km := customKeyMap{
		Base:   DefaultVim(),
		Reload: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		label:  "keep",
	}

	ApplyOverrides(&km, config.KeybindingSectionConfig{
		"reload": {"ctrl+r"},
		"help":   {"h"},
		"label":  {"z"},
	})

	if got := firstKey(km.Reload); got != "ctrl+r" {
		t.Errorf("Reload = %q", got)
	}
	if got := firstKey(km.Help); got != "h" {
		t.Errorf("embedded Help = %q", got)
	}
	if km.label != "keep" {
		t.Error("unexported fields must be left alone")
	}

	// Non-pointers are ignored
	ApplyOverrides(km, config.KeybindingSectionConfig{"reload": {"x"}})
}
