package config

import (
	"math"
	"testing"

	"github.com/grovetools/sticky/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"empty", Config{}, true},
		{"defaults", *Default(), true},
		{"negative offsets", Config{Sticky: StickyConfig{TopOffset: -3, BottomOffset: -1}}, true},
		{"nan offset", Config{Sticky: StickyConfig{TopOffset: math.NaN()}}, false},
		{"inf offset", Config{Sticky: StickyConfig{BottomOffset: math.Inf(1)}}, false},
		{"known class", Config{Sticky: StickyConfig{ClassName: "highlight"}}, true},
		{"unknown class", Config{Sticky: StickyConfig{ClassName: "sparkle"}}, false},
		{"heading too deep", Config{View: ViewConfig{HeadingLevel: 7}}, false},
		{"empty pattern", Config{View: ViewConfig{Exclude: []string{" "}}}, false},
		{"zero interval", Config{Frame: FrameConfig{Interval: "0s"}}, false},
		{"bad preset", Config{TUI: &TUIConfig{Preset: "nano"}}, false},
		{
			"empty keybinding",
			Config{TUI: &TUIConfig{Keybindings: &KeybindingsConfig{System: KeybindingSectionConfig{"quit": {}}}}},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"top_offset"`)
	assert.Contains(t, string(data), `"heading_level"`)
	assert.NotContains(t, string(data), "Extensions")
}
