package theme

import (
	"os"

	"github.com/grovetools/sticky/config"
)

// Nerd Font icons
const (
	nerdIconPin     = "󰐃" // md-pin (U+F0403)
	nerdIconSection = "󰉹" // md-format_list_bulleted (U+F0279)
	nerdIconFollow  = "󰑖" // md-refresh (U+F0456)
	nerdIconSuccess = "󰄬" // md-check (U+F012C)
	nerdIconError   = "" // cod-error (U+EA87)
	nerdIconWarning = "" // fa-warning (U+F071)
	nerdIconInfo    = "󰋼" // md-information (U+F02FC)
	nerdIconArrow   = "󰁔" // md-arrow_right (U+F0054)
)

// ASCII fallbacks
const (
	asciiIconPin     = "^"
	asciiIconSection = "#"
	asciiIconFollow  = "~"
	asciiIconSuccess = "✓"
	asciiIconError   = "x"
	asciiIconWarning = "!"
	asciiIconInfo    = "i"
	asciiIconArrow   = ">"
)

// Icons, selected at init from STICKY_ICONS or tui.icons.
var (
	IconPin     string
	IconSection string
	IconFollow  string
	IconSuccess string
	IconError   string
	IconWarning string
	IconInfo    string
	IconArrow   string
)

func init() {
	useASCII := os.Getenv("STICKY_ICONS") == "ascii"
	if !useASCII && os.Getenv("STICKY_ICONS") == "" {
		cfg, err := config.LoadDefault()
		useASCII = err == nil && cfg.TUI != nil && cfg.TUI.Icons == "ascii"
	}
	SetASCII(useASCII)
}

// SetASCII switches between the Nerd Font and ASCII icon sets.
func SetASCII(ascii bool) {
	if ascii {
		IconPin = asciiIconPin
		IconSection = asciiIconSection
		IconFollow = asciiIconFollow
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconArrow = asciiIconArrow
		return
	}
	IconPin = nerdIconPin
	IconSection = nerdIconSection
	IconFollow = nerdIconFollow
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconInfo = nerdIconInfo
	IconArrow = nerdIconArrow
}
