package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/sticky/config"
)

const defaultThemeName = "kanagawa"

// swatch is one palette entry; an empty light value means a static color.
type swatch struct {
	light string
	dark  string
}

func (s swatch) color() lipgloss.TerminalColor {
	if s.light == "" {
		return lipgloss.Color(s.dark)
	}
	return lipgloss.AdaptiveColor{Light: s.light, Dark: s.dark}
}

// palette lists the swatches in Colors field order.
type palette struct {
	green, yellow, red, orange, cyan, blue, violet, pink swatch
	lightText, mutedText, darkText, border              swatch
	selectedBackground, subtleBackground                swatch
}

var palettes = map[string]palette{
	"kanagawa": {
		green:              swatch{"#4E7C5A", "#98BB6C"},
		yellow:             swatch{"#A68A64", "#FF9E3B"},
		red:                swatch{"#C34043", "#FF5D62"},
		orange:             swatch{"#CC6B4E", "#FFA066"},
		cyan:               swatch{"#5B8BBE", "#7E9CD8"},
		blue:               swatch{"#4F7CAC", "#7FB4CA"},
		violet:             swatch{"#674D7A", "#957FB8"},
		pink:               swatch{"#B35C74", "#D27E99"},
		lightText:          swatch{"#2B2F42", "#DCD7BA"},
		mutedText:          swatch{"#6C7086", "#727169"},
		darkText:           swatch{"#E6E9EF", "#1D1C19"},
		border:             swatch{"#B5BDC5", "#363646"},
		selectedBackground: swatch{"#E2E6F3", "#223249"},
		subtleBackground:   swatch{"#F7F7FB", "#1F1F28"},
	},
	"gruvbox": {
		green:              swatch{"#98971A", "#B8BB26"},
		yellow:             swatch{"#D79921", "#FABD2F"},
		red:                swatch{"#CC241D", "#FB4934"},
		orange:             swatch{"#D65D0E", "#FE8019"},
		cyan:               swatch{"#458588", "#83A598"},
		blue:               swatch{"#076678", "#458588"},
		violet:             swatch{"#8F3F71", "#B16286"},
		pink:               swatch{"#B57679", "#D3869B"},
		lightText:          swatch{"#3C3836", "#EBDBB2"},
		mutedText:          swatch{"#928374", "#BDAE93"},
		darkText:           swatch{"#F9F5D7", "#1D2021"},
		border:             swatch{"#D5C4A1", "#504945"},
		selectedBackground: swatch{"#F2E5BC", "#32302F"},
		subtleBackground:   swatch{"#FBF1C7", "#282828"},
	},
	// ANSI indexes, so the terminal's own scheme decides
	"terminal": {
		green:              swatch{dark: "2"},
		yellow:             swatch{dark: "3"},
		red:                swatch{dark: "1"},
		orange:             swatch{dark: "208"},
		cyan:               swatch{dark: "6"},
		blue:               swatch{dark: "4"},
		violet:             swatch{dark: "5"},
		pink:               swatch{dark: "13"},
		lightText:          swatch{dark: "7"},
		mutedText:          swatch{dark: "8"},
		darkText:           swatch{dark: "0"},
		border:             swatch{dark: "8"},
		selectedBackground: swatch{dark: "8"},
		subtleBackground:   swatch{dark: "0"},
	},
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	Pink               lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	DarkText           lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for the viewer and CLI output.
type Theme struct {
	Name   string
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableBorder lipgloss.Style

	// Container styles
	Box  lipgloss.Style
	Code lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// Section headers: in flow, and while stuck to the top of the view
	SectionHeader lipgloss.Style
	StuckHeader   lipgloss.Style

	// Chrome
	StatusBar      lipgloss.Style
	ScrollbarTrack lipgloss.Style
	ScrollbarThumb lipgloss.Style
}

// DefaultTheme is the theme selected by STICKY_THEME or tui.theme.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return NewThemeWithName(getThemeName())
}

// NewThemeWithName constructs a theme from a specific palette name.
// Unknown names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	p, ok := palettes[key]
	if !ok {
		key = defaultThemeName
		p = palettes[key]
	}
	return newThemeFromColors(p.colors(), key)
}

// ByName returns the style a class name refers to. Sticky headers accept a
// class name from configuration; unknown names report false.
func (t *Theme) ByName(class string) (lipgloss.Style, bool) {
	switch class {
	case "header":
		return t.SectionHeader, true
	case "title":
		return t.Title, true
	case "highlight":
		return t.Highlight, true
	case "muted":
		return t.Muted, true
	case "info":
		return t.Info, true
	case "accent":
		return t.Accent, true
	default:
		return lipgloss.NewStyle(), false
	}
}

func (p palette) colors() Colors {
	return Colors{
		Green:              p.green.color(),
		Yellow:             p.yellow.color(),
		Red:                p.red.color(),
		Orange:             p.orange.color(),
		Cyan:               p.cyan.color(),
		Blue:               p.blue.color(),
		Violet:             p.violet.color(),
		Pink:               p.pink.color(),
		LightText:          p.lightText.color(),
		MutedText:          p.mutedText.color(),
		DarkText:           p.darkText.color(),
		Border:             p.border.color(),
		SelectedBackground: p.selectedBackground.color(),
		SubtleBackground:   p.subtleBackground.color(),
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Violet),

		TableRow: lipgloss.NewStyle().
			Padding(0, 1),

		TableBorder: lipgloss.NewStyle().
			Foreground(colors.Border),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Code: lipgloss.NewStyle().
			Background(colors.SubtleBackground).
			Foreground(colors.LightText),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		SectionHeader: lipgloss.NewStyle().
			Foreground(colors.Blue).
			Bold(true),

		StuckHeader: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(colors.SubtleBackground).
			Foreground(colors.MutedText),

		ScrollbarTrack: lipgloss.NewStyle().
			Foreground(colors.Border),

		ScrollbarThumb: lipgloss.NewStyle().
			Foreground(colors.Violet),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("STICKY_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil || cfg.TUI == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.TUI.Theme); theme != "" {
		return theme
	}

	return defaultThemeName
}
