package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// HelpExtrasFunc renders additional help sections after COMMANDS.
type HelpExtrasFunc func(w io.Writer, t *theme.Theme)

var (
	helpExtras   = make(map[*cobra.Command]HelpExtrasFunc)
	helpExtrasMu sync.RWMutex
)

const (
	maxWidth = 72
	minWidth = 40
)

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	return min(width, maxWidth)
}

// wrapText wraps text at width, keeping existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies the themed help layout to cmd.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// ApplyStyledHelpRecursive applies styled help and usage to cmd and all of
// its subcommands. Call it after every subcommand was added.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
	cmd.SetUsageFunc(styledUsageFunc)
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

// styledUsageFunc prints nothing; main reports errors through ErrorHandler.
func styledUsageFunc(cmd *cobra.Command) error {
	return nil
}

// SetStyledHelpWithExtras applies styled help with an extra section.
func SetStyledHelpWithExtras(cmd *cobra.Command, extras HelpExtrasFunc) {
	helpExtrasMu.Lock()
	helpExtras[cmd] = extras
	helpExtrasMu.Unlock()
	cmd.SetHelpFunc(styledHelpFunc)
}

// parseDescription splits a long description at its "Examples:" marker.
func parseDescription(long string) (description string, examples string) {
	for _, marker := range []string{"\nExamples:\n", "\nExample:\n"} {
		if idx := strings.Index(long, marker); idx != -1 {
			return strings.TrimSpace(long[:idx]), strings.TrimSpace(long[idx+len(marker):])
		}
	}
	return long, ""
}

// renderExamples mutes comment lines and colours command lines.
func renderExamples(w io.Writer, t *theme.Theme, examples string, cmdPath string) {
	rootCmd := strings.Split(cmdPath, " ")[0]
	styles := exampleStyles{
		root: lipgloss.NewStyle().Foreground(t.Colors.Cyan),
		sub:  lipgloss.NewStyle().Foreground(t.Colors.Blue),
		flag: lipgloss.NewStyle().Foreground(t.Colors.Violet),
	}

	for _, line := range strings.Split(examples, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			fmt.Fprintln(w)
		case strings.HasPrefix(trimmed, "#"):
			fmt.Fprintln(w, " "+t.Muted.Render(trimmed))
		default:
			fmt.Fprintln(w, " "+styles.line(trimmed, rootCmd))
		}
	}
}

type exampleStyles struct {
	root, sub, flag lipgloss.Style
}

func (s exampleStyles) line(line, rootCmd string) string {
	parts := strings.Fields(line)
	for i, part := range parts {
		switch {
		case i == 0 && part == rootCmd:
			parts[i] = s.root.Render(part)
		case i == 1 && !strings.HasPrefix(part, "-"):
			parts[i] = s.sub.Render(part)
		case strings.HasPrefix(part, "-"):
			parts[i] = s.flag.Render(part)
		}
	}
	return "  " + strings.Join(parts, " ")
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	t := theme.DefaultTheme
	blue := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue)
	section := lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange)
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange)
	italic := t.Normal.Italic(true)

	width := getTerminalWidth() - 2

	fmt.Fprintln(w, " "+title.Render(strings.ToUpper(cmd.CommandPath())))

	description, examples := cmd.Short, ""
	if cmd.Long != "" {
		description, examples = parseDescription(cmd.Long)
	}

	if cmd.Short != "" {
		for _, line := range strings.Split(wrapText(cmd.Short, width), "\n") {
			fmt.Fprintln(w, " "+italic.Render(line))
		}
	}
	if description != "" && description != cmd.Short {
		fmt.Fprintln(w)
		for _, line := range strings.Split(wrapText(description, width), "\n") {
			fmt.Fprintln(w, " "+line)
		}
	}

	if cmd.Runnable() || cmd.HasSubCommands() {
		fmt.Fprintln(w, "\n "+section.Render("USAGE"))
		if cmd.Runnable() {
			fmt.Fprintf(w, " %s\n", cmd.UseLine())
		}
		if cmd.HasSubCommands() {
			fmt.Fprintf(w, " %s [command]\n", cmd.CommandPath())
		}
	}

	if cmd.HasAvailableSubCommands() {
		maxLen := 0
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				maxLen = max(maxLen, len(sub.Name()))
			}
		}

		fmt.Fprintln(w, "\n "+section.Render("COMMANDS"))
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				padding := strings.Repeat(" ", maxLen-len(sub.Name()))
				fmt.Fprintf(w, " %s%s  %s\n", blue.Render(sub.Name()), padding, sub.Short)
			}
		}
	}

	renderFlags(w, t, cmd, section)

	exampleText := cmd.Example
	if exampleText == "" {
		exampleText = examples
	}
	if exampleText != "" {
		fmt.Fprintln(w, "\n "+section.Render("EXAMPLES"))
		renderExamples(w, t, exampleText, cmd.CommandPath())
	}

	helpExtrasMu.RLock()
	extras := helpExtras[cmd]
	helpExtrasMu.RUnlock()
	if extras != nil {
		extras(w, t)
	}

	if cmd.HasSubCommands() {
		fmt.Fprintf(w, "\n Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

// renderFlags lists flags inline for parent commands and one per line,
// with defaults and choices, for leaf commands.
func renderFlags(w io.Writer, t *theme.Theme, cmd *cobra.Command, section lipgloss.Style) {
	var visible []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visible = append(visible, f)
		}
	})
	if len(visible) == 0 {
		return
	}

	if cmd.HasAvailableSubCommands() {
		var flags []string
		for _, f := range visible {
			if f.Shorthand != "" {
				flags = append(flags, fmt.Sprintf("-%s/--%s", f.Shorthand, f.Name))
			} else {
				flags = append(flags, "--"+f.Name)
			}
		}
		fmt.Fprintln(w, "\n "+t.Muted.Render("Flags: "+strings.Join(flags, ", ")))
		return
	}

	violet := lipgloss.NewStyle().Foreground(t.Colors.Violet)
	fmt.Fprintln(w, "\n "+section.Render("FLAGS"))

	maxFlagLen := 0
	for _, f := range visible {
		maxFlagLen = max(maxFlagLen, len(formatFlagName(f)))
	}
	for _, f := range visible {
		flagStr := formatFlagName(f)
		padding := strings.Repeat(" ", maxFlagLen-len(flagStr))

		usage, choices := parseChoices(f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" && f.DefValue != "0" {
			usage += t.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
		}
		fmt.Fprintf(w, " %s%s  %s\n", violet.Render(flagStr), padding, usage)

		indent := strings.Repeat(" ", maxFlagLen+3)
		for _, choice := range choices {
			fmt.Fprintf(w, " %s  %s\n", indent, t.Muted.Render("• "+choice))
		}
	}
}

// formatFlagName returns "-f, --flag" or "    --flag".
func formatFlagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}

// parseChoices splits "label: a, b, c" usage strings into the label and
// the choices. At least three choices are needed; anything after " (" is
// kept on the label.
func parseChoices(usage string) (description string, choices []string) {
	colonIdx := strings.Index(usage, ": ")
	if colonIdx == -1 {
		return usage, nil
	}

	rest := usage[colonIdx+2:]
	var suffix string
	if endIdx := strings.Index(rest, " ("); endIdx != -1 {
		rest, suffix = rest[:endIdx], rest[endIdx:]
	}

	parts := strings.Split(rest, ", ")
	if len(parts) < 3 {
		return usage, nil
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(strings.TrimPrefix(p, "or "))
	}

	return usage[:colonIdx+1] + suffix, parts
}
