package sanitize

import (
	"regexp"
	"strings"
)

var (
	// ansiRegex matches CSI and OSC escape sequences
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)

	// anchorRegex matches characters dropped from heading anchors
	anchorRegex = regexp.MustCompile(`[^a-z0-9 _-]+`)

	// multiDashRegex matches multiple consecutive dashes
	multiDashRegex = regexp.MustCompile(`-+`)
)

// TabWidth is the number of spaces a tab expands to.
const TabWidth = 4

// ForTerminal makes a line of file content safe to draw: escape sequences
// and control characters are removed and tabs are expanded.
func ForTerminal(s string) string {
	if s == "" {
		return ""
	}

	s = ansiRegex.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch {
		case r == '\t':
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r < 0x20 || r == 0x7f:
			// drop
		case r >= 0x80 && r < 0xa0:
			// C1 controls
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// ForAnchor turns a heading into the anchor used to jump to it, in the
// style of rendered markdown: lowercase, spaces to hyphens, punctuation
// removed.
func ForAnchor(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = anchorRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = multiDashRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
