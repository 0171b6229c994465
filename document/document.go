// Package document turns files into the titled sections the viewer pins
// headers for.
package document

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/util/frontmatter"
	"github.com/grovetools/sticky/util/sanitize"
)

// Section is a heading and the lines under it, up to the next heading of
// the same or a shallower level.
type Section struct {
	Heading string
	// Level is the markdown heading level, or 0 for text before the first heading.
	Level int
	// Anchor is the heading's jump target.
	Anchor string
	Lines  []string
	// Source is the file the section came from.
	Source string
}

// Document is an ordered list of sections.
type Document struct {
	Title    string
	Path     string
	Meta     frontmatter.Metadata
	Sections []Section
}

// Lines counts body lines across all sections.
func (d *Document) Lines() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Lines)
	}
	return n
}

// Find returns the index of the section whose anchor or heading matches
// target, or -1.
func (d *Document) Find(target string) int {
	anchor := sanitize.ForAnchor(target)
	for i, s := range d.Sections {
		if s.Anchor == anchor || s.Heading == target {
			return i
		}
	}
	return -1
}

// Append adds lines to the last section, creating one when the document is
// empty.
func (d *Document) Append(lines ...string) {
	if len(d.Sections) == 0 {
		d.Sections = append(d.Sections, Section{Heading: d.Title, Anchor: sanitize.ForAnchor(d.Title), Source: d.Path})
	}
	last := &d.Sections[len(d.Sections)-1]
	for _, l := range lines {
		last.Lines = append(last.Lines, sanitize.ForTerminal(l))
	}
}

// IsMarkdown reports whether path names a markdown file.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return true
	}
	return false
}

// LoadFile reads one file. Markdown is split at headings up to
// headingLevel; anything else becomes a single section titled with the file
// name.
func LoadFile(path string, headingLevel int) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.DocumentNotFound(path, err)
	}
	if IsMarkdown(path) {
		return ParseMarkdown(path, data, headingLevel)
	}
	return ParseText(path, data), nil
}

// Read loads a document from r, treating it as markdown when markdown is set.
func Read(name string, r io.Reader, markdown bool, headingLevel int) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentNotFound, "failed to read document").
			WithDetail("path", name)
	}
	if markdown {
		return ParseMarkdown(name, data, headingLevel)
	}
	return ParseText(name, data), nil
}

// ParseText makes a single-section document out of plain text.
func ParseText(name string, data []byte) *Document {
	title := filepath.Base(name)
	doc := &Document{Title: title, Path: name}
	doc.Sections = []Section{{
		Heading: title,
		Anchor:  sanitize.ForAnchor(title),
		Lines:   splitLines(data),
		Source:  name,
	}}
	return doc
}

// ParseMarkdown splits markdown at ATX headings of level 1 through
// headingLevel. Headings inside fenced code blocks are ignored. Text before
// the first heading becomes a level 0 section titled after the document,
// unless it is blank.
func ParseMarkdown(name string, data []byte, headingLevel int) (*Document, error) {
	if headingLevel < 1 || headingLevel > 6 {
		return nil, errors.InvalidInput("heading_level", headingLevel, "must be between 1 and 6")
	}

	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentNotFound, "invalid frontmatter").
			WithDetail("path", name)
	}

	title := meta.Title
	if title == "" {
		title = filepath.Base(name)
	}
	doc := &Document{Title: title, Path: name, Meta: meta}

	current := Section{Heading: title, Anchor: sanitize.ForAnchor(title), Source: name}
	var fence string
	for _, line := range splitLines(body) {
		if marker := fenceMarker(line); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(marker, fence):
				fence = ""
			}
		}
		if fence == "" {
			if level, heading, ok := parseHeading(line); ok && level <= headingLevel {
				if current.Level > 0 || !blank(current.Lines) {
					doc.Sections = append(doc.Sections, trimTrailing(current))
				}
				current = Section{Heading: heading, Level: level, Anchor: sanitize.ForAnchor(heading), Source: name}
				continue
			}
		}
		current.Lines = append(current.Lines, line)
	}
	if current.Level > 0 || !blank(current.Lines) {
		doc.Sections = append(doc.Sections, trimTrailing(current))
	}
	return doc, nil
}

// parseHeading recognises "#"-style headings: up to three spaces of
// indent, one to six '#', then a space or end of line. Closing '#'s are
// dropped.
func parseHeading(line string) (int, string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	heading := strings.TrimSpace(rest)
	if stripped := strings.TrimRight(heading, "#"); stripped == "" || strings.HasSuffix(stripped, " ") {
		heading = strings.TrimSpace(stripped)
	}
	return level, heading, true
}

// fenceMarker returns the run of backticks or tildes opening line, if it is
// a code fence.
func fenceMarker(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return ""
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return ""
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return ""
	}
	return trimmed[:n]
}

func splitLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, sanitize.ForTerminal(scanner.Text()))
	}
	return lines
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func trimTrailing(s Section) Section {
	for len(s.Lines) > 0 && strings.TrimSpace(s.Lines[len(s.Lines)-1]) == "" {
		s.Lines = s.Lines[:len(s.Lines)-1]
	}
	return s
}
