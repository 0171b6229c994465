package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/sticky/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guide = `---
title: Guide
---
Intro line

# Install

Run the installer.

## Options
` + "```sh" + `
# not a heading
` + "```" + `
### Deep heading
still options

# Usage ##
Use it.

`

func headings(doc *Document) []string {
	var out []string
	for _, s := range doc.Sections {
		out = append(out, s.Heading)
	}
	return out
}

func TestParseMarkdown(t *testing.T) {
	doc, err := ParseMarkdown("guide.md", []byte(guide), 2)
	require.NoError(t, err)

	assert.Equal(t, "Guide", doc.Title)
	assert.Equal(t, []string{"Guide", "Install", "Options", "Usage"}, headings(doc))

	intro := doc.Sections[0]
	assert.Equal(t, 0, intro.Level)
	assert.Equal(t, []string{"Intro line"}, intro.Lines)

	options := doc.Sections[2]
	assert.Equal(t, 2, options.Level)
	assert.Equal(t, "options", options.Anchor)
	assert.Contains(t, options.Lines, "# not a heading")
	assert.Contains(t, options.Lines, "### Deep heading")

	usage := doc.Sections[3]
	assert.Equal(t, "Usage", usage.Heading)
	assert.Equal(t, []string{"Use it."}, usage.Lines, "trailing blank lines are trimmed")
}

func TestParseMarkdownHeadingLevel(t *testing.T) {
	doc, err := ParseMarkdown("guide.md", []byte(guide), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Guide", "Install", "Options", "Deep heading", "Usage"}, headings(doc))

	doc, err = ParseMarkdown("guide.md", []byte(guide), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Guide", "Install", "Usage"}, headings(doc))

	_, err = ParseMarkdown("guide.md", []byte(guide), 7)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestParseMarkdownBlankPreamble(t *testing.T) {
	doc, err := ParseMarkdown("notes.md", []byte("\n\n# First\nbody\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"First"}, headings(doc))
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		line    string
		level   int
		heading string
		ok      bool
	}{
		{"# Title", 1, "Title", true},
		{"### Three ###", 3, "Three", true},
		{"   ## Indented", 2, "Indented", true},
		{"    # Code", 0, "", false},
		{"#NoSpace", 0, "", false},
		{"####### Seven", 0, "", false},
		{"## C#", 2, "C#", true},
		{"#", 1, "", true},
		{"plain", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			level, heading, ok := parseHeading(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.heading, heading)
		})
	}
}

func TestParseText(t *testing.T) {
	doc := ParseText("/var/log/app.log", []byte("one\n\ttwo\n\x1b[1mthree\x1b[0m\n"))
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "app.log", doc.Sections[0].Heading)
	assert.Equal(t, []string{"one", "    two", "three"}, doc.Sections[0].Lines)
	assert.Equal(t, 3, doc.Lines())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(md, []byte("# A\na\n# B\nb\n"), 0o644))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("# not split\n"), 0o644))

	doc, err := LoadFile(md, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, headings(doc))

	doc, err = LoadFile(txt, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, headings(doc))

	_, err = LoadFile(filepath.Join(dir, "missing.md"), 2)
	assert.True(t, errors.Is(err, errors.ErrCodeDocumentNotFound))
}

func TestRead(t *testing.T) {
	doc, err := Read("stdin", strings.NewReader("# X\nx\n"), true, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, headings(doc))

	doc, err = Read("stdin", strings.NewReader("# X\nx\n"), false, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"stdin"}, headings(doc))
}

func TestFindAndAppend(t *testing.T) {
	doc, err := ParseMarkdown("guide.md", []byte(guide), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("install"))
	assert.Equal(t, 3, doc.Find("Usage"))
	assert.Equal(t, -1, doc.Find("nope"))

	doc.Append("tail 1", "tail\t2")
	last := doc.Sections[len(doc.Sections)-1]
	assert.Equal(t, []string{"Use it.", "tail 1", "tail    2"}, last.Lines)

	empty := &Document{Title: "log"}
	empty.Append("first")
	require.Len(t, empty.Sections, 1)
	assert.Equal(t, "log", empty.Sections[0].Heading)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("a.md", "---\ntitle: A\n---\nalpha\n")
	write("b.txt", "bravo\n")
	write("sub/c.go", "package c\n")
	write("build/out.txt", "skip\n")
	write(".git/HEAD", "ref\n")
	write("bin.dat", "\x00\x01\x02")

	doc, err := LoadDir(dir, DirOptions{Exclude: []string{"build"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.txt", "sub/c.go"}, headings(doc))
	assert.Equal(t, []string{"alpha"}, doc.Sections[0].Lines)
	assert.Equal(t, 1, doc.Sections[0].Level)

	doc, err = LoadDir(dir, DirOptions{Include: []string{"*.md", "sub"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "sub/c.go"}, headings(doc))

	doc, err = LoadDir(dir, DirOptions{Include: []string{"*.txt", "!b.txt"}})
	require.NoError(t, err)
	assert.Empty(t, doc.Sections)

	_, err = LoadDir(filepath.Join(dir, "b.txt"), DirOptions{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = LoadDir(filepath.Join(dir, "missing"), DirOptions{})
	assert.True(t, errors.Is(err, errors.ErrCodeDocumentNotFound))
}

func TestLoadAndMerge(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.md"), []byte("# One\n1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.md"), []byte("# Two\n2\n"), 0o644))

	one, err := Load(filepath.Join(dir, "one.md"), 2, DirOptions{})
	require.NoError(t, err)
	two, err := Load(filepath.Join(dir, "two.md"), 2, DirOptions{})
	require.NoError(t, err)

	merged := Merge(one, two)
	assert.Equal(t, []string{"One", "Two"}, headings(merged))
	assert.Equal(t, "one.md", merged.Title)
	assert.Same(t, one, Merge(one))

	whole, err := Load(dir, 2, DirOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one.md", "two.md"}, headings(whole))
}

func TestGenerate(t *testing.T) {
	doc := Generate(3, 4)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Section 2", doc.Sections[1].Heading)
	assert.Equal(t, "section-2", doc.Sections[1].Anchor)
	assert.Len(t, doc.Sections[2].Lines, 4)
	assert.True(t, strings.HasPrefix(doc.Sections[2].Lines[0], "3.1  "))
	assert.Equal(t, 12, doc.Lines())
}
