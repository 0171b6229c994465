package simulate

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/tui/sticky"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

const viewportScript = `
name: viewport
steps:
  - scroll: 12
  - scroll: 22
  - jump: 0
  - touch: move
  - event: load
`

func TestParseYAML(t *testing.T) {
	s, err := Parse("viewport.yml", []byte(viewportScript))
	require.NoError(t, err)

	assert.Equal(t, "viewport", s.Name)
	assert.Equal(t, Size{Width: 40, Height: 5}, s.Window)
	assert.Equal(t, 3, s.Document.Sections)
	assert.Equal(t, 10, s.Document.Lines)
	require.Len(t, s.Steps, 5)
	assert.Equal(t, "scroll 12", s.Steps[0].Describe())
	assert.Equal(t, "jump 0", s.Steps[2].Describe())
	assert.Equal(t, "touch move", s.Steps[3].Describe())
}

func TestParseTOML(t *testing.T) {
	data := `
name = "relative"

[window]
width = 60
height = 8

[sticky]
relative = true

[[steps]]
scroll_by = 4

[[steps]]
resize = { width = 50, height = 6 }
`
	s, err := Parse("relative.toml", []byte(data))
	require.NoError(t, err)
	assert.True(t, s.Sticky.Relative)
	assert.Equal(t, 60, s.Window.Width)
	assert.Equal(t, "scroll_by +4", s.Steps[0].Describe())
	assert.Equal(t, "resize 50x6", s.Steps[1].Describe())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no steps", "name: empty\n"},
		{"empty step", "steps:\n  - {}\n"},
		{"two actions", "steps:\n  - scroll: 1\n    touch: start\n"},
		{"unknown touch", "steps:\n  - touch: tap\n"},
		{"unknown event", "steps:\n  - event: focus\n"},
		{"unknown field", "steps:\n  - wheel: 3\n"},
		{"negative window", "window: {width: -1}\nsteps:\n  - scroll: 1\n"},
		{"not yaml", "steps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.yml", []byte(tt.script))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeScriptInvalid), "got %v", err)
		})
	}
}

func TestLoadResolvesDocumentPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("## A\none\n## B\ntwo\n"), 0644))
	script := filepath.Join(dir, "run.yml")
	require.NoError(t, os.WriteFile(script, []byte("document: {path: notes.md}\nsteps:\n  - scroll: 1\n"), 0644))

	s, err := Load(script)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.md"), s.Document.Path)

	res, err := Run(s, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "A", res.Rows[0].Current)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeDocumentNotFound))
}

func TestRunViewport(t *testing.T) {
	s, err := Parse("viewport.yml", []byte(viewportScript))
	require.NoError(t, err)

	res, err := Run(s, quietLogger())
	require.NoError(t, err)
	require.Len(t, res.Rows, 6)

	init := res.Rows[0]
	assert.Equal(t, "init", init.Action)
	assert.Equal(t, 3, init.Frames, "one frame per section broadcaster")
	require.Len(t, init.Stuck, 1)
	assert.Equal(t, "Section 1", init.Stuck[0].Heading)

	scrolled := res.Rows[1]
	assert.Equal(t, 12, scrolled.ScrollTop)
	assert.Equal(t, "Section 2", scrolled.Current)
	require.Len(t, scrolled.Stuck, 1)
	assert.Equal(t, Stuck{Heading: "Section 2", Position: sticky.PositionFixed, Top: 0, Height: 1}, scrolled.Stuck[0])

	assert.Equal(t, "Section 3", res.Rows[2].Stuck[0].Heading)
	assert.Equal(t, 0, res.Rows[3].ScrollTop)
	assert.Equal(t, "Section 1", res.Rows[3].Stuck[0].Heading)
	assert.Contains(t, res.View, "Section 1")
}

func TestRunRelative(t *testing.T) {
	s, err := Parse("relative.yml", []byte("sticky: {relative: true}\nsteps:\n  - event: resize\n  - scroll: 12\n"))
	require.NoError(t, err)

	res, err := Run(s, quietLogger())
	require.NoError(t, err)

	assert.Empty(t, res.Rows[0].Stuck, "viewport events alone never engage")
	assert.Empty(t, res.Rows[1].Stuck)
	require.Len(t, res.Rows[2].Stuck, 2)
	assert.Equal(t, sticky.PositionAbsolute, res.Rows[2].Stuck[1].Position)
}

func TestRunJumpOutOfRange(t *testing.T) {
	s, err := Parse("jump.yml", []byte("steps:\n  - jump: 9\n"))
	require.NoError(t, err)

	_, err = Run(s, quietLogger())
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestResultOutput(t *testing.T) {
	s, err := Parse("viewport.yml", []byte(viewportScript))
	require.NoError(t, err)
	res, err := Run(s, quietLogger())
	require.NoError(t, err)

	out := res.Table(true)
	assert.Contains(t, out, "scroll 12")
	assert.Contains(t, out, "Section 2 fixed@0")

	js, err := res.JSON()
	require.NoError(t, err)
	assert.Contains(t, js, `"action": "scroll 22"`)
}

func TestResultReport(t *testing.T) {
	s, err := Parse("viewport.yml", []byte(viewportScript))
	require.NoError(t, err)
	res, err := Run(s, quietLogger())
	require.NoError(t, err)

	out := res.Report(true)
	assert.Contains(t, out, "viewport")
	assert.Contains(t, out, "scroll 22")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "steps:")
	assert.Contains(t, out, "final scroll:")
}
