package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainTable(t *testing.T) {
	opts := DefaultOptions()
	opts.Plain = true

	out := NewWithOptions(opts, "step", "scroll").
		Row("0", "init").
		Row("1", "12").
		String()

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6, "top border, header, separator, two rows, bottom border")
	assert.Contains(t, lines[1], "step")
	assert.Contains(t, lines[4], "12")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
}

func TestHighlight(t *testing.T) {
	opts := DefaultOptions()
	var seen []int
	opts.Highlight = func(row int) bool {
		seen = append(seen, row)
		return row == 1
	}

	out := NewWithOptions(opts, "a").Row("x").Row("y").String()
	assert.Contains(t, out, "y")
	assert.Contains(t, seen, 1)
}

func TestBorderless(t *testing.T) {
	opts := DefaultOptions()
	opts.Bordered = false
	opts.Plain = true

	out := NewWithOptions(opts, "key", "action").Row("gg", "top").String()
	assert.NotContains(t, out, "│")
	assert.Contains(t, out, "gg")
}
