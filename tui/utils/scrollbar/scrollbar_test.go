package scrollbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
)

func thumbRows(bar []string) []int {
	var rows []int
	for i, cell := range bar {
		if strings.Contains(cell, thumbChar) {
			rows = append(rows, i)
		}
	}
	return rows
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name                  string
		height, total, offset int
		thumb                 []int
	}{
		{"fits entirely", 4, 3, 0, []int{0, 1, 2, 3}},
		{"at top", 4, 16, 0, []int{0}},
		{"at bottom", 4, 16, 12, []int{3}},
		{"halfway", 4, 8, 2, []int{1, 2}},
		{"offset past end clamps", 4, 16, 99, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Generate(tt.height, tt.total, tt.offset)
			assert.Len(t, bar, tt.height)
			assert.Equal(t, tt.thumb, thumbRows(bar))
		})
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	assert.Empty(t, Generate(0, 10, 0))
	assert.Equal(t, []string{" ", " "}, Generate(2, 0, 0))
}

func TestForViewport(t *testing.T) {
	vp := viewport.New(10, 2)
	vp.SetContent("a\nb\nc\nd")
	vp.SetYOffset(2)

	assert.Equal(t, []int{1}, thumbRows(ForViewport(&vp)))
}

func TestAppend(t *testing.T) {
	out := Append([]string{"ab", "cd", "ef"}, []string{"|", "|"})
	assert.Equal(t, "ab|\ncd|\nef ", out)
}
