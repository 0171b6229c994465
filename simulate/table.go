package simulate

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/sticky/tui/components"
	"github.com/grovetools/sticky/tui/components/table"
)

// Table renders the rows. Rows whose set of stuck headers differs from the
// previous row are highlighted unless plain is set.
func (r *Result) Table(plain bool) string {
	opts := table.DefaultOptions()
	opts.Plain = plain
	opts.Highlight = func(row int) bool {
		return row > 0 && row < len(r.Rows) && !sameStuck(r.Rows[row-1].Stuck, r.Rows[row].Stuck)
	}

	t := table.NewWithOptions(opts, "#", "step", "scroll", "frames", "current", "stuck")
	for _, row := range r.Rows {
		stuck := make([]string, len(row.Stuck))
		for i, s := range row.Stuck {
			stuck[i] = s.String()
		}
		t.Row(
			strconv.Itoa(row.Step),
			row.Action,
			strconv.Itoa(row.ScrollTop),
			strconv.Itoa(row.Frames),
			row.Current,
			strings.Join(stuck, ", "),
		)
	}
	return t.String()
}

// Report is the table between a titled header and a summary of the run.
func (r *Result) Report(plain bool) string {
	frames, changes := 0, 0
	for i, row := range r.Rows {
		frames += row.Frames
		if i > 0 && !sameStuck(r.Rows[i-1].Stuck, row.Stuck) {
			changes++
		}
	}
	final := 0
	if len(r.Rows) > 0 {
		final = r.Rows[len(r.Rows)-1].ScrollTop
	}

	name := r.Name
	if name == "" {
		name = "simulation"
	}
	summary := strings.Join([]string{
		components.RenderKeyValue("steps", strconv.Itoa(max(0, len(r.Rows)-1))),
		components.RenderKeyValue("frames", strconv.Itoa(frames)),
		components.RenderKeyValue("header changes", strconv.Itoa(changes)),
		components.RenderKeyValue("final scroll", strconv.Itoa(final)),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(name),
		"",
		r.Table(plain),
		"",
		components.RenderSection("Summary", summary),
	)
}

// JSON renders the result as indented JSON.
func (r *Result) JSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sameStuck(a, b []Stuck) bool {
	return slices.EqualFunc(a, b, func(x, y Stuck) bool {
		return x.Heading == y.Heading
	})
}
