package simulate

import (
	"fmt"

	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/scene"
	"github.com/grovetools/sticky/tui/scroll"
	"github.com/grovetools/sticky/tui/sticky"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/sirupsen/logrus"
)

// Row is the scene's state after one step and the frames it caused.
type Row struct {
	Step      int     `json:"step"`
	Action    string  `json:"action"`
	ScrollTop int     `json:"scroll_top"`
	Frames    int     `json:"frames"`
	Current   string  `json:"current"`
	Stuck     []Stuck `json:"stuck"`
}

// Stuck describes one pinned header.
type Stuck struct {
	Heading  string          `json:"heading"`
	Position sticky.Position `json:"position"`
	Top      float64         `json:"top"`
	Height   float64         `json:"height"`
}

func (s Stuck) String() string {
	return fmt.Sprintf("%s %s@%g", s.Heading, s.Position, s.Top)
}

// Result is the outcome of a run.
type Result struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
	// View is the composed window after the last step.
	View string `json:"view"`
}

// Run replays s. Frames are flushed after every step, so each row shows
// the state a user would see once the frame after that step was drawn.
func Run(s *Script, logger *logrus.Entry) (*Result, error) {
	doc, err := loadDocument(s.Document)
	if err != nil {
		return nil, err
	}

	sched := frame.NewManualScheduler()
	sc := scene.New(sched,
		scene.WithLogger(logger),
		scene.WithTheme(theme.NewThemeWithName("terminal")),
		scene.WithStickyOptions(scene.OptionsFromConfig(s.Sticky)),
	)
	defer sc.Close()

	sc.SetSize(s.Window.Width, s.Window.Height)
	sc.SetDocument(doc)
	sc.Show()

	res := &Result{Name: s.Name}
	res.Rows = append(res.Rows, snapshot(sc, 0, "init", sched.Flush()))

	for i, step := range s.Steps {
		if err := apply(sc, step); err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, snapshot(sc, i+1, step.Describe(), sched.Flush()))
		logger.WithFields(logrus.Fields{
			"step":   i + 1,
			"action": step.Describe(),
			"scroll": sc.ScrollTop(),
		}).Debug("Step applied")
	}

	res.View = sc.View()
	return res, nil
}

func loadDocument(spec DocumentSpec) (*document.Document, error) {
	if spec.Path != "" {
		return document.Load(spec.Path, spec.HeadingLevel, document.DirOptions{})
	}
	return document.Generate(spec.Sections, spec.Lines), nil
}

var touches = map[string]scroll.EventKind{
	"start": scroll.TouchStart,
	"move":  scroll.TouchMove,
	"end":   scroll.TouchEnd,
}

func apply(sc *scene.Scene, step Step) error {
	switch {
	case step.Scroll != nil:
		sc.ScrollTo(*step.Scroll)
	case step.ScrollBy != nil:
		sc.ScrollBy(*step.ScrollBy)
	case step.Jump != nil:
		if *step.Jump < 0 || *step.Jump >= len(sc.Sections()) {
			return errors.InvalidInput("jump", *step.Jump, "no such section")
		}
		sc.JumpTo(*step.Jump)
	case step.Resize != nil:
		sc.SetSize(step.Resize.Width, step.Resize.Height)
	case step.Touch != "":
		sc.Touch(touches[step.Touch])
	case step.Event != "":
		kind, _ := scroll.ParseEventKind(step.Event)
		sc.Notify(kind)
	case step.Options != nil:
		sc.SetOptions(scene.OptionsFromConfig(*step.Options))
	case len(step.Append) > 0:
		sc.AppendLines(step.Append...)
	}
	return nil
}

func snapshot(sc *scene.Scene, step int, action string, frames int) Row {
	row := Row{
		Step:      step,
		Action:    action,
		ScrollTop: sc.ScrollTop(),
		Frames:    frames,
	}
	sections := sc.Sections()
	if i := sc.Current(); i >= 0 {
		row.Current = sections[i].Heading
	}
	for _, i := range sc.Stuck() {
		st := sections[i].State
		row.Stuck = append(row.Stuck, Stuck{
			Heading:  sections[i].Heading,
			Position: st.Style.Position,
			Top:      st.Style.Top,
			Height:   st.CalculatedHeight,
		})
	}
	return row
}
