// Package simulate replays scripted resize, scroll and touch steps against a
// scene and records the sticky state after every frame.
package simulate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/util/pathutil"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Script describes one scenario.
type Script struct {
	Name     string              `yaml:"name" toml:"name"`
	Window   Size                `yaml:"window" toml:"window"`
	Document DocumentSpec        `yaml:"document" toml:"document"`
	Sticky   config.StickyConfig `yaml:"sticky" toml:"sticky"`
	Steps    []Step              `yaml:"steps" toml:"steps"`
}

// Size is a window size in cells.
type Size struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// DocumentSpec is either a file to load or generated sections.
type DocumentSpec struct {
	Path         string `yaml:"path,omitempty" toml:"path,omitempty"`
	HeadingLevel int    `yaml:"heading_level,omitempty" toml:"heading_level,omitempty"`
	Sections     int    `yaml:"sections,omitempty" toml:"sections,omitempty"`
	Lines        int    `yaml:"lines,omitempty" toml:"lines,omitempty"`
}

// Step is a single action. Exactly one field is set.
type Step struct {
	Scroll   *int                 `yaml:"scroll,omitempty" toml:"scroll,omitempty"`
	ScrollBy *int                 `yaml:"scroll_by,omitempty" toml:"scroll_by,omitempty"`
	Jump     *int                 `yaml:"jump,omitempty" toml:"jump,omitempty"`
	Resize   *Size                `yaml:"resize,omitempty" toml:"resize,omitempty"`
	Touch    string               `yaml:"touch,omitempty" toml:"touch,omitempty"`
	Event    string               `yaml:"event,omitempty" toml:"event,omitempty"`
	Options  *config.StickyConfig `yaml:"options,omitempty" toml:"options,omitempty"`
	Append   []string             `yaml:"append,omitempty" toml:"append,omitempty"`
}

// Describe renders the step the way it is shown in results.
func (s Step) Describe() string {
	switch {
	case s.Scroll != nil:
		return fmt.Sprintf("scroll %d", *s.Scroll)
	case s.ScrollBy != nil:
		return fmt.Sprintf("scroll_by %+d", *s.ScrollBy)
	case s.Jump != nil:
		return fmt.Sprintf("jump %d", *s.Jump)
	case s.Resize != nil:
		return fmt.Sprintf("resize %dx%d", s.Resize.Width, s.Resize.Height)
	case s.Touch != "":
		return "touch " + s.Touch
	case s.Event != "":
		return "event " + s.Event
	case s.Options != nil:
		return "options"
	case len(s.Append) > 0:
		return fmt.Sprintf("append %d", len(s.Append))
	default:
		return "noop"
	}
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Scroll != nil, s.ScrollBy != nil, s.Jump != nil, s.Resize != nil,
		s.Touch != "", s.Event != "", s.Options != nil, len(s.Append) > 0,
	} {
		if set {
			n++
		}
	}
	return n
}

var (
	touchKinds = map[string]bool{"start": true, "move": true, "end": true}
	eventKinds = map[string]bool{"resize": true, "pageshow": true, "load": true}
)

// Load reads a script from path. Files ending in .toml are TOML, anything
// else is YAML.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.DocumentNotFound(path, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a script. name is used in errors and to pick
// the format.
func Parse(name string, data []byte) (*Script, error) {
	var s Script
	if strings.HasSuffix(name, ".toml") {
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, errors.ScriptInvalid(name, err.Error())
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, errors.ScriptInvalid(name, err.Error())
		}
	}

	switch p := s.Document.Path; {
	case strings.HasPrefix(p, "~") || strings.Contains(p, "$"):
		expanded, err := pathutil.Expand(p)
		if err != nil {
			return nil, errors.ScriptInvalid(name, err.Error())
		}
		s.Document.Path = expanded
	case p != "" && !filepath.IsAbs(p):
		s.Document.Path = filepath.Join(filepath.Dir(name), p)
	}
	s.setDefaults()

	if err := s.validate(name); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) setDefaults() {
	if s.Name == "" {
		s.Name = "simulation"
	}
	if s.Window.Width == 0 {
		s.Window.Width = 40
	}
	if s.Window.Height == 0 {
		s.Window.Height = 5
	}
	if s.Document.Path == "" {
		if s.Document.Sections == 0 {
			s.Document.Sections = 3
		}
		if s.Document.Lines == 0 {
			s.Document.Lines = 10
		}
	}
	if s.Document.HeadingLevel == 0 {
		s.Document.HeadingLevel = 2
	}
}

func (s *Script) validate(name string) error {
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return errors.ScriptInvalid(name, "window size must not be negative")
	}
	if s.Document.Sections < 0 || s.Document.Lines < 0 {
		return errors.ScriptInvalid(name, "document sections and lines must not be negative")
	}
	if len(s.Steps) == 0 {
		return errors.ScriptInvalid(name, "no steps")
	}
	for i, step := range s.Steps {
		switch step.actions() {
		case 0:
			return errors.ScriptInvalid(name, fmt.Sprintf("step %d has no action", i+1))
		case 1:
		default:
			return errors.ScriptInvalid(name, fmt.Sprintf("step %d has more than one action", i+1))
		}
		if step.Touch != "" && !touchKinds[step.Touch] {
			return errors.ScriptInvalid(name, fmt.Sprintf("step %d: unknown touch %q (start, move or end)", i+1, step.Touch))
		}
		if step.Event != "" && !eventKinds[step.Event] {
			return errors.ScriptInvalid(name, fmt.Sprintf("step %d: unknown event %q (resize, pageshow or load)", i+1, step.Event))
		}
		if step.Resize != nil && (step.Resize.Width < 0 || step.Resize.Height < 0) {
			return errors.ScriptInvalid(name, fmt.Sprintf("step %d: negative size", i+1))
		}
	}
	return nil
}
