// Package stickyview is the bubbletea model of the document viewer: a
// scrollable scene of sections whose headers stick to the top of the
// window, with a scrollbar, a status bar and a help overlay.
package stickyview

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/tui/components/help"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/keymap"
	"github.com/grovetools/sticky/tui/scene"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/sirupsen/logrus"
)

// wheelDelta is how many rows one wheel notch scrolls.
const wheelDelta = 3

// Model is the viewer.
type Model struct {
	cfg    *config.Config
	doc    *document.Document
	logger *logrus.Entry
	theme  *theme.Theme

	sched *frame.TickScheduler
	scene *scene.Scene
	vp    viewport.Model
	keys  keymap.Base
	seq   *keymap.SequenceState
	help  help.Model

	follower  *document.Follower
	following bool

	watcher *config.Watcher
	reloads chan ReloadMsg
	cancel  context.CancelFunc

	width, height int
	showScrollbar bool
	showStatus    bool
	ready         bool

	dragging bool
	dragY    int

	status string
}

// Option configures a Model.
type Option func(*Model) error

// WithConfig sets the configuration. Without it defaults are used.
func WithConfig(cfg *config.Config) Option {
	return func(m *Model) error {
		m.cfg = cfg
		return nil
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(m *Model) error {
		m.logger = logger
		return nil
	}
}

// WithFollow tails path and appends what is written to it to the last
// section. Following starts enabled.
func WithFollow(path string) Option {
	return func(m *Model) error {
		f, err := document.Follow(path, m.logger)
		if err != nil {
			return err
		}
		m.follower = f
		m.following = true
		return nil
	}
}

// WithConfigWatch reloads the configuration when path changes on disk.
func WithConfigWatch(path string) Option {
	return func(m *Model) error {
		reloads := make(chan ReloadMsg, 1)
		w, err := config.NewWatcher(path, 0, m.logger, func(cfg *config.Config, err error) {
			// Only the newest reload matters
			select {
			case <-reloads:
			default:
			}
			reloads <- ReloadMsg{Config: cfg, Err: err}
		})
		if err != nil {
			return err
		}
		m.watcher = w
		m.reloads = reloads
		return nil
	}
}

// New creates a viewer for doc.
func New(doc *document.Document, opts ...Option) (*Model, error) {
	m := &Model{
		doc:    doc,
		logger: logging.NewLogger("viewer"),
		seq:    keymap.NewSequenceState(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.Close()
			return nil, err
		}
	}
	if m.cfg == nil {
		m.cfg = config.Default()
	}

	m.theme = themeFor(m.cfg)
	m.sched = frame.NewTickScheduler(m.cfg.Frame.Duration())
	m.scene = scene.New(m.sched,
		scene.WithLogger(m.logger),
		scene.WithTheme(m.theme),
		scene.WithStickyOptions(scene.OptionsFromConfig(m.stickyConfig())),
	)
	m.keys = keymap.Load(m.cfg)
	m.help = help.New(m.keys)
	m.help.Theme = m.theme
	m.help.Title = "Keybindings"
	m.applyViewConfig()

	m.vp = viewport.New(0, 0)
	m.vp.MouseWheelDelta = wheelDelta
	// Keys are routed through the keymap, never the viewport's defaults
	m.vp.KeyMap = viewport.KeyMap{}

	m.scene.SetDocument(doc)
	return m, nil
}

// stickyConfig is the configured sticky defaults with the document's
// frontmatter applied on top.
func (m *Model) stickyConfig() config.StickyConfig {
	sc := m.cfg.Sticky
	if m.doc != nil {
		sc = sc.Overlay(m.doc.Meta.Sticky)
	}
	return sc
}

func (m *Model) applyViewConfig() {
	m.showScrollbar = m.cfg.View.ShowScrollbar == nil || *m.cfg.View.ShowScrollbar
	m.showStatus = m.cfg.View.ShowStatus == nil || *m.cfg.View.ShowStatus
}

func themeFor(cfg *config.Config) *theme.Theme {
	if cfg.TUI != nil && cfg.TUI.Theme != "" {
		return theme.NewThemeWithName(cfg.TUI.Theme)
	}
	return theme.DefaultTheme
}

// Scene exposes the scene for inspection.
func (m *Model) Scene() *scene.Scene {
	return m.scene
}

// Following reports whether new lines keep the view pinned to the bottom.
func (m *Model) Following() bool {
	return m.following
}

// Close stops following and watching and unmounts the scene.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	if m.follower != nil {
		m.follower.Stop()
		m.follower = nil
	}
	if m.scene != nil {
		m.scene.Close()
	}
}
