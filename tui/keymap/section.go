package keymap

import "github.com/charmbracelet/bubbles/key"

// Help overlay group names, in display order.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionSystem     = "System"
)

// Section is a titled group of bindings in the help overlay and in
// `sticky keys`.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is what the help overlay and Export read.
type SectionedKeyMap interface {
	Sections() []Section
}

func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// FilterEnabled drops bindings switched off with SetEnabled(false).
func (s Section) FilterEnabled() []key.Binding {
	enabled := make([]key.Binding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Enabled() {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

func (s Section) IsEmpty() bool {
	for _, b := range s.Bindings {
		if b.Enabled() {
			return false
		}
	}
	return true
}
