package keymap

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// SectionInfo is a serializable keybinding section.
type SectionInfo struct {
	Name     string        `json:"name" yaml:"name"`
	Bindings []BindingInfo `json:"bindings" yaml:"bindings"`
}

// BindingInfo is a serializable keybinding.
type BindingInfo struct {
	Keys        []string `json:"keys" yaml:"keys"`
	Description string   `json:"description" yaml:"description"`
	ConfigKey   string   `json:"config_key,omitempty" yaml:"config_key,omitempty"`
	Enabled     bool     `json:"enabled" yaml:"enabled"`
}

// Export describes km's sections, resolving each binding's config key by
// matching help descriptions against km's fields.
func Export(km SectionedKeyMap) []SectionInfo {
	configKeys := make(map[string]string)
	collectConfigKeys(reflect.ValueOf(km), configKeys)

	sections := km.Sections()
	out := make([]SectionInfo, 0, len(sections))
	for _, s := range sections {
		info := SectionInfo{Name: s.Name, Bindings: make([]BindingInfo, 0, len(s.Bindings))}
		for _, b := range s.Bindings {
			info.Bindings = append(info.Bindings, BindingInfo{
				Keys:        b.Keys(),
				Description: b.Help().Desc,
				ConfigKey:   configKeys[b.Help().Desc],
				Enabled:     b.Enabled(),
			})
		}
		out = append(out, info)
	}
	return out
}

func collectConfigKeys(v reflect.Value, m map[string]string) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		val := v.Field(i)
		if field.Anonymous {
			collectConfigKeys(val, m)
			continue
		}
		if field.Type != bindingType || !val.CanInterface() {
			continue
		}
		if b := val.Interface().(key.Binding); b.Help().Desc != "" {
			m[b.Help().Desc] = ConfigKey(field.Name)
		}
	}
}
