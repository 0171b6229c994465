package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/sticky/config"
)

// ApplyOverrides replaces the keys of every key.Binding field of km whose
// snake_case name appears in overrides. Help text is kept, with the first
// new key as its label. Embedded structs are walked too.
//
//	ApplyOverrides(&km, config.KeybindingSectionConfig{"next_section": {"tab"}})
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	applyOverrides(v.Elem(), overrides)
}

var bindingType = reflect.TypeOf(key.Binding{})

func applyOverrides(v reflect.Value, overrides config.KeybindingSectionConfig) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		if !field.CanSet() {
			continue
		}
		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverrides(field, overrides)
			continue
		}
		if fieldType.Type != bindingType {
			continue
		}

		keys, ok := overrides[ConfigKey(fieldType.Name)]
		if !ok || len(keys) == 0 {
			continue
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

// ConfigKey converts a binding field name to its configuration key,
// e.g. NextSection -> next_section.
func ConfigKey(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
