// Package frontmatter splits YAML frontmatter off markdown documents.
package frontmatter

import (
	"bytes"

	"github.com/grovetools/sticky/config"
	"gopkg.in/yaml.v3"
)

// Metadata holds the frontmatter fields the viewer understands. Sticky, when
// present, overrides the configured sticky options for that document.
type Metadata struct {
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Tags        []string             `yaml:"tags"`
	Sticky      *config.StickyConfig `yaml:"sticky"`
}

var delimiter = []byte("---")

// Parse splits data into its frontmatter and body. Documents without a
// leading '---' line are returned unchanged with empty metadata, as are
// documents whose frontmatter is never closed.
func Parse(data []byte) (Metadata, []byte, error) {
	var meta Metadata

	rest, ok := cutLine(data, delimiter)
	if !ok {
		return meta, data, nil
	}

	var header [][]byte
	for len(rest) > 0 {
		line, next := splitLine(rest)
		rest = next
		if bytes.Equal(bytes.TrimSpace(line), delimiter) {
			if err := yaml.Unmarshal(bytes.Join(header, []byte("\n")), &meta); err != nil {
				return Metadata{}, data, err
			}
			return meta, rest, nil
		}
		header = append(header, line)
	}
	return meta, data, nil
}

// ParseString is Parse for strings.
func ParseString(content string) (Metadata, string, error) {
	meta, body, err := Parse([]byte(content))
	return meta, string(body), err
}

// cutLine reports whether data starts with a line equal to want and returns
// what follows it.
func cutLine(data, want []byte) ([]byte, bool) {
	line, rest := splitLine(data)
	if !bytes.Equal(bytes.TrimRight(line, " \t"), want) {
		return nil, false
	}
	return rest, true
}

func splitLine(data []byte) ([]byte, []byte) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return bytes.TrimSuffix(data, []byte("\r")), nil
	}
	return bytes.TrimSuffix(data[:i], []byte("\r")), data[i+1:]
}
