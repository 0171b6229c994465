package document

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/util/frontmatter"
	"github.com/grovetools/sticky/util/sanitize"
	"github.com/moby/patternmatcher"
)

// DefaultExclude is always skipped when walking a directory.
var DefaultExclude = []string{".git", "node_modules"}

// DirOptions selects the files LoadDir reads.
type DirOptions struct {
	// Include patterns; empty means every file. Patterns use
	// .dockerignore syntax, including '!' exceptions.
	Include []string
	Exclude []string
}

// LoadDir reads every matching regular file below dir, in lexical order,
// as one section per file headed by its slash-separated relative path.
// Binary files are skipped and markdown frontmatter is dropped.
func LoadDir(dir string, opts DirOptions) (*Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.DocumentNotFound(dir, err)
	}
	if !info.IsDir() {
		return nil, errors.InvalidInput("path", dir, "not a directory")
	}

	exclude, err := patternmatcher.New(append(append([]string{}, DefaultExclude...), opts.Exclude...))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid exclude pattern")
	}
	var include *patternmatcher.PatternMatcher
	if len(opts.Include) > 0 {
		include, err = patternmatcher.New(opts.Include)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid include pattern")
		}
	}

	doc := &Document{Title: filepath.Base(filepath.Clean(dir)), Path: dir}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == "." {
			return err
		}

		skip, err := exclude.MatchesOrParentMatches(rel)
		if err != nil {
			return err
		}
		if skip {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if include != nil {
			ok, err := include.MatchesOrParentMatches(rel)
			if err != nil || !ok {
				return err
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.DocumentNotFound(path, err)
		}
		if isBinary(data) {
			return nil
		}
		if IsMarkdown(path) {
			if _, body, err := frontmatter.Parse(data); err == nil {
				data = body
			}
		}

		heading := filepath.ToSlash(rel)
		doc.Sections = append(doc.Sections, trimTrailing(Section{
			Heading: heading,
			Level:   1,
			Anchor:  sanitize.ForAnchor(heading),
			Lines:   splitLines(data),
			Source:  path,
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// isBinary applies the usual heuristic: a NUL byte near the start.
func isBinary(data []byte) bool {
	head := data
	if len(head) > 8000 {
		head = head[:8000]
	}
	return bytes.IndexByte(head, 0) >= 0
}

// Load reads path as a directory or a single file.
func Load(path string, headingLevel int, opts DirOptions) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.DocumentNotFound(path, err)
	}
	if info.IsDir() {
		return LoadDir(path, opts)
	}
	return LoadFile(path, headingLevel)
}

// Merge concatenates documents into one, titled after the first.
func Merge(docs ...*Document) *Document {
	if len(docs) == 0 {
		return &Document{}
	}
	if len(docs) == 1 {
		return docs[0]
	}
	merged := &Document{Title: docs[0].Title, Path: docs[0].Path, Meta: docs[0].Meta}
	for _, d := range docs {
		merged.Sections = append(merged.Sections, d.Sections...)
	}
	return merged
}
