// Package schema validates sticky.yml documents against the JSON schema
// generated from config.Config and embedded at build time.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed sticky.embedded.schema.json
var embedded []byte

const resourceName = "sticky.json"

// compiled is shared by every Validator; the embedded document never changes.
var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(embedded)); err != nil {
		return nil, fmt.Errorf("failed to add embedded schema resource: %w", err)
	}
	return compiler.Compile(resourceName)
})

// Validator checks decoded configuration values.
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	s, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("failed to compile embedded schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Embedded returns a copy of the embedded schema document.
func Embedded() []byte {
	return bytes.Clone(embedded)
}

// Issues lists every schema violation as "location: message", sorted by
// location.
type Issues []string

func (is Issues) Error() string {
	return "schema validation failed:\n- " + strings.Join(is, "\n- ")
}

// Validate checks data, any value that marshals to JSON, and returns Issues
// when it does not conform.
func (v *Validator) Validate(data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal config for validation: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode config for validation: %w", err)
	}

	err = v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	var issues Issues
	collect(verr, &issues)
	if len(issues) == 0 {
		issues = append(issues, verr.Error())
	}
	sort.Strings(issues)
	return issues
}

// collect walks the cause tree and keeps the leaves, which carry the
// specific message.
func collect(err *jsonschema.ValidationError, issues *Issues) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*issues = append(*issues, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collect(cause, issues)
	}
}
