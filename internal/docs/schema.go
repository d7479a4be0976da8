package docs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const schemaURL = "https://docnav.local/document.schema.json"

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Issue is one schema violation found in a document file.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("invalid embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("cannot add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Validate checks a YAML or JSON document file against the document schema.
// It returns the violations found; an empty slice means the file is valid.
// The error is non-nil only when data cannot be parsed at all.
func Validate(data []byte) ([]Issue, error) {
	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("document is not JSON-compatible: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("document is not JSON-compatible: %w", err)
	}

	err = sch.Validate(inst)
	if err == nil {
		return []Issue{}, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []Issue{{Path: "$", Message: err.Error()}}, nil
	}
	p := message.NewPrinter(language.English)
	return collectIssues(verr, p), nil
}

// collectIssues flattens a validation error tree into its leaf causes.
func collectIssues(verr *jsonschema.ValidationError, p *message.Printer) []Issue {
	if len(verr.Causes) == 0 {
		path := "$"
		if len(verr.InstanceLocation) > 0 {
			path = "$." + strings.Join(verr.InstanceLocation, ".")
		}
		return []Issue{{Path: path, Message: verr.ErrorKind.LocalizedString(p)}}
	}
	var out []Issue
	for _, c := range verr.Causes {
		out = append(out, collectIssues(c, p)...)
	}
	return out
}
