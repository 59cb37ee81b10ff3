// Package schema validates raw answer mappings against per-mode CUE
// schemas before any scoring runs. Each scoring mode has a closed schema
// enumerating its accepted fields, category domains, and numeric bounds, so
// malformed input fails fast with field-level detail instead of being
// silently defaulted. Closed structs also reject answers belonging to a
// different mode as unknown fields.
package schema

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Schema kinds, one per scoring variant.
const (
	KindEnhanced = "enhanced"
	KindDocument = "document"
	KindGate     = "gate"
)

// KindFor maps a mode and rubric selection to the schema kind that governs
// it. Weighted rubric names double as schema kinds.
func KindFor(mode, rubricName string) string {
	if mode == "gate" {
		return KindGate
	}
	if rubricName == "" {
		return KindEnhanced
	}
	return rubricName
}

// FieldError is one schema violation, located by its field path where CUE
// can attribute one.
type FieldError struct {
	Path   string `json:"path,omitempty"`
	Detail string `json:"detail"`
}

// InvalidInputError reports every violation found in one answers mapping.
type InvalidInputError struct {
	Kind   string
	Fields []FieldError
}

func (e *InvalidInputError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Path != "" {
			parts = append(parts, f.Path+": "+f.Detail)
		} else {
			parts = append(parts, f.Detail)
		}
	}
	return fmt.Sprintf("invalid %s answers: %s", e.Kind, strings.Join(parts, "; "))
}

// Validator holds the compiled schemas. Construct once and share; it is
// safe for concurrent use.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles every embedded schema. A schema that fails to
// compile is a build defect, not a runtime condition, so this errors rather
// than falling back.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	schemas := make(map[string]cue.Value)

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(path.Join("schemas", name))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", name, err)
		}
		inst := ctx.CompileBytes(content, cue.Filename(name))
		if err := inst.Err(); err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", name, err)
		}
		schemas[strings.TrimSuffix(name, ".cue")] = inst
	}

	for _, kind := range []string{KindEnhanced, KindDocument, KindGate} {
		if _, ok := schemas[kind]; !ok {
			return nil, fmt.Errorf("schema %q not embedded", kind)
		}
	}
	return &Validator{ctx: ctx, schemas: schemas}, nil
}

// Validate checks a raw answers mapping against the schema for kind. A nil
// mapping validates: every field is optional and defaults to its worst
// category.
func (v *Validator) Validate(kind string, data map[string]any) error {
	schema, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("no schema for kind %q", kind)
	}
	if data == nil {
		data = map[string]any{}
	}

	value := v.ctx.Encode(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Answers"))
	if !def.Exists() {
		return fmt.Errorf("schema %q has no #Answers definition", kind)
	}

	unified := def.Unify(value)
	if err := unified.Err(); err != nil {
		return invalidInput(kind, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return invalidInput(kind, err)
	}
	return nil
}

func invalidInput(kind string, err error) error {
	var fields []FieldError
	for _, e := range cueerrors.Errors(err) {
		// Msg carries the bare message; Error would repeat the path.
		format, args := e.Msg()
		fields = append(fields, FieldError{
			Path:   strings.Join(e.Path(), "."),
			Detail: fmt.Sprintf(format, args...),
		})
	}
	if len(fields) == 0 {
		fields = append(fields, FieldError{Detail: err.Error()})
	}
	return &InvalidInputError{Kind: kind, Fields: fields}
}
