package answers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk dossier. Two layouts are accepted: a structured file
// with a top-level "answers" block (plus optional vendor metadata and mode
// selection), and a bare file that is nothing but the answers mapping.
type File struct {
	Vendor  VendorInfo `yaml:"vendor" json:"vendor"`
	Mode    string     `yaml:"mode" json:"mode"`
	Rubric  string     `yaml:"rubric" json:"rubric"`
	Answers Record     `yaml:"answers" json:"answers"`

	raw map[string]any
}

// RawAnswers returns the answers mapping as parsed, before any typed
// decoding. Schema validation runs against this map so that unknown fields
// and out-of-domain values are caught instead of silently dropped.
func (f *File) RawAnswers() map[string]any {
	return f.raw
}

// Load reads and parses a dossier from path. JSON files parse too, since
// JSON is valid YAML. Schema validation is a separate step.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// Parse decodes dossier bytes in either accepted layout.
func Parse(data []byte) (*File, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, errors.New("empty answers document")
	}

	if rawBlock, ok := doc["answers"]; ok {
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		f.raw, ok = rawBlock.(map[string]any)
		if !ok {
			return nil, errors.New("answers block must be a mapping")
		}
		return &f, nil
	}

	// Bare layout: the whole document is the answers mapping.
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &File{Answers: rec, raw: doc}, nil
}

// FromMap builds a Record from a raw answers mapping, as received over HTTP
// or MCP. The mapping should be schema-validated first.
func FromMap(m map[string]any) (Record, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return Record{}, fmt.Errorf("encoding answers: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decoding answers: %w", err)
	}
	return rec, nil
}
