// Package tools implements the MCP tools that expose vendor assessment to
// AI assistants. Each tool owns its definition and handler; validation
// failures are returned as tool errors so the caller can correct the input,
// while infrastructure failures propagate as Go errors.
package tools

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
)

// parseAnswers decodes a JSON or YAML answers mapping. The YAML decoder
// covers both syntaxes and keeps counts as integers for schema validation.
func parseAnswers(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := yaml.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return m, nil
}

// renderReport serializes a report for a tool result.
func renderReport(rep *report.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
