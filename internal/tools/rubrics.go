package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

// RubricsTool handles the list_rubrics MCP tool.
type RubricsTool struct{}

// NewRubricsTool creates a RubricsTool.
func NewRubricsTool() *RubricsTool {
	return &RubricsTool{}
}

type rubricInfo struct {
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Title      string         `json:"title"`
	Default    bool           `json:"default"`
	Categories []categoryInfo `json:"categories"`
}

type categoryInfo struct {
	Name    string       `json:"name"`
	Max     float64      `json:"max"`
	Factors []factorInfo `json:"factors"`
}

type factorInfo struct {
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Max     float64  `json:"max"`
	Options []string `json:"options,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *RubricsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_rubrics",
		mcp.WithDescription(
			"List the available weighted scoring rubrics with their categories, "+
				"factors, and accepted answer fields. Use this to learn which fields "+
				"assess_vendor accepts for each rubric before collecting answers.",
		),
	)
}

// Handle processes the list_rubrics tool call.
func (t *RubricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := make([]rubricInfo, 0, len(rubric.Names()))
	for _, name := range rubric.Names() {
		rb, err := rubric.ByName(name)
		if err != nil {
			continue
		}
		info := rubricInfo{
			Name:    rb.Name,
			Version: rb.Version,
			Title:   rb.Title,
			Default: rb.Name == rubric.DefaultName,
		}
		for _, cat := range rb.Categories {
			ci := categoryInfo{Name: cat.Name, Max: cat.Max}
			for _, f := range cat.Factors {
				ci.Factors = append(ci.Factors, factorInfo{
					Field:   f.Field,
					Label:   f.Label,
					Kind:    f.Kind.String(),
					Max:     f.Max(),
					Options: f.Rank,
				})
			}
			info.Categories = append(info.Categories, ci)
		}
		infos = append(infos, info)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding rubrics: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
