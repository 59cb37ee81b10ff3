package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

// AssessTool handles the assess_vendor MCP tool. It runs a weighted
// rubric assessment and returns the full report as JSON.
type AssessTool struct {
	validator  *schema.Validator
	reportOpts report.Options
}

// NewAssessTool creates an AssessTool with its dependencies.
func NewAssessTool(validator *schema.Validator, reportOpts report.Options) *AssessTool {
	return &AssessTool{validator: validator, reportOpts: reportOpts}
}

// Definition returns the MCP tool definition for registration.
func (t *AssessTool) Definition() mcp.Tool {
	return mcp.NewTool("assess_vendor",
		mcp.WithDescription(
			"Run a weighted trust assessment for an online vendor. "+
				"Scores the collected questionnaire answers against a versioned rubric, "+
				"classifies the total into an APPROVED/CONDITIONAL/REJECTED badge, and "+
				"returns the full assessment report as JSON, including per-category "+
				"scores, recommendations, and risk factors. "+
				"Unknown answer fields are rejected, so send only fields belonging to "+
				"the chosen rubric.",
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description("Questionnaire answers as a JSON or YAML mapping. "+
				`Example: '{"name": true, "phones_verified": 2, "registration": "cac"}'. `+
				"Omitted fields score zero."),
		),
		mcp.WithString("rubric",
			mcp.Description("Rubric to score against: 'enhanced' (default) or 'document'."),
		),
		mcp.WithString("vendor_name",
			mcp.Description("Vendor business or individual name for the report header."),
		),
		mcp.WithString("vendor_category",
			mcp.Description("Vendor business category, e.g. 'Fashion' or 'Electronics'."),
		),
		mcp.WithString("assessed_date",
			mcp.Description("Assessment date in YYYY-MM-DD form. Defaults to today."),
		),
	)
}

// Handle processes the assess_vendor tool call.
func (t *AssessTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("answers", "")
	if raw == "" {
		return mcp.NewToolResultError("'answers' is required: pass the questionnaire answers as a JSON or YAML mapping"), nil
	}

	answerMap, err := parseAnswers(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rubricName := req.GetString("rubric", "")
	if err := t.validator.Validate(schema.KindFor("weighted", rubricName), answerMap); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := answers.FromMap(answerMap)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	assessment, err := engine.Assess(engine.Request{
		Mode:   engine.ModeWeighted,
		Rubric: rubricName,
		Vendor: answers.VendorInfo{
			Name:     req.GetString("vendor_name", ""),
			Category: req.GetString("vendor_category", ""),
			Assessed: req.GetString("assessed_date", ""),
		},
		Answers: rec,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := renderReport(report.New(assessment, t.reportOpts))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}
