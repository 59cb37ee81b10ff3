package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

// ScreenTool handles the screen_vendor MCP tool. It runs the pass/fail
// onboarding checklist instead of a weighted score.
type ScreenTool struct {
	validator  *schema.Validator
	reportOpts report.Options
}

// NewScreenTool creates a ScreenTool with its dependencies.
func NewScreenTool(validator *schema.Validator, reportOpts report.Options) *ScreenTool {
	return &ScreenTool{validator: validator, reportOpts: reportOpts}
}

// Definition returns the MCP tool definition for registration.
func (t *ScreenTool) Definition() mcp.Tool {
	return mcp.NewTool("screen_vendor",
		mcp.WithDescription(
			"Run the initial pass/fail screening checklist for a vendor applying to "+
				"the platform. Every unmet requirement is reported as an issue; a clean "+
				"sheet earns a time-limited 'Provisionally Verified' badge. "+
				"There is no score in this mode; use assess_vendor for weighted scoring.",
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description("Screening answers as a JSON or YAML mapping. "+
				`Example: '{"name": true, "phone": true, "id_photo": true}'. `+
				"Omitted fields count as not satisfied."),
		),
		mcp.WithString("vendor_name",
			mcp.Description("Vendor business or individual name for the report header."),
		),
		mcp.WithString("vendor_category",
			mcp.Description("Vendor business category, e.g. 'Fashion' or 'Electronics'."),
		),
		mcp.WithString("assessed_date",
			mcp.Description("Screening date in YYYY-MM-DD form. Defaults to today."),
		),
	)
}

// Handle processes the screen_vendor tool call.
func (t *ScreenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("answers", "")
	if raw == "" {
		return mcp.NewToolResultError("'answers' is required: pass the screening answers as a JSON or YAML mapping"), nil
	}

	answerMap, err := parseAnswers(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.validator.Validate(schema.KindGate, answerMap); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := answers.FromMap(answerMap)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	assessment, err := engine.Assess(engine.Request{
		Mode: engine.ModeGate,
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
