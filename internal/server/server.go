// Package server wires the MCP server: it compiles the shared answer
// schemas, registers the assessment tools, and serves them over stdio.
// No scoring logic lives here, only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
	"github.com/Rex-Orokumue/Vendor-verification/internal/tools"
)

// New creates the MCP server with all assessment tools registered.
func New(version string, reportOpts report.Options) (*server.MCPServer, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("compiling answer schemas: %w", err)
	}

	s := server.NewMCPServer(
		"vendorverify",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	assessTool := tools.NewAssessTool(validator, reportOpts)
	s.AddTool(assessTool.Definition(), assessTool.Handle)

	screenTool := tools.NewScreenTool(validator, reportOpts)
	s.AddTool(screenTool.Definition(), screenTool.Handle)

	rubricsTool := tools.NewRubricsTool()
	s.AddTool(rubricsTool.Definition(), rubricsTool.Handle)

	return s, nil
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// serverInstructions tells the AI client when to reach for each tool.
func serverInstructions() string {
	return `You have access to a vendor verification server for social-commerce
marketplaces. It scores vendor questionnaires and issues trust badges.

## Tools

- screen_vendor: initial pass/fail onboarding checklist for a new applicant.
  A clean sheet earns a time-limited "Provisionally Verified" badge; any
  unmet requirement fails the screening with a list of issues to resolve.
- assess_vendor: weighted trust assessment against a versioned rubric,
  'enhanced' (100-point, the default) or 'document' (document-centric).
  Returns per-category scores, a total, an APPROVED/CONDITIONAL/REJECTED
  badge, recommendations, and risk factors.
- list_rubrics: lists the rubrics with their categories, factors, and
  accepted answer fields.

## Workflow

1. New applicant: collect the screening answers and call screen_vendor.
2. Established vendor or re-verification: call list_rubrics to learn the
   accepted fields, collect the questionnaire answers, then call
   assess_vendor with the chosen rubric.
3. Answers are passed as one JSON or YAML mapping in the 'answers'
   argument. Unknown fields are rejected; omitted fields score zero in
   weighted mode and count as not satisfied in the screening.`
}
