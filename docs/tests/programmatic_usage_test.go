package docs_test

import (
	"strings"
	"testing"

	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/tools"
)

// TestIntegrationsInternalScope verifies the guide steers integrators away
// from the internal packages
func TestIntegrationsInternalScope(t *testing.T) {
	s := readDoc(t, "guides", "integrations.md")

	if !strings.Contains(s, "internal/...") || !strings.Contains(s, "not a supported external API surface") {
		t.Error("Missing internal API scope statement")
	}
	if !strings.Contains(s, "```go") {
		t.Error("Import path not shown in a Go code block")
	}
}

// TestIntegrationsHTTPEndpoints verifies every route is documented
func TestIntegrationsHTTPEndpoints(t *testing.T) {
	s := readDoc(t, "guides", "integrations.md")

	if !strings.Contains(s, "## HTTP API") {
		t.Error("Missing HTTP API section")
	}
	if !strings.Contains(s, "vendorverify serve") {
		t.Error("Missing serve command to start the API")
	}

	endpoints := []string{
		"/healthz",
		"/api/v1/rubrics",
		"/api/v1/rubrics/{name}",
		"/api/v1/assessments",
		"/api/v1/certificates",
	}
	for _, ep := range endpoints {
		if !strings.Contains(s, ep) {
			t.Errorf("Missing endpoint documentation: %s", ep)
		}
	}
}

// TestIntegrationsAssessmentExample verifies a complete request/response
// pair is shown
func TestIntegrationsAssessmentExample(t *testing.T) {
	s := readDoc(t, "guides", "integrations.md")

	if !strings.Contains(s, "curl") {
		t.Error("Missing curl request example")
	}
	if !strings.Contains(s, `"mode": "weighted"`) {
		t.Error("Request example missing the required mode field")
	}
	if !strings.Contains(s, `"badge"`) {
		t.Error("Response example missing the badge")
	}
	if !strings.Contains(s, `"risk_factors"`) {
		t.Error("Response example missing the risk factors")
	}
}

// TestIntegrationsErrorCodes verifies the error envelope and codes are listed
func TestIntegrationsErrorCodes(t *testing.T) {
	s := readDoc(t, "guides", "integrations.md")

	codes := []string{
		"invalid_body",
		"invalid_format",
		"not_found",
		"mode_mismatch",
		"invalid_answers",
		"invalid_request",
	}
	for _, code := range codes {
		if !strings.Contains(s, "`"+code+"`") {
			t.Errorf("Missing error code documentation: %s", code)
		}
	}

	if !strings.Contains(s, `"fields"`) {
		t.Error("Missing structured fields array in the error example")
	}
}

// TestIntegrationsMCPTools keeps the documented tool names in step with the
// registered tool definitions.
func TestIntegrationsMCPTools(t *testing.T) {
	s := readDoc(t, "guides", "integrations.md")

	if !strings.Contains(s, "## MCP Server") {
		t.Error("Missing MCP Server section")
	}
	if !strings.Contains(s, "vendorverify mcp") {
		t.Error("Missing mcp command to start the server")
	}
	if !strings.Contains(s, "mcpServers") {
		t.Error("Missing MCP client configuration example")
	}

	opts := report.Options{}
	names := []string{
		tools.NewAssessTool(nil, opts).Definition().Name,
		tools.NewScreenTool(nil, opts).Definition().Name,
		tools.NewRubricsTool().Definition().Name,
	}
	for _, name := range names {
		if !strings.Contains(s, "`"+name+"`") {
			t.Errorf("Missing documented MCP tool: %s", name)
		}
	}
}
