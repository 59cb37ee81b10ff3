package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

// --- Test helpers ---

func newValidator(t *testing.T) *schema.Validator {
	t.Helper()
	v, err := schema.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

var testOpts = report.Options{Now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// --- AssessTool ---

func TestAssessToolSuccess(t *testing.T) {
	tool := NewAssessTool(newValidator(t), testOpts)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"answers":         `{"name": true, "phones_verified": 2, "registration": "cac"}`,
		"vendor_name":     "Mama Chidinma Ventures",
		"vendor_category": "Fashion",
		"assessed_date":   "2024-03-05",
	}

	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	for _, want := range []string{`"total": 25`, `"rubric": "enhanced"`, `"VVS-`, "Mama Chidinma Ventures"} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestAssessToolYAMLAnswers(t *testing.T) {
	tool := NewAssessTool(newValidator(t), testOpts)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"answers": "name: true\nphone: true\n",
		"rubric":  "document",
	}

	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	if !strings.Contains(text, `"rubric": "document"`) {
		t.Errorf("result missing document rubric:\n%s", text)
	}
	if !strings.Contains(text, `"total": 7`) {
		t.Errorf("result missing total 7:\n%s", text)
	}
}

func TestAssessToolErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name:    "missing answers",
			args:    map[string]interface{}{},
			wantMsg: "'answers' is required",
		},
		{
			name:    "malformed answers",
			args:    map[string]interface{}{"answers": "{{{"},
			wantMsg: "parsing answers",
		},
		{
			name:    "cross-mode field",
			args:    map[string]interface{}{"answers": `{"name": true, "location": true}`},
			wantMsg: "location",
		},
		{
			name:    "out of enum",
			args:    map[string]interface{}{"answers": `{"registration": "notarized"}`},
			wantMsg: "registration",
		},
		{
			name:    "unknown rubric",
			args:    map[string]interface{}{"answers": `{"name": true}`, "rubric": "legacy"},
			wantMsg: "legacy",
		},
	}

	tool := NewAssessTool(newValidator(t), testOpts)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := tool.Handle(context.Background(), req)
			if err != nil {
				t.Fatalf("Handle failed: %v", err)
			}
			if !isErrorResult(result) {
				t.Fatalf("expected tool error, got success: %s", getResultText(result))
			}
			if text := getResultText(result); !strings.Contains(text, tt.wantMsg) {
				t.Errorf("error = %q, want mention of %q", text, tt.wantMsg)
			}
		})
	}
}

// --- ScreenTool ---

func TestScreenToolPass(t *testing.T) {
	tool := NewScreenTool(newValidator(t), testOpts)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"answers": `{
			"name": true, "phone": true, "location": true, "id_photo": true,
			"supplier_proof_provided": true, "agreed_to_rules": true,
			"video_call_verification": true, "responsiveness_rating": 3
		}`,
		"vendor_name":   "Quick Stitches",
		"assessed_date": "2024-03-05",
	}

	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	for _, want := range []string{`"passed": true`, "Provisionally Verified", `"valid_until"`, `"total": null`} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestScreenToolFail(t *testing.T) {
	tool := NewScreenTool(newValidator(t), testOpts)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"answers": `{"name": true}`,
	}

	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	for _, want := range []string{`"passed": false`, "Phone number not provided", `"total": null`} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, `"valid_until"`) {
		t.Error("failed screening should not carry a validity window")
	}
}

func TestScreenToolErrors(t *testing.T) {
	tool := NewScreenTool(newValidator(t), testOpts)

	t.Run("missing answers", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]interface{}{}

		result, err := tool.Handle(context.Background(), req)
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		if !isErrorResult(result) {
			t.Fatal("expected tool error")
		}
	})

	t.Run("weighted field rejected", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]interface{}{
			"answers": `{"name": true, "phones_verified": 2}`,
		}

		result, err := tool.Handle(context.Background(), req)
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		if !isErrorResult(result) {
			t.Fatal("expected tool error for weighted-only field")
		}
		if text := getResultText(result); !strings.Contains(text, "phones_verified") {
			t.Errorf("error = %q, want mention of phones_verified", text)
		}
	})
}

// --- RubricsTool ---

func TestRubricsTool(t *testing.T) {
	tool := NewRubricsTool()

	result, err := tool.Handle(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	var infos []rubricInfo
	if err := json.Unmarshal([]byte(getResultText(result)), &infos); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("rubrics = %d, want 2", len(infos))
	}

	byName := make(map[string]rubricInfo)
	for _, info := range infos {
		byName[info.Name] = info
	}
	enhanced, ok := byName["enhanced"]
	if !ok || !enhanced.Default {
		t.Error("enhanced rubric missing or not default")
	}
	if doc := byName["document"]; len(doc.Categories) != 4 {
		t.Errorf("document categories = %d, want 4", len(doc.Categories))
	}
	if len(enhanced.Categories) != 5 {
		t.Errorf("enhanced categories = %d, want 5", len(enhanced.Categories))
	}
}
