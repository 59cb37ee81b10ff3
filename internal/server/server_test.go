package server

import (
	"strings"
	"testing"

	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
)

func TestNewCompilesSchemasAndRegistersTools(t *testing.T) {
	s, err := New("test", report.Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s == nil {
		t.Fatal("New() returned nil server")
	}
}

func TestServerInstructionsNameEveryTool(t *testing.T) {
	instructions := serverInstructions()
	for _, tool := range []string{"assess_vendor", "screen_vendor", "list_rubrics"} {
		if !strings.Contains(instructions, tool) {
			t.Errorf("instructions missing tool %q", tool)
		}
	}
}
