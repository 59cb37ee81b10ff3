package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// chtmp resets viper and moves the working directory to a fresh temp dir so
// no real config files leak into the test.
func chtmp(t *testing.T) string {
	t.Helper()
	viper.Reset()

	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
		viper.Reset()
	})
	return tmpDir
}

func TestLoadDefaults(t *testing.T) {
	chtmp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Root != "." {
		t.Errorf("Root = %q, want .", cfg.Root)
	}
	if cfg.Mode != "weighted" {
		t.Errorf("Mode = %q, want weighted", cfg.Mode)
	}
	if cfg.Rubric != "" {
		t.Errorf("Rubric = %q, want empty", cfg.Rubric)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.WaiverFile != ".vendorverify-waivers.json" {
		t.Errorf("WaiverFile = %q", cfg.WaiverFile)
	}
	if cfg.ValidityDays != 30 {
		t.Errorf("ValidityDays = %d, want 30", cfg.ValidityDays)
	}
	if cfg.FailUnder != 0 {
		t.Errorf("FailUnder = %v, want 0", cfg.FailUnder)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Quiet || cfg.Verbose || cfg.NoColor {
		t.Error("quiet/verbose/noColor should default to false")
	}
}

func TestLoadFromJSONFile(t *testing.T) {
	tmpDir := chtmp(t)

	configData := map[string]interface{}{
		"mode":         "gate",
		"format":       "json",
		"output":       "report.json",
		"organization": "Acme Markets",
		"validityDays": 14,
		"failUnder":    75.5,
		"quiet":        true,
		"patterns":     []string{"vendors/**/*.yaml"},
	}
	jsonData, err := json.MarshalIndent(configData, "", "  ")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".vendorverifyrc.json"), jsonData, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Mode != "gate" {
		t.Errorf("Mode = %q, want gate", cfg.Mode)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Output != "report.json" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Organization != "Acme Markets" {
		t.Errorf("Organization = %q", cfg.Organization)
	}
	if cfg.ValidityDays != 14 {
		t.Errorf("ValidityDays = %d, want 14", cfg.ValidityDays)
	}
	if cfg.FailUnder != 75.5 {
		t.Errorf("FailUnder = %v, want 75.5", cfg.FailUnder)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true")
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0] != "vendors/**/*.yaml" {
		t.Errorf("Patterns = %v", cfg.Patterns)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	tmpDir := chtmp(t)

	yamlData := "rubric: document\nnoColor: true\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".vendorverifyrc.yaml"), []byte(yamlData), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rubric != "document" {
		t.Errorf("Rubric = %q, want document", cfg.Rubric)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
	// Defaults survive a partial file.
	if cfg.Mode != "weighted" {
		t.Errorf("Mode = %q, want weighted", cfg.Mode)
	}
}

func TestLoadRootOverride(t *testing.T) {
	chtmp(t)

	cfg, err := Load("/srv/vendors")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "/srv/vendors" {
		t.Errorf("Root = %q, want /srv/vendors", cfg.Root)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	chtmp(t)
	t.Setenv("VENDORVERIFY_FORMAT", "html")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "html" {
		t.Errorf("Format = %q, want html", cfg.Format)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]interface{}
		wantErr string
	}{
		{"unknown mode", map[string]interface{}{"mode": "strict"}, "invalid mode"},
		{"unknown format", map[string]interface{}{"format": "pdf"}, "invalid format"},
		{"unknown rubric", map[string]interface{}{"rubric": "legacy"}, "unknown rubric"},
		{"fail-under too high", map[string]interface{}{"failUnder": 150}, "fail-under"},
		{"fail-under negative", map[string]interface{}{"failUnder": -1}, "fail-under"},
		{"zero validity", map[string]interface{}{"validityDays": 0}, "validity days"},
		{"empty addr", map[string]interface{}{"addr": ""}, "listen address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := chtmp(t)

			jsonData, err := json.Marshal(tt.config)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if err := os.WriteFile(filepath.Join(tmpDir, ".vendorverifyrc.json"), jsonData, 0644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			_, err = Load("")
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
