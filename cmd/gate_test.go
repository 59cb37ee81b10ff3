package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestRunGatePass(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "quick.yaml", gateDossierPass)
	code := stubExit(t)

	out, err := captureStdout(t, func() error { return runGate([]string{path}) })
	if err != nil {
		t.Fatalf("runGate: %v", err)
	}

	for _, want := range []string{
		"Provisionally Verified",
		"All screening checks passed",
		"Valid until 2024-04-04",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if *code != -1 {
		t.Errorf("exit called with %d on a passing screening", *code)
	}
}

func TestRunGateFailExits(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "quick.yaml", gateDossierFail)
	code := stubExit(t)

	out, err := captureStdout(t, func() error { return runGate([]string{path}) })
	if err != nil {
		t.Fatalf("runGate: %v", err)
	}

	for _, want := range []string{
		"Failed",
		"Location not provided",
		"Video call verification not completed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1 for failed screening", *code)
	}
}

func TestRunGateBatchSummary(t *testing.T) {
	dir := resetEnv(t)
	writeDossier(t, dir, "vendors/pass.yaml", gateDossierPass)
	writeDossier(t, dir, "vendors/fail.yaml", gateDossierFail)
	viper.Set("quiet", true)
	code := stubExit(t)

	out, err := captureStdout(t, func() error { return runGate([]string{dir + "/vendors"}) })
	if err != nil {
		t.Fatalf("runGate: %v", err)
	}
	if !strings.Contains(out, "Quick Stitches: PROVISIONAL") {
		t.Errorf("output missing passing line:\n%s", out)
	}
	if !strings.Contains(out, "Quick Stitches: FAILED") {
		t.Errorf("output missing failing line:\n%s", out)
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1 when any screening fails", *code)
	}
}

func TestRunGateRejectsWeightedDossier(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.yaml", weightedDossier)

	_, err := captureStdout(t, func() error { return runGate([]string{path}) })
	if err == nil || !strings.Contains(err.Error(), "failed to screen") {
		t.Errorf("error = %v, want per-file failure summary", err)
	}
}
