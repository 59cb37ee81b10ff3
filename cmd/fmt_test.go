package cmd

import (
	"os"
	"strings"
	"testing"
)

const unorderedDossier = `rubric: enhanced
answers:
  registration: cac
  name: true
vendor:
  category: Fashion
  name: Mama Chidinma Ventures
`

const canonicalDossier = `vendor:
  name: Mama Chidinma Ventures
  category: Fashion
rubric: enhanced
answers:
  name: true
  registration: cac
`

func TestRunFmtPrintsFormatted(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.yaml", unorderedDossier)

	out, err := captureStdout(t, func() error { return runFmt([]string{path}) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}

	if out != canonicalDossier {
		t.Errorf("runFmt() printed:\n%s\nwant:\n%s", out, canonicalDossier)
	}
}

func TestRunFmtWrite(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.yaml", unorderedDossier)
	fmtWrite = true

	out, err := captureStdout(t, func() error { return runFmt([]string{path}) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}
	if !strings.Contains(out, "Formatted "+path) {
		t.Errorf("output missing write confirmation:\n%s", out)
	}

	rewritten, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(rewritten) != canonicalDossier {
		t.Errorf("file after --write:\n%s\nwant:\n%s", rewritten, canonicalDossier)
	}
}

func TestRunFmtCheckFails(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.yaml", unorderedDossier)
	fmtCheck = true
	code := stubExit(t)

	out, err := captureStdout(t, func() error { return runFmt([]string{path}) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}

	if !strings.Contains(out, "needs formatting") {
		t.Errorf("output missing check notice:\n%s", out)
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(original) != unorderedDossier {
		t.Error("--check must not modify files")
	}
}

func TestRunFmtCheckCleanPasses(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.yaml", canonicalDossier)
	fmtCheck = true
	code := stubExit(t)

	if _, err := captureStdout(t, func() error { return runFmt([]string{path}) }); err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}
	if *code != -1 {
		t.Errorf("exit code = %d, want no exit", *code)
	}
}

func TestRunFmtDiff(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.yaml", unorderedDossier)
	fmtDiff = true

	out, err := captureStdout(t, func() error { return runFmt([]string{path}) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}

	for _, want := range []string{"--- " + path, "+ vendor:"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}

func TestRunFmtBatchSummary(t *testing.T) {
	dir := resetEnv(t)
	writeDossier(t, dir, "vendors/a.yaml", unorderedDossier)
	writeDossier(t, dir, "vendors/b.yaml", canonicalDossier)
	rootPath = dir

	out, err := captureStdout(t, func() error { return runFmt(nil) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}

	if !strings.Contains(out, "1 of 2 dossiers need formatting") {
		t.Errorf("batch summary missing:\n%s", out)
	}
}

func TestRunFmtLeavesJSONAlone(t *testing.T) {
	dir := resetEnv(t)
	path := writeDossier(t, dir, "mama.json", `{"answers": {"name": true}}`)

	out, err := captureStdout(t, func() error { return runFmt([]string{path}) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}
	if out != "" {
		t.Errorf("json dossier produced output:\n%s", out)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != `{"answers": {"name": true}}` {
		t.Error("json dossier was modified")
	}
}

func TestRunFmtNoFiles(t *testing.T) {
	dir := resetEnv(t)
	rootPath = dir

	_, err := captureStdout(t, func() error { return runFmt(nil) })
	if err == nil || !strings.Contains(err.Error(), "no answer files found") {
		t.Errorf("error = %v, want no answer files found", err)
	}
}

func TestRunFmtStagedEmptySelection(t *testing.T) {
	dir := resetEnv(t)
	writeDossier(t, dir, "mama.yaml", unorderedDossier)
	rootPath = dir
	stagedOnly = true

	// Outside a git repository the staged selection is empty; a hook run
	// on a dossier-free commit must not fail.
	out, err := captureStdout(t, func() error { return runFmt(nil) })
	if err != nil {
		t.Fatalf("runFmt() error = %v", err)
	}
	if !strings.Contains(out, "No uncommitted dossiers to format") {
		t.Errorf("output = %q, want empty-selection notice", out)
	}
}
