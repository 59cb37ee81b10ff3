// Package git lists uncommitted answer dossiers so that assessments can
// run on just the files a reviewer is about to commit. Used by the
// --staged and --changed flags and the pre-commit hook workflow.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Rex-Orokumue/Vendor-verification/internal/discovery"
)

// InRepo reports whether root sits inside a git work tree.
func InRepo(root string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = root
	return cmd.Run() == nil
}

// StagedDossiers returns absolute paths of staged files under root that
// match the discovery patterns. Outside a repository the list is empty,
// so hooks can run unconditionally.
func StagedDossiers(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = discovery.DefaultPatterns
	}
	if !InRepo(root) {
		return nil, nil
	}
	// --relative keeps paths relative to root rather than the repo top
	// level, so subdirectory roots resolve correctly.
	out, err := gitOutput(root, "diff", "--name-only", "--staged", "--relative")
	if err != nil {
		return nil, err
	}
	return matchDossiers(out, root, patterns), nil
}

// ChangedDossiers returns absolute paths of all uncommitted dossier
// changes under root, staged and unstaged. Before the first commit every
// tracked file counts as changed.
func ChangedDossiers(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = discovery.DefaultPatterns
	}
	if !InRepo(root) {
		return nil, nil
	}

	if runGit(root, "rev-parse", "HEAD") != nil {
		out, err := gitOutput(root, "ls-files")
		if err != nil {
			return nil, err
		}
		return matchDossiers(out, root, patterns), nil
	}

	out, err := gitOutput(root, "diff", "--name-only", "HEAD", "--relative")
	if err != nil {
		return nil, err
	}
	return matchDossiers(out, root, patterns), nil
}

func runGit(root string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = root
	return cmd.Run()
}

func gitOutput(root string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, out)
	}
	return string(out), nil
}

// matchDossiers filters git path output against the discovery patterns,
// applying the same rules as batch discovery: hidden files are skipped
// and deletions (paths git reports that no longer exist) are dropped.
func matchDossiers(gitOutput, root string, patterns []string) []string {
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(gitOutput), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rel := filepath.ToSlash(line)
		if hidden(rel) || !matchesAny(rel, patterns) {
			continue
		}

		abs := filepath.Join(root, line)
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			continue
		}
		files = append(files, abs)
	}
	return files
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

func hidden(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
