// Package discovery locates vendor answer files for batch assessment runs.
package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns match the answer file layouts reviewers keep: one YAML or
// JSON document per vendor, anywhere under the root.
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml", "**/*.json"}

// Finder discovers answer files under a root directory.
type Finder struct {
	root     string
	patterns []string
}

// NewFinder creates a Finder for root. Empty patterns fall back to
// DefaultPatterns.
func NewFinder(root string, patterns []string) *Finder {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Finder{root: root, patterns: patterns}
}

// Find returns every matching answer file, deduplicated and sorted.
// Hidden files and directories are skipped; tool configs like
// .vendorverifyrc.yaml live in dot-space precisely so batch runs never
// pick them up as vendor answers.
func (f *Finder) Find() ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range f.patterns {
		matches, err := doublestar.Glob(os.DirFS(f.root), pattern)
		if err != nil {
			return nil, fmt.Errorf("evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if hidden(match) {
				continue
			}
			full := filepath.Join(f.root, match)
			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				continue
			}
			if _, ok := seen[full]; ok {
				continue
			}
			seen[full] = struct{}{}
			files = append(files, full)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Expand resolves command-line path arguments into answer files.
// Directories are walked with the discovery patterns, glob arguments are
// expanded relative to the working directory, and plain files are
// validated individually. The result is deduplicated in argument order.
func Expand(args, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			found, err := NewFinder(arg, patterns).Find()
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}

		if strings.ContainsAny(arg, "*?[") {
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("evaluating pattern %s: %w", arg, err)
			}
			sort.Strings(matches)
			for _, m := range matches {
				if info, err := os.Stat(m); err != nil || info.IsDir() {
					continue
				}
				add(m)
			}
			continue
		}

		path, err := ValidateAnswersPath(arg)
		if err != nil {
			return nil, err
		}
		add(path)
	}

	return files, nil
}

// hidden reports whether any path segment is dot-prefixed.
func hidden(relPath string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(relPath), "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// ValidateAnswersPath checks the preconditions for assessing a single file:
// it exists, is a readable non-empty text file, and is not a directory.
// Symlinks are resolved to their targets.
func ValidateAnswersPath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		realPath, evalErr := filepath.EvalSymlinks(absPath)
		if evalErr != nil {
			return "", fmt.Errorf("cannot resolve symlink %s: %w", absPath, evalErr)
		}
		absPath = realPath
		info, err = os.Stat(absPath)
		if err != nil {
			return "", fmt.Errorf("symlink target inaccessible: %s: %w", absPath, err)
		}
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	return absPath, nil
}
