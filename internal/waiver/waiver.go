// Package waiver tracks screening issues a reviewer has accepted. A waived
// issue still appears in reports but no longer fails batch runs, so teams
// can onboard vendors with known, signed-off gaps.
package waiver

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Register represents the set of waived screening issues
type Register struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool // For fast lookup
}

// Create creates a new register from a vendor's current issues
func Create(vendor string, issues []string) *Register {
	r := &Register{
		Version:   "1.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		index:     make(map[string]bool),
	}
	r.Add(vendor, issues)
	return r
}

// Load loads a register from a JSON file
func Load(path string) (*Register, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waiver file: %w", err)
	}

	var r Register
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse waiver file: %w", err)
	}

	r.index = make(map[string]bool, len(r.Fingerprints))
	for _, fp := range r.Fingerprints {
		r.index[fp] = true
	}

	return &r, nil
}

// Save saves the register to a JSON file
func (r *Register) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal waivers: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write waiver file: %w", err)
	}

	return nil
}

// Add registers the vendor's issues, returning how many were new.
// Fingerprints stay sorted for deterministic files.
func (r *Register) Add(vendor string, issues []string) int {
	if r.index == nil {
		r.index = make(map[string]bool, len(r.Fingerprints))
		for _, fp := range r.Fingerprints {
			r.index[fp] = true
		}
	}

	added := 0
	for _, issue := range issues {
		fp := fingerprint(vendor, issue)
		if r.index[fp] {
			continue
		}
		r.index[fp] = true
		r.Fingerprints = append(r.Fingerprints, fp)
		added++
	}
	if added > 0 {
		sort.Strings(r.Fingerprints)
	}
	return added
}

// Waived checks if a vendor's issue is in the register
func (r *Register) Waived(vendor, issue string) bool {
	if r.index == nil {
		return false
	}
	return r.index[fingerprint(vendor, issue)]
}

// Filter splits issues into the ones still failing and the ones waived.
func (r *Register) Filter(vendor string, issues []string) (remaining, waived []string) {
	for _, issue := range issues {
		if r.Waived(vendor, issue) {
			waived = append(waived, issue)
		} else {
			remaining = append(remaining, issue)
		}
	}
	return remaining, waived
}

// fingerprint creates a stable hash of a vendor's issue for comparison.
// Messages are normalized first so counted issues like "2 red flag(s)
// observed during screening" stay waived when the count drifts.
func fingerprint(vendor, issue string) string {
	data := fmt.Sprintf("%s|%s", vendor, normalizeIssue(issue))
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// normalizeIssue replaces counts with a placeholder and collapses
// whitespace to create stable patterns
func normalizeIssue(msg string) string {
	msg = regexp.MustCompile(`\b\d+\b`).ReplaceAllString(msg, `N`)
	return strings.Join(strings.Fields(msg), " ")
}
