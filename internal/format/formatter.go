// Package format rewrites answer dossiers into canonical form: the
// vendor block first, then mode and rubric, then the answers mapping
// with fields in scoring order. Values and comments are preserved, so
// reviewers can keep notes in hand-edited dossiers.
package format

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

// Options selects the answer field order. A dossier that declares its
// own mode or rubric overrides both.
type Options struct {
	Mode   string
	Rubric string
}

var (
	dossierKeyOrder = []string{"vendor", "mode", "rubric", "answers"}
	vendorKeyOrder  = []string{"name", "category", "assessed"}

	// Screening checklist order.
	gateFieldOrder = []string{
		"name", "phone", "location", "id_photo",
		"supplier_proof_provided", "operations_proof_provided",
		"agreed_to_rules", "video_call_verification",
		"red_flags", "responsiveness_rating",
	}
)

// Dossier formats dossier content canonically. On parse errors the
// original content comes back alongside the error, so callers can leave
// the file untouched.
func Dossier(content string, opts Options) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return content, err
	}
	if len(doc.Content) == 0 {
		return content, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return content, fmt.Errorf("dossier is not a mapping")
	}

	fieldOrder := answerFieldOrder(root, opts)

	if hasKey(root, "answers") {
		sortMapping(root, dossierKeyOrder)
		if vendor := childMapping(root, "vendor"); vendor != nil {
			sortMapping(vendor, vendorKeyOrder)
		}
		if ans := childMapping(root, "answers"); ans != nil {
			sortMapping(ans, fieldOrder)
		}
	} else {
		// Bare layout: the whole document is the answers mapping.
		sortMapping(root, fieldOrder)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return content, err
	}
	if err := enc.Close(); err != nil {
		return content, err
	}

	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}

// answerFieldOrder resolves the answer key order from the dossier's
// declared mode and rubric, falling back to opts. Unknown rubric names
// fall back to the default rather than failing; formatting is not
// validation.
func answerFieldOrder(root *yaml.Node, opts Options) []string {
	mode := childScalar(root, "mode")
	if mode == "" {
		mode = opts.Mode
	}
	if mode == "gate" {
		return gateFieldOrder
	}

	name := childScalar(root, "rubric")
	if name == "" {
		name = opts.Rubric
	}
	rb, err := rubric.ByName(name)
	if err != nil {
		rb, _ = rubric.ByName(rubric.DefaultName)
	}

	var fields []string
	for _, cat := range rb.Categories {
		for _, f := range cat.Factors {
			fields = append(fields, f.Field)
		}
	}
	return fields
}

// sortMapping reorders a mapping node's key/value pairs: priority keys
// first in the given order, remaining keys alphabetically. The sort is
// stable so duplicate keys keep their relative order.
func sortMapping(node *yaml.Node, priority []string) {
	if node.Kind != yaml.MappingNode {
		return
	}

	rank := make(map[string]int, len(priority))
	for i, key := range priority {
		rank[key] = i
	}

	type pair struct{ key, value *yaml.Node }
	pairs := make([]pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, pair{node.Content[i], node.Content[i+1]})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		ri, iKnown := rank[pairs[i].key.Value]
		rj, jKnown := rank[pairs[j].key.Value]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return pairs[i].key.Value < pairs[j].key.Value
		}
	})

	content := make([]*yaml.Node, 0, len(node.Content))
	for _, p := range pairs {
		content = append(content, p.key, p.value)
	}
	node.Content = content
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func childMapping(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}

func childScalar(node *yaml.Node, key string) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.ScalarNode {
			return node.Content[i+1].Value
		}
	}
	return ""
}

// Diff renders a minimal line diff between original and formatted
// content. Empty when identical.
func Diff(original, formatted, filename string) string {
	if original == formatted {
		return ""
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", filename)
	fmt.Fprintf(&buf, "+++ %s (formatted)\n", filename)

	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	n := len(origLines)
	if len(fmtLines) > n {
		n = len(fmtLines)
	}
	for i := 0; i < n; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}
		if origLine == fmtLine {
			continue
		}
		if origLine != "" {
			fmt.Fprintf(&buf, "- %s\n", origLine)
		}
		if fmtLine != "" {
			fmt.Fprintf(&buf, "+ %s\n", fmtLine)
		}
	}

	return buf.String()
}
