// Package rubric defines the scoring rule tables as data. Each rubric
// version is a named, ordered set of categories; each category is an
// ordered set of factors mapping one answer field to a point contribution.
// The calculator in internal/scoring walks these tables generically, so a
// rubric revision is a data change, not new scoring code.
package rubric

import (
	"fmt"
	"sort"
)

// Kind selects how a factor converts an answer into points.
type Kind int

const (
	// Bool awards Points when the flag field is set.
	Bool Kind = iota
	// Enum looks the category value up in Table; absent or unknown
	// values contribute zero.
	Enum
	// Steps indexes the count field into Steps, clamping to the last
	// entry.
	Steps
	// PerUnit multiplies the count field by Points, capping the count at
	// MaxUnits when MaxUnits is positive. Points may be negative.
	PerUnit
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Enum:
		return "enum"
	case Steps:
		return "steps"
	case PerUnit:
		return "per_unit"
	default:
		return "unknown"
	}
}

// Factor is one scored sub-dimension of a category.
type Factor struct {
	Field    string
	Label    string
	Kind     Kind
	Points   float64
	Table    map[string]float64
	Rank     []string
	Steps    []float64
	MaxUnits int
}

// Max returns the largest contribution the factor can make. Purely
// penalizing factors max out at zero.
func (f Factor) Max() float64 {
	switch f.Kind {
	case Bool:
		if f.Points > 0 {
			return f.Points
		}
		return 0
	case Enum:
		var max float64
		for _, pts := range f.Table {
			if pts > max {
				max = pts
			}
		}
		return max
	case Steps:
		var max float64
		for _, pts := range f.Steps {
			if pts > max {
				max = pts
			}
		}
		return max
	case PerUnit:
		if f.Points > 0 && f.MaxUnits > 0 {
			return f.Points * float64(f.MaxUnits)
		}
		return 0
	}
	return 0
}

// Category is an ordered group of factors with a declared maximum. Max is
// the advertised denominator for presentation; category scores are always
// actual factor sums. FloorAtZero clamps the category at zero so that
// penalty factors cannot drag it negative.
type Category struct {
	Name        string
	Max         float64
	Factors     []Factor
	FloorAtZero bool
}

// Rubric is one versioned rule-table set for weighted scoring.
type Rubric struct {
	Name       string
	Version    string
	Title      string
	Categories []Category
}

// DefaultName selects the rubric used when a dossier or caller does not
// name one.
const DefaultName = "enhanced"

var registry = map[string]Rubric{
	"enhanced": Enhanced,
	"document": Document,
}

// ByName resolves a rubric by name.
func ByName(name string) (Rubric, error) {
	rb, ok := registry[name]
	if !ok {
		return Rubric{}, fmt.Errorf("unknown rubric %q (known: %v)", name, Names())
	}
	return rb, nil
}

// Names lists the registered rubric names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
