package scoring

import (
	"strconv"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

// Weighted scores rec against every category of rb and classifies the
// total. One generic walk serves all rubric versions; the differences live
// entirely in the rule-table data.
func Weighted(rb rubric.Rubric, rec answers.Record) Scorecard {
	categories := make([]CategoryScore, 0, len(rb.Categories))
	var total float64
	for _, cat := range rb.Categories {
		cs := scoreCategory(cat, rec)
		total += cs.Score
		categories = append(categories, cs)
	}
	return Scorecard{
		Rubric:     rb.Name,
		Categories: categories,
		Total:      total,
		Badge:      BadgeFromTotal(total),
	}
}

func scoreCategory(cat rubric.Category, rec answers.Record) CategoryScore {
	var score float64
	metrics := make([]Metric, 0, len(cat.Factors))
	for _, f := range cat.Factors {
		pts := factorPoints(f, rec)
		score += pts
		metrics = append(metrics, Metric{
			Category:  cat.Name,
			Name:      f.Label,
			Points:    pts,
			MaxPoints: f.Max(),
			Passed:    pts >= f.Max(),
			Note:      factorNote(f, rec),
		})
	}
	if cat.FloorAtZero && score < 0 {
		score = 0
	}
	return CategoryScore{Name: cat.Name, Score: score, Max: cat.Max, Metrics: metrics}
}

// factorPoints resolves one factor. Absent and unknown category values
// score zero, the table's designated lowest entry; counts below zero are
// treated as zero.
func factorPoints(f rubric.Factor, rec answers.Record) float64 {
	switch f.Kind {
	case rubric.Bool:
		if rec.Flag(f.Field) {
			return f.Points
		}
		return 0
	case rubric.Enum:
		return f.Table[rec.Option(f.Field)]
	case rubric.Steps:
		n := rec.Count(f.Field)
		if n < 0 {
			n = 0
		}
		if n >= len(f.Steps) {
			n = len(f.Steps) - 1
		}
		return f.Steps[n]
	case rubric.PerUnit:
		n := rec.Count(f.Field)
		if n < 0 {
			n = 0
		}
		if f.MaxUnits > 0 && n > f.MaxUnits {
			n = f.MaxUnits
		}
		return float64(n) * f.Points
	}
	return 0
}

// factorNote renders the recorded answer for score breakdowns.
func factorNote(f rubric.Factor, rec answers.Record) string {
	switch f.Kind {
	case rubric.Bool:
		if rec.Flag(f.Field) {
			return "yes"
		}
		return "no"
	case rubric.Enum:
		if v := rec.Option(f.Field); v != "" {
			return v
		}
		return "unset"
	default:
		return strconv.Itoa(rec.Count(f.Field))
	}
}
