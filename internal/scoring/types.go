// Package scoring turns an answer record into a verdict: the weighted
// calculator walks a rubric's rule tables and classifies the total, and the
// gate evaluator runs the initial-screening checklist. Both are pure; all
// state lives in the returned values.
package scoring

// Metric is one factor-level score row, kept for report detail and the
// verbose console view.
type Metric struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"max_points"`
	Passed    bool    `json:"passed"`
	Note      string  `json:"note,omitempty"`
}

// CategoryScore is one category's outcome. Score is the exact factor sum
// (after the category floor, when the rubric declares one); Max is the
// rubric's advertised denominator.
type CategoryScore struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Max     float64  `json:"max"`
	Metrics []Metric `json:"metrics,omitempty"`
}

// Scorecard is a full weighted assessment: ordered category scores, the
// exact total, and the badge classified from it. Totals are never rounded
// or clamped; bonus and penalty factors can push them beyond 0..100.
type Scorecard struct {
	Rubric     string          `json:"rubric"`
	Categories []CategoryScore `json:"categories"`
	Total      float64         `json:"total"`
	Badge      Badge           `json:"badge"`
}

// GateResult is a binary gate outcome. Passed is true exactly when Issues
// is empty; there is no partial credit and no numeric score.
type GateResult struct {
	Passed bool     `json:"passed"`
	Issues []string `json:"issues"`
	Badge  Badge    `json:"badge"`
}

// Badge is the categorical verdict shown to reviewers. Color is a token
// ("green", "yellow", "red") that exporters map to concrete styling.
type Badge struct {
	Label       string `json:"label"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var (
	badgeVerified = Badge{
		Label:       "Green (Verified)",
		Status:      "APPROVED",
		Description: "Low risk vendor with strong verification",
		Color:       "green",
	}
	badgeConditional = Badge{
		Label:       "Yellow (Conditional)",
		Status:      "CONDITIONAL",
		Description: "Medium risk - proceed with caution and monitoring",
		Color:       "yellow",
	}
	badgeRejected = Badge{
		Label:       "Red (Rejected)",
		Status:      "REJECTED",
		Description: "High risk - requires significant improvements",
		Color:       "red",
	}
	badgeProvisional = Badge{
		Label:       "Provisionally Verified",
		Status:      "PROVISIONAL",
		Description: "Initial screening passed; full assessment required within the validity window",
		Color:       "green",
	}
	badgeFailed = Badge{
		Label:       "Failed",
		Status:      "FAILED",
		Description: "Initial screening failed; resolve the issues before reapplying",
		Color:       "red",
	}
)

// BadgeFromTotal classifies a weighted total. Cut points are inclusive:
// exactly 80 is Verified and exactly 60 is Conditional. The comparison uses
// the raw total; rounding for display happens in presentation only.
func BadgeFromTotal(total float64) Badge {
	switch {
	case total >= 80:
		return badgeVerified
	case total >= 60:
		return badgeConditional
	default:
		return badgeRejected
	}
}

// GateBadge classifies a gate outcome.
func GateBadge(passed bool) Badge {
	if passed {
		return badgeProvisional
	}
	return badgeFailed
}
