package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// WriteCSV renders the report as the sectioned CSV layout reviewers import
// into spreadsheets: header block, vendor block, scores, then the advisory
// or issue lists.
func (r *Report) WriteCSV(w io.Writer) error {
	a := r.Assessment

	rows := [][]string{
		{strings.ToUpper(r.Organization) + " VENDOR VERIFICATION REPORT"},
		{"Report ID", r.ID},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
		{},
		{"Vendor", r.Vendor.Name},
		{"Category", r.Vendor.Category},
		{"Assessment Date", r.AssessedAt.Format("2006-01-02")},
		{"Mode", a.Mode},
	}
	if a.Rubric != "" {
		rows = append(rows, []string{"Rubric", a.Rubric})
	}
	rows = append(rows, []string{})

	if a.Total != nil {
		rows = append(rows, []string{"SCORES"}, []string{"Category", "Score", "Max"})
		for _, cs := range a.CategoryScores {
			rows = append(rows, []string{cs.Name, fmtScore(cs.Score), fmtScore(cs.Max)})
		}
		rows = append(rows,
			[]string{"Total", fmtScore(*a.Total)},
			[]string{"Badge", a.Badge.Label},
			[]string{"Status", a.Badge.Status},
			[]string{},
		)
		rows = append(rows, listSection("RECOMMENDATIONS", a.Recommendations)...)
		rows = append(rows, listSection("RISK FACTORS", a.RiskFactors)...)
	} else {
		result := "FAILED"
		if a.Passed != nil && *a.Passed {
			result = "PASSED"
		}
		rows = append(rows,
			[]string{"Result", result},
			[]string{"Badge", a.Badge.Label},
			[]string{},
		)
		rows = append(rows, listSection("ISSUES", a.Issues)...)
		if r.ValidUntil != nil {
			rows = append(rows, []string{"Valid Until", r.ValidUntil.Format("2006-01-02")})
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv report: %w", err)
	}
	return nil
}

func listSection(title string, entries []string) [][]string {
	rows := [][]string{{title}}
	if len(entries) == 0 {
		rows = append(rows, []string{"-", "None"})
	}
	for i, entry := range entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), entry})
	}
	rows = append(rows, []string{})
	return rows
}
