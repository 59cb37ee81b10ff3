// Package engine is the assessment entry point: it dispatches a request to
// the weighted calculator or the gate evaluator and assembles the output
// contract consumed by reports, the HTTP API, and the MCP tools. The engine
// holds no state; every call is an isolated pure computation.
package engine

import (
	"errors"
	"fmt"

	"github.com/Rex-Orokumue/Vendor-verification/internal/advisory"
	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
	"github.com/Rex-Orokumue/Vendor-verification/internal/scoring"
)

// Mode selects the scoring variant.
type Mode string

const (
	ModeWeighted Mode = "weighted"
	ModeGate     Mode = "gate"
)

// ErrModeMismatch marks requests whose mode and parameters disagree, such
// as naming a rubric for gate mode or asking for a mode that does not
// exist. These are integration bugs and are surfaced immediately.
var ErrModeMismatch = errors.New("mode mismatch")

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWeighted, ModeGate:
		return Mode(s), nil
	case "":
		return "", fmt.Errorf("%w: no mode given", ErrModeMismatch)
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrModeMismatch, s)
	}
}

// Request is one assessment invocation. Rubric applies to weighted mode
// only; empty selects the default rubric.
type Request struct {
	Mode    Mode
	Rubric  string
	Vendor  answers.VendorInfo
	Answers answers.Record
}

// Assessment is the engine's output contract. Total is nil in gate mode,
// Passed and Issues are set only in gate mode, and CategoryScores only in
// weighted mode. Recommendations and RiskFactors are always non-nil.
type Assessment struct {
	Mode            string                  `json:"mode"`
	Rubric          string                  `json:"rubric,omitempty"`
	Vendor          answers.VendorInfo      `json:"vendor"`
	CategoryScores  []scoring.CategoryScore `json:"category_scores,omitempty"`
	Total           *float64                `json:"total"`
	Badge           scoring.Badge           `json:"badge"`
	Recommendations []string                `json:"recommendations"`
	RiskFactors     []string                `json:"risk_factors"`
	Passed          *bool                   `json:"passed,omitempty"`
	Issues          []string                `json:"issues,omitempty"`
}

// Assess runs one assessment.
func Assess(req Request) (*Assessment, error) {
	switch req.Mode {
	case ModeWeighted:
		return assessWeighted(req)
	case ModeGate:
		if req.Rubric != "" {
			return nil, fmt.Errorf("%w: rubric %q does not apply to gate mode", ErrModeMismatch, req.Rubric)
		}
		return assessGate(req), nil
	case "":
		return nil, fmt.Errorf("%w: no mode given", ErrModeMismatch)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrModeMismatch, req.Mode)
	}
}

func assessWeighted(req Request) (*Assessment, error) {
	name := req.Rubric
	if name == "" {
		name = rubric.DefaultName
	}
	rb, err := rubric.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModeMismatch, err)
	}

	sc := scoring.Weighted(rb, req.Answers)
	total := sc.Total
	return &Assessment{
		Mode:            string(ModeWeighted),
		Rubric:          rb.Name,
		Vendor:          req.Vendor,
		CategoryScores:  sc.Categories,
		Total:           &total,
		Badge:           sc.Badge,
		Recommendations: ensure(advisory.Recommendations(rb.Name, req.Answers)),
		RiskFactors:     ensure(advisory.RiskFactors(rb.Name, req.Answers)),
	}, nil
}

func assessGate(req Request) *Assessment {
	res := scoring.Gate(req.Answers)
	passed := res.Passed
	return &Assessment{
		Mode:            string(ModeGate),
		Vendor:          req.Vendor,
		Badge:           res.Badge,
		Recommendations: []string{},
		RiskFactors:     []string{},
		Passed:          &passed,
		Issues:          res.Issues,
	}
}

func ensure(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
