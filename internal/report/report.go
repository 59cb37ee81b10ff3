// Package report assembles the exportable assessment artifact: the engine's
// output plus vendor metadata, a certificate ID, and the gate validity
// window. Writers render it as JSON, sectioned CSV, or an HTML certificate.
package report

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
)

// DefaultOrganization brands reports when no organization is configured.
const DefaultOrganization = "ZOLARUX"

// DefaultValidityDays is the provisional badge validity window.
const DefaultValidityDays = 30

const systemVersion = "v2.0"

// Report is one rendered-ready assessment.
type Report struct {
	ID           string             `json:"id"`
	GeneratedAt  time.Time          `json:"generated_at"`
	Organization string             `json:"organization"`
	System       string             `json:"system"`
	Vendor       answers.VendorInfo `json:"vendor"`
	AssessedAt   time.Time          `json:"assessed_at"`
	Assessment   *engine.Assessment `json:"assessment"`
	// ValidUntil is set only for a passed gate screening.
	ValidUntil *time.Time `json:"valid_until,omitempty"`

	logo      string
	signature string
}

// Options controls report branding and the validity window. Zero values
// fall back to the defaults above; a zero Now means time.Now.
type Options struct {
	Organization  string
	ValidityDays  int
	LogoPath      string
	SignaturePath string
	Now           time.Time
}

// New builds a report for an assessment.
func New(a *engine.Assessment, opts Options) *Report {
	org := opts.Organization
	if org == "" {
		org = DefaultOrganization
	}
	days := opts.ValidityDays
	if days <= 0 {
		days = DefaultValidityDays
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	assessed := a.Vendor.AssessedTime(now)

	r := &Report{
		ID:           newID(),
		GeneratedAt:  now,
		Organization: org,
		System:       org + " Vendor Verification System " + systemVersion,
		Vendor:       a.Vendor,
		AssessedAt:   assessed,
		Assessment:   a,
		logo:         encodeImage(opts.LogoPath),
		signature:    encodeImage(opts.SignaturePath),
	}
	if a.Passed != nil && *a.Passed {
		until := assessed.AddDate(0, 0, days)
		r.ValidUntil = &until
	}
	return r
}

// DefaultFilename names the output artifact after the vendor and the
// assessment date, the way the export UI used to.
func (r *Report) DefaultFilename(format string) string {
	slug := slugify(r.Vendor.Name)
	if slug == "" {
		slug = "vendor"
	}
	return fmt.Sprintf("vendor_assessment_%s_%s.%s", slug, r.AssessedAt.Format("20060102"), format)
}

func newID() string {
	return "VVS-" + strings.ToUpper(uuid.NewString()[:8])
}

// slugify keeps letters and digits, joins words with single underscores,
// and drops everything else.
func slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			pending = true
		}
	}
	return b.String()
}

// encodeImage inlines an optional branding image. Missing or unreadable
// files simply leave the certificate unbranded.
func encodeImage(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// fmtScore prints a score exactly: fractional halves keep their decimals,
// whole numbers stay whole.
func fmtScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
