package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

var badgeHex = map[string]string{
	"green":  "#008000",
	"yellow": "#d97706",
	"red":    "#dc2626",
}

type certRow struct {
	Name  string
	Score string
	Max   string
}

type certificateData struct {
	ID           string
	Organization string
	System       string
	VendorName   string
	Category     string
	AssessedDate string
	RubricTitle  string
	BadgeLabel   string
	BadgeStatus  string
	BadgeDesc    string
	BadgeColor   template.CSS
	HasTotal     bool
	Total        string
	Categories   []certRow
	Recommends   []string
	Risks        []string
	Issues       []string
	ValidUntil   string
	Logo         template.URL
	Signature    template.URL
	Year         int
}

// WriteHTML renders the printable verification certificate.
func (r *Report) WriteHTML(w io.Writer) error {
	t, err := template.New("certificate").Parse(certificateTemplate)
	if err != nil {
		return fmt.Errorf("parsing certificate template: %w", err)
	}
	if err := t.Execute(w, r.certificateData()); err != nil {
		return fmt.Errorf("rendering certificate: %w", err)
	}
	return nil
}

func (r *Report) certificateData() certificateData {
	a := r.Assessment

	hex, ok := badgeHex[a.Badge.Color]
	if !ok {
		hex = "#6b7280"
	}

	data := certificateData{
		ID:           r.ID,
		Organization: r.Organization,
		System:       r.System,
		VendorName:   r.Vendor.Name,
		Category:     r.Vendor.Category,
		AssessedDate: r.AssessedAt.Format("January 2, 2006"),
		BadgeLabel:   a.Badge.Label,
		BadgeStatus:  a.Badge.Status,
		BadgeDesc:    a.Badge.Description,
		BadgeColor:   template.CSS(hex),
		Recommends:   a.Recommendations,
		Risks:        a.RiskFactors,
		Issues:       a.Issues,
		Year:         r.GeneratedAt.Year(),
	}
	if data.VendorName == "" {
		data.VendorName = "Unnamed Vendor"
	}
	if rb, err := rubric.ByName(a.Rubric); err == nil {
		data.RubricTitle = rb.Title
	}
	if a.Total != nil {
		data.HasTotal = true
		data.Total = fmtScore(*a.Total)
		for _, cs := range a.CategoryScores {
			data.Categories = append(data.Categories, certRow{
				Name:  cs.Name,
				Score: fmtScore(cs.Score),
				Max:   fmtScore(cs.Max),
			})
		}
	}
	if r.ValidUntil != nil {
		data.ValidUntil = r.ValidUntil.Format("January 2, 2006")
	}
	if r.logo != "" {
		data.Logo = template.URL("data:image/png;base64," + r.logo)
	}
	if r.signature != "" {
		data.Signature = template.URL("data:image/png;base64," + r.signature)
	}
	return data
}

const certificateTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Vendor Verification Certificate {{.ID}}</title>
<style>
  @page { size: A4; margin: 18mm; }
  body { font-family: Georgia, 'Times New Roman', serif; color: #1f2937; margin: 0; }
  .certificate { max-width: 720px; margin: 0 auto; padding: 32px; border: 3px double #9ca3af; }
  header { text-align: center; border-bottom: 2px solid #e5e7eb; padding-bottom: 16px; }
  header img { max-height: 64px; }
  h1 { font-size: 26px; letter-spacing: 2px; margin: 8px 0 0; }
  .cert-id { color: #6b7280; font-size: 13px; margin-top: 4px; }
  .vendor { text-align: center; margin: 28px 0 8px; }
  .vendor .name { font-size: 22px; font-weight: bold; }
  .vendor .meta { color: #6b7280; font-size: 14px; margin-top: 4px; }
  .badge { text-align: center; margin: 20px 0; }
  .badge .label { display: inline-block; padding: 10px 28px; border-radius: 6px; color: #ffffff; font-size: 18px; font-weight: bold; background: {{.BadgeColor}}; }
  .badge .desc { color: #4b5563; font-size: 14px; margin-top: 8px; }
  table { width: 100%; border-collapse: collapse; margin: 16px 0; }
  th, td { border: 1px solid #d1d5db; padding: 6px 10px; font-size: 14px; text-align: left; }
  th { background: #f3f4f6; }
  td.num { text-align: right; }
  .total { font-size: 16px; font-weight: bold; text-align: right; margin: 8px 0 20px; }
  h2 { font-size: 15px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; margin-top: 24px; }
  ul { margin: 8px 0; padding-left: 22px; font-size: 14px; }
  .validity { margin-top: 16px; font-size: 14px; }
  .signature { margin-top: 40px; text-align: right; }
  .signature img { max-height: 48px; }
  .signature .line { border-top: 1px solid #9ca3af; width: 220px; margin-left: auto; padding-top: 4px; font-size: 13px; color: #6b7280; }
  footer { margin-top: 32px; border-top: 2px solid #e5e7eb; padding-top: 10px; text-align: center; color: #9ca3af; font-size: 12px; }
</style>
</head>
<body>
<div class="certificate">
  <header>
    {{if .Logo}}<img src="{{.Logo}}" alt="{{.Organization}} logo">{{end}}
    <h1>VENDOR VERIFICATION CERTIFICATE</h1>
    <div class="cert-id">Certificate {{.ID}}</div>
  </header>

  <div class="vendor">
    <div class="name">{{.VendorName}}</div>
    <div class="meta">
      {{if .Category}}{{.Category}} &middot; {{end}}Assessed {{.AssessedDate}}
      {{if .RubricTitle}}&middot; {{.RubricTitle}}{{end}}
    </div>
  </div>

  <div class="badge">
    <span class="label">{{.BadgeLabel}}</span>
    <div class="desc">{{.BadgeStatus}} &mdash; {{.BadgeDesc}}</div>
  </div>

  {{if .HasTotal}}
  <table>
    <tr><th>Category</th><th>Score</th><th>Max</th></tr>
    {{range .Categories}}
    <tr><td>{{.Name}}</td><td class="num">{{.Score}}</td><td class="num">{{.Max}}</td></tr>
    {{end}}
  </table>
  <div class="total">Total Score: {{.Total}} / 100</div>
  {{end}}

  {{if .Issues}}
  <h2>Outstanding Issues</h2>
  <ul>{{range .Issues}}<li>{{.}}</li>{{end}}</ul>
  {{end}}

  {{if .Recommends}}
  <h2>Recommendations</h2>
  <ul>{{range .Recommends}}<li>{{.}}</li>{{end}}</ul>
  {{end}}

  {{if .Risks}}
  <h2>Risk Factors</h2>
  <ul>{{range .Risks}}<li>{{.}}</li>{{end}}</ul>
  {{end}}

  {{if .ValidUntil}}
  <div class="validity">Provisional verification valid until <strong>{{.ValidUntil}}</strong>.</div>
  {{end}}

  <div class="signature">
    {{if .Signature}}<img src="{{.Signature}}" alt="Authorized signature">{{end}}
    <div class="line">Authorized Reviewer</div>
  </div>

  <footer>
    Generated by {{.System}} &middot; &copy; {{.Year}} {{.Organization}}
  </footer>
</div>
</body>
</html>
`
