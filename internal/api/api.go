// Package api exposes assessments over HTTP for dashboard and partner
// integrations. Bodies are accepted as JSON or YAML; both parse through the
// YAML decoder so numeric answers keep their integer types for schema
// validation.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

// API handles HTTP API requests
type API struct {
	validator  *schema.Validator
	reportOpts report.Options
	version    string
}

// New creates a new API handler
func New(validator *schema.Validator, reportOpts report.Options, version string) *API {
	return &API{
		validator:  validator,
		reportOpts: reportOpts,
		version:    version,
	}
}

// Router creates the API router
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Get("/healthz", a.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rubrics", a.listRubrics)
		r.Get("/rubrics/{name}", a.getRubric)
		r.Post("/assessments", a.createAssessment)
		r.Post("/certificates", a.createCertificate)
	})

	return r
}

// Response wraps API responses
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorMsg   `json:"error,omitempty"`
}

// ErrorMsg represents an error response
type ErrorMsg struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []schema.FieldError `json:"fields,omitempty"`
}

// assessRequest is the body accepted by the assessment endpoints.
type assessRequest struct {
	Mode    string             `yaml:"mode" json:"mode"`
	Rubric  string             `yaml:"rubric" json:"rubric"`
	Vendor  answers.VendorInfo `yaml:"vendor" json:"vendor"`
	Answers map[string]any     `yaml:"answers" json:"answers"`
}

// apiError carries a handler failure up to the response writer.
type apiError struct {
	status  int
	code    string
	message string
	fields  []schema.FieldError
}

// health handles GET /healthz
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{Data: map[string]interface{}{
		"status":  "ok",
		"version": a.version,
	}})
}

// rubricSummary describes one registered rubric.
type rubricSummary struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Title   string `json:"title"`
	Default bool   `json:"default"`
}

type rubricDetail struct {
	rubricSummary
	Categories []categoryDetail `json:"categories"`
}

type categoryDetail struct {
	Name    string         `json:"name"`
	Max     float64        `json:"max"`
	Factors []factorDetail `json:"factors"`
}

type factorDetail struct {
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Max     float64  `json:"max"`
	Options []string `json:"options,omitempty"`
}

// listRubrics handles GET /api/v1/rubrics
func (a *API) listRubrics(w http.ResponseWriter, r *http.Request) {
	summaries := make([]rubricSummary, 0, len(rubric.Names()))
	for _, name := range rubric.Names() {
		rb, err := rubric.ByName(name)
		if err != nil {
			continue
		}
		summaries = append(summaries, summarize(rb))
	}
	respondJSON(w, http.StatusOK, Response{Data: summaries})
}

// getRubric handles GET /api/v1/rubrics/{name}
func (a *API) getRubric(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rb, err := rubric.ByName(name)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	detail := rubricDetail{rubricSummary: summarize(rb)}
	for _, cat := range rb.Categories {
		cd := categoryDetail{Name: cat.Name, Max: cat.Max}
		for _, f := range cat.Factors {
			cd.Factors = append(cd.Factors, factorDetail{
				Field:   f.Field,
				Label:   f.Label,
				Kind:    f.Kind.String(),
				Max:     f.Max(),
				Options: f.Rank,
			})
		}
		detail.Categories = append(detail.Categories, cd)
	}

	respondJSON(w, http.StatusOK, Response{Data: detail})
}

func summarize(rb rubric.Rubric) rubricSummary {
	return rubricSummary{
		Name:    rb.Name,
		Version: rb.Version,
		Title:   rb.Title,
		Default: rb.Name == rubric.DefaultName,
	}
}

// createAssessment handles POST /api/v1/assessments
func (a *API) createAssessment(w http.ResponseWriter, r *http.Request) {
	rep, apiErr := a.buildReport(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}
	respondJSON(w, http.StatusOK, Response{Data: rep})
}

// createCertificate handles POST /api/v1/certificates?format=
func (a *API) createCertificate(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = report.FormatHTML
	}
	var contentType string
	switch format {
	case report.FormatJSON:
		contentType = "application/json"
	case report.FormatCSV:
		contentType = "text/csv; charset=utf-8"
	case report.FormatHTML:
		contentType = "text/html; charset=utf-8"
	default:
		respondError(w, http.StatusBadRequest, "invalid_format", "Format must be 'json', 'csv', or 'html'")
		return
	}

	rep, apiErr := a.buildReport(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.DefaultFilename(report.Extension(format))+`"`)
	_ = report.WriteTo(rep, format, w)
}

// buildReport runs the assessment pipeline for one request body.
func (a *API) buildReport(r *http.Request) (*report.Report, *apiError) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &apiError{http.StatusBadRequest, "invalid_body", "Cannot read request body", nil}
	}

	var req assessRequest
	if err := yaml.Unmarshal(body, &req); err != nil {
		return nil, &apiError{http.StatusBadRequest, "invalid_body", "Body must be a JSON or YAML assessment request", nil}
	}

	mode, err := engine.ParseMode(req.Mode)
	if err != nil {
		return nil, &apiError{http.StatusUnprocessableEntity, "mode_mismatch", err.Error(), nil}
	}

	kind := schema.KindFor(string(mode), req.Rubric)
	if err := a.validator.Validate(kind, req.Answers); err != nil {
		var invalid *schema.InvalidInputError
		if errors.As(err, &invalid) {
			return nil, &apiError{http.StatusUnprocessableEntity, "invalid_answers", invalid.Error(), invalid.Fields}
		}
		// Unknown kind means the rubric name has no schema; the engine
		// error below would say the same, but with less context here.
		return nil, &apiError{http.StatusUnprocessableEntity, "invalid_request", err.Error(), nil}
	}

	rec, err := answers.FromMap(req.Answers)
	if err != nil {
		return nil, &apiError{http.StatusUnprocessableEntity, "invalid_answers", err.Error(), nil}
	}

	assessment, err := engine.Assess(engine.Request{
		Mode:    mode,
		Rubric:  req.Rubric,
		Vendor:  req.Vendor,
		Answers: rec,
	})
	if err != nil {
		code := "invalid_request"
		if errors.Is(err, engine.ErrModeMismatch) {
			code = "mode_mismatch"
		}
		return nil, &apiError{http.StatusUnprocessableEntity, code, err.Error(), nil}
	}

	return report.New(assessment, a.reportOpts), nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, Response{
		Error: &ErrorMsg{
			Code:    code,
			Message: message,
		},
	})
}

func respondAPIError(w http.ResponseWriter, e *apiError) {
	respondJSON(w, e.status, Response{
		Error: &ErrorMsg{
			Code:    e.code,
			Message: e.message,
			Fields:  e.fields,
		},
	})
}

// corsMiddleware adds CORS headers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
