// Package http provides http transport for analyze
package http

import (
	stdhttp "net/http"

	"versecraft/internal/modkit/httpkit"
	"versecraft/internal/services/analyze/domain"
	"versecraft/internal/services/analyze/render"
)

// ParseInput is the sentence decomposition request body
type ParseInput struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

// ParseResponse carries the structured parse plus rendered text forms
type ParseResponse struct {
	Sentence domain.Sentence `json:"sentence"`
	Gloss    string          `json:"gloss"`
	Report   string          `json:"report"`
}

// RhymeInput is the multi-line rhyme request body
type RhymeInput struct {
	Lines []string `json:"lines" validate:"required,min=2,max=64,dive,notblank,max=2000"`
}

// RhymeResponse carries the structured rhyme analysis plus the report text
type RhymeResponse struct {
	domain.RhymeAnalysis
	Report string `json:"report"`
}

// SchemeInput is the rhyme-scheme detection request body
type SchemeInput struct {
	Lines []string `json:"lines" validate:"required,min=2,max=64,dive,notblank,max=2000"`
}

// SchemeResponse carries the detected scheme plus the report text
type SchemeResponse struct {
	domain.SchemeAnalysis
	Report string `json:"report"`
}

// Register mounts analyze endpoints on the given router
func Register(r httpkit.Router, svc domain.AnalyzerPort) {
	h := &handlers{svc: svc}
	httpkit.PostJSON[ParseInput](r, "/parse", h.parse)
	httpkit.PostJSON[RhymeInput](r, "/rhyme", h.rhyme)
	httpkit.PostJSON[SchemeInput](r, "/scheme", h.scheme)
}

type handlers struct{ svc domain.AnalyzerPort }

func (h *handlers) parse(r *stdhttp.Request, in ParseInput) (any, error) {
	sent, err := h.svc.ParseSentence(r.Context(), in.Text)
	if err != nil {
		return nil, err
	}
	return ParseResponse{
		Sentence: sent,
		Gloss:    render.Gloss(sent),
		Report:   render.Parse(sent),
	}, nil
}

func (h *handlers) rhyme(r *stdhttp.Request, in RhymeInput) (any, error) {
	res, err := h.svc.AnalyzeRhyme(r.Context(), in.Lines)
	if err != nil {
		return nil, err
	}
	return RhymeResponse{
		RhymeAnalysis: res,
		Report:        render.Rhyme(res),
	}, nil
}

func (h *handlers) scheme(r *stdhttp.Request, in SchemeInput) (any, error) {
	res, err := h.svc.AnalyzeScheme(r.Context(), in.Lines)
	if err != nil {
		return nil, err
	}
	return SchemeResponse{
		SchemeAnalysis: res,
		Report:         render.Scheme(res),
	}, nil
}
