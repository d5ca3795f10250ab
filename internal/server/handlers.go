package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/pipeline"
	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// maxRequestBytes bounds a create request, which may carry a full page of markup
const maxRequestBytes = 5 << 20

var validate = validator.New()

// CreateStyleguideRequest is the body of POST /styleguides. Exactly one of
// URL and HTML is required.
type CreateStyleguideRequest struct {
	URL              string                     `json:"url,omitempty" validate:"omitempty,url,max=2048"`
	HTML             string                     `json:"html,omitempty" validate:"omitempty,max=4194304"`
	Domain           string                     `json:"domain,omitempty" validate:"omitempty,hostname,max=253"`
	Personality      *types.PersonalityOverride `json:"personality,omitempty"`
	InferPersonality bool                       `json:"infer_personality,omitempty"`
	UseBrowser       *bool                      `json:"use_browser,omitempty"`
}

// Validate normalizes the URL and checks the request
func (r *CreateStyleguideRequest) Validate() error {
	r.URL = fetch.NormalizeURL(r.URL)
	r.HTML = strings.TrimSpace(r.HTML)
	switch {
	case r.URL == "" && r.HTML == "":
		return &ErrValidation{Field: "url", Message: "either url or html is required"}
	case r.URL != "" && r.HTML != "":
		return &ErrValidation{Field: "html", Message: "url and html are mutually exclusive"}
	}

	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ErrValidation{Field: fe.Namespace(), Message: fmt.Sprintf("failed on %q", fe.Tag())}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// StyleguideResponse describes a generated styleguide
type StyleguideResponse struct {
	ID          string                    `json:"id"`
	Domain      string                    `json:"domain"`
	BrandName   string                    `json:"brand_name"`
	Score       int                       `json:"quality_score"`
	Confidence  float64                   `json:"confidence"`
	Attempts    int                       `json:"repair_attempts"`
	Artifact    *types.StyleguideArtifact `json:"artifact"`
	Report      *types.QualityReport      `json:"quality_report"`
	DocumentURL string                    `json:"document_url"`
	TokensURL   string                    `json:"tokens_url"`
}

func newStyleguideResponse(out *pipeline.Output) StyleguideResponse {
	id := out.RunID.String()
	return StyleguideResponse{
		ID:          id,
		Domain:      out.Analysis.Domain,
		BrandName:   out.Analysis.BrandName,
		Score:       out.Report.Score,
		Confidence:  out.Analysis.Confidence,
		Attempts:    out.Repair.Attempts,
		Artifact:    out.Artifact,
		Report:      out.Report,
		DocumentURL: "/styleguides/" + id + "/document.html",
		TokensURL:   "/styleguides/" + id + "/tokens.css",
	}
}

func (s *Server) decodeCreateRequest(w http.ResponseWriter, r *http.Request) (*CreateStyleguideRequest, error) {
	var req CreateStyleguideRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// generate runs the pipeline for one request. The result is stored by the pipeline.
func (s *Server) generate(ctx context.Context, req *CreateStyleguideRequest, onProgress pipeline.ProgressCallback) (*pipeline.Output, error) {
	useBrowser := s.cfg.UseBrowser
	if req.UseBrowser != nil {
		useBrowser = *req.UseBrowser
	}
	opts := pipeline.Options{
		URL:    req.URL,
		Domain: req.Domain,
		Site: &fetch.SiteOptions{
			UseBrowser: useBrowser,
			Cache:      s.deps.Cache,
		},
		Personality:       req.Personality,
		LLM:               s.deps.LLM,
		InferPersonality:  req.InferPersonality,
		MaxRepairAttempts: s.cfg.MaxRepairAttempts,
		QualityThreshold:  s.cfg.QualityThreshold,
		Store:             s.deps.Store,
		Metrics:           s.deps.Metrics,
		Verbose:           s.cfg.Verbose,
		Quiet:             !s.cfg.Verbose,
		OnProgress:        onProgress,
	}
	if req.HTML != "" {
		return pipeline.Generate(ctx, req.HTML, opts)
	}
	return pipeline.Run(ctx, opts)
}

// handleCreateStyleguide generates a styleguide synchronously
func (s *Server) handleCreateStyleguide(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeCreateRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	out, err := s.generate(r.Context(), req, nil)
	if err != nil {
		log.Printf("[SERVER] Styleguide generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, newStyleguideResponse(out))
}

// handleCreateStyleguideStream generates a styleguide and streams stage progress via SSE
func (s *Server) handleCreateStyleguideStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeCreateRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	out, err := s.generate(r.Context(), req, func(event pipeline.ProgressEvent) {
		if err := sse.Progress(event); err != nil {
			log.Printf("[SERVER] Failed to write step event: %v", err)
		}
	})
	if err != nil {
		log.Printf("[SERVER] Streaming generation failed: %v", err)
		sse.WriteError(HTTPStatus(err), err.Error())
		return
	}
	if err := sse.Complete(newStyleguideResponse(out)); err != nil {
		log.Printf("[SERVER] Failed to write complete event: %v", err)
	}
}

// handleListStyleguides lists recent styleguides, optionally for one domain
func (s *Server) handleListStyleguides(w http.ResponseWriter, r *http.Request) {
	filters := db.StyleguideFilters{Domain: r.URL.Query().Get("domain")}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = limit
	}

	list, err := s.deps.Store.ListStyleguides(r.Context(), filters)
	if err != nil {
		log.Printf("[SERVER] Failed to list styleguides: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list styleguides")
		return
	}
	if list == nil {
		list = []db.StyleguideSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"styleguides": list, "count": len(list)})
}

// pathID parses the {id} path value, writing a 400 when it is not a UUID
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid styleguide ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) loadStyleguide(w http.ResponseWriter, r *http.Request) (*db.Styleguide, bool) {
	id, ok := s.pathID(w, r)
	if !ok {
		return nil, false
	}
	sg, err := s.deps.Store.GetStyleguide(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] Failed to load styleguide %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load styleguide")
		return nil, false
	}
	if sg == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{ID: id.String()}).Error())
		return nil, false
	}
	return sg, true
}

// handleGetStyleguide returns the stored artifact and quality report
func (s *Server) handleGetStyleguide(w http.ResponseWriter, r *http.Request) {
	if sg, ok := s.loadStyleguide(w, r); ok {
		s.jsonResponse(w, http.StatusOK, sg)
	}
}

// handleGetDocument serves the assembled styleguide document
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.deps.Store.GetStyleguideDocument(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] Failed to load document %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	if doc == "" {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{ID: id.String()}).Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// handleGetTokensCSS serves the design tokens as a :root custom property block
func (s *Server) handleGetTokensCSS(w http.ResponseWriter, r *http.Request) {
	sg, ok := s.loadStyleguide(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(tokens.ToCSSVariables(sg.Artifact.DesignTokens)))
}

// handleDeleteStyleguide removes a styleguide and its document
func (s *Server) handleDeleteStyleguide(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.deps.Store.DeleteStyleguide(r.Context(), id); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[SERVER] Failed to delete styleguide %s: %v", id, err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
