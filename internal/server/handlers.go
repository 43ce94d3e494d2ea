package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-skills-analyzer/internal/types"
)

// AnalyzeRequest represents the request body for /api/v1/analysis/analyze
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=50"`
	Title          string `json:"title,omitempty" validate:"omitempty,max=255"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BatchRequest represents the request body for /api/v1/analysis/batch
type BatchRequest struct {
	Jobs []AnalyzeRequest `json:"jobs" validate:"required,min=1,max=50,dive"`
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalysisResponse represents a single document analysis
type AnalysisResponse struct {
	ID               uuid.UUID             `json:"id"`
	Title            string                `json:"title,omitempty"`
	AnalyzedAt       time.Time             `json:"analyzed_at"`
	Skills           []types.DetectedSkill `json:"skills"`
	TotalSkillsFound int                   `json:"total_skills_found"`
	Categories       map[string]int        `json:"categories"`
	Error            string                `json:"error,omitempty"`
}

// BatchResponse represents an aggregated batch analysis
type BatchResponse struct {
	ID                 uuid.UUID               `json:"id"`
	AnalyzedAt         time.Time               `json:"analyzed_at"`
	TotalJobs          int                     `json:"total_jobs"`
	AggregatedSkills   []types.AggregatedSkill `json:"aggregated_skills"`
	IndividualAnalyses []AnalysisResponse      `json:"individual_analyses"`
	TopSkills          []types.AggregatedSkill `json:"top_skills"`
	CategoryBreakdown  map[string]int          `json:"category_breakdown"`
}

// handleAnalyze analyzes a single job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := s.extractor.AnalyzeDocument(r.Context(), req.JobDescription)
	if err != nil {
		s.log.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysisResponse(req.Title, analysis))
}

// handleBatch analyzes multiple job descriptions and aggregates results.
// Per-document annotator failures surface inside individual_analyses
// rather than failing the whole batch.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	docs := make([]string, len(req.Jobs))
	for i, job := range req.Jobs {
		docs[i] = job.JobDescription
	}

	batch := s.aggregator.AnalyzeBatch(r.Context(), docs)

	individual := make([]AnalysisResponse, len(batch.IndividualAnalyses))
	for i := range batch.IndividualAnalyses {
		individual[i] = analysisResponse(req.Jobs[i].Title, &batch.IndividualAnalyses[i])
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{
		ID:                 uuid.New(),
		AnalyzedAt:         time.Now().UTC(),
		TotalJobs:          batch.TotalJobs,
		AggregatedSkills:   batch.AggregatedSkills,
		IndividualAnalyses: individual,
		TopSkills:          batch.TopSkills,
		CategoryBreakdown:  batch.CategoryBreakdown,
	})
}

// handleHealth reports service health
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func analysisResponse(title string, analysis *types.DocumentAnalysis) AnalysisResponse {
	return AnalysisResponse{
		ID:               uuid.New(),
		Title:            title,
		AnalyzedAt:       time.Now().UTC(),
		Skills:           analysis.Skills,
		TotalSkillsFound: analysis.TotalSkillsFound,
		Categories:       analysis.Categories,
		Error:            analysis.Error,
	}
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
