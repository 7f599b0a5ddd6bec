package server

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// maxUploadBytes bounds a resume file upload.
const maxUploadBytes = 10 << 20

// requireAnalysis reports whether the analysis backend is configured,
// writing the error response when it is not.
func (s *Server) requireAnalysis(w http.ResponseWriter) bool {
	if s.analysis == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "analysis backend not configured")
		return false
	}
	return true
}

// resumeInput serializes one stored record into analysis input.
func resumeInput(record types.StoredResume) ai.ResumeInput {
	return ai.TextResume(rendering.PlainText(&record.ResumeData, record.SectionOrder))
}

// handleUpload accepts a resume file, extracts or passes through its
// content, parses it into structured data via the analysis backend
// and stores the result as a new active resume.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalysis(w) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	upload, err := ingestion.Accept(header.Filename, content)
	if err != nil {
		s.fail(w, err)
		return
	}

	input := ai.TextResume(upload.Text)
	if upload.PassThrough() {
		input = ai.FileResume(upload.MIMEType, upload.Data)
	}

	parsed, err := s.analysis.ParseResume(r.Context(), input)
	if err != nil {
		s.fail(w, err)
		return
	}

	name := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	if name == "" {
		name = "Uploaded Resume"
	}
	record, err := s.store.Create(r.Context(), name, parsed.ResumeData, parsed.TemplateStyle,
		types.DefaultSectionOrder(), &header.Filename)
	if err != nil {
		s.fail(w, err)
		return
	}

	if s.verbose {
		s.printer.PrintStoredResume(&record)
	}
	s.jsonResponse(w, http.StatusCreated, record)
}

type atsRequest struct {
	ResumeID string `json:"resumeId" validate:"required"`
}

// handleAnalyzeATS scores the named resume for tracking-system
// compatibility. A response superseded by a newer request of the same
// kind is discarded with 409.
func (s *Server) handleAnalyzeATS(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalysis(w) {
		return
	}

	var req atsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, err)
		return
	}

	record, err := s.store.GetByID(r.Context(), req.ResumeID)
	if err != nil {
		s.fail(w, err)
		return
	}

	seq := s.tracker.Begin(ai.KindATS)
	score, err := s.analysis.AnalyzeATS(r.Context(), resumeInput(record))
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.tracker.Current(ai.KindATS, seq) {
		s.errorResponse(w, http.StatusConflict, "superseded by a newer request")
		return
	}

	if s.verbose {
		s.printer.PrintAnalysisSummary(score)
	}
	s.jsonResponse(w, http.StatusOK, score)
}

type jdMatchRequest struct {
	ResumeID       string `json:"resumeId" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// handleAnalyzeJDMatch matches the named resume against a job
// description.
func (s *Server) handleAnalyzeJDMatch(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalysis(w) {
		return
	}

	var req jdMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, err)
		return
	}

	record, err := s.store.GetByID(r.Context(), req.ResumeID)
	if err != nil {
		s.fail(w, err)
		return
	}

	seq := s.tracker.Begin(ai.KindJDMatch)
	analysis, err := s.analysis.MatchJD(r.Context(), resumeInput(record), req.JobDescription)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.tracker.Current(ai.KindJDMatch, seq) {
		s.errorResponse(w, http.StatusConflict, "superseded by a newer request")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

type suggestionsRequest struct {
	Target  ai.SuggestionTarget `json:"type" validate:"required,oneof=summary experience"`
	Context map[string]string   `json:"context"`
}

// handleSuggestions generates summary or experience bullet
// alternatives from the supplied context.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalysis(w) {
		return
	}

	var req suggestionsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, err)
		return
	}

	seq := s.tracker.Begin(ai.KindContentSuggestions)
	suggestions, err := s.analysis.SuggestContent(r.Context(), ai.SuggestionPayload{
		Target:  req.Target,
		Context: req.Context,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.tracker.Current(ai.KindContentSuggestions, seq) {
		s.errorResponse(w, http.StatusConflict, "superseded by a newer request")
		return
	}

	s.jsonResponse(w, http.StatusOK, suggestions)
}

type rewriteRequest struct {
	ResumeID       string `json:"resumeId" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// handleRewrite produces a full rewritten resume targeted at a job
// description.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalysis(w) {
		return
	}

	var req rewriteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, err)
		return
	}

	record, err := s.store.GetByID(r.Context(), req.ResumeID)
	if err != nil {
		s.fail(w, err)
		return
	}

	seq := s.tracker.Begin(ai.KindRewrite)
	rewritten, err := s.analysis.Rewrite(r.Context(), resumeInput(record), req.JobDescription)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.tracker.Current(ai.KindRewrite, seq) {
		s.errorResponse(w, http.StatusConflict, "superseded by a newer request")
		return
	}

	s.jsonResponse(w, http.StatusOK, rewritten)
}
