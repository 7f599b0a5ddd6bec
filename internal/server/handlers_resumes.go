package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// collectionResponse is the payload for endpoints that return the
// whole collection plus the active pointer.
type collectionResponse struct {
	Resumes  []types.StoredResume `json:"resumes"`
	ActiveID string               `json:"activeId"`
}

// decodeJSON parses a request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// handleListResumes returns every stored resume and the active
// pointer. Bootstraps a default record on a fresh workspace so the
// list is never empty.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.EnsureAtLeastOne(r.Context()); err != nil {
		s.fail(w, err)
		return
	}

	resumes := s.store.GetAll(r.Context())
	s.jsonResponse(w, http.StatusOK, collectionResponse{
		Resumes:  resumes,
		ActiveID: s.store.GetActiveID(r.Context()),
	})
}

type createResumeRequest struct {
	Name       string `json:"name" validate:"required"`
	TemplateID string `json:"templateId"`
}

// handleCreateResume creates a fresh named resume, optionally styled
// from a built-in template preset, and makes it active.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req createResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, err)
		return
	}

	styleForNew := templates.Default()
	if req.TemplateID != "" {
		preset, ok := templates.ByID(req.TemplateID)
		if !ok {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown template %q", req.TemplateID))
			return
		}
		styleForNew = preset.Style
	}

	record, err := s.store.Create(r.Context(), req.Name, types.NewResumeData(), styleForNew, types.DefaultSectionOrder(), nil)
	if err != nil {
		s.fail(w, err)
		return
	}

	if s.verbose {
		s.printer.PrintStoredResume(&record)
	}
	s.jsonResponse(w, http.StatusCreated, record)
}

// handleGetResume returns one record by id.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	record, err := s.store.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// updateResumeRequest carries a partial update. Only fields present
// in the body are applied.
type updateResumeRequest struct {
	Name             *string                    `json:"name"`
	ResumeData       *types.ResumeData          `json:"resumeData"`
	TemplateStyle    *types.ResumeTemplateStyle `json:"templateStyle"`
	SectionOrder     *types.SectionOrder        `json:"sectionOrder"`
	UploadedFileName *string                    `json:"uploadedFileName"`
}

// handleUpdateResume applies a partial update to one record.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	var req updateResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SectionOrder != nil {
		if err := req.SectionOrder.Normalize().Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	record, err := s.store.Update(r.Context(), r.PathValue("id"), func(rec *types.StoredResume) {
		if req.Name != nil {
			rec.Name = *req.Name
		}
		if req.ResumeData != nil {
			rec.ResumeData = *req.ResumeData
		}
		if req.TemplateStyle != nil {
			style := *req.TemplateStyle
			style.Normalize()
			rec.TemplateStyle = style
		}
		if req.SectionOrder != nil {
			rec.SectionOrder = *req.SectionOrder
		}
		if req.UploadedFileName != nil {
			rec.UploadedFileName = req.UploadedFileName
		}
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteResume removes a record and returns the updated
// collection, so clients see where the active pointer moved.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, collectionResponse{
		Resumes:  s.store.GetAll(r.Context()),
		ActiveID: s.store.GetActiveID(r.Context()),
	})
}

// handleGetActive returns the active record, bootstrapping one on a
// fresh workspace.
func (s *Server) handleGetActive(w http.ResponseWriter, r *http.Request) {
	record, err := s.store.EnsureAtLeastOne(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

type setActiveRequest struct {
	ID string `json:"id" validate:"required"`
}

// handleSetActive repoints the active pointer to an existing record.
func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, err)
		return
	}

	if err := s.store.SetActiveID(r.Context(), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"activeId": req.ID})
}

// handleListTemplates returns the built-in template presets.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, templates.All())
}
