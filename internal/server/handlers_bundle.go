package server

import (
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-studio/internal/schemas"
)

// maxBundleBytes bounds an import upload.
const maxBundleBytes = 20 << 20

// handleExportBundle serves the whole collection as a downloadable
// backup blob.
func (s *Server) handleExportBundle(w http.ResponseWriter, r *http.Request) {
	blob, err := s.store.ExportBundle(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="resume-backup.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob); err != nil {
		log.Printf("Error writing bundle response: %v", err)
	}
}

// handleImportBundle atomically replaces the collection from an
// uploaded bundle. The blob is schema-checked before the store sees
// it, so a malformed bundle changes nothing.
func (s *Server) handleImportBundle(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	blob, err := io.ReadAll(io.LimitReader(r.Body, maxBundleBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read bundle")
		return
	}

	if err := schemas.Validate(schemas.Bundle, blob); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.store.ImportBundle(r.Context(), blob); err != nil {
		s.fail(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, collectionResponse{
		Resumes:  s.store.GetAll(r.Context()),
		ActiveID: s.store.GetActiveID(r.Context()),
	})
}
