package server

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/types"
)

// renderTarget bundles everything one render run needs: the record
// plus its projection.
type renderTarget struct {
	record    types.StoredResume
	projected projection.ProjectedSections
}

// loadRenderTarget fetches the record named in the path and computes
// its shared projection.
func (s *Server) loadRenderTarget(r *http.Request) (renderTarget, error) {
	record, err := s.store.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		return renderTarget{}, err
	}
	projected := projection.Project(&record.ResumeData, record.SectionOrder, record.TemplateStyle.Layout)
	return renderTarget{record: record, projected: projected}, nil
}

// handlePreview serves the interactive HTML preview. ?dark=1 requests
// the dark palette; exports never honor it.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	target, err := s.loadRenderTarget(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	dark := r.URL.Query().Get("dark")
	resolved := style.Resolve(target.record.TemplateStyle, style.ContextInteractive, dark == "1" || dark == "true")
	if s.verbose {
		s.printer.PrintResolvedStyle(&resolved)
	}

	html, err := rendering.RenderHTML(&target.record.ResumeData, resolved, target.projected)
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, html); err != nil {
		log.Printf("Error writing preview response: %v", err)
	}
}

// handlePlainText serves the plain-text serialization used as
// analysis input, handy for copy-paste workflows too.
func (s *Server) handlePlainText(w http.ResponseWriter, r *http.Request) {
	target, err := s.loadRenderTarget(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	text := rendering.PlainText(&target.record.ResumeData, target.record.SectionOrder)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, text); err != nil {
		log.Printf("Error writing text response: %v", err)
	}
}

// handleExportDocx serves the word-processor document download.
func (s *Server) handleExportDocx(w http.ResponseWriter, r *http.Request) {
	target, err := s.loadRenderTarget(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	resolved := style.Resolve(target.record.TemplateStyle, style.ContextExport, false)
	doc, err := rendering.RenderDOCX(&target.record.ResumeData, resolved, target.projected)
	if err != nil {
		s.fail(w, err)
		return
	}

	serveDownload(w, doc,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		rendering.ExportFileName(target.record.ResumeData.PersonalInfo.Name, "docx"))
}

// handleExportPDF serves the print-rendered PDF download.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	target, err := s.loadRenderTarget(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	resolved := style.Resolve(target.record.TemplateStyle, style.ContextExport, false)
	pdf, err := rendering.RenderPDF(r.Context(), &target.record.ResumeData, resolved, target.projected)
	if err != nil {
		s.fail(w, err)
		return
	}

	serveDownload(w, pdf, "application/pdf",
		rendering.ExportFileName(target.record.ResumeData.PersonalInfo.Name, "pdf"))
}

// handleExportAll renders every export format concurrently and serves
// them as one zip archive.
func (s *Server) handleExportAll(w http.ResponseWriter, r *http.Request) {
	target, err := s.loadRenderTarget(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	resolved := style.Resolve(target.record.TemplateStyle, style.ContextExport, false)
	name := target.record.ResumeData.PersonalInfo.Name

	var (
		mu    sync.Mutex
		files = map[string][]byte{}
	)
	add := func(filename string, content []byte) {
		mu.Lock()
		defer mu.Unlock()
		files[filename] = content
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		doc, err := rendering.RenderDOCX(&target.record.ResumeData, resolved, target.projected)
		if err != nil {
			return err
		}
		add(rendering.ExportFileName(name, "docx"), doc)
		return nil
	})
	g.Go(func() error {
		pdf, err := rendering.RenderPDF(ctx, &target.record.ResumeData, resolved, target.projected)
		if err != nil {
			return err
		}
		add(rendering.ExportFileName(name, "pdf"), pdf)
		return nil
	})
	g.Go(func() error {
		html, err := rendering.RenderPrintHTML(&target.record.ResumeData, resolved, target.projected)
		if err != nil {
			return err
		}
		add(rendering.ExportFileName(name, "html"), []byte(html))
		return nil
	})
	g.Go(func() error {
		text := rendering.PlainText(&target.record.ResumeData, target.record.SectionOrder)
		add(rendering.ExportFileName(name, "txt"), []byte(text))
		return nil
	})
	if err := g.Wait(); err != nil {
		s.fail(w, err)
		return
	}

	archive, err := zipFiles(files)
	if err != nil {
		s.fail(w, err)
		return
	}

	serveDownload(w, archive, "application/zip", rendering.ExportFileName(name, "zip"))
}

// zipFiles packs the named contents into a zip archive with
// deterministic entry order.
func zipFiles(files map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		entry, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		if _, err := entry.Write(files[name]); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}

// serveDownload writes binary content with attachment headers.
func serveDownload(w http.ResponseWriter, content []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("Error writing download response: %v", err)
	}
}
