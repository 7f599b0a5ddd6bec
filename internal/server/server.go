// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	analysis   *ai.Service
	tracker    *ai.Tracker
	validate   *validator.Validate
	printer    *observability.Printer
	verbose    bool
	closeFn    func()
}

// New creates a new server instance. The analysis service may be nil
// when no API key is configured; analysis endpoints then report the
// missing configuration per request instead of failing startup.
func New(cfg config.Config) (*Server, error) {
	var kv store.KV
	var closeFn func()

	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect storage: %w", err)
		}
		kv = pg
		closeFn = pg.Close
	} else {
		fileKV, err := store.NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open data directory: %w", err)
		}
		kv = fileKV
	}

	s := &Server{
		store:    store.New(kv),
		tracker:  ai.NewTracker(),
		validate: validator.New(),
		printer:  observability.NewPrinter(os.Stdout),
		verbose:  cfg.Verbose,
		closeFn:  closeFn,
	}

	if cfg.APIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create analysis client: %w", err)
		}
		s.analysis = ai.NewService(client)
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for PDF rendering
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// handler builds the routed, middleware-wrapped handler.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume collection endpoints
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes/active", s.handleGetActive)
	mux.HandleFunc("PUT /resumes/active", s.handleSetActive)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)

	// Bundle endpoints
	mux.HandleFunc("GET /bundle", s.handleExportBundle)
	mux.HandleFunc("POST /bundle", s.handleImportBundle)

	// Template presets
	mux.HandleFunc("GET /templates", s.handleListTemplates)

	// Rendering and export endpoints
	mux.HandleFunc("GET /resumes/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /resumes/{id}/text", s.handlePlainText)
	mux.HandleFunc("GET /resumes/{id}/export/docx", s.handleExportDocx)
	mux.HandleFunc("GET /resumes/{id}/export/pdf", s.handleExportPDF)
	mux.HandleFunc("GET /resumes/{id}/export/all", s.handleExportAll)

	// Upload and analysis endpoints
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /analyze/ats", s.handleAnalyzeATS)
	mux.HandleFunc("POST /analyze/jd-match", s.handleAnalyzeJDMatch)
	mux.HandleFunc("POST /analyze/suggestions", s.handleSuggestions)
	mux.HandleFunc("POST /analyze/rewrite", s.handleRewrite)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.closeFn != nil {
		s.closeFn()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
