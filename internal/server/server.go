// Package server provides the HTTP REST API driving one editing session.
package server

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/imports"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/share"
	"github.com/jonathan/resume-builder/internal/storage"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	session    *session.Session
	store      storage.Store
	optimizer  assist.Optimizer
	github     *imports.GitHubClient
	shares     *share.Manager
	githubUser string
}

// Config holds server configuration.
type Config struct {
	Port            int
	DataDir         string
	DatabaseURL     string
	APIKey          string
	GitHubToken     string
	GitHubBaseURL   string
	GitHubUser      string
	ShareBaseURL    string
	ShareSigningKey string
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	var (
		store storage.Store
		err   error
	)
	if cfg.DatabaseURL != "" {
		store, err = storage.ConnectPostgres(ctx, cfg.DatabaseURL)
	} else {
		store, err = storage.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	optimizer, err := assist.New(ctx, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create optimizer: %w", err)
	}

	signingKey := []byte(cfg.ShareSigningKey)
	if len(signingKey) == 0 {
		// Without a configured key, share tokens only survive this process.
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
	}

	s := &Server{
		session:    session.New(store),
		store:      store,
		optimizer:  optimizer,
		github:     imports.NewGitHubClient(cfg.GitHubBaseURL, cfg.GitHubToken),
		shares:     share.NewManager(store, signingKey, cfg.ShareBaseURL),
		githubUser: cfg.GitHubUser,
	}

	if restored, err := s.session.RestoreLast(ctx); err != nil {
		log.Printf("Could not restore previous session: %v", err)
	} else if restored {
		log.Printf("Restored previous session")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for browser-backed exports
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Factored out so handler tests can exercise
// it without a listening socket.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document and derived views
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume/{section}", s.handleReplaceSection)
	mux.HandleFunc("POST /resume/skills", s.handleAddSkill)
	mux.HandleFunc("POST /resume/{section}", s.handleAppendEntry)
	mux.HandleFunc("DELETE /resume/{section}/{index}", s.handleRemoveEntry)
	mux.HandleFunc("POST /resume/{section}/{index}/move", s.handleMoveEntry)
	mux.HandleFunc("GET /score", s.handleScore)
	mux.HandleFunc("GET /completion", s.handleCompletion)

	// Presentation
	mux.HandleFunc("PUT /template", s.handleSetTemplate)
	mux.HandleFunc("PUT /colors", s.handleSetColors)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /preview/labels", s.handlePreviewLabels)
	mux.HandleFunc("POST /export/pdf", s.handleExportPDF)

	// External collaborators
	mux.HandleFunc("POST /optimize/{target}", s.handleOptimize)
	mux.HandleFunc("POST /skills/suggest", s.handleSuggestSkills)
	mux.HandleFunc("POST /import/github", s.handleImportGitHub)
	mux.HandleFunc("POST /share", s.handleCreateShare)
	mux.HandleFunc("GET /share/{token}", s.handleResolveShare)

	// Snapshots
	mux.HandleFunc("GET /snapshots", s.handleListSnapshots)
	mux.HandleFunc("POST /snapshots", s.handleSaveSnapshot)
	mux.HandleFunc("GET /snapshots/{id}", s.handleGetSnapshot)
	mux.HandleFunc("DELETE /snapshots/{id}", s.handleDeleteSnapshot)
	mux.HandleFunc("POST /snapshots/{id}/load", s.handleLoadSnapshot)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if err := s.optimizer.Close(); err != nil {
		log.Printf("Error closing optimizer: %v", err)
	}
	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
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

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
