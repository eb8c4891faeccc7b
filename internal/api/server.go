package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server represents the HTTP API server
type Server struct {
	router *chi.Mux
	addr   string
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port int

	// Token, when non-empty, protects the pipeline endpoints with bearer
	// auth. Health and version stay public.
	Token string

	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// NewServer creates a new API server with the given configuration
func NewServer(config ServerConfig) *Server {
	handler := NewHandler(
		config.Version,
		config.GitCommit,
		config.BuildTime,
		config.GoVersion,
	)

	router := chi.NewRouter()
	setupMiddleware(router)
	setupRoutes(router, handler, config.Token)

	return &Server{
		router: router,
		addr:   fmt.Sprintf(":%d", config.Port),
	}
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux) {
	// Request logger
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.Default(),
		NoColor: false,
	}))

	// Recoverer from panics
	router.Use(middleware.Recoverer)

	// Timeout for requests
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	})
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler, token string) {
	router.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)

		// Pipeline endpoints, token-protected when a token is configured
		r.Group(func(r chi.Router) {
			if token != "" {
				r.Use(TokenAuth(token))
			}
			r.Post("/parse", handler.Parse)
			r.Post("/validate", handler.Validate)
			r.Post("/render", handler.Render)
		})
	})
}

// Router exposes the configured router, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start() error {
	return s.StartWithContext(context.Background())
}

// StartWithContext starts the HTTP server with graceful shutdown support
func (s *Server) StartWithContext(ctx context.Context) error {
	log.Printf("Starting API server on %s", s.addr)

	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to signal server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", s.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		log.Println("Shutting down server...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
			return err
		}

		log.Println("Server stopped gracefully")
		return nil

	case err := <-errChan:
		return err
	}
}
