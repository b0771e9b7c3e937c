package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/config"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/database"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/comparison"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/scoring"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/snapshots"
)

// Config holds server configuration
type Config struct {
	Port    int
	Log     zerolog.Logger
	DB      *database.DB
	Config  *config.Config
	DevMode bool
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	db     *database.DB
	cfg    *config.Config

	risk       *risk.Handlers
	scoring    *scoring.Handlers
	comparison *comparison.Handlers
	snapshots  *snapshots.Handlers
}

// New creates a new HTTP server
func New(cfg Config) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		db:     cfg.DB,
		cfg:    cfg.Config,
	}

	tables := scoring.DefaultTables()
	if cfg.Config.ScoringTablesPath != "" {
		loaded, err := scoring.LoadTables(cfg.Config.ScoringTablesPath)
		if err != nil {
			return nil, fmt.Errorf("loading scoring tables: %w", err)
		}
		tables = loaded
		s.log.Info().Str("path", cfg.Config.ScoringTablesPath).Msg("Loaded scoring tables override")
	}

	riskSvc := risk.NewService(cfg.Log)
	scorer := scoring.NewScorer(tables, nil)
	comparisonSvc := comparison.NewService(scorer, riskSvc, cfg.Log)
	snapshotRepo := snapshots.NewRepository(cfg.DB, cfg.Log)

	s.risk = risk.NewHandlers(riskSvc, cfg.Log)
	s.scoring = scoring.NewHandlers(scorer, snapshotRepo, cfg.Log)
	s.comparison = comparison.NewHandlers(comparisonSvc, cfg.Log)
	s.snapshots = snapshots.NewHandlers(snapshotRepo, cfg.Log)

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		// Risk metrics
		r.Route("/risk", func(r chi.Router) {
			r.Post("/profile", s.risk.HandleComputeProfile)
		})

		// Five-lens scoring
		r.Route("/scoring", func(r chi.Router) {
			r.Post("/score", s.scoring.HandleScore)
		})

		// Peer ranking and portfolio analysis
		r.Route("/comparison", func(r chi.Router) {
			r.Post("/rank", s.comparison.HandleRankPeers)
			r.Post("/portfolio", s.comparison.HandleAnalyzePortfolio)
		})

		// Historical score snapshots
		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/{symbol}", s.snapshots.HandleList)
			r.Get("/{symbol}/latest", s.snapshots.HandleLatest)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
