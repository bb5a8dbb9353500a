package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"Reportly/internal/auth"
	"Reportly/internal/config"
	"Reportly/internal/db"
	appAuth "Reportly/internal/handlers/auth"
	"Reportly/internal/handlers/health"
	"Reportly/internal/handlers/landing"
	"Reportly/internal/handlers/pricing"
	"Reportly/internal/handlers/report"
	"Reportly/internal/middleware"
	"Reportly/internal/services"
)

type Server struct {
	config              config.Config
	googleAuth          *auth.GoogleAuth
	authHandler         *appAuth.AuthHandler
	dbConnectionDetails db.ConnectionDetails
	services            *services.Services
}

func New(cfg config.Config) *Server {
	// Initialize Google authentication
	googleAuth := auth.NewGoogleAuth(&auth.Config{
		GoogleKey:       cfg.GoogleKey,
		GoogleSecret:    cfg.GoogleSecret,
		CallbackURL:     cfg.CallbackURL(),
		SecretKey:       []byte(cfg.SessionSecret),
		SessionDuration: cfg.SessionDuration,
	})

	// Initialize database connection details
	dbConnectionDetails, err := db.GetPostgresConfig()
	if err != nil {
		panic("Failed to get database config: " + err.Error())
	}

	// Initialize outbound services (platform client, analytics)
	services := services.New(cfg)

	authHandler := appAuth.NewAuthHandler(googleAuth, services.Tracker)

	return &Server{
		config:              cfg,
		googleAuth:          googleAuth,
		authHandler:         authHandler,
		dbConnectionDetails: dbConnectionDetails,
		services:            services,
	}
}

func (s *Server) createHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	// Serve static files
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./web/static"))))

	// Health check endpoint
	r.Get("/health", health.Handler)

	// Authentication routes
	r.Get("/auth/google", s.authHandler.BeginAuthHandler)
	r.Get("/auth/google/callback",
		db.WithDB(s.dbConnectionDetails, s.authHandler.AuthCallbackHandlerWithDB))
	r.Get("/logout/google", s.authHandler.LogoutHandler)

	// Public pages
	r.Get("/", s.googleAuth.WithOutGoogleAuth("/report", landing.Handler))
	r.Get("/pricing", pricing.Handler)

	// Signed-in pages
	r.Get("/report", s.withUserContext(
		middleware.WithDBAndAuth(s.dbConnectionDetails, s.googleAuth, report.Handler)))
	r.Get("/report/*", s.withUserContext(
		middleware.WithDBAndAuth(s.dbConnectionDetails, s.googleAuth, report.Handler)))

	// API routes
	r.Post("/api/report/export", s.withUserContext(
		middleware.WithDBAndAuth(s.dbConnectionDetails, s.googleAuth,
			report.ExportHandler(s.services.Tracker))))

	return r
}

// Middleware to add user to context
func (s *Server) withUserContext(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.googleAuth.GetSession(r)
		if err == nil && session != nil {
			r = r.WithContext(auth.WithUser(r.Context(), &session.User))
		}
		next(w, r)
	}
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.createHandler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	return server.ListenAndServe()
}
