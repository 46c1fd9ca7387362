package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/recognition/internal/auth"
	"github.com/frahmantamala/recognition/internal/metrics"
	"github.com/frahmantamala/recognition/internal/recognition"
	"github.com/frahmantamala/recognition/internal/transport/middleware"
	"github.com/frahmantamala/recognition/internal/transport/swagger"
	"github.com/frahmantamala/recognition/internal/user"
	"github.com/frahmantamala/recognition/internal/value"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	dbComponent string,
	allowedOrigins string,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	valueHandler *value.Handler,
	recognitionHandler *recognition.Handler,
	metricsHandler *metrics.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db, dbComponent)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes: register and login are public, logout uses soft auth
		// so a stale cookie still clears cleanly.
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)

			sr.Group(func(ar chi.Router) {
				ar.Use(authHandler.SessionMiddleware)
				ar.Get("/me", authHandler.Me)
			})
		})

		// Everything else requires a live session
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.SessionMiddleware)

			pr.Get("/users", userHandler.GetUsers)
			pr.Get("/users/birthdays", userHandler.GetUpcomingBirthdays)
			pr.Get("/users/{id}/stats", metricsHandler.GetUserStats)

			pr.Get("/values", valueHandler.GetValues)

			pr.Route("/recognitions", func(rr chi.Router) {
				rr.Post("/", recognitionHandler.CreateRecognition)
				rr.Get("/", recognitionHandler.GetRecognitions)
				rr.Get("/{id}/interactions", recognitionHandler.GetInteractions)
				rr.Post("/{id}/interactions", recognitionHandler.AddInteraction)
			})

			pr.Route("/metrics", func(mr chi.Router) {
				mr.Get("/summary", metricsHandler.GetSummary)
				mr.Get("/participation", metricsHandler.GetParticipation)
				mr.Get("/network", metricsHandler.GetNetwork)
			})
		})
	})
}
