package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/surgery-tracker/docs"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/surgery-tracker/internal/http/middleware"
	"github.com/rogerio-castellano/surgery-tracker/internal/metrics"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)

	// Public
	r.With(mw.RateLimit).Post("/login", handlers.LoginHandler)
	r.With(mw.RateLimit).Post("/register", handlers.RegisterHandler)
	r.Get("/health", handlers.HealthHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)

		r.Get("/staff", handlers.GetStaffHandler)
		r.Get("/hospitals", handlers.GetHospitalsHandler)
		r.Get("/regions", handlers.GetRegionsHandler)

		r.Post("/surgeries", handlers.LogSurgeryHandler)
		r.Get("/surgeries", handlers.GetSurgeriesHandler)

		r.Get("/trends", handlers.GetTrendsHandler)
		r.Get("/leaderboard", handlers.GetLeaderboardHandler)
		r.Get("/reports/export", handlers.ExportReportHandler)
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(models.RoleAdmin))

			r.Post("/surgeries/import", handlers.ImportSurgeriesHandler)
			r.Delete("/surgeries/{id}", handlers.DeleteSurgeryHandler)
			r.Post("/staff", handlers.CreateStaffHandler)
			r.Post("/targets", handlers.AssignTargetHandler)
			r.Get("/targets", handlers.GetTargetsHandler)
			r.Post("/admin/users", handlers.RegisterAsAdminHandler)
		})
	})

	return r
}
