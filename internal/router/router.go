package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hr-dashboard-api/internal/config"
	"hr-dashboard-api/internal/handler"
	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/middleware"
	"hr-dashboard-api/internal/model"
)

// New assembles the route table. Paths mirror the dashboard frontend's
// expectations: auth and resource endpoints sit at the root, with
// capability gates applied per route rather than per group.
func New(
	cfg *config.Config,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	jobOfferHandler *handler.JobOfferHandler,
	planningHandler *handler.PlanningHandler,
	dashboardHandler *handler.DashboardHandler,
	auditHandler *handler.AuditHandler,
	healthHandler *handler.HealthHandler,
	docsHandler *handler.DocsHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Instrument(m))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", docsHandler.OpenAPI)
	r.Get("/swagger", docsHandler.SwaggerUI)

	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/login", authHandler.Login)
		api.Post("/refresh", authHandler.Refresh)
		api.With(authMiddleware.RequireAuth).Get("/users/me", authHandler.Me)

		api.With(authMiddleware.RequireAuth, authMiddleware.RequireCapability(model.CapEmployeesRead)).Get("/employees", employeeHandler.List)
		api.With(authMiddleware.RequireAuth, authMiddleware.RequireCapability(model.CapEmployeesRead)).Get("/employees/{id}", employeeHandler.Get)
		api.With(authMiddleware.RequireAuth, authMiddleware.RequireCapability(model.CapJobOffersRead)).Get("/job_offers", jobOfferHandler.List)
		api.With(authMiddleware.RequireAuth, authMiddleware.RequireCapability(model.CapPlanningRead)).Get("/planning", planningHandler.List)
		api.With(authMiddleware.RequireAuth, authMiddleware.RequireCapability(model.CapDashboardRead)).Get("/dashboard/kpis", dashboardHandler.KPIs)
		api.With(authMiddleware.RequireAuth, authMiddleware.RequireCapability(model.CapAuditRead)).Get("/audit", auditHandler.List)
	})

	return r
}
