package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	Env            string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Handlers groups every HTTP handler mounted by NewRouter
type Handlers struct {
	Dashboard    DashboardHandler
	Attendance   AttendanceHandler
	SystemConfig SystemConfigHandler
	Employee     EmployeeHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-core"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	limiter := middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, middleware.KeyByUserOrIP)

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(limiter.Handler)

			r.Get("/dashboard/stats", h.Dashboard.GetStats)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/series", h.Dashboard.GetSeries)
				r.Post("/classify", h.Attendance.Classify)
			})

			r.Get("/departments/{departmentID}/employee-ids/next", h.Employee.NextEmployeeID)

			// HR and admins
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(employee.RoleSuperAdmin, employee.RoleHRManager))

				r.Put("/employees/{userID}/employee-id", h.Employee.AssignEmployeeID)

				r.Route("/system/configs", func(r chi.Router) {
					r.Get("/", h.SystemConfig.List)
					r.Put("/{key}", h.SystemConfig.Update)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRoles(employee.RoleSuperAdmin))
						r.Post("/initialize", h.SystemConfig.InitializeDefaults)
						r.Post("/cache/invalidate", h.SystemConfig.InvalidateCache)
					})
				})
			})
		})
	})
	return r
}
