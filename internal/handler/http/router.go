package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/opspulse/opspulse-backend-go/internal/config"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/middleware"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/jwt"
)

type RouterHandlers struct {
	Auth      AuthHandler
	User      UserHandler
	Entry     EntryHandler
	Analytics AnalyticsHandler
	Calendar  CalendarHandler
	Export    ExportHandler
	Team      TeamHandler
	Dashboard DashboardHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h RouterHandlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "opspulse-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/token", h.Auth.IssueToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/entries", func(r chi.Router) {
				r.Put("/", h.Entry.Save)
				r.Get("/", h.Entry.List)
			})

			r.Get("/metrics", h.Analytics.GetMetrics)
			r.Get("/insights", h.Analytics.GetInsights)
			r.Get("/goals/progress", h.Analytics.GetGoalProgress)
			r.Get("/calendar", h.Calendar.GetMonth)
			r.Get("/export", h.Export.Export)

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.List)
				r.Get("/{teamID}", h.Team.Get)
			})

			r.Get("/users/me", h.User.GetMe)

			// Manager or admin only
			r.Route("/team", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/overview", h.Dashboard.GetTeamOverview)
				r.Get("/members", h.User.ListTeamMembers)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/stats", h.Dashboard.GetSystemStats)
				r.Get("/users", h.User.ListAll)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
