package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/portfolio-api/internal/application/auth"
	"github.com/portfolio-api/internal/application/contact"
	"github.com/portfolio-api/internal/application/project"
	"github.com/portfolio-api/internal/application/session"
	"github.com/portfolio-api/internal/application/setting"
	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/pinhash"
	"github.com/portfolio-api/internal/transport/http/handler"
	appmiddleware "github.com/portfolio-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(
		deps.PinRepo,
		deps.Mailer,
		pinhash.New(cfg.PinHashCost),
		auth.NewAllowList(cfg.AdminAllowedEmails),
		deps.Alerts,
		auth.Config{PinLength: cfg.PinLength, PinTTL: cfg.PinTTL},
	)
	sessionSvc := session.NewService(deps.SessionRepo, authSvc, deps.JWTProvider, cfg.RefreshTokenExpiry)
	projectSvc := project.NewService(deps.ProjectRepo)
	contactSvc := contact.NewService(deps.ContactRepo, deps.Alerts)
	settingSvc := setting.NewService(deps.SettingRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, sessionSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	contactH := handler.NewContactHandler(contactSvc)
	settingH := handler.NewSettingHandler(settingSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/request-pin", authH.RequestPin)
		r.With(sensitiveRL.Limit).Post("/auth/verify-pin", authH.VerifyPin)
		r.Post("/auth/refresh", sessionH.Refresh)
		r.Get("/projects", projectH.ListPublic)
		r.Get("/projects/{slug}", projectH.GetBySlug)
		r.Get("/settings", settingH.ListPublic)
		r.With(sensitiveRL.Limit).Post("/contact", contactH.Submit)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/auth/session", sessionH.GetCurrent)
			r.Post("/auth/logout", sessionH.Logout)

			// Admin back-office
			r.Route("/admin", func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/projects", projectH.ListAll)
				r.Post("/projects", projectH.Create)
				r.Get("/projects/{id}", projectH.Get)
				r.Put("/projects/{id}", projectH.Update)
				r.Delete("/projects/{id}", projectH.Delete)

				r.Get("/messages", contactH.List)
				r.Get("/messages/{id}", contactH.Get)
				r.Put("/messages/{id}/read", contactH.MarkRead)
				r.Delete("/messages/{id}", contactH.Delete)

				r.Get("/settings", settingH.ListAll)
				r.Get("/settings/{key}", settingH.Get)
				r.Put("/settings/{key}", settingH.Upsert)
				r.Delete("/settings/{key}", settingH.Delete)
			})
		})
	})

	return r
}
