package api

import (
	"net/http"

	"github.com/asif/shops-platform/internal/api/handlers"
	"github.com/asif/shops-platform/internal/api/middleware"
	"github.com/asif/shops-platform/internal/config"
	"github.com/asif/shops-platform/internal/observability"
	"github.com/asif/shops-platform/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(services *service.Services, cfg *config.Config) (http.Handler, error) {
	guard, err := middleware.NewOriginGuard(cfg.CORSScheme, cfg.CORSDomain)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(observability.MetricsMiddleware)
	r.Use(guard.Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	shopHandler := handlers.NewShopHandler(services.Shop)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
		r.Post("/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(services.Auth.Tokens()))
			r.Get("/session", authHandler.Session)
		})
	})

	r.Route("/shops", func(r chi.Router) {
		// Tenant-resolved lookup is public; the dashboard list is not.
		r.Get("/current", shopHandler.Current)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(services.Auth.Tokens()))
			r.Get("/", shopHandler.List)
		})
	})

	return r, nil
}
