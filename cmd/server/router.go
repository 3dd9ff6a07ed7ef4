package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/podcast-api/internal/api"
	apiMiddleware "github.com/phrazzld/podcast-api/internal/api/middleware"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	metrics, err := apiMiddleware.NewHTTPMetrics(app.registry)
	if err != nil {
		return nil, err
	}

	var limiter *apiMiddleware.IPRateLimiter
	if app.config.RateLimit.Enabled {
		limiter = apiMiddleware.NewIPRateLimiter(app.config.RateLimit.RPS, app.config.RateLimit.Burst)
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	accountHandler := api.NewAccountHandler(app.userService)
	podcastHandler := api.NewPodcastHandler(app.podcastService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokens, app.userService)
	hostOnly := apiMiddleware.RequireRole(domain.RoleHost)

	r.Route("/api", func(r chi.Router) {
		// Public, rate limited
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/accounts", accountHandler.CreateAccount)
			r.Post("/auth/login", accountHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/me", accountHandler.Me)
			r.Patch("/me", accountHandler.EditProfile)
			r.Get("/users/{id}", accountHandler.GetUser)

			r.Route("/podcasts", func(r chi.Router) {
				r.Get("/", podcastHandler.ListPodcasts)
				r.With(hostOnly).Post("/", podcastHandler.CreatePodcast)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", podcastHandler.GetPodcast)
					r.With(hostOnly).Patch("/", podcastHandler.UpdatePodcast)
					r.With(hostOnly).Delete("/", podcastHandler.DeletePodcast)

					r.Get("/episodes", podcastHandler.ListEpisodes)
					r.With(hostOnly).Post("/episodes", podcastHandler.CreateEpisode)
					r.Get("/episodes/{episodeId}", podcastHandler.GetEpisode)
					r.With(hostOnly).Patch("/episodes/{episodeId}", podcastHandler.UpdateEpisode)
					r.With(hostOnly).Delete("/episodes/{episodeId}", podcastHandler.DeleteEpisode)
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r, nil
}
