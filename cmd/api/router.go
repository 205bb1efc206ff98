package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/piggyparcel/backend/modules/admin"
	"github.com/piggyparcel/backend/modules/delivery"
	"github.com/piggyparcel/backend/modules/rating"
	"github.com/piggyparcel/backend/modules/reward"
	"github.com/piggyparcel/backend/modules/travel"
	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/requestid"
	"github.com/piggyparcel/backend/pkg/response"
)

type application struct {
	cfg appConfig
	log *slog.Logger

	user     *user.Service
	admin    *admin.Service
	delivery *delivery.Service
	travel   *travel.Service
	rating   *rating.Service
	reward   *reward.Service
}

func (a *application) router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requestLogger(a.log))
	r.Use(recoverer(a.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
	}))

	r.NotFound(response.NotFoundHandler())

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, "🚀 Piggy Parcel API v1 is running!", map[string]string{
			"users":  "/api/v1/consumer/user",
			"health": "/api/v1/health",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			response.JSON(w, http.StatusOK, "OK", nil)
		})

		r.Route("/consumer", func(r chi.Router) {
			r.Mount("/user", user.Router(a.user))
			r.Mount("/delivery", delivery.Router(a.delivery))
			r.Mount("/travel", travel.Router(a.travel))
			r.Mount("/rating", rating.Router(a.rating))
			r.Mount("/reward", reward.Router(a.reward))
		})

		r.Mount("/admin", admin.Router(a.admin))
	})

	return r
}
