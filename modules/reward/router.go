package reward

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/piggyparcel/backend/pkg/binder"
	"github.com/piggyparcel/backend/pkg/response"
)

// Router exposes the reward endpoints.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Get("/leaderboard", leaderboardHandler(svc))
	r.Get("/{userId}", getHandler(svc))

	return r
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := binder.PathString(r, "userId")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid user id"))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid user id"))
			return
		}

		rw, err := svc.GetByUser(r.Context(), userID)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Rewards retrieved successfully", rw)
	}
}

func leaderboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries, err := svc.Leaderboard(r.Context(), limit)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Leaderboard retrieved successfully", entries)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		err = response.NewHTTPError(http.StatusNotFound, "Reward not found")
	case errors.Is(err, ErrUnknownBadge):
		err = response.NewHTTPError(http.StatusBadRequest, "Unknown badge type")
	}
	response.Error(w, r, err)
}
