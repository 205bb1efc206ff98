package rating

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/piggyparcel/backend/pkg/binder"
	"github.com/piggyparcel/backend/pkg/response"
)

// Router exposes the rating endpoints.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/", createHandler(svc))
	r.Get("/", listHandler(svc))
	r.Get("/stats/{userId}", statsHandler(svc))

	return r
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewerID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusUnauthorized, "Missing or invalid user id"))
			return
		}

		var req CreateRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		rt, err := svc.Create(r.Context(), reviewerID, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusCreated, "Rating submitted successfully", rt)
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := ListQuery{Page: 1, Limit: 10}
		if err := binder.Query(r, &q); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		items, total, err := svc.List(r.Context(), q)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSONList(w, "Ratings retrieved successfully", items, response.Meta{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
		})
	}
}

func statsHandler(svc *Service) http.HandlerFunc {
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

		stats, err := svc.StatsFor(r.Context(), userID)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Rating stats retrieved successfully", stats)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrAlreadyRated):
		err = response.NewHTTPError(http.StatusConflict, "Delivery already rated by this reviewer")
	case errors.Is(err, ErrDeliveryNotFound):
		err = response.NewHTTPError(http.StatusNotFound, "Delivery request not found")
	case errors.Is(err, ErrSelfRating):
		err = response.NewHTTPError(http.StatusBadRequest, "Users cannot rate themselves")
	case errors.Is(err, ErrNotFound):
		err = response.NewHTTPError(http.StatusNotFound, "Rating not found")
	}
	response.Error(w, r, err)
}
