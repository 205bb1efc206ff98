package travel

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/piggyparcel/backend/pkg/binder"
	"github.com/piggyparcel/backend/pkg/response"
)

// Router exposes the travel plan endpoints.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/", createHandler(svc))
	r.Get("/", listHandler(svc))
	r.Get("/match", matchHandler(svc))
	r.Get("/{id}", getHandler(svc))
	r.Patch("/{id}", updateHandler(svc))
	r.Delete("/{id}", deleteHandler(svc))

	return r
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		travelerID, err := requestUserID(r)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusUnauthorized, "Missing or invalid user id"))
			return
		}

		var req CreateRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		p, err := svc.Create(r.Context(), travelerID, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusCreated, "Travel plan created successfully", p)
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

		response.JSONList(w, "Travel plans retrieved successfully", items, response.Meta{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
		})
	}
}

func matchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q MatchQuery
		if err := binder.Query(r, &q); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		plans, err := svc.Match(r.Context(), q)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Matching travel plans retrieved successfully", plans)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid travel plan id"))
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Travel plan retrieved successfully", p)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid travel plan id"))
			return
		}

		travelerID, err := requestUserID(r)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusUnauthorized, "Missing or invalid user id"))
			return
		}

		var req UpdateRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		p, err := svc.Update(r.Context(), id, travelerID, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Travel plan updated successfully", p)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid travel plan id"))
			return
		}

		travelerID, err := requestUserID(r)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusUnauthorized, "Missing or invalid user id"))
			return
		}

		if err := svc.Delete(r.Context(), id, travelerID); err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Travel plan deleted successfully", nil)
	}
}

func requestUserID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get("X-User-ID"))
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		err = response.NewHTTPError(http.StatusNotFound, "Travel plan not found")
	case errors.Is(err, ErrNotOwner):
		err = response.NewHTTPError(http.StatusForbidden, "Travel plan belongs to another traveler")
	}
	response.Error(w, r, err)
}
