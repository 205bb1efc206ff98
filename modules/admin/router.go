package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/binder"
	"github.com/piggyparcel/backend/pkg/response"
)

// Router exposes the admin user management endpoints.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Get("/user", listUsersHandler(svc))
	r.Patch("/user/{id}/role", updateRoleHandler(svc))
	r.Patch("/user/{id}/ban", banHandler(svc))

	return r
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := ListUsersQuery{Page: 1, Limit: 10}
		if err := binder.Query(r, &q); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		users, total, err := svc.ListUsers(r.Context(), q)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSONList(w, "Users retrieved successfully", users, response.Meta{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
		})
	}
}

func updateRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUserID(r)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid user id"))
			return
		}

		var req UpdateRoleRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		u, err := svc.UpdateRole(r.Context(), id, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "User role updated successfully", u)
	}
}

func banHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUserID(r)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid user id"))
			return
		}

		var req BanRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		u, err := svc.SetBan(r.Context(), id, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		message := "User banned successfully"
		if !req.Banned {
			message = "User unbanned successfully"
		}
		response.JSON(w, http.StatusOK, message, u)
	}
}

func pathUserID(r *http.Request) (uuid.UUID, error) {
	raw, err := binder.PathString(r, "id")
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(raw)
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, user.ErrUserNotFound) {
		err = response.NewHTTPError(http.StatusNotFound, "User not found")
	}
	response.Error(w, r, err)
}
