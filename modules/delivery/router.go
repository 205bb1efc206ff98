package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/piggyparcel/backend/pkg/binder"
	"github.com/piggyparcel/backend/pkg/qrcode"
	"github.com/piggyparcel/backend/pkg/response"
)

// Router exposes the delivery request endpoints. senderID is currently
// taken from the X-User-ID header set by the auth layer.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/", createHandler(svc))
	r.Get("/", listHandler(svc))
	r.Get("/{id}", getHandler(svc))
	r.Patch("/{id}", updateHandler(svc))
	r.Post("/{id}/accept", acceptHandler(svc))
	r.Patch("/{id}/status", statusHandler(svc))
	r.Delete("/{id}", cancelHandler(svc))
	r.Get("/{id}/qr", qrHandler(svc))

	return r
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, err := requestUserID(r)
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusUnauthorized, "Missing or invalid user id"))
			return
		}

		var req CreateRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		d, err := svc.Create(r.Context(), senderID, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusCreated, "Delivery request created successfully", d)
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

		response.JSONList(w, "Delivery requests retrieved successfully", items, response.Meta{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid delivery id"))
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Delivery request retrieved successfully", d)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid delivery id"))
			return
		}

		var req UpdateRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		d, err := svc.Update(r.Context(), id, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Delivery request updated successfully", d)
	}
}

func acceptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid delivery id"))
			return
		}

		var req AcceptRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		d, err := svc.Accept(r.Context(), id, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Delivery request accepted successfully", d)
	}
}

func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid delivery id"))
			return
		}

		var req UpdateStatusRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		d, err := svc.UpdateStatus(r.Context(), id, req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Delivery status updated successfully", d)
	}
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid delivery id"))
			return
		}

		d, err := svc.Cancel(r.Context(), id)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Delivery request cancelled successfully", d)
	}
}

// qrHandler serves a PNG QR code of the tracking URL.
func qrHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := binder.PathInt(r, "id")
		if err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, "Invalid delivery id"))
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			renderError(w, r, err)
			return
		}

		link, err := svc.TrackingURL(d)
		if err != nil {
			renderError(w, r, err)
			return
		}

		size := 0
		if raw := r.URL.Query().Get("size"); raw != "" {
			size, _ = strconv.Atoi(raw)
		}

		png, err := qrcode.Generate(link, size)
		if err != nil {
			renderError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}

func requestUserID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get("X-User-ID"))
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		err = response.NewHTTPError(http.StatusNotFound, "Delivery request not found")
	case errors.Is(err, ErrIllegalTransition):
		err = response.NewHTTPError(http.StatusConflict, "Illegal status transition")
	case errors.Is(err, ErrAlreadyAccepted):
		err = response.NewHTTPError(http.StatusConflict, "Delivery request already accepted")
	case errors.Is(err, ErrNotCancellable):
		err = response.NewHTTPError(http.StatusConflict, "Only pending requests can be cancelled")
	case errors.Is(err, ErrNoTrackingID):
		err = response.NewHTTPError(http.StatusConflict, "Delivery request has no tracking id yet")
	}
	response.Error(w, r, err)
}
