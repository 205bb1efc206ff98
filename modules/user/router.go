package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piggyparcel/backend/pkg/binder"
	"github.com/piggyparcel/backend/pkg/clientip"
	"github.com/piggyparcel/backend/pkg/response"
)

// Router exposes the consumer user endpoints.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", registerHandler(svc))
	r.Post("/login", loginHandler(svc))
	r.Post("/forgot-password", forgotPasswordHandler(svc))
	r.Post("/reset-password", resetPasswordHandler(svc))

	return r
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		u, err := svc.Register(r.Context(), req)
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusCreated, "User registered successfully", u)
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		result, err := svc.Login(r.Context(), req, clientip.GetIP(r), r.UserAgent())
		if err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "User logged in successfully", result)
	}
}

func forgotPasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), req); err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Password reset email sent successfully", nil)
	}
}

func resetPasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := binder.JSON(r, &req); err != nil {
			response.Error(w, r, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}

		if err := svc.ResetPassword(r.Context(), req); err != nil {
			renderError(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, "Password reset successfully", nil)
	}
}

// renderError maps module sentinels onto the HTTP error taxonomy before
// handing off to the shared renderer.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		err = response.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		err = response.NewHTTPError(http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		err = response.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUserBanned):
		err = response.NewHTTPError(http.StatusForbidden, "Account is banned")
	case errors.Is(err, ErrInvalidResetToken):
		err = response.NewHTTPError(http.StatusBadRequest, "Invalid or expired reset token")
	}
	response.Error(w, r, err)
}
