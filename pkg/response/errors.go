package response

import (
	"errors"
	"net/http"

	"github.com/piggyparcel/backend/pkg/validator"
)

// HTTPError carries a status code through an error chain so handlers can
// map domain failures onto responses without switching on concrete types.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with a custom status and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest   = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrUnauthorized = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden    = HTTPError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrNotFound     = HTTPError{Code: http.StatusNotFound, Message: "Not found"}
	ErrConflict     = HTTPError{Code: http.StatusConflict, Message: "Conflict"}
)

// Error renders any error into the standard envelope. Validation errors map
// to 400 with per-field errorSources, HTTPErrors keep their status, anything
// else becomes an opaque 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if verrs := validator.Extract(err); verrs != nil {
		sources := make([]ErrorSource, 0, len(verrs))
		for _, ve := range verrs {
			sources = append(sources, ErrorSource{Path: ve.Field, Message: ve.Message})
		}
		write(w, http.StatusBadRequest, Envelope{
			Success:      false,
			Message:      "Validation Error",
			ErrorSources: sources,
		})
		return
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		write(w, httpErr.Code, Envelope{Success: false, Message: httpErr.Message})
		return
	}

	write(w, http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Something went wrong",
	})
}

// NotFoundHandler answers unmatched routes with the standard 404 envelope.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusNotFound, Envelope{
			Success: false,
			Message: "API not found!",
			Error: &ErrorDetail{
				Path:    r.URL.Path,
				Message: "Your requested path is not available",
			},
		})
	}
}
