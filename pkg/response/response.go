package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body shape shared by every endpoint.
type Envelope struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	Data         any           `json:"data,omitempty"`
	Meta         *Meta         `json:"meta,omitempty"`
	Error        *ErrorDetail  `json:"error,omitempty"`
	ErrorSources []ErrorSource `json:"errorSources,omitempty"`
}

// Meta carries pagination information for list responses.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorDetail describes a routing-level error, such as an unknown path.
type ErrorDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorSource points at a single invalid request field.
type ErrorSource struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// JSONList writes a success envelope with pagination meta.
func JSONList(w http.ResponseWriter, message string, data any, meta Meta) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: &meta})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
