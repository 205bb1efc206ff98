package main

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/piggyparcel/backend/pkg/requestid"
	"github.com/piggyparcel/backend/pkg/response"
)

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.InfoContext(r.Context(), "request",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.ErrorContext(r.Context(), "panic recovered",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.Any("panic", rvr),
						slog.String("stack", string(debug.Stack())))
					response.Error(w, r, response.NewHTTPError(http.StatusInternalServerError, "Something went wrong"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
