package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags every request with an id, echoed in X-Request-ID, and
// logs one record per request once it completes. Server errors are logged
// at error level, client errors at warn level.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []any{
			slog.String("request_id", reqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("size", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		}
		switch {
		case status >= 500:
			h.logger.Error("request completed", attrs...)
		case status >= 400:
			h.logger.Warn("request completed", attrs...)
		default:
			h.logger.Info("request completed", attrs...)
		}
	})
}
