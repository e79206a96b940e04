package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// AuthMiddleware validates the bearer token on every request.
// If the token is missing or invalid, it responds 401 without
// calling the next handler.
func AuthMiddleware(validToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing authorization header")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token != validToken {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs method, path, status and duration of each request
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", recorder.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
