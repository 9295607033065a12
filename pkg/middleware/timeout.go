package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Timeout bounds request handling to d. When the deadline passes before the
// handler writes anything, the client gets a 504; a handler that already
// started writing is left alone.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			rec := &responseRecorder{ResponseWriter: w}
			finished := make(chan struct{})
			go func() {
				defer close(finished)
				next.ServeHTTP(rec, r.WithContext(ctx))
			}()

			select {
			case <-finished:
			case <-ctx.Done():
				if rec.touched() {
					return
				}
				slog.Warn("request deadline exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"timeout", d,
				)
				http.Error(w, `{"error":"request timeout"}`, http.StatusGatewayTimeout)
			}
		})
	}
}

// responseRecorder remembers whether anything was written to the client.
type responseRecorder struct {
	http.ResponseWriter
	wrote bool
}

func (r *responseRecorder) WriteHeader(code int) {
	r.wrote = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.wrote = true
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) touched() bool { return r.wrote }
