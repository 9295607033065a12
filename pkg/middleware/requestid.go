package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/prasetyo-dev/boolsearch/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID returns middleware that assigns each request a random id
// (honouring an incoming X-Request-Id header) and stores it in the context
// for request-scoped logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = newRequestID()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := logger.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
