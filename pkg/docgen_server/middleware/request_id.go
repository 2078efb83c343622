package middleware

import (
	"context"
	"net/http"

	"github.com/exportdocs/exportdocs/pkg/util"
)

type ContextKey string

const (
	REQUEST_ID ContextKey = "request-id"
)

// RequestID tags every request with a short unique identifier. The
// identifier is echoed in the X-Request-ID response header so client
// reports can be matched against server logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = util.NewUUID()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), REQUEST_ID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
