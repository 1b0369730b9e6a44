// Package requesttime pins a single "now" per request so audit events and
// logs within one evaluation agree on time.
package requesttime

import (
	"net/http"
	"time"

	"codecheck/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and stores
// it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
