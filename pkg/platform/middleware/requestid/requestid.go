// Package requestid assigns each request an identifier and echoes it back in
// the X-Request-ID header so clients and logs can be correlated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"codecheck/pkg/requestcontext"
)

const headerName = "X-Request-ID"

// Middleware accepts a caller-supplied X-Request-ID or generates one, stores
// it in the context, and sets it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerName)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerName, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
