// Package requesttime captures one wall-clock timestamp per request for
// audit records. Lock expiry never reads it; it runs on block height.
package requesttime

import (
	"net/http"
	"time"

	"tokenregistry/pkg/requestcontext"
)

// Middleware stores the request start time in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
