package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	dErrors "tokenregistry/pkg/domain-errors"
	"tokenregistry/pkg/platform/httputil"
	request "tokenregistry/pkg/platform/middleware/request"
)

// RequireAdminToken guards operator endpoints with the X-Admin-Token header.
// An empty expected token disables those endpoints entirely.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if expectedToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", request.GetRequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin token required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
