package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
	"tokenregistry/pkg/platform/httputil"
	request "tokenregistry/pkg/platform/middleware/request"
	"tokenregistry/pkg/requestcontext"
)

// JWTValidator defines the interface for validating caller tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims the middleware needs from a validated token.
type JWTClaims struct {
	Caller domain.Address
	JTI    string
}

type contextKeyJTI struct{}

// GetTokenID retrieves the jti of the token that authenticated the request.
func GetTokenID(ctx context.Context) string {
	jti, _ := ctx.Value(contextKeyJTI{}).(string)
	return jti
}

// RequireAuth authenticates the bearer token and binds its subject as the
// caller of every registry operation in the request.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", request.GetRequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", request.GetRequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}
			if claims.Caller.IsZero() {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "token subject is not an address"))
				return
			}

			ctx = requestcontext.WithCaller(ctx, claims.Caller)
			ctx = context.WithValue(ctx, contextKeyJTI{}, claims.JTI)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
