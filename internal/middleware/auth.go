package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/authgate/authgate/internal/apperror"
)

// TokenVerifier checks an access token end to end: signature and claims
// first, then a provider round-trip to confirm the token is still honored.
type TokenVerifier interface {
	Verify(ctx context.Context, accessToken string) error
}

// RequireAuth returns a middleware that authenticates the request using the
// accessToken field of the validated body. It must run after ValidateBody.
// Failures are mapped to the shared error contract.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BodyString(r.Context(), "accessToken")

			if err := verifier.Verify(r.Context(), token); err != nil {
				logger.Warn("authentication failed",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("ip", r.RemoteAddr),
				)
				apperror.Write(w, logger, GetRequestID(r.Context()), err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
