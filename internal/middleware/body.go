package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/authgate/authgate/internal/apperror"
	"github.com/authgate/authgate/internal/validation"
)

// MaxBody limits the request body to n bytes.
func MaxBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ValidateBody returns a middleware that decodes the JSON request body,
// validates it against the schema, and stores the decoded body in the
// request context for downstream middleware and handlers.
//
// An absent body validates as an empty object, producing one Required error
// per schema field. On any failure the request never reaches the handler.
func ValidateBody(schema validation.Schema, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := map[string]any{}
			if r.Body != nil {
				defer r.Body.Close()
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
					// A well-formed body that is not an object is a shape
					// failure, reported like any other validation error.
					var typeErr *json.UnmarshalTypeError
					if errors.As(err, &typeErr) {
						err = validation.NonObjectBody(typeErr.Value)
					}
					apperror.Write(w, logger, GetRequestID(r.Context()), err)
					return
				}
			}

			if err := schema.Validate(body); err != nil {
				apperror.Write(w, logger, GetRequestID(r.Context()), err)
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Body retrieves the validated request body from context.
// Returns an empty map if no body was stored.
func Body(ctx context.Context) map[string]any {
	if body, ok := ctx.Value(bodyKey).(map[string]any); ok {
		return body
	}
	return map[string]any{}
}

// BodyString returns the named string field from the validated body.
// Validation guarantees presence and type for schema fields, so a missing
// value only occurs when the field was not part of the schema.
func BodyString(ctx context.Context, name string) string {
	value, _ := Body(ctx)[name].(string)
	return value
}
