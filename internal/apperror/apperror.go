// Package apperror classifies failures and maps them onto the JSON HTTP
// error contract. Classification is first-match-wins over a closed set of
// kinds: validation failures, token expiry, the provider's named exceptions,
// and an unclassified catch-all. Nothing is retried or swallowed; every
// failure reaches the client as a mapped response.
package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/authgate/authgate/internal/auth"
	"github.com/authgate/authgate/internal/validation"
)

// Response is the JSON body shared by every error response.
// Validation failures carry the ordered error list; everything else a message.
type Response struct {
	Type             string            `json:"type,omitempty"`
	Message          string            `json:"message,omitempty"`
	ValidationErrors validation.Errors `json:"validationErrors,omitempty"`
}

// Map classifies err into an HTTP status code and response body.
//
// Validation failures deliberately map to 500, not 400: that is the observed
// contract and clients encode it. Flagged upstream rather than fixed here.
func Map(err error) (int, Response) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusInternalServerError, Response{
			Type:             "Validation",
			ValidationErrors: verrs,
		}
	}

	if errors.Is(err, auth.ErrTokenExpired) {
		return http.StatusUnauthorized, Response{Type: "Unauthorized", Message: "Token expired"}
	}

	var userNotFound *types.UserNotFoundException
	if errors.As(err, &userNotFound) {
		return http.StatusUnauthorized, Response{Type: "Unauthorized", Message: "Invalid user"}
	}

	var notAuthorized *types.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return http.StatusUnauthorized, Response{Type: "Unauthorized", Message: "Invalid credentials"}
	}

	var invalidParameter *types.InvalidParameterException
	if errors.As(err, &invalidParameter) {
		return http.StatusBadRequest, Response{Type: "Bad Request", Message: "Invalid data"}
	}

	var codeMismatch *types.CodeMismatchException
	if errors.As(err, &codeMismatch) {
		return http.StatusBadRequest, Response{Type: "Bad Request", Message: "Invalid confirmation code"}
	}

	var resourceNotFound *types.ResourceNotFoundException
	if errors.As(err, &resourceNotFound) {
		return http.StatusNotFound, Response{Type: "Not Found", Message: "Resource not found"}
	}

	// Unclassified: invalid tokens, transport failures, unknown provider
	// exceptions. Serialized as-is at 500.
	return http.StatusInternalServerError, Response{Message: err.Error()}
}

// ProviderCode extracts the provider's error code for logging, if err came
// from the AWS API. Returns "" otherwise.
func ProviderCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// Write maps err and writes the JSON error response, logging the failure
// with the request id for correlation.
func Write(w http.ResponseWriter, logger *slog.Logger, requestID string, err error) {
	status, body := Map(err)

	if logger != nil {
		attrs := []any{
			slog.String("request_id", requestID),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		}
		if code := ProviderCode(err); code != "" {
			attrs = append(attrs, slog.String("provider_code", code))
		}
		logger.Error("request failed", attrs...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil && logger != nil {
		logger.Error("failed to encode error response",
			slog.String("request_id", requestID),
			slog.String("error", encodeErr.Error()),
		)
	}
}
