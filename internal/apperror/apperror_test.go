package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/internal/auth"
	"github.com/authgate/authgate/internal/validation"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    string
		wantMessage string
	}{
		{
			name:        "token expired",
			err:         auth.ErrTokenExpired,
			wantStatus:  http.StatusUnauthorized,
			wantType:    "Unauthorized",
			wantMessage: "Token expired",
		},
		{
			name:        "user not found",
			err:         &types.UserNotFoundException{},
			wantStatus:  http.StatusUnauthorized,
			wantType:    "Unauthorized",
			wantMessage: "Invalid user",
		},
		{
			name:        "not authorized",
			err:         &types.NotAuthorizedException{},
			wantStatus:  http.StatusUnauthorized,
			wantType:    "Unauthorized",
			wantMessage: "Invalid credentials",
		},
		{
			name:        "invalid parameter",
			err:         &types.InvalidParameterException{},
			wantStatus:  http.StatusBadRequest,
			wantType:    "Bad Request",
			wantMessage: "Invalid data",
		},
		{
			name:        "code mismatch",
			err:         &types.CodeMismatchException{},
			wantStatus:  http.StatusBadRequest,
			wantType:    "Bad Request",
			wantMessage: "Invalid confirmation code",
		},
		{
			name:        "resource not found",
			err:         &types.ResourceNotFoundException{},
			wantStatus:  http.StatusNotFound,
			wantType:    "Not Found",
			wantMessage: "Resource not found",
		},
		{
			name:        "wrapped provider exception still classifies",
			err:         fmt.Errorf("initiate auth: %w", &types.NotAuthorizedException{}),
			wantStatus:  http.StatusUnauthorized,
			wantType:    "Unauthorized",
			wantMessage: "Invalid credentials",
		},
		{
			name:        "invalid token is unclassified",
			err:         fmt.Errorf("%w: client_id mismatch", auth.ErrTokenInvalid),
			wantStatus:  http.StatusInternalServerError,
			wantType:    "",
			wantMessage: "token invalid: client_id mismatch",
		},
		{
			name:        "unknown error is serialized as-is",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    "",
			wantMessage: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Map(tt.err)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantType, body.Type)
			require.Equal(t, tt.wantMessage, body.Message)
			require.Empty(t, body.ValidationErrors)
		})
	}
}

func TestMap_ValidationErrors(t *testing.T) {
	verrs := validation.Errors{
		{Code: "invalid_type", Message: "Required", Path: []string{"body", "email"}},
		{Code: "invalid_type", Message: "Required", Path: []string{"body", "password"}},
	}

	status, body := Map(verrs)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "Validation", body.Type)
	require.Empty(t, body.Message)
	require.Equal(t, verrs, body.ValidationErrors)
}

func TestProviderCode(t *testing.T) {
	err := &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")}
	require.Equal(t, "NotAuthorizedException", ProviderCode(err))
	require.Equal(t, "", ProviderCode(errors.New("plain")))
}
