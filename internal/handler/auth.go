package handler

import (
	"context"
	"log/slog"
	"net/http"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/authgate/authgate/internal/apperror"
	"github.com/authgate/authgate/internal/cognito"
	"github.com/authgate/authgate/internal/middleware"
)

// Provider is the subset of the Cognito adapter the HTTP handlers call.
type Provider interface {
	SignUp(ctx context.Context, p cognito.SignUpParams) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, email, code string) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, email string) (*cip.ResendConfirmationCodeOutput, error)
	Login(ctx context.Context, email, password string) (*cip.InitiateAuthOutput, error)
	Logout(ctx context.Context, accessToken string) (*cip.GlobalSignOutOutput, error)
	ForgotPassword(ctx context.Context, email string) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, email, password, code string) (*cip.ConfirmForgotPasswordOutput, error)
	ChangePassword(ctx context.Context, accessToken, previousPassword, newPassword string) (*cip.ChangePasswordOutput, error)
	RefreshToken(ctx context.Context, accessToken, refreshToken string) (*cip.InitiateAuthOutput, error)
	DeleteAccount(ctx context.Context, accessToken string) (*cip.DeleteUserOutput, error)
}

// AuthHandler serves the authentication endpoints. Request bodies reach these
// handlers already validated, so every method is a provider call plus
// response or error mapping.
type AuthHandler struct {
	provider Provider
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(provider Provider, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		logger:   logger,
	}
}

// respond writes the provider's raw result, or maps err onto the error contract.
func (h *AuthHandler) respond(w http.ResponseWriter, r *http.Request, result any, err error) {
	if err != nil {
		apperror.Write(w, h.logger, middleware.GetRequestID(r.Context()), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Signup registers a new user.
// POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.SignUp(ctx, cognito.SignUpParams{
		Email:     middleware.BodyString(ctx, "email"),
		Password:  middleware.BodyString(ctx, "password"),
		Firstname: middleware.BodyString(ctx, "firstname"),
		Lastname:  middleware.BodyString(ctx, "lastname"),
	})
	h.respond(w, r, out, err)
}

// ConfirmSignup confirms a registration with the emailed code.
// POST /signup/verify
func (h *AuthHandler) ConfirmSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.ConfirmSignUp(ctx,
		middleware.BodyString(ctx, "email"),
		middleware.BodyString(ctx, "code"),
	)
	h.respond(w, r, out, err)
}

// ResendCode re-sends the signup confirmation code.
// POST /signup/resend-code
func (h *AuthHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.ResendConfirmationCode(ctx, middleware.BodyString(ctx, "email"))
	h.respond(w, r, out, err)
}

// Login exchanges credentials for tokens.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.Login(ctx,
		middleware.BodyString(ctx, "email"),
		middleware.BodyString(ctx, "password"),
	)
	h.respond(w, r, out, err)
}

// Logout signs the user out globally.
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.Logout(ctx, middleware.BodyString(ctx, "accessToken"))
	h.respond(w, r, out, err)
}

// ChangePassword replaces the password of the token's user.
// POST /change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.ChangePassword(ctx,
		middleware.BodyString(ctx, "accessToken"),
		middleware.BodyString(ctx, "previousPassword"),
		middleware.BodyString(ctx, "newPassword"),
	)
	h.respond(w, r, out, err)
}

// ForgotPassword starts the password-reset flow.
// POST /forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.ForgotPassword(ctx, middleware.BodyString(ctx, "email"))
	h.respond(w, r, out, err)
}

// ConfirmForgotPassword completes the password-reset flow.
// POST /forgot-password/confirm
func (h *AuthHandler) ConfirmForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.ConfirmForgotPassword(ctx,
		middleware.BodyString(ctx, "email"),
		middleware.BodyString(ctx, "password"),
		middleware.BodyString(ctx, "code"),
	)
	h.respond(w, r, out, err)
}

// RefreshToken exchanges a refresh token for new tokens.
// POST /refresh-token
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.RefreshToken(ctx,
		middleware.BodyString(ctx, "accessToken"),
		middleware.BodyString(ctx, "refreshToken"),
	)
	h.respond(w, r, out, err)
}

// DeleteAccount removes the token's user from the pool.
// DELETE /delete-account
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.provider.DeleteAccount(ctx, middleware.BodyString(ctx, "accessToken"))
	h.respond(w, r, out, err)
}
