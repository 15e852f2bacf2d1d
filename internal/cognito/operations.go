package cognito

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/authgate/authgate/internal/auth"
)

// ErrUnknownUsername is returned when a refresh-token exchange cannot resolve
// the username behind the supplied access token.
var ErrUnknownUsername = errors.New("could not resolve username for token")

// SignUpParams holds the fields for a new registration.
type SignUpParams struct {
	Email     string
	Password  string
	Firstname string
	Lastname  string
}

// SignUp registers a new user with the provider.
func (c *Client) SignUp(ctx context.Context, p SignUpParams) (*cip.SignUpOutput, error) {
	hash, err := auth.SecretHash(p.Email, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.SignUp(ctx, &cip.SignUpInput{
		ClientId:   aws.String(c.clientID),
		Username:   aws.String(p.Email),
		Password:   aws.String(p.Password),
		SecretHash: aws.String(hash),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("given_name"), Value: aws.String(p.Firstname)},
			{Name: aws.String("family_name"), Value: aws.String(p.Lastname)},
			{Name: aws.String("name"), Value: aws.String(p.Firstname + " " + p.Lastname)},
		},
	})
	c.record("SignUp", start, err)
	return out, err
}

// ConfirmSignUp confirms a registration with the emailed code.
func (c *Client) ConfirmSignUp(ctx context.Context, email, code string) (*cip.ConfirmSignUpOutput, error) {
	hash, err := auth.SecretHash(email, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(c.clientID),
		SecretHash:       aws.String(hash),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	})
	c.record("ConfirmSignUp", start, err)
	return out, err
}

// ResendConfirmationCode asks the provider to re-send the signup code.
func (c *Client) ResendConfirmationCode(ctx context.Context, email string) (*cip.ResendConfirmationCodeOutput, error) {
	hash, err := auth.SecretHash(email, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId:   aws.String(c.clientID),
		Username:   aws.String(email),
		SecretHash: aws.String(hash),
	})
	c.record("ResendConfirmationCode", start, err)
	return out, err
}

// Login exchanges credentials for tokens via the USER_PASSWORD_AUTH flow.
func (c *Client) Login(ctx context.Context, email, password string) (*cip.InitiateAuthOutput, error) {
	hash, err := auth.SecretHash(email, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		ClientId: aws.String(c.clientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME":    email,
			"PASSWORD":    password,
			"SECRET_HASH": hash,
		},
	})
	c.record("Login", start, err)
	return out, err
}

// Logout signs the user out of all devices.
func (c *Client) Logout(ctx context.Context, accessToken string) (*cip.GlobalSignOutOutput, error) {
	start := time.Now()
	out, err := c.api.GlobalSignOut(ctx, &cip.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	c.record("Logout", start, err)
	return out, err
}

// ForgotPassword starts the password-reset flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*cip.ForgotPasswordOutput, error) {
	hash, err := auth.SecretHash(email, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId:   aws.String(c.clientID),
		SecretHash: aws.String(hash),
		Username:   aws.String(email),
	})
	c.record("ForgotPassword", start, err)
	return out, err
}

// ConfirmForgotPassword completes the password-reset flow with the emailed code.
func (c *Client) ConfirmForgotPassword(ctx context.Context, email, password, code string) (*cip.ConfirmForgotPasswordOutput, error) {
	hash, err := auth.SecretHash(email, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(c.clientID),
		SecretHash:       aws.String(hash),
		Username:         aws.String(email),
		Password:         aws.String(password),
		ConfirmationCode: aws.String(code),
	})
	c.record("ConfirmForgotPassword", start, err)
	return out, err
}

// ChangePassword replaces the password of the token's user.
// The provider validates the token itself; no secret hash is needed.
func (c *Client) ChangePassword(ctx context.Context, accessToken, previousPassword, newPassword string) (*cip.ChangePasswordOutput, error) {
	start := time.Now()
	out, err := c.api.ChangePassword(ctx, &cip.ChangePasswordInput{
		AccessToken:      aws.String(accessToken),
		PreviousPassword: aws.String(previousPassword),
		ProposedPassword: aws.String(newPassword),
	})
	c.record("ChangePassword", start, err)
	return out, err
}

// RefreshToken exchanges a refresh token for new tokens. The secret hash must
// bind the real username, not the caller-supplied token, so the user behind
// the access token is resolved first.
func (c *Client) RefreshToken(ctx context.Context, accessToken, refreshToken string) (*cip.InitiateAuthOutput, error) {
	user, err := c.FetchUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	username := aws.ToString(user.Username)
	if username == "" {
		return nil, ErrUnknownUsername
	}

	hash, err := auth.SecretHash(username, c.clientID, c.clientSecret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		ClientId: aws.String(c.clientID),
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
			"SECRET_HASH":   hash,
		},
	})
	c.record("RefreshToken", start, err)
	return out, err
}

// DeleteAccount removes the token's user from the pool.
func (c *Client) DeleteAccount(ctx context.Context, accessToken string) (*cip.DeleteUserOutput, error) {
	start := time.Now()
	out, err := c.api.DeleteUser(ctx, &cip.DeleteUserInput{
		AccessToken: aws.String(accessToken),
	})
	c.record("DeleteAccount", start, err)
	return out, err
}

// FetchUser returns the user record bound to the access token.
func (c *Client) FetchUser(ctx context.Context, accessToken string) (*cip.GetUserOutput, error) {
	start := time.Now()
	out, err := c.api.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	c.record("FetchUser", start, err)
	return out, err
}
