// Package cognito adapts the AWS Cognito identity provider API behind one
// method per authentication action. Each method builds the provider request,
// attaches the secret hash where Cognito requires a username binding, and
// passes the provider's response or error through unchanged. No retries and
// no extra timeouts: failures surface immediately to the caller.
package cognito

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/authgate/authgate/internal/metrics"
)

// API is the subset of the Cognito SDK client this adapter uses.
// Tests provide a fake implementation.
type API interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	GlobalSignOut(ctx context.Context, params *cip.GlobalSignOutInput, optFns ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error)
	ForgotPassword(ctx context.Context, params *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
	ChangePassword(ctx context.Context, params *cip.ChangePasswordInput, optFns ...func(*cip.Options)) (*cip.ChangePasswordOutput, error)
	GetUser(ctx context.Context, params *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
	DeleteUser(ctx context.Context, params *cip.DeleteUserInput, optFns ...func(*cip.Options)) (*cip.DeleteUserOutput, error)
}

// Config contains the settings needed to reach the provider.
type Config struct {
	Region       string
	ClientID     string
	ClientSecret string

	// Optional explicit credentials. When empty the SDK default chain applies.
	AccessKeyID     string
	SecretAccessKey string
}

// Client is the provider adapter. Construct once at startup and share across
// requests; it holds no per-request state.
type Client struct {
	api          API
	clientID     string
	clientSecret string
	recorder     metrics.Recorder
}

// New creates a Client backed by the real AWS SDK.
func New(ctx context.Context, cfg Config, recorder metrics.Recorder) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewWithAPI(cip.NewFromConfig(awsCfg), cfg.ClientID, cfg.ClientSecret, recorder), nil
}

// NewWithAPI creates a Client over an existing API implementation.
// Used by tests to substitute a fake provider.
func NewWithAPI(api API, clientID, clientSecret string, recorder metrics.Recorder) *Client {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Client{
		api:          api,
		clientID:     clientID,
		clientSecret: clientSecret,
		recorder:     recorder,
	}
}

// record reports one provider round-trip to the metrics recorder.
func (c *Client) record(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.recorder.IncProviderCall(operation, status)
	c.recorder.ObserveProviderCallDuration(operation, time.Since(start))
}
