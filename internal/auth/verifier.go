package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/authgate/authgate/internal/metrics"
)

var (
	// ErrTokenExpired is returned when the access token's signature is valid
	// but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for every other token verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// UserFetcher resolves the user record bound to an access token.
// The Cognito adapter satisfies this.
type UserFetcher interface {
	FetchUser(ctx context.Context, accessToken string) (*cognitoidentityprovider.GetUserOutput, error)
}

// Verifier validates Cognito access tokens in two steps: cryptographic
// verification against the pool's key set, then a GetUser round-trip to
// confirm the token has not been revoked server-side.
type Verifier struct {
	keys     *KeySet
	issuer   string
	clientID string
	users    UserFetcher
	recorder metrics.Recorder
}

// NewVerifier creates a Verifier for the given issuer and app client.
// Pass nil for recorder to discard verification metrics.
func NewVerifier(keys *KeySet, issuer, clientID string, users UserFetcher, recorder metrics.Recorder) *Verifier {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Verifier{
		keys:     keys,
		issuer:   issuer,
		clientID: clientID,
		users:    users,
		recorder: recorder,
	}
}

// Verify checks the token's signature, expiry, issuer, client binding and
// token-use claim, then confirms the provider still accepts the token.
// Returns ErrTokenExpired, ErrTokenInvalid, or the provider's error from the
// user lookup.
func (v *Verifier) Verify(ctx context.Context, accessToken string) error {
	claims := jwtv5.MapClaims{}
	_, err := jwtv5.ParseWithClaims(accessToken, claims, v.keyfunc(ctx),
		jwtv5.WithValidMethods([]string{"RS256"}),
		jwtv5.WithIssuer(v.issuer),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			v.recorder.IncTokenVerification("expired")
			return ErrTokenExpired
		}
		v.recorder.IncTokenVerification("invalid")
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	// Cognito access tokens carry the app client in client_id, not aud.
	if use, _ := claims["token_use"].(string); use != "access" {
		v.recorder.IncTokenVerification("invalid")
		return fmt.Errorf("%w: token_use is not access", ErrTokenInvalid)
	}
	if cid, _ := claims["client_id"].(string); cid != v.clientID {
		v.recorder.IncTokenVerification("invalid")
		return fmt.Errorf("%w: client_id mismatch", ErrTokenInvalid)
	}

	if _, err := v.users.FetchUser(ctx, accessToken); err != nil {
		v.recorder.IncTokenVerification("invalid")
		return err
	}

	v.recorder.IncTokenVerification("success")
	return nil
}

func (v *Verifier) keyfunc(ctx context.Context) jwtv5.Keyfunc {
	return func(t *jwtv5.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token header missing kid")
		}
		return v.keys.Key(ctx, kid)
	}
}
