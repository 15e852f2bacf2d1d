// Package auth provides the provider-facing authentication utilities:
// secret-hash derivation and access-token verification.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var (
	// ErrInvalidHashValue is returned when the value to hash is empty.
	ErrInvalidHashValue = errors.New("invalid value for hashing")
	// ErrMissingClientSecret is returned when no HMAC key is configured.
	ErrMissingClientSecret = errors.New("client secret is not set")
)

// SecretHash computes the base64-encoded HMAC-SHA256 over value+clientID,
// keyed with the client secret. Cognito requires this hash on every call
// that carries a username, to prove the request comes from a known client.
func SecretHash(value, clientID, clientSecret string) (string, error) {
	if value == "" {
		return "", ErrInvalidHashValue
	}
	if clientSecret == "" {
		return "", ErrMissingClientSecret
	}

	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(value + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
