// Package identity abstracts how a bearer token becomes an authenticated
// subject. One concrete verifier exists per operating mode; handlers only
// ever see the Verifier interface.
package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned for any missing, malformed, or rejected
// credential. Verifiers never distinguish why a token was rejected.
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the authenticated subject attached to a request.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier turns a bearer token into an authenticated identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
