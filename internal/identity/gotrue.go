package identity

import (
	"context"
	"strings"

	"github.com/supabase-community/gotrue-go"

	"perawise/internal/logger"
)

// GoTrueVerifier forwards bearer tokens to a Supabase GoTrue endpoint for
// verification. Selected in DEV/LIVE mode when no JWT secret is configured
// locally. Any rejection, including a network failure, is reported as
// unauthenticated.
type GoTrueVerifier struct {
	client gotrue.Client
}

// NewGoTrueVerifier creates a verifier bound to the given Supabase project
// URL (e.g. https://abc.supabase.co) and anon key.
func NewGoTrueVerifier(supabaseURL, anonKey string) *GoTrueVerifier {
	client := gotrue.New("perawise", anonKey).
		WithCustomGoTrueURL(strings.TrimRight(supabaseURL, "/") + "/auth/v1")
	return &GoTrueVerifier{client: client}
}

// Verify asks the identity service who the token belongs to.
func (v *GoTrueVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	resp, err := v.client.WithToken(token).GetUser()
	if err != nil {
		logger.Get().Debugw("token verification failed", "error", err.Error())
		return nil, ErrUnauthenticated
	}

	return &Identity{ID: resp.ID.String(), Email: resp.Email}, nil
}
