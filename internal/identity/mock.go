package identity

import (
	"context"
	"encoding/json"
)

// MockVerifier treats the bearer token as a JSON-serialized identity record.
// Used in MOCK mode where no identity service exists. A token that does not
// parse, or parses without an id, is unauthenticated, never a server error.
type MockVerifier struct{}

// NewMockVerifier creates a MockVerifier.
func NewMockVerifier() *MockVerifier { return &MockVerifier{} }

// Verify parses the token as a JSON identity.
func (v *MockVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	var ident Identity
	if err := json.Unmarshal([]byte(token), &ident); err != nil {
		return nil, ErrUnauthenticated
	}
	if ident.ID == "" {
		return nil, ErrUnauthenticated
	}
	return &ident, nil
}
