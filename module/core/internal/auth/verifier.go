package auth

import "context"

// Verifier resolves a bearer token to the user it identifies.
type Verifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}
