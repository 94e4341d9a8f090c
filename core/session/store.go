package session

import "context"

// TokenStore persists the bearer token between runs. Absence of a token
// means "logged out" regardless of in-memory state, so implementations
// must distinguish absence (ErrNoToken) from read failures.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not
	// an error; logout must be idempotent.
	Clear(ctx context.Context) error
}
