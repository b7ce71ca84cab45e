// Package localstore is the durable client-local key/value state of the
// DevHub CLI: the bearer token plus a minimal account snapshot shown in the
// prompt before session bootstrap completes.
//
// Ownership: the API client is the only writer (login, register, logout);
// the session store reads the token once at bootstrap. No other component
// touches this state.
package localstore

import "context"

// Fixed keys of the metadata table.
const (
	KeyAuthToken       = "auth_token"
	KeyAccountUsername = "account_username"
	KeyAccountEmail    = "account_email"
)

// Account is the slice of login/register results persisted locally.
type Account struct {
	Token    string
	Username string
	Email    string
}

// Store is durable local key/value storage.
//
// Get returns "" with a nil error for a missing key; absence is not an
// error. SaveAccount writes all account keys atomically.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	SaveAccount(ctx context.Context, acc Account) error
}

// Token is a convenience wrapper for the single token slot.
func Token(ctx context.Context, s Store) (string, error) {
	return s.Get(ctx, KeyAuthToken)
}
