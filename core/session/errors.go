package session

import "errors"

var (
	// ErrNoToken is returned by a TokenStore when no token is persisted.
	ErrNoToken = errors.New("no token stored")
	// ErrPersistToken is returned when saving a token to the store fails.
	ErrPersistToken = errors.New("failed to persist token")
	// ErrClearToken is returned when removing the persisted token fails.
	ErrClearToken = errors.New("failed to clear token")
)
