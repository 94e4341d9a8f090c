package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// tokenFile is the on-disk shape, kept as JSON so a future refresh token
// can ride along without a format break.
type tokenFile struct {
	Token string `json:"token"`
}

// FileStore persists the bearer token in a single JSON file, created
// with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a token store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultTokenPath returns the conventional token location,
// ~/.creditdost/token.json.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".creditdost", "token.json"), nil
}

// Token reads the persisted token. A missing file, unreadable payload,
// or empty token field all report ErrNoToken: every one of them means
// the client holds no usable credential.
func (s *FileStore) Token(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", ErrNoToken
	}
	if tf.Token == "" {
		return "", ErrNoToken
	}
	return tf.Token, nil
}

// Save writes the token, creating the parent directory on first use.
func (s *FileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(ErrPersistToken, err)
	}

	data, err := json.MarshalIndent(tokenFile{Token: token}, "", "  ")
	if err != nil {
		return errors.Join(ErrPersistToken, err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Join(ErrPersistToken, err)
	}
	return nil
}

// Clear removes the token file. Clearing a store that holds no token
// succeeds, so repeated logouts converge on the same state.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrClearToken, err)
	}
	return nil
}
