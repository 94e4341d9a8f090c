package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is returned when the client is constructed with
	// unusable configuration.
	ErrInvalidConfig = errors.New("invalid api client configuration")
	// ErrUnreachable is returned when no response was received at all.
	ErrUnreachable = errors.New("cannot reach server")
	// ErrUnauthorized is returned when the backend rejects the bearer
	// token. During bootstrap this means the persisted token is stale.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrServer is returned for 5xx responses and malformed payloads.
	ErrServer = errors.New("server error")
)

// APIError carries a 4xx failure payload from the backend. The message
// (or the joined details) is what the UI shows the user, so Error
// surfaces it verbatim.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return strings.Join(e.Details, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
