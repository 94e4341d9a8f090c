// Package apiclient is the HTTP client for the Credit Dost backend
// API. One shared client carries the base URL, a default timeout, and
// automatic bearer-token injection from a TokenSource whenever a token
// is present.
//
// The client performs exactly one round trip per call: no retries, no
// backoff. Cancellation and deadlines come from the caller's context on
// top of the configured client timeout.
//
// Errors fall into four buckets, matching what callers need to show:
//
//   - ErrUnreachable: no response received (connectivity)
//   - ErrUnauthorized: the backend rejected the bearer token (401)
//   - *APIError: a 4xx with a message or details payload, surfaced
//     verbatim for display
//   - ErrServer: 5xx or a malformed success payload
//
// Usage:
//
//	var cfg apiclient.Config
//	config.MustLoad(&cfg)
//
//	api, err := apiclient.New(cfg,
//		apiclient.WithTokenSource(tokenStore),
//		apiclient.WithLogger(log),
//	)
package apiclient
