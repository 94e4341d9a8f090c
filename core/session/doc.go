// Package session holds the client-side session for the Credit Dost
// portal: the single source of truth for "who is logged in" plus the
// bearer token persisted between runs.
//
// # Core Components
//
//   - Manager: coordinates the session lifecycle (Bootstrap, Login,
//     Register, Logout) against the backend API
//   - TokenStore: interface for durable token persistence, with a
//     file-backed implementation for real use
//   - User / Role: the authenticated identity and its authorization tag
//   - State: an immutable snapshot consumed by the route guard and any
//     other reader
//
// # Lifecycle
//
// A Manager is constructed once at process start with its collaborators
// injected, and begins in the loading state. Bootstrap resolves any
// persisted token into a user exactly once:
//
//	store := session.NewFileStore(tokenPath)
//	manager := session.NewManager(api, store, session.WithLogger(log))
//
//	state := manager.Bootstrap(ctx)
//	if state.IsAuthenticated() {
//		fmt.Println("welcome back,", state.User.Name)
//	}
//
// Bootstrap failures are silent: an expired or rejected token simply
// produces an anonymous state and removes the stale token. Login and
// Register, by contrast, propagate backend errors verbatim so the caller
// can display them, and they leave the session untouched on failure.
// Logout always succeeds locally even when the remote invalidate call
// does not.
//
// # Concurrency
//
// Field access is protected for memory safety, but operations are not
// serialized against each other: if two operations race, the one that
// resolves last determines the final state. Callers that care (e.g. a
// submit button) should prevent overlapping calls themselves.
package session
