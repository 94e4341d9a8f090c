package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/creditdost/portal/core/logger"
)

// Manager owns the process-wide session. It is constructed once at
// startup with its collaborators injected and torn down with the
// process.
//
// Operations are not serialized against each other: when two overlap
// (say a duplicate submit fires login twice), whichever response
// resolves last wins. The mutex below protects field access only.
type Manager struct {
	api   API
	store TokenStore
	log   *slog.Logger

	mu      sync.RWMutex
	user    *User
	loading bool

	bootstrapOnce sync.Once
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the logger used for swallowed failures (bootstrap,
// remote logout). Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates the session manager. The session starts in the
// loading state and stays there until Bootstrap resolves.
func NewManager(api API, store TokenStore, opts ...Option) *Manager {
	m := &Manager{
		api:     api,
		store:   store,
		log:     slog.Default(),
		loading: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a snapshot of the current session. The returned user is
// a copy; mutating it does not affect the session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := State{Loading: m.loading}
	if m.user != nil {
		u := *m.user
		st.User = &u
	}
	return st
}

// Bootstrap resolves any persisted token into a user. It runs the check
// at most once per process: later calls return the current state without
// touching the network. Failures are silent: an expired token during
// startup is routine, not an error to show anyone. Every failure path
// removes the stale token and leaves the session anonymous.
func (m *Manager) Bootstrap(ctx context.Context) State {
	m.bootstrapOnce.Do(func() { m.bootstrap(ctx) })
	return m.State()
}

func (m *Manager) bootstrap(ctx context.Context) {
	defer m.finishLoading()

	_, err := m.store.Token(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			m.log.WarnContext(ctx, "failed to read persisted token",
				logger.Component("session"), logger.Error(err))
		}
		return
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.log.InfoContext(ctx, "persisted token rejected, clearing",
			logger.Component("session"), logger.Event("bootstrap"), logger.Error(err))
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.WarnContext(ctx, "failed to clear rejected token",
				logger.Component("session"), logger.Error(cerr))
		}
		return
	}

	m.setUser(&user)
	m.log.InfoContext(ctx, "session restored",
		logger.Component("session"), logger.Event("bootstrap"),
		logger.UserID(user.ID.String()), logger.Role(string(user.Role)))
}

// Login authenticates with the backend. On success the token is
// persisted and the user recorded; the full payload is returned so the
// caller can route on the role. On any failure the session is left
// exactly as it was and the error is propagated for display.
func (m *Manager) Login(ctx context.Context, email, password string) (Auth, error) {
	auth, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.log.DebugContext(ctx, "sign-in rejected",
			logger.Component("session"), logger.Action("login"),
			logger.Result("failure"), logger.Error(err))
		return Auth{}, err
	}

	if err := m.store.Save(ctx, auth.Token); err != nil {
		return Auth{}, err
	}

	u := auth.User
	m.setUser(&u)
	m.log.InfoContext(ctx, "signed in",
		logger.Component("session"), logger.Action("login"), logger.Result("success"),
		logger.UserID(u.ID.String()), logger.Role(string(u.Role)))
	return auth, nil
}

// Register creates an account and signs the new user in, with the same
// persistence and failure semantics as Login.
func (m *Manager) Register(ctx context.Context, params RegisterParams) (Auth, error) {
	auth, err := m.api.Register(ctx, params)
	if err != nil {
		m.log.DebugContext(ctx, "registration rejected",
			logger.Component("session"), logger.Action("register"),
			logger.Result("failure"), logger.Error(err))
		return Auth{}, err
	}

	if err := m.store.Save(ctx, auth.Token); err != nil {
		return Auth{}, err
	}

	u := auth.User
	m.setUser(&u)
	m.log.InfoContext(ctx, "signed in",
		logger.Component("session"), logger.Action("register"), logger.Result("success"),
		logger.UserID(u.ID.String()), logger.Role(string(u.Role)))
	return auth, nil
}

// Logout invalidates the server-side session best-effort, then
// unconditionally clears the local user and the persisted token. A
// failed remote call is logged and swallowed; a stale token must never
// survive a logout. Only a token-store failure is reported, and even
// then the in-memory user is already gone.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		m.log.WarnContext(ctx, "remote logout failed",
			logger.Component("session"), logger.Action("logout"), logger.Error(err))
	}

	m.setUser(nil)

	if err := m.store.Clear(ctx); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "signed out",
		logger.Component("session"), logger.Action("logout"), logger.Result("success"))
	return nil
}

func (m *Manager) setUser(u *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
}

func (m *Manager) finishLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
}
