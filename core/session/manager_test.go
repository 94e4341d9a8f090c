package session_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/creditdost/portal/core/logger"
	"github.com/creditdost/portal/core/session"
)

// mockAPI implements session.API for testing
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Profile(ctx context.Context) (session.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(session.User), args.Error(1)
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (session.Auth, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(session.Auth), args.Error(1)
}

func (m *mockAPI) Register(ctx context.Context, params session.RegisterParams) (session.Auth, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(session.Auth), args.Error(1)
}

func (m *mockAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockTokenStore implements session.TokenStore for the failure cases the
// in-memory store cannot produce.
type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockTokenStore) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testUser(role session.Role) session.User {
	return session.User{
		ID:    uuid.New(),
		Name:  "Ravi Kumar",
		Email: "ravi@example.com",
		Role:  role,
	}
}

func TestManager_Bootstrap(t *testing.T) {
	t.Parallel()

	t.Run("starts in loading state", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(&mockAPI{}, session.NewMemoryStore())

		state := mgr.State()
		assert.True(t, state.Loading)
		assert.Nil(t, state.User)
	})

	t.Run("no persisted token resolves anonymous without a network call", func(t *testing.T) {
		t.Parallel()

		api := &mockAPI{}
		mgr := session.NewManager(api, session.NewMemoryStore())

		state := mgr.Bootstrap(context.Background())

		assert.Nil(t, state.User)
		assert.False(t, state.Loading)
		api.AssertNotCalled(t, "Profile", mock.Anything)
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		user := testUser(session.RoleCustomer)

		store := session.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "valid-token"))

		api := &mockAPI{}
		api.On("Profile", ctx).Return(user, nil).Once()

		mgr := session.NewManager(api, store)
		state := mgr.Bootstrap(ctx)

		require.NotNil(t, state.User)
		assert.Equal(t, user, *state.User)
		assert.False(t, state.Loading)
		api.AssertExpectations(t)
	})

	t.Run("rejected token is cleared silently", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()

		store := session.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "expired-token"))

		api := &mockAPI{}
		api.On("Profile", ctx).Return(session.User{}, errors.New("401 unauthorized")).Once()

		mgr := session.NewManager(api, store)
		state := mgr.Bootstrap(ctx)

		assert.Nil(t, state.User)
		assert.False(t, state.Loading)

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("runs at most once per process", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		user := testUser(session.RoleAdmin)

		store := session.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "valid-token"))

		api := &mockAPI{}
		api.On("Profile", ctx).Return(user, nil).Once()

		mgr := session.NewManager(api, store)
		first := mgr.Bootstrap(ctx)
		second := mgr.Bootstrap(ctx)

		assert.Equal(t, first, second)
		api.AssertExpectations(t)
	})
}

func TestManager_Login(t *testing.T) {
	t.Parallel()

	t.Run("success sets user and persists token", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		user := testUser(session.RoleFranchiseUser)
		auth := session.Auth{Token: "fresh-token", User: user}

		store := session.NewMemoryStore()
		api := &mockAPI{}
		api.On("Login", ctx, "ravi@example.com", "secret").Return(auth, nil).Once()

		mgr := session.NewManager(api, store)
		got, err := mgr.Login(ctx, "ravi@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, session.RoleFranchiseUser, got.User.Role)

		state := mgr.State()
		require.NotNil(t, state.User)
		assert.Equal(t, user, *state.User)

		token, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", token)
	})

	t.Run("failure propagates the backend message and leaves state untouched", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()

		store := session.NewMemoryStore()
		api := &mockAPI{}
		api.On("Login", ctx, "ravi@example.com", "wrong").
			Return(session.Auth{}, errors.New("invalid email or password")).Once()

		mgr := session.NewManager(api, store)
		_, err := mgr.Login(ctx, "ravi@example.com", "wrong")

		require.EqualError(t, err, "invalid email or password")
		assert.Nil(t, mgr.State().User)

		_, terr := store.Token(ctx)
		assert.ErrorIs(t, terr, session.ErrNoToken)
	})

	t.Run("failure while authenticated keeps the existing user", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		user := testUser(session.RoleCustomer)

		store := session.NewMemoryStore()
		api := &mockAPI{}
		api.On("Login", ctx, "ravi@example.com", "secret").
			Return(session.Auth{Token: "t1", User: user}, nil).Once()
		api.On("Login", ctx, "other@example.com", "nope").
			Return(session.Auth{}, errors.New("invalid email or password")).Once()

		mgr := session.NewManager(api, store)
		_, err := mgr.Login(ctx, "ravi@example.com", "secret")
		require.NoError(t, err)

		_, err = mgr.Login(ctx, "other@example.com", "nope")
		require.Error(t, err)

		state := mgr.State()
		require.NotNil(t, state.User)
		assert.Equal(t, user.ID, state.User.ID)
	})

	t.Run("token persist failure leaves the session untouched", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		auth := session.Auth{Token: "t1", User: testUser(session.RoleCustomer)}

		api := &mockAPI{}
		api.On("Login", ctx, "ravi@example.com", "secret").Return(auth, nil).Once()

		store := &mockTokenStore{}
		store.On("Save", ctx, "t1").Return(errors.New("disk full")).Once()

		mgr := session.NewManager(api, store)
		_, err := mgr.Login(ctx, "ravi@example.com", "secret")

		require.Error(t, err)
		assert.Nil(t, mgr.State().User)
		store.AssertExpectations(t)
	})
}

func TestManager_Register(t *testing.T) {
	t.Parallel()

	t.Run("success signs the new user in", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		user := testUser(session.RoleCustomer)
		params := session.RegisterParams{
			Name:     user.Name,
			Email:    user.Email,
			Phone:    "9876543210",
			Password: "secret",
		}
		auth := session.Auth{Token: "new-token", User: user}

		store := session.NewMemoryStore()
		api := &mockAPI{}
		api.On("Register", ctx, params).Return(auth, nil).Once()

		mgr := session.NewManager(api, store)
		got, err := mgr.Register(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, user, got.User)
		require.NotNil(t, mgr.State().User)

		token, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new-token", token)
	})

	t.Run("failure leaves the session anonymous", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		params := session.RegisterParams{Email: "taken@example.com"}

		api := &mockAPI{}
		api.On("Register", ctx, params).
			Return(session.Auth{}, errors.New("email already registered")).Once()

		mgr := session.NewManager(api, session.NewMemoryStore())
		_, err := mgr.Register(ctx, params)

		require.EqualError(t, err, "email already registered")
		assert.Nil(t, mgr.State().User)
	})
}

func TestManager_Logout(t *testing.T) {
	t.Parallel()

	loggedInManager := func(t *testing.T, api *mockAPI, store session.TokenStore) *session.Manager {
		t.Helper()

		ctx := context.Background()
		auth := session.Auth{Token: "t1", User: testUser(session.RoleCustomer)}
		api.On("Login", ctx, "ravi@example.com", "secret").Return(auth, nil).Once()

		mgr := session.NewManager(api, store)
		_, err := mgr.Login(ctx, "ravi@example.com", "secret")
		require.NoError(t, err)
		return mgr
	}

	t.Run("clears user and token", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := session.NewMemoryStore()
		api := &mockAPI{}
		mgr := loggedInManager(t, api, store)

		api.On("Logout", ctx).Return(nil).Once()
		require.NoError(t, mgr.Logout(ctx))

		assert.Nil(t, mgr.State().User)
		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("clears locally even when the remote call fails", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := session.NewMemoryStore()
		api := &mockAPI{}
		mgr := loggedInManager(t, api, store)

		api.On("Logout", ctx).Return(errors.New("gateway timeout")).Once()
		require.NoError(t, mgr.Logout(ctx))

		assert.Nil(t, mgr.State().User)
		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := session.NewMemoryStore()
		api := &mockAPI{}
		mgr := loggedInManager(t, api, store)

		api.On("Logout", ctx).Return(nil).Twice()
		require.NoError(t, mgr.Logout(ctx))
		require.NoError(t, mgr.Logout(ctx))

		assert.Nil(t, mgr.State().User)
		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("clears the in-memory user even when the store fails", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()

		api := &mockAPI{}
		store := &mockTokenStore{}
		auth := session.Auth{Token: "t1", User: testUser(session.RoleCustomer)}
		api.On("Login", ctx, "ravi@example.com", "secret").Return(auth, nil).Once()
		store.On("Save", ctx, "t1").Return(nil).Once()

		mgr := session.NewManager(api, store)
		_, err := mgr.Login(ctx, "ravi@example.com", "secret")
		require.NoError(t, err)

		api.On("Logout", ctx).Return(nil).Once()
		store.On("Clear", ctx).Return(errors.New("read-only filesystem")).Once()

		err = mgr.Logout(ctx)
		require.Error(t, err)
		assert.Nil(t, mgr.State().User)
	})
}

func TestManager_Logging(t *testing.T) {
	t.Parallel()

	t.Run("login and logout record action and result", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		auth := session.Auth{Token: "t1", User: testUser(session.RoleCustomer)}
		api := &mockAPI{}
		api.On("Login", ctx, "ravi@example.com", "secret").Return(auth, nil).Once()
		api.On("Logout", ctx).Return(nil).Once()

		mgr := session.NewManager(api, session.NewMemoryStore(), session.WithLogger(log))
		_, err := mgr.Login(ctx, "ravi@example.com", "secret")
		require.NoError(t, err)
		require.NoError(t, mgr.Logout(ctx))

		output := buf.String()
		assert.Contains(t, output, "action=login")
		assert.Contains(t, output, "action=logout")
		assert.Contains(t, output, "result=success")
	})
}

func TestState_Snapshot(t *testing.T) {
	t.Parallel()

	t.Run("returned user is a copy", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		user := testUser(session.RoleAdmin)

		api := &mockAPI{}
		api.On("Login", ctx, "a@example.com", "pw").
			Return(session.Auth{Token: "t", User: user}, nil).Once()

		mgr := session.NewManager(api, session.NewMemoryStore())
		_, err := mgr.Login(ctx, "a@example.com", "pw")
		require.NoError(t, err)

		state := mgr.State()
		state.User.Name = "tampered"

		assert.Equal(t, user.Name, mgr.State().User.Name)
	})
}
