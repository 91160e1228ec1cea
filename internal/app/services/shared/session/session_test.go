package session

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/pkg/constvars"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBoundSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Token and role are empty before login", func(t *testing.T) {
		session := Bind(NewMemorySessionStore(), "s1")

		token, err := session.Token(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)

		role, err := session.Role(ctx)
		require.NoError(t, err)
		assert.Empty(t, role)
	})

	t.Run("Establish writes token and role and drops stale view state", func(t *testing.T) {
		session := Bind(NewMemorySessionStore(), "s1")
		require.NoError(t, session.Set(ctx, constvars.SessionKeyDoctorView, `{"status_filter":"all"}`))

		require.NoError(t, session.Establish(ctx, "abc", constvars.RolePatient))

		token, _ := session.Token(ctx)
		role, _ := session.Role(ctx)
		assert.Equal(t, "abc", token)
		assert.Equal(t, constvars.RolePatient, role)

		_, found, err := session.Get(ctx, constvars.SessionKeyDoctorView)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Establish moves the login to a new id", func(t *testing.T) {
		store := NewMemorySessionStore()
		var rotatedTo string
		session := BindWithRotation(store, "pre-login", func(sessionID string) error {
			rotatedTo = sessionID
			return nil
		})
		require.NoError(t, session.Set(ctx, constvars.SessionKeyPatientView, "survey"))

		require.NoError(t, session.Establish(ctx, "abc", constvars.RolePatient))

		assert.NotEqual(t, "pre-login", session.ID())
		assert.Equal(t, session.ID(), rotatedTo)

		token, _, err := store.Get(ctx, "pre-login", constvars.SessionKeyToken)
		require.NoError(t, err)
		assert.Empty(t, token, "the pre-login id must stay anonymous")
		_, found, err := store.Get(ctx, "pre-login", constvars.SessionKeyPatientView)
		require.NoError(t, err)
		assert.False(t, found)

		token, _, err = store.Get(ctx, session.ID(), constvars.SessionKeyToken)
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	})

	t.Run("Rotation hook failure aborts the login", func(t *testing.T) {
		session := BindWithRotation(NewMemorySessionStore(), "s1", func(string) error {
			return assert.AnError
		})

		err := session.Establish(ctx, "abc", constvars.RolePatient)
		assert.ErrorIs(t, err, assert.AnError)

		token, _ := session.Token(ctx)
		assert.Empty(t, token)
	})

	t.Run("Clear removes token and role", func(t *testing.T) {
		session := Bind(NewMemorySessionStore(), "s1")
		require.NoError(t, session.Establish(ctx, "abc", constvars.RoleDoctor))

		require.NoError(t, session.Clear(ctx))

		token, _ := session.Token(ctx)
		role, _ := session.Role(ctx)
		assert.Empty(t, token)
		assert.Empty(t, role)
	})

	t.Run("Sessions sharing a store do not leak", func(t *testing.T) {
		store := NewMemorySessionStore()
		first := Bind(store, "s1")
		second := Bind(store, "s2")
		require.NoError(t, first.Establish(ctx, "abc", constvars.RolePatient))

		token, _ := second.Token(ctx)
		assert.Empty(t, token)
	})

	t.Run("Context round trip", func(t *testing.T) {
		session := Bind(NewMemorySessionStore(), "s1")

		got, ok := FromContext(WithSession(ctx, session))
		assert.True(t, ok)
		assert.Equal(t, "s1", got.ID())

		_, ok = FromContext(ctx)
		assert.False(t, ok)
	})
}

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Session: config.Session{
			Backend:    constvars.SessionBackendMemory,
			CookieName: "careportal_session",
			TTLInHours: 1,
		},
		JWT: config.JWT{Secret: "test-secret"},
	}
}

func TestCookieManager(t *testing.T) {
	manager := NewCookieManager(newTestConfig(), zap.NewNop())

	t.Run("Missing cookie yields a fresh session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		sessionID, fresh := manager.Resolve(req)
		assert.True(t, fresh)
		assert.NotEmpty(t, sessionID)
	})

	t.Run("Written cookie resolves to the same session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, manager.Write(rec, "session-42"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])

		sessionID, fresh := manager.Resolve(req)
		assert.False(t, fresh)
		assert.Equal(t, "session-42", sessionID)
	})

	t.Run("Second write replaces the queued session cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		http.SetCookie(rec, &http.Cookie{Name: "theme", Value: "dark"})
		require.NoError(t, manager.Write(rec, "anonymous"))
		require.NoError(t, manager.Write(rec, "logged-in"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "theme", cookies[0].Name)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[1])
		sessionID, _ := manager.Resolve(req)
		assert.Equal(t, "logged-in", sessionID)
	})

	t.Run("Tampered cookie yields a fresh session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "careportal_session", Value: "not-a-jwt"})

		sessionID, fresh := manager.Resolve(req)
		assert.True(t, fresh)
		assert.NotEqual(t, "not-a-jwt", sessionID)
	})

	t.Run("Cookie signed with another secret is rejected", func(t *testing.T) {
		other := newTestConfig()
		other.JWT.Secret = "other-secret"
		rec := httptest.NewRecorder()
		require.NoError(t, NewCookieManager(other, zap.NewNop()).Write(rec, "session-42"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(rec.Result().Cookies()[0])

		sessionID, fresh := manager.Resolve(req)
		assert.True(t, fresh)
		assert.NotEqual(t, "session-42", sessionID)
	})
}

func TestNewSessionStore(t *testing.T) {
	t.Run("Memory backend", func(t *testing.T) {
		store, err := NewSessionStore(newTestConfig(), nil)
		require.NoError(t, err)
		assert.IsType(t, &MemorySessionStore{}, store)
	})

	t.Run("Redis backend without client", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Session.Backend = constvars.SessionBackendRedis

		_, err := NewSessionStore(cfg, nil)
		assert.Error(t, err)
	})

	t.Run("Unknown backend", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Session.Backend = "etcd"

		_, err := NewSessionStore(cfg, nil)
		assert.Error(t, err)
	})
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemorySessionStoreWithTTL(time.Hour)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "s1", constvars.SessionKeyToken, "abc"))
	require.NoError(t, store.Set(ctx, "s2", constvars.SessionKeyToken, "def"))

	now = now.Add(30 * time.Minute)
	require.NoError(t, store.Set(ctx, "s2", constvars.SessionKeyRole, constvars.RoleDoctor))

	now = now.Add(45 * time.Minute)
	_, ok, err := store.Get(ctx, "s1", constvars.SessionKeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "s1 expired an hour after its last write")

	value, ok, err := store.Get(ctx, "s2", constvars.SessionKeyToken)
	require.NoError(t, err)
	assert.True(t, ok, "a write refreshes the whole session")
	assert.Equal(t, "def", value)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Sweep())
}

func TestSweeperRunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemorySessionStoreWithTTL(time.Minute)
	store.now = func() time.Time { return now }
	require.NoError(t, store.Set(ctx, "s1", constvars.SessionKeyToken, "abc"))

	sweeper := NewSweeper(zap.NewNop(), store, "not a cron spec")
	sweeper.Start()
	defer sweeper.Stop()

	now = now.Add(2 * time.Minute)
	sweeper.RunOnce()

	assert.Equal(t, 0, store.Sweep(), "RunOnce already removed the expired session")
}
