package auth

import (
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/app/services/shared/session"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsecase(url string) *authUsecase {
	return NewAuthUsecase(backend.NewBackendClient(url, zap.NewNop()), zap.NewNop()).(*authUsecase)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success stores token and role and goes to the dashboard", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"email":"p@x.com","password":"Password123"}`, string(body))
			w.Write([]byte(`{"token":"abc","role":"patient"}`))
		}))
		defer server.Close()

		sess := session.Bind(session.NewMemorySessionStore(), "s1")
		navigation, err := newUsecase(server.URL).Login(ctx, sess, &requests.Login{Email: "p@x.com", Password: "Password123"})
		require.NoError(t, err)
		assert.Equal(t, "/dashboard", navigation.RedirectTo)

		token, _ := sess.Token(ctx)
		role, _ := sess.Role(ctx)
		assert.Equal(t, "abc", token)
		assert.Equal(t, "patient", role)
	})

	t.Run("Failure shows the server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid credentials"}`))
		}))
		defer server.Close()

		sess := session.Bind(session.NewMemorySessionStore(), "s1")
		_, err := newUsecase(server.URL).Login(ctx, sess, &requests.Login{Email: "p@x.com", Password: "bad"})
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", exceptions.ClientMessage(err))

		token, _ := sess.Token(ctx)
		assert.Empty(t, token)
	})

	t.Run("Failure without a server error names the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		sess := session.Bind(session.NewMemorySessionStore(), "s1")
		_, err := newUsecase(server.URL).Login(ctx, sess, &requests.Login{Email: "p@x.com", Password: "x"})
		assert.Equal(t, "Login failed (503)", exceptions.ClientMessage(err))
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	valid := func() *requests.Signup {
		return &requests.Signup{
			Email:     "d@x.com",
			FirstName: "Dana",
			LastName:  "Lee",
			Password:  "Password123",
			Confirm:   "Password123",
			Role:      "doctor",
		}
	}

	t.Run("Validation failures never reach the backend", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		weak := valid()
		weak.Password, weak.Confirm = "weak", "weak"
		mismatch := valid()
		mismatch.Confirm = "Password124"
		noRole := valid()
		noRole.Role = ""
		badRole := valid()
		badRole.Role = "nurse"
		noName := valid()
		noName.FirstName = ""

		cases := []struct {
			name     string
			request  *requests.Signup
			expected string
		}{
			{name: "weak password", request: weak, expected: "Password needs: ≥8 chars, uppercase, number"},
			{name: "confirm mismatch", request: mismatch, expected: "Passwords do not match."},
			{name: "missing role", request: noRole, expected: "Select a role."},
			{name: "unknown role", request: badRole, expected: "Select a role."},
			{name: "missing name", request: noName, expected: "Please fill all required fields correctly."},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := newUsecase(server.URL).Signup(ctx, tc.request)
				require.Error(t, err)
				assert.True(t, exceptions.IsValidation(err))
				assert.Equal(t, tc.expected, exceptions.ClientMessage(err))
			})
		}
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("Success returns to login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.NotContains(t, string(body), "confirm")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"User registered"}`))
		}))
		defer server.Close()

		navigation, err := newUsecase(server.URL).Signup(ctx, valid())
		require.NoError(t, err)
		assert.Equal(t, "/", navigation.RedirectTo)
	})

	t.Run("Backend rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		_, err := newUsecase(server.URL).Signup(ctx, valid())
		assert.Equal(t, "Signup failed (409)", exceptions.ClientMessage(err))
	})

	t.Run("Network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := newUsecase(url).Signup(ctx, valid())
		assert.Contains(t, exceptions.ClientMessage(err), "Network error: ")
	})
}

func TestCheckSignup(t *testing.T) {
	uc := newUsecase("http://unused")

	cases := []struct {
		name            string
		request         *requests.SignupCheck
		expectErrors    []string
		expectConfirmed string
	}{
		{name: "empty password lists nothing", request: &requests.SignupCheck{}, expectErrors: []string{}},
		{name: "weak password", request: &requests.SignupCheck{Password: "weak"}, expectErrors: []string{"≥8 chars", "uppercase", "number"}},
		{name: "strong password", request: &requests.SignupCheck{Password: "Password123"}, expectErrors: []string{}},
		{name: "mismatch", request: &requests.SignupCheck{Password: "Password123", Confirm: "Password12"}, expectErrors: []string{}, expectConfirmed: "Passwords do not match."},
		{name: "empty confirm", request: &requests.SignupCheck{Password: "Password123"}, expectErrors: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check := uc.CheckSignup(tc.request)
			assert.Equal(t, tc.expectErrors, check.PasswordErrors)
			assert.Equal(t, tc.expectConfirmed, check.ConfirmMessage)
		})
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	sess := session.Bind(session.NewMemorySessionStore(), "s1")
	require.NoError(t, sess.Establish(ctx, "abc", "doctor"))

	navigation, err := newUsecase("http://unused").Logout(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "/", navigation.RedirectTo)
	assert.True(t, navigation.Replace)

	token, _ := sess.Token(ctx)
	assert.Empty(t, token)
}
