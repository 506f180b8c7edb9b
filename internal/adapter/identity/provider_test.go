package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/orderdesk/internal/config"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

type staticCredentials struct {
	id, secret string
	err        error
}

func (c staticCredentials) OAuthClient() (string, string, error) { return c.id, c.secret, c.err }

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestAuthCodeURLCarriesClientScopesAndState(t *testing.T) {
	p := NewProvider(Options{
		AuthURL:     "https://accounts.example.com/auth",
		TokenURL:    "https://accounts.example.com/token",
		RedirectURL: "http://localhost:8080/api/auth/callback",
	}, staticCredentials{id: "client-1", secret: "s3cret"}, testLogger())

	raw, err := p.AuthCodeURL("state-123")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "accounts.example.com", u.Host)
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "consent select_account", q.Get("prompt"))
	assert.Equal(t, strings.Join(Scopes, " "), q.Get("scope"))
}

func TestAuthCodeURLRequiresClient(t *testing.T) {
	p := NewProvider(Options{}, staticCredentials{err: domainErrors.ErrNotConfigured}, testLogger())
	_, err := p.AuthCodeURL("s")
	assert.ErrorIs(t, err, domainErrors.ErrNotConfigured)
}

func TestExchangeReturnsAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"ya29.token","token_type":"Bearer","expires_in":3599}`))
	}))
	defer srv.Close()

	p := NewProvider(Options{TokenURL: srv.URL, AuthURL: srv.URL}, staticCredentials{id: "client-1", secret: "s"}, testLogger())
	token, err := p.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "ya29.token", token)
}

func TestExchangeRejectedCodeIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	p := NewProvider(Options{TokenURL: srv.URL, AuthURL: srv.URL}, staticCredentials{id: "client-1"}, testLogger())
	_, err := p.Exchange(context.Background(), "stale")
	assert.ErrorIs(t, err, domainErrors.ErrUnauthorized)
}

func TestProfile(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantEmail  string
		wantUnauth bool
		wantFetch  bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"sub":"1","email":"chef@example.com","name":"Chef","picture":"https://img/p.png"}`, wantEmail: "chef@example.com"},
		{name: "expired token", status: http.StatusUnauthorized, wantUnauth: true},
		{name: "server error", status: http.StatusInternalServerError, wantFetch: true},
		{name: "bad json", status: http.StatusOK, body: `{`, wantFetch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewProvider(Options{UserInfoURL: srv.URL}, staticCredentials{}, testLogger())
			profile, err := p.Profile(context.Background(), "tok")

			switch {
			case tt.wantUnauth:
				assert.ErrorIs(t, err, domainErrors.ErrUnauthorized)
			case tt.wantFetch:
				var pe *domainErrors.ProfileFetchError
				assert.True(t, errors.As(err, &pe), "expected ProfileFetchError, got %v", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantEmail, profile.Email)
				assert.Equal(t, "Chef", profile.Name)
				assert.Equal(t, "https://img/p.png", profile.Picture)
			}
		})
	}
}

func TestNewProviderUsesConfig(t *testing.T) {
	cfg := &config.Config{UserInfoURL: "https://example.com/userinfo", OAuthRedirectURL: "http://localhost/cb"}
	p := newProvider(providerParams{Config: cfg, Credentials: staticCredentials{}, Logger: testLogger()})
	assert.Equal(t, "https://example.com/userinfo", p.opts.UserInfoURL)
	assert.Equal(t, "http://localhost/cb", p.opts.RedirectURL)
	assert.NotZero(t, p.opts.Timeout)
}
