package service_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/asif/shops-platform/internal/config"
	"github.com/asif/shops-platform/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func tokenTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-jwt-secret-key-for-testing-only",
		CORSDomain: "example.com",
		CORSScheme: "https",
		BcryptCost: bcrypt.MinCost,
	}
}

func tokenExpiry(t *testing.T, tokenString string) time.Time {
	t.Helper()

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	require.NoError(t, err)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	return exp.Time
}

func TestTokenIssuer_IssueAndValidate(t *testing.T) {
	issuer := service.NewTokenIssuer(tokenTestConfig())
	userID := uuid.New()

	token, err := issuer.Issue(userID, "alice", false)
	require.NoError(t, err)

	got, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenIssuer_ExpiryClasses(t *testing.T) {
	issuer := service.NewTokenIssuer(tokenTestConfig())
	userID := uuid.New()

	tests := []struct {
		name     string
		extended bool
		ttl      time.Duration
	}{
		{
			name:     "default session expires in 30 minutes",
			extended: false,
			ttl:      30 * time.Minute,
		},
		{
			name:     "remember me session expires in 7 days",
			extended: true,
			ttl:      7 * 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := issuer.Issue(userID, "alice", tt.extended)
			require.NoError(t, err)

			want := time.Now().Add(tt.ttl)
			assert.WithinDuration(t, want, tokenExpiry(t, token), 5*time.Second)
		})
	}
}

func TestTokenIssuer_Cookie(t *testing.T) {
	issuer := service.NewTokenIssuer(tokenTestConfig())

	cookie := issuer.Cookie("sometoken", false)
	assert.Equal(t, service.SessionCookieName, cookie.Name)
	assert.Equal(t, "sometoken", cookie.Value)
	assert.Equal(t, "example.com", cookie.Domain)
	assert.Equal(t, 1800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	extended := issuer.Cookie("sometoken", true)
	assert.Equal(t, 604800, extended.MaxAge)
}

func TestTokenIssuer_ClearCookie(t *testing.T) {
	issuer := service.NewTokenIssuer(tokenTestConfig())

	cookie := issuer.ClearCookie()
	assert.Equal(t, service.SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}

func TestTokenIssuer_Validate_Rejections(t *testing.T) {
	issuer := service.NewTokenIssuer(tokenTestConfig())
	userID := uuid.New()

	token, err := issuer.Issue(userID, "alice", false)
	require.NoError(t, err)

	otherCfg := tokenTestConfig()
	otherCfg.JWTSecret = "a-completely-different-secret"
	otherIssuer := service.NewTokenIssuer(otherCfg)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "notavalidjwt",
		},
		{
			name:  "tampered token",
			token: token + "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Validate(tt.token)
			assert.Error(t, err)
		})
	}

	t.Run("wrong signing key", func(t *testing.T) {
		foreign, err := otherIssuer.Issue(userID, "alice", false)
		require.NoError(t, err)

		_, err = issuer.Validate(foreign)
		assert.Error(t, err)
	})
}
