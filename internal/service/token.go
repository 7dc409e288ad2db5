package service

import (
	"errors"
	"net/http"
	"time"

	"github.com/asif/shops-platform/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie the browser carries between requests.
const SessionCookieName = "Authentication"

// Session lifetimes. Extended is the "remember me" class.
const (
	SessionTTL         = 30 * time.Minute
	ExtendedSessionTTL = 7 * 24 * time.Hour
)

// TokenIssuer mints and verifies stateless session tokens. There is no
// server-side session table: a token is valid exactly as long as its
// signature checks out and its embedded expiry has not passed, so logout
// can only discard the client's copy.
type TokenIssuer struct {
	secret     []byte
	domain     string
	secureOnly bool
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(cfg.JWTSecret),
		domain:     cfg.CORSDomain,
		secureOnly: cfg.CORSScheme == "https",
	}
}

func (t *TokenIssuer) Issue(userID uuid.UUID, userName string, extended bool) (string, error) {
	ttl := SessionTTL
	if extended {
		ttl = ExtendedSessionTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"name": userName,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Cookie wraps a token in the session cookie contract: inaccessible to
// script, secure-transport only, scoped to the base domain so every shop
// subdomain sends it back.
func (t *TokenIssuer) Cookie(token string, extended bool) *http.Cookie {
	maxAge := int(SessionTTL.Seconds())
	if extended {
		maxAge = int(ExtendedSessionTTL.Seconds())
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   t.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   t.secureOnly,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie returns the directive that makes the client drop its session.
func (t *TokenIssuer) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   t.domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secureOnly,
		SameSite: http.SameSiteStrictMode,
	}
}

func (t *TokenIssuer) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
