package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/asif/shops-platform/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Session authenticates requests via the session cookie and puts the user
// ID into the request context. The cookie is the only accepted carrier.
func Session(tokens *service.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Validate(cookie.Value)
			if err != nil {
				log.Printf("ERROR [middleware.Session] token validation failed: %v", err)
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
