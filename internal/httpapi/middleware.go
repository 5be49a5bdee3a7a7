package httpapi

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/sojibhasan5800/flipcart-storefront/internal/auth"
)

type contextKey string

const (
	sessionKeyContextKey contextKey = "session_key"
	claimsContextKey     contextKey = "claims"
)

const sessionCookieName = "storefront_session"

// SessionMiddleware gives every browser a stable session cookie. The
// cart identity is keyed off this value; the cookie itself carries no
// cart state.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionKey string
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			sessionKey = cookie.Value
		} else {
			sessionKey = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionKey,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKeyContextKey, sessionKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware parses an optional bearer token into profile claims.
// Anonymous shoppers pass through; a bad token is treated as anonymous
// rather than rejected, since browsing needs no account.
func AuthMiddleware(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) > 7 && header[:7] == "Bearer " {
				claims, err := verifier.ParseSession(header[7:])
				if err != nil {
					log.Printf("session token rejected: %v", err)
				} else {
					ctx := context.WithValue(r.Context(), claimsContextKey, claims)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(sessionKeyContextKey).(string); ok {
		return key
	}
	return ""
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(claimsContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
