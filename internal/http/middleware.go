package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fittrackhq/fittrack/internal/session"
	"github.com/fittrackhq/fittrack/pkg/httpx"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "fittrack_session"

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Secure bool
}

// SetSessionCookie writes the session cookie for a freshly minted session.
func (c CookieConfig) SetSessionCookie(w http.ResponseWriter, s session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    s.Token,
		Path:     "/",
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func (c CookieConfig) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireSession resolves the session cookie and injects the session and
// user id into the request context. Requests without a live session get 401;
// absent, expired and destroyed tokens are indistinguishable to the client.
func RequireSession(sessions session.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, "Please log in to access this page")
				return
			}

			sess, ok := sessions.Resolve(r.Context(), cookie.Value)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Please log in to access this page")
				return
			}

			ctx := context.WithValue(r.Context(), httpx.CtxKeySession, sess)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, sess.Identity.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireGuest rejects requests that already carry a live session. Register
// and login are guest-only.
func RequireGuest(sessions session.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
				if _, ok := sessions.Resolve(r.Context(), cookie.Value); ok {
					writeError(w, http.StatusBadRequest, "Already logged in")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// sessionFromContext returns the session stored by RequireSession.
func sessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(httpx.CtxKeySession).(session.Session)
	return s, ok
}

// userIDFromContext returns the acting user's id, empty when unauthenticated.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(httpx.CtxKeyUserID).(string)
	return id
}
