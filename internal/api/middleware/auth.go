package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// sessionName is the cookie the session rides in.
const sessionName = "qid"

// sessionUserKey is the session value holding the authenticated user ID.
const sessionUserKey = "userId"

// SessionAuth authenticates requests from a signed session cookie.
// The session only carries the user ID; everything else is loaded per request.
type SessionAuth struct {
	store *sessions.CookieStore
}

// NewSessionAuth creates the session middleware. secret signs the cookie;
// secure marks it Secure for HTTPS deployments.
func NewSessionAuth(secret string, secure bool) *SessionAuth {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365 * 10, // 10 years, matching the frontend's expectation
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionAuth{store: store}
}

// WithUser loads the session and, if it names a user, injects the user ID
// into the request context. Requests without a session pass through
// unauthenticated; handlers decide whether that is an error.
func (a *SessionAuth) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.store.Get(r, sessionName)
		if err != nil {
			// A tampered or stale cookie is treated as no session.
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values[sessionUserKey].(int)
		if !ok || userID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects requests that did not present a valid session.
// Must be mounted after WithUser.
func (a *SessionAuth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r) == 0 {
			writeAuthError(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID returns the authenticated user's ID, or 0 for anonymous requests.
func UserID(r *http.Request) int {
	if id, ok := r.Context().Value(UserIDKey).(int); ok {
		return id
	}
	return 0
}

// SignIn stores the user ID in a fresh session cookie.
func (a *SessionAuth) SignIn(w http.ResponseWriter, r *http.Request, userID int) error {
	session, err := a.store.Get(r, sessionName)
	if err != nil {
		// Get returns a usable blank session alongside decode errors.
		session, _ = a.store.New(r, sessionName)
	}
	session.Values[sessionUserKey] = userID
	return session.Save(r, w)
}

// SignOut expires the session cookie.
func (a *SessionAuth) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, err := a.store.Get(r, sessionName)
	if err != nil {
		session, _ = a.store.New(r, sessionName)
	}
	session.Options.MaxAge = -1
	delete(session.Values, sessionUserKey)
	return session.Save(r, w)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
