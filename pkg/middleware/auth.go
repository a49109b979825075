package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"blogclone/pkg/session"
	"blogclone/pkg/user"

	"go.uber.org/zap"
)

// UserGetter resolves the provider-side user id from a verified token
// into the locally synced profile.
type UserGetter interface {
	GetByExternalID(externalID string) (*user.User, error)
}

var authRoutes = map[string]string{
	"/posts":      http.MethodPost,
	"/users/save": http.MethodPatch,
}

func authRequired(r *http.Request) bool {
	m, ok := authRoutes[r.URL.Path]
	if ok && m == r.Method {
		return true
	}
	if strings.HasSuffix(r.URL.Path, "/like") && r.Method == http.MethodPost {
		return true
	}
	if strings.HasPrefix(r.URL.Path, "/comments/") &&
		(r.Method == http.MethodPost || r.Method == http.MethodDelete) {
		return true
	}
	if strings.HasPrefix(r.URL.Path, "/users/") && r.Method == http.MethodGet {
		return true
	}
	if strings.HasPrefix(r.URL.Path, "/posts/") && r.Method == http.MethodDelete {
		return true
	}

	return false
}

// Auth verifies the bearer token when one is present and attaches the
// resolved session to the request context. Routes in the auth table
// reject anonymous requests; everything else passes through so that
// view counting can still tell users and visitors apart. Webhook
// routes authenticate by signature, not by token.
func Auth(logger *zap.SugaredLogger, sm session.Manager, users UserGetter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/webhooks/") {
			next.ServeHTTP(w, r)
			return
		}

		required := authRequired(r)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		claims, err := sm.Check(ctx, r)
		if err != nil {
			if err != session.ErrNoToken {
				logger.Error(err.Error())
			}
			if required {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		u, err := users.GetByExternalID(claims.Subject)
		if err != nil {
			logger.Error(err.Error())
		}
		if u == nil {
			// token verified but the provider sync has not landed yet
			if required {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		sess := &session.Session{
			User:      &session.User{ID: u.ID, Username: u.Username},
			SessionID: claims.SessionID,
			Role:      claims.Role,
		}

		next.ServeHTTP(w, r.WithContext(session.ContextWithSession(r.Context(), sess)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
	w.Write(errorBody)
}
