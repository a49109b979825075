package session

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"
)

type key int

const (
	sessionKey key = 1
)

var (
	// ErrNoToken means the request carried no bearer token at all.
	// Callers treat this as an anonymous request, not a failure.
	ErrNoToken = errors.New("no session token")
	// ErrRevoked means the token verified but the provider has since
	// revoked the session.
	ErrRevoked = errors.New("session revoked")
)

// Claims is the payload of a session token issued by the hosted identity
// provider. Subject carries the provider-side user id.
type Claims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role,omitempty"`
	jwt.StandardClaims
}

// Session is the resolved, request-scoped identity: provider claims
// joined with the locally synced user record.
type Session struct {
	User      *User
	SessionID string
	Role      string
}

type User struct {
	ID       int64
	Username string
}

func (s *Session) IsAdmin() bool {
	return s.Role == "admin"
}

func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func FromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	if !ok {
		return nil, errors.New("session not found")
	}

	return sess, nil
}
