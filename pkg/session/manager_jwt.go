package session

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// Manager validates inbound session tokens and tracks revocations.
// Token issuance belongs to the hosted identity provider; this service
// only ever verifies.
type Manager interface {
	Check(ctx context.Context, r *http.Request) (*Claims, error)
	Revoke(ctx context.Context, sessionID string) error
}

// ManagerJWT verifies RS256 tokens against the identity provider's
// published public key.
type ManagerJWT struct {
	publicKey *rsa.PublicKey
}

func NewManagerJWT(publicKeyBytes []byte) (*ManagerJWT, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyBytes)
	if err != nil {
		return nil, err
	}

	return &ManagerJWT{publicKey: publicKey}, nil
}

func (sm *ManagerJWT) Check(ctx context.Context, r *http.Request) (*Claims, error) {
	authHeader := r.Header.Get("authorization")
	if authHeader == "" {
		return nil, ErrNoToken
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	payload := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok || method.Alg() != "RS256" {
			return nil, fmt.Errorf("bad sign method")
		}
		return sm.publicKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return payload, nil
}

// Revoke is a no-op here: the bare verifier has no state to revoke
// against. Wrap with ManagerRedis for real revocation.
func (sm *ManagerJWT) Revoke(ctx context.Context, sessionID string) error {
	return nil
}
