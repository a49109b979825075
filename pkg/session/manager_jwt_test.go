package session

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, key *rsa.PrivateKey, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func testKeyPair(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pub := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, pub
}

func TestCheckValidToken(t *testing.T) {
	key, pub := testKeyPair(t)

	sm, err := NewManagerJWT(pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &Claims{
		SessionID: sessID,
		Role:      "admin",
		StandardClaims: jwt.StandardClaims{
			Subject:   "ext_2f8a",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("authorization", "Bearer "+signedToken(t, key, claims))

	fact, err := sm.Check(context.Background(), r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fact.SessionID != sessID || fact.Subject != "ext_2f8a" || fact.Role != "admin" {
		t.Errorf("claims mismatch: %+v", fact)
	}
}

func TestCheckNoHeader(t *testing.T) {
	_, pub := testKeyPair(t)

	sm, err := NewManagerJWT(pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := sm.Check(context.Background(), r); err != ErrNoToken {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestCheckExpiredToken(t *testing.T) {
	key, pub := testKeyPair(t)

	sm, err := NewManagerJWT(pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &Claims{
		SessionID: sessID,
		StandardClaims: jwt.StandardClaims{
			Subject:   "ext_2f8a",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("authorization", "Bearer "+signedToken(t, key, claims))

	if _, err := sm.Check(context.Background(), r); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestCheckWrongKey(t *testing.T) {
	otherKey, _ := testKeyPair(t)
	_, pub := testKeyPair(t)

	sm, err := NewManagerJWT(pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &Claims{
		SessionID: sessID,
		StandardClaims: jwt.StandardClaims{
			Subject:   "ext_2f8a",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("authorization", "Bearer "+signedToken(t, otherKey, claims))

	if _, err := sm.Check(context.Background(), r); err == nil {
		t.Fatal("expected error for token signed with another key")
	}
}
