package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"blogclone/pkg/session"
	"blogclone/pkg/user"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

var webhookSecret = []byte("test-webhook-secret-key-material")
var webhookNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

type webhookEnv struct {
	handler  *WebhookHandler
	users    *MockIdentityRepo
	sessions *session.MockManager
}

func newWebhookEnv(ctrl *gomock.Controller) *webhookEnv {
	env := &webhookEnv{
		users:    NewMockIdentityRepo(ctrl),
		sessions: session.NewMockManager(ctrl),
	}
	env.handler = &WebhookHandler{
		Secret:   webhookSecret,
		Users:    env.users,
		Sessions: env.sessions,
		Logger:   zap.NewNop().Sugar(),
		Now:      func() time.Time { return webhookNow },
	}
	return env
}

func signedRequest(payload []byte, ts time.Time) *http.Request {
	id := "msg_2f8a"
	timestamp := strconv.FormatInt(ts.Unix(), 10)

	mac := hmac.New(sha256.New, webhookSecret)
	fmt.Fprintf(mac, "%s.%s.%s", id, timestamp, payload)
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	r := httptest.NewRequest(http.MethodPost, "/webhooks/identity", bytes.NewReader(payload))
	r.Header.Set("svix-id", id)
	r.Header.Set("svix-timestamp", timestamp)
	r.Header.Set("svix-signature", "v1,"+sig)
	return r
}

func TestWebhookUserCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	env.users.EXPECT().Upsert(&user.User{
		ExternalID: "ext_2f8a",
		Username:   "vectoreal",
		Email:      "v@example.com",
		Img:        "avatars/v.png",
	}).Return(int64(25), nil)

	payload := []byte(`{"type":"user.created","data":{"id":"ext_2f8a","username":"vectoreal","email":"v@example.com","image_url":"avatars/v.png"}}`)
	w := httptest.NewRecorder()

	env.handler.Handle(w, signedRequest(payload, webhookNow))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v: %v", w.Code, w.Body.String())
	}
}

func TestWebhookUserDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	env.users.EXPECT().DeleteByExternalID("ext_2f8a").Return(true, nil)

	payload := []byte(`{"type":"user.deleted","data":{"id":"ext_2f8a"}}`)
	w := httptest.NewRecorder()

	env.handler.Handle(w, signedRequest(payload, webhookNow))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", w.Code)
	}
}

func TestWebhookSessionRevoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	env.sessions.EXPECT().Revoke(gomock.Any(), "sess_41ab").Return(nil)

	payload := []byte(`{"type":"session.revoked","data":{"id":"sess_41ab"}}`)
	w := httptest.NewRecorder()

	env.handler.Handle(w, signedRequest(payload, webhookNow))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", w.Code)
	}
}

func TestWebhookUnknownEventIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	payload := []byte(`{"type":"organization.created","data":{"id":"org_1"}}`)
	w := httptest.NewRecorder()

	env.handler.Handle(w, signedRequest(payload, webhookNow))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for ignored event, got %v", w.Code)
	}
}

func TestWebhookBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	payload := []byte(`{"type":"user.deleted","data":{"id":"ext_2f8a"}}`)
	r := signedRequest(payload, webhookNow)
	r.Header.Set("svix-signature", "v1,"+base64.StdEncoding.EncodeToString([]byte("forged signature bytes here!")))
	w := httptest.NewRecorder()

	env.handler.Handle(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", w.Code)
	}
}

func TestWebhookMissingHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	r := httptest.NewRequest(http.MethodPost, "/webhooks/identity", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	env.handler.Handle(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", w.Code)
	}
}

func TestWebhookStaleTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newWebhookEnv(ctrl)

	payload := []byte(`{"type":"user.deleted","data":{"id":"ext_2f8a"}}`)
	w := httptest.NewRecorder()

	env.handler.Handle(w, signedRequest(payload, webhookNow.Add(-10*time.Minute)))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale timestamp, got %v", w.Code)
	}
}

func TestParseWebhookSecret(t *testing.T) {
	raw := []byte("key material")
	encoded := "whsec_" + base64.StdEncoding.EncodeToString(raw)

	got, err := ParseWebhookSecret(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("expected %q, got %q", raw, got)
	}
}
