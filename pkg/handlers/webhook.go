package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"blogclone/pkg/session"
	"blogclone/pkg/user"

	"go.uber.org/zap"
)

// webhookTolerance bounds how stale a signed timestamp may be, in
// either direction, to blunt replay.
const webhookTolerance = 5 * time.Minute

type IdentityRepo interface {
	Upsert(u *user.User) (int64, error)
	DeleteByExternalID(externalID string) (bool, error)
}

// WebhookHandler ingests signed events from the hosted identity
// provider: user lifecycle events sync the local profile table,
// session revocations feed the denylist.
type WebhookHandler struct {
	Secret   []byte
	Users    IdentityRepo
	Sessions session.Manager
	Logger   *zap.SugaredLogger

	Now func() time.Time
}

type webhookEvent struct {
	Type string           `json:"type"`
	Data webhookEventData `json:"data"`
}

type webhookEventData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// ParseWebhookSecret strips the provider's `whsec_` prefix and decodes
// the base64 key material.
func ParseWebhookSecret(secret string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	if !h.verify(r, body) {
		WriteResponse(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var ev webhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := h.apply(r.Context(), &ev); err != nil {
		h.Logger.Errorw("webhook not applied", "type", ev.Type, "error", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "ok", http.StatusOK)
}

func (h *WebhookHandler) apply(ctx context.Context, ev *webhookEvent) error {
	switch ev.Type {
	case "user.created", "user.updated":
		_, err := h.Users.Upsert(&user.User{
			ExternalID: ev.Data.ID,
			Username:   ev.Data.Username,
			Email:      ev.Data.Email,
			Img:        ev.Data.ImageURL,
		})
		return err
	case "user.deleted":
		_, err := h.Users.DeleteByExternalID(ev.Data.ID)
		return err
	case "session.revoked", "session.removed", "session.ended":
		return h.Sessions.Revoke(ctx, ev.Data.ID)
	default:
		h.Logger.Infow("webhook event ignored", "type", ev.Type)
		return nil
	}
}

// verify checks the svix-style signature: HMAC-SHA256 over
// "{id}.{timestamp}.{payload}", compared against every "v1,<base64>"
// candidate in the signature header.
func (h *WebhookHandler) verify(r *http.Request, body []byte) bool {
	id := r.Header.Get("svix-id")
	timestamp := r.Header.Get("svix-timestamp")
	signatures := r.Header.Get("svix-signature")
	if id == "" || timestamp == "" || signatures == "" {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	now := h.now()
	diff := now.Sub(time.Unix(ts, 0))
	if diff > webhookTolerance || diff < -webhookTolerance {
		return false
	}

	mac := hmac.New(sha256.New, h.Secret)
	mac.Write([]byte(id))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, candidate := range strings.Split(signatures, " ") {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		sig, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			continue
		}
		if hmac.Equal(sig, expected) {
			return true
		}
	}

	return false
}

func (h *WebhookHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
