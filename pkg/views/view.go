package views

import (
	"time"

	"blogclone/pkg/actor"
)

// DayFormat keys ledger entries to a calendar day. Days roll over at
// server-local midnight.
const DayFormat = "2006-01-02"

func DayKey(t time.Time) string {
	return t.Local().Format(DayFormat)
}

// ViewEvent is one append-only ledger entry. Exactly one of UserID and
// Address is set, mirroring the actor identity; ActorKey is the same
// identity flattened for the unique index.
type ViewEvent struct {
	ID       interface{} `bson:"_id,omitempty"`
	PostID   interface{} `bson:"postID"`
	ActorKey string      `bson:"actorKey"`
	UserID   *int64      `bson:"userID,omitempty"`
	Address  string      `bson:"address,omitempty"`
	Day      string      `bson:"day"`
	ViewedAt time.Time   `bson:"viewedAt"`
}

func NewViewEvent(postID interface{}, a actor.Identity, now time.Time) *ViewEvent {
	ev := &ViewEvent{
		PostID:   postID,
		ActorKey: a.Key(),
		Day:      DayKey(now),
		ViewedAt: now,
	}

	if a.Kind == actor.User {
		uid := a.UserID
		ev.UserID = &uid
	} else {
		ev.Address = a.Address
	}

	return ev
}
