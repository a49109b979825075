package views

import (
	"context"
	"time"

	"blogclone/pkg/actor"
	"blogclone/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ViewLedgerMongo is the append-only record of countable views. The
// unique index on (postID, actorKey, day) is what makes RecordOnce
// atomic: of any number of concurrent inserts for the same key, exactly
// one succeeds.
type ViewLedgerMongo struct {
	collection common.CollectionHelper
	indexes    mongo.IndexView
}

func NewViewLedgerMongo(db *mongo.Database) *ViewLedgerMongo {
	coll := db.Collection("views")
	return &ViewLedgerMongo{
		collection: &common.MongoCollection{Collection: coll},
		indexes:    coll.Indexes(),
	}
}

// EnsureIndexes must run once at startup, before any RecordOnce call.
func (l *ViewLedgerMongo) EnsureIndexes(ctx context.Context) error {
	unique := true
	_, err := l.indexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "postID", Value: 1},
			{Key: "actorKey", Value: 1},
			{Key: "day", Value: 1},
		},
		Options: &options.IndexOptions{Unique: &unique},
	})
	return err
}

// RecordOnce appends a view event for (post, actor, day-of-now) and
// reports whether this call was the one that recorded it. A duplicate
// key — the actor already viewed today, or a concurrent request won —
// returns false without error.
func (l *ViewLedgerMongo) RecordOnce(ctx context.Context, postID interface{}, a actor.Identity, now time.Time) (bool, error) {
	_, err := l.collection.InsertOne(ctx, NewViewEvent(postID, a, now))
	if err != nil {
		if common.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Remove compensates a RecordOnce whose follow-up counter increment
// failed, so the actor's next fetch can count again.
func (l *ViewLedgerMongo) Remove(ctx context.Context, postID interface{}, a actor.Identity, day string) error {
	_, err := l.collection.DeleteOne(ctx, bson.M{
		"postID":   postID,
		"actorKey": a.Key(),
		"day":      day,
	})
	return err
}
