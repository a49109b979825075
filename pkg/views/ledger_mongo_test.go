package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogclone/pkg/actor"
	"blogclone/pkg/common"

	gomock "github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

func dupErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestRecordOnceFirstInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockInsertResult := common.NewMockInsertOneResultHelper(ctrl)
	ledger := &ViewLedgerMongo{collection: mockCollection}

	ctx := context.Background()
	postID := primitive.NewObjectID()
	a := actor.FromUser(34)

	expected := NewViewEvent(postID, a, now)
	mockCollection.EXPECT().InsertOne(ctx, gomock.Eq(expected)).Return(mockInsertResult, nil)

	inserted, err := ledger.RecordOnce(ctx, postID, a, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Error("expected first insert to report true")
	}
}

func TestRecordOnceDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	ledger := &ViewLedgerMongo{collection: mockCollection}

	ctx := context.Background()
	postID := primitive.NewObjectID()
	a := actor.FromAddress("1.2.3.4")

	mockCollection.EXPECT().InsertOne(ctx, gomock.Any()).Return(nil, dupErr())

	inserted, err := ledger.RecordOnce(ctx, postID, a, now)
	if err != nil {
		t.Fatalf("duplicate key must not surface as error, got: %v", err)
	}
	if inserted {
		t.Error("expected duplicate insert to report false")
	}
}

func TestRecordOnceStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	ledger := &ViewLedgerMongo{collection: mockCollection}

	ctx := context.Background()
	storageErr := errors.New("connection reset")

	mockCollection.EXPECT().InsertOne(ctx, gomock.Any()).Return(nil, storageErr)

	_, err := ledger.RecordOnce(ctx, primitive.NewObjectID(), actor.FromUser(34), now)
	if err != storageErr {
		t.Fatalf("expected storage error, got: %v", err)
	}
}

func TestRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockDeleteResult := common.NewMockDeleteResultHelper(ctrl)
	ledger := &ViewLedgerMongo{collection: mockCollection}

	ctx := context.Background()
	postID := primitive.NewObjectID()
	a := actor.FromUser(34)

	expected := bson.M{"postID": postID, "actorKey": "user:34", "day": "2024-03-15"}
	mockCollection.EXPECT().DeleteOne(ctx, gomock.Eq(expected)).Return(mockDeleteResult, nil)

	if err := ledger.Remove(ctx, postID, a, "2024-03-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewViewEventIdentityFields(t *testing.T) {
	postID := primitive.NewObjectID()

	ev := NewViewEvent(postID, actor.FromUser(34), now)
	if ev.UserID == nil || *ev.UserID != 34 || ev.Address != "" {
		t.Errorf("user event must set only userID: %+v", ev)
	}
	if ev.ActorKey != "user:34" || ev.Day != "2024-03-15" {
		t.Errorf("unexpected key fields: %+v", ev)
	}

	ev = NewViewEvent(postID, actor.FromAddress("1.2.3.4"), now)
	if ev.UserID != nil || ev.Address != "1.2.3.4" {
		t.Errorf("anonymous event must set only address: %+v", ev)
	}
	if ev.ActorKey != "addr:1.2.3.4" {
		t.Errorf("unexpected actor key: %v", ev.ActorKey)
	}
}
