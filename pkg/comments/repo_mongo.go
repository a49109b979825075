package comments

import (
	"context"

	"blogclone/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentsRepoMongo struct {
	collection common.CollectionHelper
}

func NewCommentsRepoMongo(db *mongo.Database) *CommentsRepoMongo {
	return &CommentsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("comments")}}
}

// GetByPostID lists a post's comments newest-first.
func (repo *CommentsRepoMongo) GetByPostID(ctx context.Context, id interface{}) ([]*Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cur, err := repo.collection.Find(ctx, bson.M{"postID": id}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []*Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (repo *CommentsRepoMongo) Add(ctx context.Context, comment *Comment) (interface{}, error) {
	res, err := repo.collection.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// DeleteOwned removes the comment only when authorID wrote it.
func (repo *CommentsRepoMongo) DeleteOwned(ctx context.Context, id interface{}, authorID int64) (bool, error) {
	res, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id, "authorID": authorID})
	if err != nil {
		return false, err
	}

	return res.GetDeletedCount() > 0, nil
}

func (repo *CommentsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
