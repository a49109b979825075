package posts

import (
	"context"
	"fmt"

	"blogclone/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewPostsRepoMongo(db *mongo.Database) *PostsRepoMongo {
	return &PostsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("posts")}}
}

// ListFilter narrows GetPage. Zero values mean "no filter".
type ListFilter struct {
	Category string
	Featured bool
	AuthorID int64
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Featured {
		q["isFeatured"] = true
	}
	if f.AuthorID != 0 {
		q["authorID"] = f.AuthorID
	}
	return q
}

// GetPage returns one page of posts, newest first, plus a flag telling
// the client whether more pages exist.
func (r *PostsRepoMongo) GetPage(ctx context.Context, f ListFilter, page, limit int64) ([]*Post, bool, error) {
	if page < 1 {
		page = 1
	}

	filter := f.query()
	opts := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, false, err
	}
	defer cur.Close(ctx)

	var posts []*Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, false, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, false, err
	}

	return posts, page*limit < total, nil
}

func (r *PostsRepoMongo) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	return r.getOne(ctx, bson.M{"slug": slug})
}

func (r *PostsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Post, error) {
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *PostsRepoMongo) getOne(ctx context.Context, filter bson.M) (*Post, error) {
	res := r.collection.FindOne(ctx, filter)

	post := &Post{}
	err := res.Decode(post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Add inserts the post under a slug derived from its title. On slug
// collision a numeric suffix is appended, starting at 2, until a free
// slug is found (original behavior, racy only against simultaneous
// same-title submissions — the unique slug index still rejects those).
func (r *PostsRepoMongo) Add(ctx context.Context, p *Post) (interface{}, error) {
	base := Slugify(p.Title)
	slug := base
	for counter := 2; ; counter++ {
		existing, err := r.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	p.Slug = slug

	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.LikedBy == nil {
		p.LikedBy = []int64{}
	}

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (r *PostsRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	return r.deleteOne(ctx, bson.M{"_id": id})
}

// DeleteOwned removes the post only when authorID owns it.
func (r *PostsRepoMongo) DeleteOwned(ctx context.Context, id interface{}, authorID int64) (bool, error) {
	return r.deleteOne(ctx, bson.M{"_id": id, "authorID": authorID})
}

func (r *PostsRepoMongo) deleteOne(ctx context.Context, filter bson.M) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}

	return res.GetDeletedCount() > 0, nil
}

// IncViews bumps the view counter by one. The caller decides whether
// the view is countable; this is just the atomic increment.
func (r *PostsRepoMongo) IncViews(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetMatchedCount() > 0, nil
}

// IncShares atomically increments the share counter and returns the
// updated post, or nil when the post does not exist. Every call counts;
// shares are not deduplicated.
func (r *PostsRepoMongo) IncShares(ctx context.Context, id interface{}) (*Post, error) {
	after := options.After
	res := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "shares", Value: 1}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(after))

	post := &Post{}
	err := res.Decode(post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ToggleLike flips the user's membership in the likedBy set using two
// conditional updates, each atomic on the server: $addToSet guarded by
// "not yet a member", then $pull guarded by "is a member". A concurrent
// toggle can make the first guard miss, in which case the second matches
// — no read-modify-write of the whole document ever happens.
func (r *PostsRepoMongo) ToggleLike(ctx context.Context, id interface{}, userID int64) (*Post, bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "likedBy": bson.M{"$ne": userID}},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "likedBy", Value: userID}}},
		})
	if err != nil {
		return nil, false, err
	}

	liked := res.GetModifiedCount() > 0
	if !liked {
		res, err = r.collection.UpdateOne(ctx,
			bson.M{"_id": id, "likedBy": userID},
			bson.D{
				{Key: "$pull", Value: bson.D{{Key: "likedBy", Value: userID}}},
			})
		if err != nil {
			return nil, false, err
		}
		if res.GetModifiedCount() == 0 {
			// Neither guard matched: the post is gone.
			return nil, false, nil
		}
	}

	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if post == nil {
		return nil, false, nil
	}

	return post, liked, nil
}

func (r *PostsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
