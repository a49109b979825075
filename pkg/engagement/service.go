package engagement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogclone/pkg/actor"
	"blogclone/pkg/posts"
	"blogclone/pkg/views"

	"go.uber.org/zap"
)

var (
	// ErrUnauthenticated: the operation needs a signed-in actor and the
	// request has none.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound: the referenced post does not exist.
	ErrNotFound = errors.New("post not found")
)

type PostStore interface {
	IncViews(ctx context.Context, postID interface{}) (bool, error)
	ToggleLike(ctx context.Context, postID interface{}, userID int64) (*posts.Post, bool, error)
	IncShares(ctx context.Context, postID interface{}) (*posts.Post, error)
}

type ViewLedger interface {
	RecordOnce(ctx context.Context, postID interface{}, a actor.Identity, now time.Time) (bool, error)
	Remove(ctx context.Context, postID interface{}, a actor.Identity, day string) error
}

type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// Counter owns the engagement counters on posts: per-day deduplicated
// views, like toggling, share counting.
type Counter struct {
	Posts  PostStore
	Ledger ViewLedger
	Logger *zap.SugaredLogger

	// Now is injectable so day-rollover behavior is testable.
	Now func() time.Time
}

func NewCounter(store PostStore, ledger ViewLedger, logger *zap.SugaredLogger) *Counter {
	return &Counter{Posts: store, Ledger: ledger, Logger: logger, Now: time.Now}
}

// RecordView counts a fetch of post by actor at most once per calendar
// day and returns the view count the caller should render. The
// ledger insert is the atomic decision point: only the request whose
// insert succeeds increments the counter, so M concurrent fetches from
// one actor produce exactly one increment. If the increment itself
// fails the ledger entry is removed again so the view is not lost for
// the rest of the day.
func (c *Counter) RecordView(ctx context.Context, post *posts.Post, a actor.Identity) (uint64, error) {
	now := c.Now()

	inserted, err := c.Ledger.RecordOnce(ctx, post.ID, a, now)
	if err != nil {
		return post.Views, fmt.Errorf("view ledger: %w", err)
	}
	if !inserted {
		// Already counted today, or a concurrent request won the race.
		return post.Views, nil
	}

	ok, err := c.Posts.IncViews(ctx, post.ID)
	if err != nil || !ok {
		if rmErr := c.Ledger.Remove(ctx, post.ID, a, views.DayKey(now)); rmErr != nil {
			c.Logger.Errorw("orphaned view ledger entry",
				"post", post.ID, "actor", a.Key(), "error", rmErr)
		}
		if err != nil {
			return post.Views, fmt.Errorf("increment views: %w", err)
		}
		return post.Views, ErrNotFound
	}

	return post.Views + 1, nil
}

// ToggleLike flips the actor's membership in the post's like set.
// Anonymous actors cannot like. Two successive calls restore the
// original state; callers needing "ensure liked" must read first.
func (c *Counter) ToggleLike(ctx context.Context, postID interface{}, a actor.Identity) (*LikeResult, error) {
	if a.Kind != actor.User {
		return nil, ErrUnauthenticated
	}

	post, liked, err := c.Posts.ToggleLike(ctx, postID, a.UserID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	return &LikeResult{Likes: post.LikeCount(), Liked: liked}, nil
}

// IncrementShare counts every call; shares are deliberately not
// deduplicated or authenticated, matching the public share endpoint.
func (c *Counter) IncrementShare(ctx context.Context, postID interface{}) (uint64, error) {
	post, err := c.Posts.IncShares(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("increment shares: %w", err)
	}
	if post == nil {
		return 0, ErrNotFound
	}

	return post.Shares, nil
}
