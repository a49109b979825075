package engagement

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"blogclone/pkg/actor"
	"blogclone/pkg/posts"
	"blogclone/pkg/views"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory doubles with the same atomicity guarantees the Mongo layer
// provides: RecordOnce is a check-and-insert under one lock (the unique
// index), counter and like-set mutations are single critical sections.

type fakeLedger struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{seen: map[string]bool{}}
}

func ledgerKey(postID interface{}, a actor.Identity, day string) string {
	return fmt.Sprintf("%v|%s|%s", postID, a.Key(), day)
}

func (l *fakeLedger) RecordOnce(ctx context.Context, postID interface{}, a actor.Identity, now time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey(postID, a, views.DayKey(now))
	if l.seen[key] {
		return false, nil
	}
	l.seen[key] = true
	return true, nil
}

func (l *fakeLedger) Remove(ctx context.Context, postID interface{}, a actor.Identity, day string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seen, ledgerKey(postID, a, day))
	return nil
}

type fakeStore struct {
	mu    sync.Mutex
	posts map[interface{}]*posts.Post
}

func newFakeStore(ps ...*posts.Post) *fakeStore {
	s := &fakeStore{posts: map[interface{}]*posts.Post{}}
	for _, p := range ps {
		s.posts[p.ID] = p
	}
	return s
}

func (s *fakeStore) get(id interface{}) *posts.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil
	}
	cp := *p
	cp.LikedBy = append([]int64{}, p.LikedBy...)
	return &cp
}

func (s *fakeStore) IncViews(ctx context.Context, postID interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return false, nil
	}
	p.Views++
	return true, nil
}

func (s *fakeStore) ToggleLike(ctx context.Context, postID interface{}, userID int64) (*posts.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, false, nil
	}

	liked := true
	kept := p.LikedBy[:0]
	for _, id := range p.LikedBy {
		if id == userID {
			liked = false
			continue
		}
		kept = append(kept, id)
	}
	p.LikedBy = kept
	if liked {
		p.LikedBy = append(p.LikedBy, userID)
	}

	cp := *p
	cp.LikedBy = append([]int64{}, p.LikedBy...)
	return &cp, liked, nil
}

func (s *fakeStore) IncShares(ctx context.Context, postID interface{}) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}
	p.Shares++
	cp := *p
	return &cp, nil
}

func propCounter(store *fakeStore) *Counter {
	return NewCounter(store, newFakeLedger(), zap.NewNop().Sugar())
}

func TestRepeatedViewsSameDayCountOnce(t *testing.T) {
	store := newFakeStore(&posts.Post{ID: "p1"})
	c := propCounter(store)

	a := actor.FromAddress("1.2.3.4")
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := c.RecordView(ctx, store.get("p1"), a)
		require.NoError(t, err)
	}

	require.Equal(t, uint64(1), store.get("p1").Views)
}

func TestDayRolloverCountsAgain(t *testing.T) {
	store := newFakeStore(&posts.Post{ID: "p1"})
	c := propCounter(store)

	day := time.Date(2024, 3, 15, 23, 50, 0, 0, time.Local)
	c.Now = func() time.Time { return day }

	a := actor.FromUser(34)
	ctx := context.Background()

	_, err := c.RecordView(ctx, store.get("p1"), a)
	require.NoError(t, err)
	_, err = c.RecordView(ctx, store.get("p1"), a)
	require.NoError(t, err)

	// 20 minutes later it is a new calendar day.
	day = day.Add(20 * time.Minute)
	_, err = c.RecordView(ctx, store.get("p1"), a)
	require.NoError(t, err)

	require.Equal(t, uint64(2), store.get("p1").Views)
}

func TestDistinctActorsEachCount(t *testing.T) {
	store := newFakeStore(&posts.Post{ID: "p1"})
	c := propCounter(store)

	ctx := context.Background()
	actors := []actor.Identity{
		actor.FromUser(34),
		actor.FromAddress("1.2.3.4"),
		actor.FromAddress("5.6.7.8"),
	}

	for _, a := range actors {
		_, err := c.RecordView(ctx, store.get("p1"), a)
		require.NoError(t, err)
	}

	require.Equal(t, uint64(3), store.get("p1").Views)
}

func TestConcurrentViewsSameActorCountOnce(t *testing.T) {
	store := newFakeStore(&posts.Post{ID: "p1"})
	c := propCounter(store)

	a := actor.FromAddress("1.2.3.4")
	ctx := context.Background()

	const m = 64
	var wg sync.WaitGroup
	wg.Add(m)
	for i := 0; i < m; i++ {
		go func() {
			defer wg.Done()
			_, err := c.RecordView(ctx, store.get("p1"), a)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(1), store.get("p1").Views)
}

func TestShareMonotonicity(t *testing.T) {
	store := newFakeStore(&posts.Post{ID: "p1"})
	c := propCounter(store)

	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		count, err := c.IncrementShare(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, uint64(i), count)
	}
}

// The end-to-end counter scenario: anonymous reader, signed-in reader,
// like toggle both ways, three shares.
func TestEngagementScenario(t *testing.T) {
	store := newFakeStore(&posts.Post{ID: "p1"})
	c := propCounter(store)

	ctx := context.Background()
	anon := actor.FromAddress("1.2.3.4")
	user := actor.FromUser(42)

	count, err := c.RecordView(ctx, store.get("p1"), anon)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	count, err = c.RecordView(ctx, store.get("p1"), anon)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	count, err = c.RecordView(ctx, store.get("p1"), user)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	res, err := c.ToggleLike(ctx, "p1", user)
	require.NoError(t, err)
	require.Equal(t, &LikeResult{Likes: 1, Liked: true}, res)

	res, err = c.ToggleLike(ctx, "p1", user)
	require.NoError(t, err)
	require.Equal(t, &LikeResult{Likes: 0, Liked: false}, res)

	for i := 0; i < 3; i++ {
		_, err = c.IncrementShare(ctx, "p1")
		require.NoError(t, err)
	}
	require.Equal(t, uint64(3), store.get("p1").Shares)
}
