package feedapp

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andreipy/hw05-final/internal/apperr"
	followEntity "github.com/andreipy/hw05-final/internal/core/follow"
	groupEntity "github.com/andreipy/hw05-final/internal/core/group"
	postEntity "github.com/andreipy/hw05-final/internal/core/post"
	userEntity "github.com/andreipy/hw05-final/internal/core/user"
	postPort "github.com/andreipy/hw05-final/internal/ports/post"
)

// ---- in-memory fakes over the outbound ports ----

type fakePostRepo struct {
	mu           sync.Mutex
	posts        []*postEntity.Post
	nextID       uint64
	findAllCalls int32
	findAllDelay time.Duration
}

func (f *fakePostRepo) add(author userEntity.User, groupID *uint64, text string, createdAt time.Time) *postEntity.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := &postEntity.Post{
		ID:        f.nextID,
		Text:      text,
		AuthorID:  author.ID,
		Author:    author,
		GroupID:   groupID,
		CreatedAt: createdAt,
	}
	f.posts = append(f.posts, p)
	return p
}

// remove simulates a delete performed directly against the store, bypassing
// any cache.
func (f *fakePostRepo) remove(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.posts[:0]
	for _, p := range f.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.posts = kept
}

func feedSorted(posts []*postEntity.Post) []*postEntity.Post {
	out := make([]*postEntity.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakePostRepo) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return nil, errors.New("not used")
}

func (f *fakePostRepo) Update(ctx context.Context, id uint64, upd postPort.PostUpdate) error {
	return errors.New("not used")
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uint64) (*postEntity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("post %d", id)
}

func (f *fakePostRepo) FindAll(ctx context.Context) ([]*postEntity.Post, error) {
	atomic.AddInt32(&f.findAllCalls, 1)
	if f.findAllDelay > 0 {
		time.Sleep(f.findAllDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return feedSorted(f.posts), nil
}

func (f *fakePostRepo) FindByGroupID(ctx context.Context, groupID uint64) ([]*postEntity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*postEntity.Post
	for _, p := range f.posts {
		if p.GroupID != nil && *p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return feedSorted(out), nil
}

func (f *fakePostRepo) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*postEntity.Post, error) {
	return f.FindByAuthorIDs(ctx, []uuid.UUID{authorID})
}

func (f *fakePostRepo) FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*postEntity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := make(map[uuid.UUID]bool, len(authorIDs))
	for _, id := range authorIDs {
		set[id] = true
	}
	var out []*postEntity.Post
	for _, p := range f.posts {
		if set[p.AuthorID] {
			out = append(out, p)
		}
	}
	return feedSorted(out), nil
}

type fakeGroupRepo struct {
	groups map[string]*groupEntity.Group
}

func (f *fakeGroupRepo) Create(ctx context.Context, g *groupEntity.Group) (*groupEntity.Group, error) {
	f.groups[g.Slug] = g
	return g, nil
}

func (f *fakeGroupRepo) FindBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	if g, ok := f.groups[slug]; ok {
		return g, nil
	}
	return nil, apperr.NotFound("group %q", slug)
}

type fakeUserRepo struct {
	users map[string]*userEntity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *userEntity.User) (*userEntity.User, error) {
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user %s", id)
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*userEntity.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("user %q", username)
}

type fakeFollowRepo struct {
	mu    sync.Mutex
	edges map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (f *fakeFollowRepo) follow(followerID, authorID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.edges[followerID] == nil {
		f.edges[followerID] = make(map[uuid.UUID]bool)
	}
	f.edges[followerID][authorID] = true
}

func (f *fakeFollowRepo) FollowedAuthorIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []uuid.UUID
	for id := range f.edges[followerID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeFollowRepo) Follow(ctx context.Context, fe *followEntity.Follow) error {
	f.follow(fe.FollowerID, fe.AuthorID)
	return nil
}

func (f *fakeFollowRepo) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[followerID][authorID], nil
}

func (f *fakeFollowRepo) Unfollow(ctx context.Context, followerID, authorID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.edges[followerID], authorID)
	return nil
}

type fakeCache struct {
	mu     sync.Mutex
	posts  []postPort.PostDTO
	filled bool
	expiry time.Time
}

func (f *fakeCache) Get(ctx context.Context) ([]postPort.PostDTO, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.filled || time.Now().After(f.expiry) {
		return nil, false, nil
	}
	return f.posts, true, nil
}

func (f *fakeCache) Set(ctx context.Context, posts []postPort.PostDTO, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = posts
	f.filled = true
	f.expiry = time.Now().Add(ttl)
	return nil
}

func (f *fakeCache) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filled = false
	f.posts = nil
	return nil
}

// ---- test fixture ----

type fixture struct {
	posts   *fakePostRepo
	groups  *fakeGroupRepo
	users   *fakeUserRepo
	follows *fakeFollowRepo
	cache   *fakeCache
	svc     *FeedService
}

func newFixture(t *testing.T, ttl time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		posts:   &fakePostRepo{},
		groups:  &fakeGroupRepo{groups: make(map[string]*groupEntity.Group)},
		users:   &fakeUserRepo{users: make(map[string]*userEntity.User)},
		follows: newFakeFollowRepo(),
		cache:   &fakeCache{},
	}
	f.svc = NewFeedService(f.posts, f.groups, f.users, f.follows, f.cache, 10, ttl, zap.NewNop())
	return f
}

func (f *fixture) newUser(username string) userEntity.User {
	u := userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: username, Name: username}
	f.users.users[username] = &u
	return u
}

func assertFeedOrder(t *testing.T, items []postPort.PostDTO) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			assert.Greater(t, prev.ID, cur.ID, "ties must fall back to descending id")
		} else {
			assert.True(t, prev.CreatedAt.After(cur.CreatedAt), "feed must be newest first")
		}
	}
}

// ---- tests ----

func TestHomeFeedOrdering(t *testing.T) {
	f := newFixture(t, time.Minute)
	author := f.newUser("leo")

	base := time.Now().Add(-time.Hour)
	// Deliberately out of order, with a three-way timestamp tie.
	f.posts.add(author, nil, "second", base.Add(2*time.Minute))
	f.posts.add(author, nil, "first", base.Add(1*time.Minute))
	f.posts.add(author, nil, "tie a", base.Add(3*time.Minute))
	f.posts.add(author, nil, "tie b", base.Add(3*time.Minute))
	f.posts.add(author, nil, "tie c", base.Add(3*time.Minute))

	page, err := f.svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 5, page.TotalCount)
	assertFeedOrder(t, page.Items)
	// The tied posts come back in reverse insertion order.
	assert.Equal(t, "tie c", page.Items[0].Text)
	assert.Equal(t, "tie b", page.Items[1].Text)
	assert.Equal(t, "tie a", page.Items[2].Text)
}

func TestHomeFeedClampsPageNumber(t *testing.T) {
	f := newFixture(t, time.Minute)
	author := f.newUser("leo")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		f.posts.add(author, nil, "post", base.Add(time.Duration(i)*time.Minute))
	}

	page, err := f.svc.HomeFeed(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 3, len(page.Items))
	assert.False(t, page.HasNext)
}

func TestHomeFeedServesStaleCacheUntilClearOrExpiry(t *testing.T) {
	f := newFixture(t, 150*time.Millisecond)
	author := f.newUser("leo")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		f.posts.add(author, nil, "post", base.Add(time.Duration(i)*time.Minute))
	}
	doomed := f.posts.add(author, nil, "doomed", base.Add(13*time.Minute))

	page, err := f.svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 13, page.TotalCount)

	// Deleted straight from the store; the cached sequence must not notice.
	f.posts.remove(doomed.ID)

	page, err = f.svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 13, page.TotalCount, "count stays stale within the TTL window")
	assert.Equal(t, "doomed", page.Items[0].Text, "membership stays stale within the TTL window")

	// Explicit invalidation takes effect immediately.
	require.NoError(t, f.svc.ClearHomeCache(context.Background()))
	page, err = f.svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, page.TotalCount)

	// And so does TTL expiry.
	extra := f.posts.add(author, nil, "fresh", base.Add(14*time.Minute))
	page, _ = f.svc.HomeFeed(context.Background(), 1)
	assert.Equal(t, 12, page.TotalCount, "new post hidden while cached")
	time.Sleep(200 * time.Millisecond)
	page, err = f.svc.HomeFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 13, page.TotalCount)
	assert.Equal(t, extra.ID, page.Items[0].ID)
}

func TestHomeFeedComputesOnceUnderConcurrency(t *testing.T) {
	f := newFixture(t, time.Minute)
	author := f.newUser("leo")
	f.posts.add(author, nil, "only", time.Now())
	f.posts.findAllDelay = 30 * time.Millisecond

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := f.svc.HomeFeed(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, 1, page.TotalCount)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.posts.findAllCalls),
		"concurrent cold readers must share a single store query")
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	f := newFixture(t, time.Minute)

	_, err := f.svc.GroupFeed(context.Background(), "no-such-group", 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGroupFeedScoping(t *testing.T) {
	f := newFixture(t, time.Minute)
	author := f.newUser("leo")
	g1 := &groupEntity.Group{ID: 1, Slug: "g1", Title: "G1"}
	g2 := &groupEntity.Group{ID: 2, Slug: "g2", Title: "G2"}
	f.groups.groups["g1"] = g1
	f.groups.groups["g2"] = g2

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		f.posts.add(author, &g1.ID, "in g1", base.Add(time.Duration(i)*time.Minute))
	}

	page, err := f.svc.GroupFeed(context.Background(), "g1", 1)
	require.NoError(t, err)
	assert.Equal(t, 13, page.TotalCount)
	assert.Equal(t, 10, len(page.Items))
	assertFeedOrder(t, page.Items)

	// An existing but empty group is an empty page, not an error.
	page, err = f.svc.GroupFeed(context.Background(), "g2", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalCount)
	assert.False(t, page.HasNext)
}

func TestAuthorFeedUnknownUsername(t *testing.T) {
	f := newFixture(t, time.Minute)

	_, err := f.svc.AuthorFeed(context.Background(), "nobody", 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAuthorFeedFiltersByAuthor(t *testing.T) {
	f := newFixture(t, time.Minute)
	leo := f.newUser("leo")
	ann := f.newUser("ann")

	base := time.Now().Add(-time.Hour)
	f.posts.add(leo, nil, "by leo", base.Add(1*time.Minute))
	f.posts.add(ann, nil, "by ann", base.Add(2*time.Minute))
	f.posts.add(leo, nil, "by leo again", base.Add(3*time.Minute))

	page, err := f.svc.AuthorFeed(context.Background(), "leo", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	for _, item := range page.Items {
		assert.Equal(t, "leo", item.Author.Username)
	}
}

func TestFollowingFeedIsolation(t *testing.T) {
	f := newFixture(t, time.Minute)
	a := f.newUser("a")
	u := f.newUser("u")
	v := f.newUser("v")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		f.posts.add(a, nil, "by a", base.Add(time.Duration(i)*time.Minute))
	}
	f.follows.follow(u.ID, a.ID)

	page, err := f.svc.FollowingFeed(context.Background(), u.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 13, page.TotalCount)
	assert.Equal(t, 10, len(page.Items))
	for _, item := range page.Items {
		assert.Equal(t, "a", item.Author.Username)
	}
	assert.True(t, page.HasNext)

	// A non-follower sees an empty page, not an error.
	page, err = f.svc.FollowingFeed(context.Background(), v.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalCount)
	assert.Empty(t, page.Items)
}
