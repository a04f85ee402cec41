package feedapp

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/andreipy/hw05-final/internal/pagination"
	feedcachePort "github.com/andreipy/hw05-final/internal/ports/feedcache"
	followPort "github.com/andreipy/hw05-final/internal/ports/follow"
	groupPort "github.com/andreipy/hw05-final/internal/ports/group"
	postPort "github.com/andreipy/hw05-final/internal/ports/post"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

// Page is the fixed-size window handed to the presentation layer.
type Page = pagination.Page[postPort.PostDTO]

// FeedService resolves a feed scope into an ordered post sequence and slices it
// into pages. Only the home feed (every post, no filter) goes through the page
// cache; the other scopes always query the store.
type FeedService struct {
	PostRepository   postPort.PostRepository
	GroupRepository  groupPort.GroupRepository
	UserRepository   userPort.UserRepository
	FollowRepository followPort.FollowRepository
	Cache            feedcachePort.Cache

	flight   singleflight.Group
	pageSize int
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	followRepo followPort.FollowRepository,
	cache feedcachePort.Cache,
	pageSize int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *FeedService {
	return &FeedService{
		PostRepository:   postRepo,
		GroupRepository:  groupRepo,
		UserRepository:   userRepo,
		FollowRepository: followRepo,
		Cache:            cache,
		pageSize:         pageSize,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

// HomeFeed serves scope All through the page cache. Every viewer and every page
// number share the one cached sequence, so membership may lag the store by at
// most the TTL.
func (s *FeedService) HomeFeed(ctx context.Context, pageNumber int) (*Page, error) {
	posts, err := s.homePosts(ctx)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(posts, pageNumber, s.pageSize)
	return &page, nil
}

// homePosts returns the cached sequence, computing it at most once across
// concurrent cache-miss callers.
func (s *FeedService) homePosts(ctx context.Context) ([]postPort.PostDTO, error) {
	if cached, ok, err := s.Cache.Get(ctx); err != nil {
		// Cache trouble must not fail reads; fall through to the store.
		s.logger.Warn("home feed cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	v, err, _ := s.flight.Do(feedcachePort.HomeKey, func() (interface{}, error) {
		// A concurrent flight member may have filled the slot already.
		if cached, ok, err := s.Cache.Get(ctx); err == nil && ok {
			return cached, nil
		}

		entities, err := s.PostRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		posts := postPort.ToDTOs(entities)

		if err := s.Cache.Set(ctx, posts, s.cacheTTL); err != nil {
			s.logger.Warn("home feed cache write failed", zap.Error(err))
		}
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]postPort.PostDTO), nil
}

// GroupFeed fails with NotFound when the slug does not reference an existing
// group, even one with zero posts.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, pageNumber int) (*Page, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	entities, err := s.PostRepository.FindByGroupID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(postPort.ToDTOs(entities), pageNumber, s.pageSize)
	return &page, nil
}

// AuthorFeed fails with NotFound when the username is unknown.
func (s *FeedService) AuthorFeed(ctx context.Context, username string, pageNumber int) (*Page, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	entities, err := s.PostRepository.FindByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(postPort.ToDTOs(entities), pageNumber, s.pageSize)
	return &page, nil
}

// FollowingFeed is the union of posts by the follower's followed authors: an
// explicit two-step query against the follow graph and the post store. Zero
// follows yields an empty page, not an error.
func (s *FeedService) FollowingFeed(ctx context.Context, followerID uuid.UUID, pageNumber int) (*Page, error) {
	authorIDs, err := s.FollowRepository.FollowedAuthorIDs(ctx, followerID)
	if err != nil {
		return nil, err
	}

	var posts []postPort.PostDTO
	if len(authorIDs) > 0 {
		entities, err := s.PostRepository.FindByAuthorIDs(ctx, authorIDs)
		if err != nil {
			return nil, err
		}
		posts = postPort.ToDTOs(entities)
	}
	page := pagination.Paginate(posts, pageNumber, s.pageSize)
	return &page, nil
}

// ClearHomeCache drops the cached home feed immediately. The next HomeFeed call
// recomputes from the store.
func (s *FeedService) ClearHomeCache(ctx context.Context) error {
	return s.Cache.Clear(ctx)
}
