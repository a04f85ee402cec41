package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	feedcachePort "github.com/andreipy/hw05-final/internal/ports/feedcache"
	postPort "github.com/andreipy/hw05-final/internal/ports/post"
)

// FeedCacheRedis stores the home feed sequence as JSON under the single
// constant key, with the TTL enforced by redis itself (SET ... EX).
type FeedCacheRedis struct {
	Client *redis.Client
}

func NewFeedCacheRedis(client *redis.Client) *FeedCacheRedis {
	return &FeedCacheRedis{Client: client}
}

func (r *FeedCacheRedis) Get(ctx context.Context) ([]postPort.PostDTO, bool, error) {
	raw, err := r.Client.Get(ctx, feedcachePort.HomeKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var posts []postPort.PostDTO
	if err := json.Unmarshal(raw, &posts); err != nil {
		// A corrupt slot is treated as a miss so the next compute overwrites it.
		return nil, false, err
	}
	return posts, true, nil
}

func (r *FeedCacheRedis) Set(ctx context.Context, posts []postPort.PostDTO, ttl time.Duration) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, feedcachePort.HomeKey, raw, ttl).Err()
}

func (r *FeedCacheRedis) Clear(ctx context.Context) error {
	return r.Client.Del(ctx, feedcachePort.HomeKey).Err()
}
