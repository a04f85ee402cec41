package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPostsPerPage = 10
	defaultFeedCacheTTL = 20 * time.Second
)

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("DB_DSN") == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	if os.Getenv("REDIS_ADDR") == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}

	if os.Getenv("JWT_SECRET") == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
}

// PostsPerPage is the fixed page size for every feed. Callers never override it
// per request.
func PostsPerPage() int {
	n, err := strconv.Atoi(os.Getenv("POSTS_PER_PAGE"))
	if err != nil || n <= 0 {
		return defaultPostsPerPage
	}
	return n
}

// FeedCacheTTL bounds how long the home feed may be served stale.
func FeedCacheTTL() time.Duration {
	sec, err := strconv.Atoi(os.Getenv("FEED_CACHE_TTL_SECONDS"))
	if err != nil || sec <= 0 {
		return defaultFeedCacheTTL
	}
	return time.Duration(sec) * time.Second
}
