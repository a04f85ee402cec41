package main

import (
	"os"

	"go.uber.org/zap"

	dbadapter "github.com/andreipy/hw05-final/internal/adapters/database"
	"github.com/andreipy/hw05-final/internal/adapters/httpapi"
	redisadapter "github.com/andreipy/hw05-final/internal/adapters/redis"
	"github.com/andreipy/hw05-final/internal/config"
	"github.com/andreipy/hw05-final/internal/core/comment"
	feedapp "github.com/andreipy/hw05-final/internal/core/feed/service"
	"github.com/andreipy/hw05-final/internal/core/follow"
	followapp "github.com/andreipy/hw05-final/internal/core/follow/service"
	"github.com/andreipy/hw05-final/internal/core/group"
	groupapp "github.com/andreipy/hw05-final/internal/core/group/service"
	"github.com/andreipy/hw05-final/internal/core/post"
	postapp "github.com/andreipy/hw05-final/internal/core/post/service"
	"github.com/andreipy/hw05-final/internal/core/user"
	userapp "github.com/andreipy/hw05-final/internal/core/user/service"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follow.Follow{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	// Outbound adapters.
	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(config.DB)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(config.DB)
	followRepo := dbadapter.NewFollowRepositoryDatabase(config.DB)
	feedCache := redisadapter.NewFeedCacheRedis(config.RedisClient)

	// Use cases.
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	userSvc := userapp.NewUserService(userRepo, jwtSecret)
	postSvc := postapp.NewPostService(postRepo, groupRepo, commentRepo)
	groupSvc := groupapp.NewGroupService(groupRepo)
	followSvc := followapp.NewFollowService(followRepo, userRepo)
	feedSvc := feedapp.NewFeedService(
		postRepo, groupRepo, userRepo, followRepo, feedCache,
		config.PostsPerPage(), config.FeedCacheTTL(), config.Logger,
	)

	r := httpapi.SetupRoutes(userSvc, postSvc, feedSvc, followSvc, groupSvc, jwtSecret)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
