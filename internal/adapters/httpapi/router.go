package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/adapters/httpapi/middleware"
	"github.com/andreipy/hw05-final/internal/pagination"
	commentPort "github.com/andreipy/hw05-final/internal/ports/comment"
	groupPort "github.com/andreipy/hw05-final/internal/ports/group"
	postPort "github.com/andreipy/hw05-final/internal/ports/post"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

// Inbound ports: what the controllers need from the use-case layer.

type UserUseCase interface {
	Register(ctx context.Context, name, username, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, text, groupSlug, image string) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, postID uint64, editorID uuid.UUID, text, groupSlug, image string) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*postPort.PostDTO, []commentPort.CommentDTO, error)
	AddComment(ctx context.Context, postID uint64, authorID uuid.UUID, text string) (*commentPort.CommentDTO, error)
}

type FeedUseCase interface {
	HomeFeed(ctx context.Context, pageNumber int) (*pagination.Page[postPort.PostDTO], error)
	GroupFeed(ctx context.Context, slug string, pageNumber int) (*pagination.Page[postPort.PostDTO], error)
	AuthorFeed(ctx context.Context, username string, pageNumber int) (*pagination.Page[postPort.PostDTO], error)
	FollowingFeed(ctx context.Context, followerID uuid.UUID, pageNumber int) (*pagination.Page[postPort.PostDTO], error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, followerID uuid.UUID, username string) error
	Unfollow(ctx context.Context, followerID uuid.UUID, username string) error
	IsFollowing(ctx context.Context, followerID uuid.UUID, username string) (bool, error)
}

type GroupUseCase interface {
	Create(ctx context.Context, slug, title, description string) (*groupPort.GroupDTO, error)
	GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error)
}

// SetupRoutes wires the controllers; use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	feedUC FeedUseCase,
	followUC FollowUseCase,
	groupUC GroupUseCase,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	fc := NewFeedController(feedUC, followUC)
	flc := NewFollowController(followUC)
	gc := NewGroupController(groupUC)

	auth := middleware.JWTAuth(jwtSecret)
	optionalAuth := middleware.JWTOptional(jwtSecret)

	r.POST("/register", uc.Register)
	r.POST("/login", uc.Login)

	// Public feeds; ?page=N, absent or non-numeric means page 1.
	r.GET("/feed", fc.HomeFeed)
	r.GET("/group/:slug", fc.GroupFeed)
	r.GET("/profile/:username", optionalAuth, fc.AuthorFeed)
	r.GET("/posts/:id", pc.GetPost)

	// Personalized feed and writes require a session.
	r.GET("/follow", auth, fc.FollowingFeed)
	r.POST("/posts", auth, pc.CreatePost)
	r.PUT("/posts/:id", auth, pc.EditPost)
	r.POST("/posts/:id/comments", auth, pc.AddComment)
	r.POST("/profile/:username/follow", auth, flc.Follow)
	r.POST("/profile/:username/unfollow", auth, flc.Unfollow)
	r.POST("/groups", auth, gc.Create)

	return r
}
