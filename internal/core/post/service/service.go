package postapp

import (
	"context"
	"strings"

	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/apperr"
	commentEntity "github.com/andreipy/hw05-final/internal/core/comment"
	postEntity "github.com/andreipy/hw05-final/internal/core/post"
	commentPort "github.com/andreipy/hw05-final/internal/ports/comment"
	groupPort "github.com/andreipy/hw05-final/internal/ports/group"
	postPort "github.com/andreipy/hw05-final/internal/ports/post"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

// PostService owns post and comment writes plus single-post reads. Feed reads
// live in the feed service.
type PostService struct {
	PostRepository    postPort.PostRepository
	GroupRepository   groupPort.GroupRepository
	CommentRepository commentPort.CommentRepository
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	commentRepo commentPort.CommentRepository,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		GroupRepository:   groupRepo,
		CommentRepository: commentRepo,
	}
}

// CreatePost persists a new post. groupSlug and image are optional; an empty
// groupSlug means no group. The creation timestamp and id are assigned by the
// store and never change afterwards.
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, text, groupSlug, image string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.InvalidInput("post text must not be empty")
	}

	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		Text:     text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    image,
	})
	if err != nil {
		return nil, err
	}

	// Re-read so the DTO carries the author and group relations.
	stored, err := s.PostRepository.FindByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	dto := postPort.ToDTO(stored)
	return &dto, nil
}

// EditPost replaces the mutable fields (text, group, image) in one write.
// Only the owning author may edit; anyone else gets Forbidden and the post is
// left untouched.
func (s *PostService) EditPost(ctx context.Context, postID uint64, editorID uuid.UUID, text, groupSlug, image string) (*postPort.PostDTO, error) {
	stored, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if stored.AuthorID != editorID {
		return nil, apperr.Forbidden("post %d belongs to another author", postID)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.InvalidInput("post text must not be empty")
	}

	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	if err := s.PostRepository.Update(ctx, postID, postPort.PostUpdate{
		Text:    text,
		GroupID: groupID,
		Image:   image,
	}); err != nil {
		return nil, err
	}

	updated, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	dto := postPort.ToDTO(updated)
	return &dto, nil
}

// GetPost returns one post with its comments, oldest comment first.
func (s *PostService) GetPost(ctx context.Context, postID uint64) (*postPort.PostDTO, []commentPort.CommentDTO, error) {
	stored, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	dto := postPort.ToDTO(stored)
	return &dto, toCommentDTOs(comments), nil
}

// AddComment attaches a comment to an existing post. Comments are immutable
// once created.
func (s *PostService) AddComment(ctx context.Context, postID uint64, authorID uuid.UUID, text string) (*commentPort.CommentDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.InvalidInput("comment text must not be empty")
	}

	// The post must exist before the write.
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	created, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	})
	if err != nil {
		return nil, err
	}
	dto := toCommentDTO(created)
	return &dto, nil
}

func (s *PostService) resolveGroup(ctx context.Context, slug string) (*uint64, error) {
	if slug == "" {
		return nil, nil
	}
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &g.ID, nil
}

func toCommentDTO(c *commentEntity.Comment) commentPort.CommentDTO {
	return commentPort.CommentDTO{
		ID:     c.ID,
		PostID: c.PostID,
		Author: userPort.UserDTO{
			ID:       c.AuthorID.String(),
			Username: c.Author.Username,
			Name:     c.Author.Name,
		},
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentDTOs(comments []*commentEntity.Comment) []commentPort.CommentDTO {
	dtos := make([]commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return dtos
}
