package groupapp

import (
	"context"
	"errors"
	"strings"

	"github.com/andreipy/hw05-final/internal/apperr"
	groupEntity "github.com/andreipy/hw05-final/internal/core/group"
	groupPort "github.com/andreipy/hw05-final/internal/ports/group"
)

// GroupService creates and resolves groups.
type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) Create(ctx context.Context, slug, title, description string) (*groupPort.GroupDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" || strings.TrimSpace(title) == "" {
		return nil, apperr.InvalidInput("group slug and title are required")
	}

	if _, err := s.GroupRepository.FindBySlug(ctx, slug); err == nil {
		return nil, apperr.InvalidInput("group slug %q already taken", slug)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	return &groupPort.GroupDTO{
		Slug:        g.Slug,
		Title:       g.Title,
		Description: g.Description,
	}, nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &groupPort.GroupDTO{
		Slug:        g.Slug,
		Title:       g.Title,
		Description: g.Description,
	}, nil
}
