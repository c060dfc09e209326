package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
	"github.com/dbuhub/blog-admin-api/internal/core/ports"
)

// PostService implements ownership-checked CRUD over posts. Update and
// Delete both verify the acting user is the creator before touching
// storage.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) Create(ctx context.Context, title, content string, creatorID int64) (*domain.Post, error) {
	post, err := s.repo.Create(ctx, &domain.Post{
		Title:     title,
		Content:   content,
		CreatorID: creatorID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("creator_id", creatorID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("post_id", post.ID).Int64("creator_id", creatorID).Msg("post created")
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.GetAll(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites title and content. CreatorID and Timestamp survive
// unchanged. Fails with domain.ErrForbidden when actorID is not the
// creator.
func (s *PostService) Update(ctx context.Context, id int64, title, content string, actorID int64) (*domain.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.CreatorID != actorID {
		s.logger.Warn().Int64("post_id", id).Int64("actor_id", actorID).Msg("update denied: not the creator")
		return nil, domain.ErrForbidden
	}

	post.Title = title
	post.Content = content
	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Int64("post_id", id).Msg("failed to update post")
		return nil, err
	}
	return updated, nil
}

// Delete removes the post permanently. Fails with domain.ErrForbidden when
// actorID is not the creator.
func (s *PostService) Delete(ctx context.Context, id int64, actorID int64) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.CreatorID != actorID {
		s.logger.Warn().Int64("post_id", id).Int64("actor_id", actorID).Msg("delete denied: not the creator")
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("post_id", id).Msg("failed to delete post")
		return err
	}

	s.logger.Info().Int64("post_id", id).Int64("actor_id", actorID).Msg("post deleted")
	return nil
}
