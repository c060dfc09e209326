package ports

import (
	"context"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// GetAll returns every post in storage order; no ordering is guaranteed.
	GetAll(ctx context.Context) ([]*domain.Post, error)
	// GetByID returns domain.ErrPostNotFound when no post has that id.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	// Update overwrites title and content in place. CreatorID and Timestamp
	// are never altered.
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
