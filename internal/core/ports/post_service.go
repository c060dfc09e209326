package ports

import (
	"context"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
)

// PostService defines use-case operations for posts. Mutations take the
// acting user's id and enforce ownership before touching storage.
type PostService interface {
	Create(ctx context.Context, title, content string, creatorID int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, title, content string, actorID int64) (*domain.Post, error)
	Delete(ctx context.Context, id int64, actorID int64) error
}
