package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
)

// PostRepository persists posts via GORM.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

// GetAll returns every post. No ordering is part of the contract; rows come
// back in whatever order the engine produces them.
func (r *PostRepository) GetAll(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

// Update overwrites title and content only.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{"title": post.Title, "content": post.Content})
	if res.Error != nil {
		return nil, fmt.Errorf("update post: %w", res.Error)
	}
	// RowsAffected is zero both for a missing row and for a no-op rewrite
	// with identical values, so existence comes from the re-read.
	return r.GetByID(ctx, post.ID)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
