package handler

import (
	"time"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
)

type postRequest struct {
	Title   string `json:"title"   form:"title"   validate:"required,max=255"`
	Content string `json:"content" form:"content" validate:"required"`
}

// creatorResponse exposes only the creator's id, matching the public post
// representation.
type creatorResponse struct {
	ID int64 `json:"id"`
}

type postResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Creator   creatorResponse `json:"creator"`
	Timestamp time.Time       `json:"timestamp"`
}

type deletedResponse struct {
	Detail string `json:"detail"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Creator:   creatorResponse{ID: p.CreatorID},
		Timestamp: p.Timestamp,
	}
}
