package api

import (
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/google/uuid"
)

// Request DTOs

type CreateBlogPostRequest struct {
	Title       string     `json:"title" validate:"required"`
	Slug        string     `json:"slug" validate:"required"`
	Excerpt     string     `json:"excerpt" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	AuthorId    *uuid.UUID `json:"author_id,omitempty"`
	IsPublished bool       `json:"is_published"`
}

type UpdateBlogPostRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Slug        *string    `json:"slug,omitempty" validate:"omitempty,min=1"`
	Excerpt     *string    `json:"excerpt,omitempty" validate:"omitempty,min=1"`
	Content     *string    `json:"content,omitempty" validate:"omitempty,min=1"`
	AuthorId    *uuid.UUID `json:"author_id,omitempty"`
	IsPublished *bool      `json:"is_published,omitempty"`
}

// Response DTOs

// BlogPostResponse carries the post and its rendered, sanitized HTML body.
type BlogPostResponse struct {
	domain.BlogPost
	ContentHTML string `json:"content_html,omitempty"`
}

type BlogPostListResponse struct {
	Posts []domain.BlogPost `json:"posts"`
}
