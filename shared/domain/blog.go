package domain

import (
	"time"

	"github.com/google/uuid"
)

type BlogPostCreationData struct {
	Title       string
	Slug        Slug
	Excerpt     string
	Content     string
	AuthorId    uuid.NullUUID
	IsPublished bool
}

type BlogPostUpdate struct {
	Title       *string
	Slug        *Slug
	Excerpt     *string
	Content     *string
	AuthorId    *uuid.UUID
	IsPublished *bool
}

type BlogPost struct {
	Id          PostId        `json:"id"`
	Title       string        `json:"title"`
	Slug        Slug          `json:"slug"`
	Excerpt     string        `json:"excerpt"`
	Content     string        `json:"content"`
	AuthorId    uuid.NullUUID `json:"author_id"`
	IsPublished bool          `json:"is_published"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
