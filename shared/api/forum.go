package api

import (
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/google/uuid"
)

// Request DTOs

type CreateForumCategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
}

type CreateForumTopicRequest struct {
	Title      string     `json:"title" validate:"required"`
	Content    string     `json:"content" validate:"required"`
	AuthorId   *uuid.UUID `json:"author_id,omitempty"`
	CategoryId *uuid.UUID `json:"category_id,omitempty"`
}

// UpdateForumTopicRequest is admin only, so it may also toggle pin and lock.
type UpdateForumTopicRequest struct {
	Title      *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Content    *string    `json:"content,omitempty" validate:"omitempty,min=1"`
	CategoryId *uuid.UUID `json:"category_id,omitempty"`
	IsPinned   *bool      `json:"is_pinned,omitempty"`
	IsLocked   *bool      `json:"is_locked,omitempty"`
}

type CreateForumReplyRequest struct {
	Content       string     `json:"content" validate:"required"`
	AuthorId      *uuid.UUID `json:"author_id,omitempty"`
	ParentReplyId *uuid.UUID `json:"parent_reply_id,omitempty"`
}

// Response DTOs

type ForumCategoryListResponse struct {
	Categories []domain.ForumCategory `json:"categories"`
}

type ForumTopicListResponse struct {
	Topics []domain.ForumTopic `json:"topics"`
}

type ForumReplyListResponse struct {
	Replies []domain.ForumReply `json:"replies"`
}
