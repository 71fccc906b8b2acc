package domain

import (
	"time"

	"github.com/google/uuid"
)

type ForumCategoryCreationData struct {
	Name         string
	Description  string
	DisplayOrder int
}

type ForumCategory struct {
	Id           CategoryId `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"display_order"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ForumTopicCreationData struct {
	Title      string
	Content    string
	AuthorId   uuid.NullUUID
	CategoryId uuid.NullUUID
	IsPinned   bool
	IsLocked   bool
}

type ForumTopicUpdate struct {
	Title      *string
	Content    *string
	CategoryId *uuid.UUID
	IsPinned   *bool
	IsLocked   *bool
}

// ForumTopic.ReplyCount is maintained in the same transaction that inserts a reply.
type ForumTopic struct {
	Id          TopicId       `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	AuthorId    uuid.NullUUID `json:"author_id"`
	CategoryId  uuid.NullUUID `json:"category_id"`
	IsPinned    bool          `json:"is_pinned"`
	IsLocked    bool          `json:"is_locked"`
	ReplyCount  int           `json:"reply_count"`
	LastReplyAt *time.Time    `json:"last_reply_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ForumReplyCreationData struct {
	Content       string
	AuthorId      uuid.NullUUID
	TopicId       TopicId
	ParentReplyId uuid.NullUUID
}

type ForumReply struct {
	Id            ReplyId       `json:"id"`
	Content       string        `json:"content"`
	AuthorId      uuid.NullUUID `json:"author_id"`
	TopicId       TopicId       `json:"topic_id"`
	ParentReplyId uuid.NullUUID `json:"parent_reply_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
