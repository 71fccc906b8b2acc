package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
	"github.com/google/uuid"
)

const forumTopicColumns = "id, title, content, author_id, category_id, is_pinned, is_locked, reply_count, last_reply_at, created_at, updated_at"

// Pinned topics first, then by latest activity. A topic with no replies
// counts its creation as activity.
const forumTopicOrder = "is_pinned DESC, COALESCE(last_reply_at, created_at) DESC, id"

func scanForumTopic(sc scanner) (domain.ForumTopic, error) {
	var t domain.ForumTopic
	err := sc.Scan(&t.Id, &t.Title, &t.Content, &t.AuthorId, &t.CategoryId, &t.IsPinned, &t.IsLocked,
		&t.ReplyCount, &t.LastReplyAt, &t.CreatedAt, &t.UpdatedAt)
	utc(&t.CreatedAt)
	utc(&t.UpdatedAt)
	t.LastReplyAt = utcPtr(t.LastReplyAt)
	return t, err
}

// GetForumTopics lists topics, optionally limited to one category.
func (s *Storage) GetForumTopics(ctx context.Context, categoryId *uuid.UUID) ([]domain.ForumTopic, error) {
	query := "SELECT " + forumTopicColumns + " FROM forum_topics"
	var args []any
	if categoryId != nil {
		query += " WHERE category_id = $1"
		args = append(args, *categoryId)
	}
	query += " ORDER BY " + forumTopicOrder

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sharedpg.TranslateError("failed to query forum topics", err)
	}
	defer rows.Close()

	topics := []domain.ForumTopic{}
	for rows.Next() {
		t, err := scanForumTopic(rows)
		if err != nil {
			return nil, sharedpg.TranslateError("failed to scan forum topic", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, sharedpg.TranslateError("failed to iterate forum topics", err)
	}
	return topics, nil
}

func (s *Storage) GetForumTopic(ctx context.Context, id domain.TopicId) (domain.ForumTopic, bool, error) {
	t, err := scanForumTopic(s.db.QueryRowContext(ctx, "SELECT "+forumTopicColumns+" FROM forum_topics WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ForumTopic{}, false, nil
	}
	if err != nil {
		return domain.ForumTopic{}, false, sharedpg.TranslateError("failed to query forum topic", err)
	}
	return t, true, nil
}

// CreateForumTopic inserts the topic. A category, when given, must be active
// and stays share-locked until the insert commits.
func (s *Storage) CreateForumTopic(ctx context.Context, data domain.ForumTopicCreationData) (domain.ForumTopic, error) {
	var t domain.ForumTopic
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if data.CategoryId.Valid {
			if err := s.lockActiveCategory(ctx, tx, data.CategoryId.UUID); err != nil {
				return err
			}
		}
		now := s.timestamp()
		var err error
		t, err = scanForumTopic(tx.QueryRowContext(ctx,
			`INSERT INTO forum_topics(title, content, author_id, category_id, is_pinned, is_locked, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $7) RETURNING `+forumTopicColumns,
			data.Title, data.Content, data.AuthorId, data.CategoryId, data.IsPinned, data.IsLocked, now))
		if err != nil {
			return sharedpg.TranslateError("failed to insert forum topic", err)
		}
		return nil
	})
	if err != nil {
		return domain.ForumTopic{}, err
	}
	return t, nil
}

// lockActiveCategory holds a share lock on an active category for the rest
// of the transaction. Deactivation takes a row lock, so it waits for us or
// we see its result.
func (s *Storage) lockActiveCategory(ctx context.Context, q Querier, id domain.CategoryId) error {
	var one int
	err := q.QueryRowContext(ctx,
		"SELECT 1 FROM forum_categories WHERE id = $1 AND "+activeOnly("")+" FOR SHARE", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.BadRequest("Category does not exist")
	}
	if err != nil {
		return sharedpg.TranslateError("failed to lock forum category", err)
	}
	return nil
}

// UpdateForumTopic applies patch and always refreshes updated_at.
// reply_count and last_reply_at are owned by CreateForumReply.
func (s *Storage) UpdateForumTopic(ctx context.Context, id domain.TopicId, patch domain.ForumTopicUpdate) (domain.ForumTopic, bool, error) {
	var b setBuilder
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Content != nil {
		b.set("content", *patch.Content)
	}
	if patch.CategoryId != nil {
		b.set("category_id", *patch.CategoryId)
	}
	if patch.IsPinned != nil {
		b.set("is_pinned", *patch.IsPinned)
	}
	if patch.IsLocked != nil {
		b.set("is_locked", *patch.IsLocked)
	}

	var t domain.ForumTopic
	found := true
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if patch.CategoryId != nil {
			if err := s.lockActiveCategory(ctx, tx, *patch.CategoryId); err != nil {
				return err
			}
		}
		b.set("updated_at", s.timestamp())

		query, args := b.build("forum_topics", id, "")
		var err error
		t, err = scanForumTopic(tx.QueryRowContext(ctx, query+" RETURNING "+forumTopicColumns, args...))
		if errors.Is(err, sql.ErrNoRows) {
			found = false
			return nil
		}
		if err != nil {
			return sharedpg.TranslateError("failed to update forum topic", err)
		}
		return nil
	})
	if err != nil || !found {
		return domain.ForumTopic{}, false, err
	}
	return t, true, nil
}
