package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
)

const forumReplyColumns = "id, content, author_id, topic_id, parent_reply_id, created_at, updated_at"

func scanForumReply(sc scanner) (domain.ForumReply, error) {
	var r domain.ForumReply
	err := sc.Scan(&r.Id, &r.Content, &r.AuthorId, &r.TopicId, &r.ParentReplyId, &r.CreatedAt, &r.UpdatedAt)
	utc(&r.CreatedAt)
	utc(&r.UpdatedAt)
	return r, err
}

// GetForumReplies returns a topic's replies in thread order.
func (s *Storage) GetForumReplies(ctx context.Context, topicId domain.TopicId) ([]domain.ForumReply, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+forumReplyColumns+" FROM forum_replies WHERE topic_id = $1 ORDER BY created_at ASC, id", topicId)
	if err != nil {
		return nil, sharedpg.TranslateError("failed to query forum replies", err)
	}
	defer rows.Close()

	replies := []domain.ForumReply{}
	for rows.Next() {
		r, err := scanForumReply(rows)
		if err != nil {
			return nil, sharedpg.TranslateError("failed to scan forum reply", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, sharedpg.TranslateError("failed to iterate forum replies", err)
	}
	return replies, nil
}

// CreateForumReply inserts the reply and bumps its topic in one transaction.
// A missing topic is 404 and a locked one 409; in both cases nothing is
// written. A parent reply must exist and belong to the same topic.
func (s *Storage) CreateForumReply(ctx context.Context, data domain.ForumReplyCreationData) (domain.ForumReply, error) {
	var reply domain.ForumReply
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.lockOpenTopic(ctx, tx, data.TopicId); err != nil {
			return err
		}
		if data.ParentReplyId.Valid {
			if err := s.checkParentReply(ctx, tx, data); err != nil {
				return err
			}
		}

		now := s.timestamp()
		var err error
		reply, err = s.insertForumReply(ctx, tx, data, now)
		if err != nil {
			return err
		}
		return s.bumpTopic(ctx, tx, data.TopicId, now)
	})
	if err != nil {
		return domain.ForumReply{}, err
	}
	return reply, nil
}

// lockOpenTopic takes a row lock on the topic so concurrent replies
// serialise their reply_count increments.
func (s *Storage) lockOpenTopic(ctx context.Context, q Querier, topicId domain.TopicId) error {
	var locked bool
	err := q.QueryRowContext(ctx, "SELECT is_locked FROM forum_topics WHERE id = $1 FOR UPDATE", topicId).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound("Topic not found")
	}
	if err != nil {
		return sharedpg.TranslateError("failed to lock forum topic", err)
	}
	if locked {
		return internal_errors.Conflict("Topic is locked")
	}
	return nil
}

func (s *Storage) checkParentReply(ctx context.Context, q Querier, data domain.ForumReplyCreationData) error {
	var parentTopic domain.TopicId
	err := q.QueryRowContext(ctx, "SELECT topic_id FROM forum_replies WHERE id = $1", data.ParentReplyId.UUID).Scan(&parentTopic)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound("Parent reply not found")
	}
	if err != nil {
		return sharedpg.TranslateError("failed to query parent reply", err)
	}
	if parentTopic != data.TopicId {
		return internal_errors.BadRequest("Parent reply belongs to a different topic")
	}
	return nil
}

func (s *Storage) insertForumReply(ctx context.Context, q Querier, data domain.ForumReplyCreationData, now time.Time) (domain.ForumReply, error) {
	r, err := scanForumReply(q.QueryRowContext(ctx,
		`INSERT INTO forum_replies(content, author_id, topic_id, parent_reply_id, created_at, updated_at)
		 VALUES($1, $2, $3, $4, $5, $5) RETURNING `+forumReplyColumns,
		data.Content, data.AuthorId, data.TopicId, data.ParentReplyId, now))
	if err != nil {
		return domain.ForumReply{}, sharedpg.TranslateError("failed to insert forum reply", err)
	}
	return r, nil
}

func (s *Storage) bumpTopic(ctx context.Context, q Querier, topicId domain.TopicId, now time.Time) error {
	res, err := q.ExecContext(ctx,
		"UPDATE forum_topics SET last_reply_at = $1, reply_count = reply_count + 1 WHERE id = $2", now, topicId)
	if err != nil {
		return sharedpg.TranslateError("failed to bump forum topic", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return sharedpg.TranslateError("failed to bump forum topic", err)
	}
	if !ok {
		return internal_errors.NotFound("Topic not found")
	}
	return nil
}
