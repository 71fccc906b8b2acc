package service

import (
	"context"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/cosmiccommons/c3site/shared/logger"
	"github.com/google/uuid"
)

type ForumService interface {
	Categories(ctx context.Context) ([]domain.ForumCategory, error)
	CreateCategory(ctx context.Context, data domain.ForumCategoryCreationData) (domain.ForumCategory, error)
	DeactivateCategory(ctx context.Context, id domain.CategoryId) error

	Topics(ctx context.Context, categoryId *uuid.UUID) ([]domain.ForumTopic, error)
	Topic(ctx context.Context, id domain.TopicId) (domain.ForumTopic, error)
	CreateTopic(ctx context.Context, data domain.ForumTopicCreationData) (domain.ForumTopic, error)
	UpdateTopic(ctx context.Context, id domain.TopicId, patch domain.ForumTopicUpdate) (domain.ForumTopic, error)

	Replies(ctx context.Context, topicId domain.TopicId) ([]domain.ForumReply, error)
	CreateReply(ctx context.Context, data domain.ForumReplyCreationData) (domain.ForumReply, error)
}

type ForumStorage interface {
	GetForumCategories(ctx context.Context) ([]domain.ForumCategory, error)
	GetForumCategory(ctx context.Context, id domain.CategoryId) (domain.ForumCategory, bool, error)
	CreateForumCategory(ctx context.Context, data domain.ForumCategoryCreationData) (domain.ForumCategory, error)
	DeactivateForumCategory(ctx context.Context, id domain.CategoryId) (bool, error)

	GetForumTopics(ctx context.Context, categoryId *uuid.UUID) ([]domain.ForumTopic, error)
	GetForumTopic(ctx context.Context, id domain.TopicId) (domain.ForumTopic, bool, error)
	CreateForumTopic(ctx context.Context, data domain.ForumTopicCreationData) (domain.ForumTopic, error)
	UpdateForumTopic(ctx context.Context, id domain.TopicId, patch domain.ForumTopicUpdate) (domain.ForumTopic, bool, error)

	GetForumReplies(ctx context.Context, topicId domain.TopicId) ([]domain.ForumReply, error)
	CreateForumReply(ctx context.Context, data domain.ForumReplyCreationData) (domain.ForumReply, error)
}

type Forum struct {
	storage ForumStorage
}

func NewForum(storage ForumStorage) *Forum {
	return &Forum{storage: storage}
}

func (f *Forum) Categories(ctx context.Context) ([]domain.ForumCategory, error) {
	return f.storage.GetForumCategories(ctx)
}

func (f *Forum) CreateCategory(ctx context.Context, data domain.ForumCategoryCreationData) (domain.ForumCategory, error) {
	return f.storage.CreateForumCategory(ctx, data)
}

func (f *Forum) DeactivateCategory(ctx context.Context, id domain.CategoryId) error {
	ok, err := f.storage.DeactivateForumCategory(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return internal_errors.NotFound("Category not found")
	}
	return nil
}

func (f *Forum) Topics(ctx context.Context, categoryId *uuid.UUID) ([]domain.ForumTopic, error) {
	return f.storage.GetForumTopics(ctx, categoryId)
}

func (f *Forum) Topic(ctx context.Context, id domain.TopicId) (domain.ForumTopic, error) {
	topic, found, err := f.storage.GetForumTopic(ctx, id)
	if err != nil {
		return domain.ForumTopic{}, err
	}
	if !found {
		return domain.ForumTopic{}, internal_errors.NotFound("Topic not found")
	}
	return topic, nil
}

// CreateTopic rejects topics filed under a missing or deactivated category.
func (f *Forum) CreateTopic(ctx context.Context, data domain.ForumTopicCreationData) (domain.ForumTopic, error) {
	if data.CategoryId.Valid {
		if err := f.requireActiveCategory(ctx, data.CategoryId.UUID); err != nil {
			return domain.ForumTopic{}, err
		}
	}
	topic, err := f.storage.CreateForumTopic(ctx, data)
	if err != nil {
		return domain.ForumTopic{}, err
	}
	logger.Log.Debug("topic created", "topic_id", topic.Id)
	return topic, nil
}

func (f *Forum) UpdateTopic(ctx context.Context, id domain.TopicId, patch domain.ForumTopicUpdate) (domain.ForumTopic, error) {
	if patch.CategoryId != nil {
		if err := f.requireActiveCategory(ctx, *patch.CategoryId); err != nil {
			return domain.ForumTopic{}, err
		}
	}
	topic, found, err := f.storage.UpdateForumTopic(ctx, id, patch)
	if err != nil {
		return domain.ForumTopic{}, err
	}
	if !found {
		return domain.ForumTopic{}, internal_errors.NotFound("Topic not found")
	}
	return topic, nil
}

// Replies lists a topic's replies oldest first; an unknown topic is 404
// rather than an empty thread.
func (f *Forum) Replies(ctx context.Context, topicId domain.TopicId) ([]domain.ForumReply, error) {
	if _, err := f.Topic(ctx, topicId); err != nil {
		return nil, err
	}
	return f.storage.GetForumReplies(ctx, topicId)
}

func (f *Forum) CreateReply(ctx context.Context, data domain.ForumReplyCreationData) (domain.ForumReply, error) {
	reply, err := f.storage.CreateForumReply(ctx, data)
	if err != nil {
		return domain.ForumReply{}, err
	}
	logger.Log.Debug("reply created", "reply_id", reply.Id, "topic_id", reply.TopicId)
	return reply, nil
}

func (f *Forum) requireActiveCategory(ctx context.Context, id domain.CategoryId) error {
	_, found, err := f.storage.GetForumCategory(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return internal_errors.BadRequest("Category does not exist")
	}
	return nil
}
