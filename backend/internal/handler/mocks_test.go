package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/google/uuid"
)

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

type MockUserService struct {
	MockCreateUserWithPassword func(ctx context.Context, reg domain.Registration) (domain.User, error)
	MockGetUser                func(ctx context.Context, id domain.UserId) (domain.User, error)
}

func (m *MockUserService) CreateUserWithPassword(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if m.MockCreateUserWithPassword != nil {
		return m.MockCreateUserWithPassword(ctx, reg)
	}
	return domain.User{}, nil
}

func (m *MockUserService) CreateUser(ctx context.Context, cred domain.StoredCredential) (domain.User, error) {
	return domain.User{}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.MockGetUser != nil {
		return m.MockGetUser(ctx, id)
	}
	return domain.User{}, nil
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	return domain.User{}, nil
}

type MockContactService struct {
	MockCreate func(ctx context.Context, data domain.ContactCreationData) (domain.Contact, error)
	MockList   func(ctx context.Context) ([]domain.Contact, error)
}

func (m *MockContactService) Create(ctx context.Context, data domain.ContactCreationData) (domain.Contact, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Contact{}, nil
}

func (m *MockContactService) List(ctx context.Context) ([]domain.Contact, error) {
	if m.MockList != nil {
		return m.MockList(ctx)
	}
	return []domain.Contact{}, nil
}

type MockTeamService struct {
	MockList   func(ctx context.Context) ([]domain.TeamMember, error)
	MockCreate func(ctx context.Context, data domain.TeamMemberCreationData) (domain.TeamMember, error)
	MockUpdate func(ctx context.Context, id domain.MemberId, patch domain.TeamMemberUpdate) (domain.TeamMember, error)
	MockDelete func(ctx context.Context, id domain.MemberId) error
}

func (m *MockTeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	if m.MockList != nil {
		return m.MockList(ctx)
	}
	return []domain.TeamMember{}, nil
}

func (m *MockTeamService) Get(ctx context.Context, id domain.MemberId) (domain.TeamMember, error) {
	return domain.TeamMember{}, nil
}

func (m *MockTeamService) Create(ctx context.Context, data domain.TeamMemberCreationData) (domain.TeamMember, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.TeamMember{}, nil
}

func (m *MockTeamService) Update(ctx context.Context, id domain.MemberId, patch domain.TeamMemberUpdate) (domain.TeamMember, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(ctx, id, patch)
	}
	return domain.TeamMember{}, nil
}

func (m *MockTeamService) Delete(ctx context.Context, id domain.MemberId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id)
	}
	return nil
}

type MockBlogService struct {
	MockList         func(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	MockGetPublished func(ctx context.Context, slug domain.Slug) (domain.BlogPost, string, error)
	MockCreate       func(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error)
	MockUpdate       func(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, error)
	MockDelete       func(ctx context.Context, id domain.PostId) error
}

func (m *MockBlogService) List(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	if m.MockList != nil {
		return m.MockList(ctx, published)
	}
	return []domain.BlogPost{}, nil
}

func (m *MockBlogService) GetPublished(ctx context.Context, slug domain.Slug) (domain.BlogPost, string, error) {
	if m.MockGetPublished != nil {
		return m.MockGetPublished(ctx, slug)
	}
	return domain.BlogPost{}, "", nil
}

func (m *MockBlogService) Create(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.BlogPost{}, nil
}

func (m *MockBlogService) Update(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(ctx, id, patch)
	}
	return domain.BlogPost{}, nil
}

func (m *MockBlogService) Delete(ctx context.Context, id domain.PostId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id)
	}
	return nil
}

type MockForumService struct {
	MockCategories         func(ctx context.Context) ([]domain.ForumCategory, error)
	MockCreateCategory     func(ctx context.Context, data domain.ForumCategoryCreationData) (domain.ForumCategory, error)
	MockDeactivateCategory func(ctx context.Context, id domain.CategoryId) error
	MockTopics             func(ctx context.Context, categoryId *uuid.UUID) ([]domain.ForumTopic, error)
	MockTopic              func(ctx context.Context, id domain.TopicId) (domain.ForumTopic, error)
	MockCreateTopic        func(ctx context.Context, data domain.ForumTopicCreationData) (domain.ForumTopic, error)
	MockUpdateTopic        func(ctx context.Context, id domain.TopicId, patch domain.ForumTopicUpdate) (domain.ForumTopic, error)
	MockReplies            func(ctx context.Context, topicId domain.TopicId) ([]domain.ForumReply, error)
	MockCreateReply        func(ctx context.Context, data domain.ForumReplyCreationData) (domain.ForumReply, error)
}

func (m *MockForumService) Categories(ctx context.Context) ([]domain.ForumCategory, error) {
	if m.MockCategories != nil {
		return m.MockCategories(ctx)
	}
	return []domain.ForumCategory{}, nil
}

func (m *MockForumService) CreateCategory(ctx context.Context, data domain.ForumCategoryCreationData) (domain.ForumCategory, error) {
	if m.MockCreateCategory != nil {
		return m.MockCreateCategory(ctx, data)
	}
	return domain.ForumCategory{}, nil
}

func (m *MockForumService) DeactivateCategory(ctx context.Context, id domain.CategoryId) error {
	if m.MockDeactivateCategory != nil {
		return m.MockDeactivateCategory(ctx, id)
	}
	return nil
}

func (m *MockForumService) Topics(ctx context.Context, categoryId *uuid.UUID) ([]domain.ForumTopic, error) {
	if m.MockTopics != nil {
		return m.MockTopics(ctx, categoryId)
	}
	return []domain.ForumTopic{}, nil
}

func (m *MockForumService) Topic(ctx context.Context, id domain.TopicId) (domain.ForumTopic, error) {
	if m.MockTopic != nil {
		return m.MockTopic(ctx, id)
	}
	return domain.ForumTopic{}, nil
}

func (m *MockForumService) CreateTopic(ctx context.Context, data domain.ForumTopicCreationData) (domain.ForumTopic, error) {
	if m.MockCreateTopic != nil {
		return m.MockCreateTopic(ctx, data)
	}
	return domain.ForumTopic{}, nil
}

func (m *MockForumService) UpdateTopic(ctx context.Context, id domain.TopicId, patch domain.ForumTopicUpdate) (domain.ForumTopic, error) {
	if m.MockUpdateTopic != nil {
		return m.MockUpdateTopic(ctx, id, patch)
	}
	return domain.ForumTopic{}, nil
}

func (m *MockForumService) Replies(ctx context.Context, topicId domain.TopicId) ([]domain.ForumReply, error) {
	if m.MockReplies != nil {
		return m.MockReplies(ctx, topicId)
	}
	return []domain.ForumReply{}, nil
}

func (m *MockForumService) CreateReply(ctx context.Context, data domain.ForumReplyCreationData) (domain.ForumReply, error) {
	if m.MockCreateReply != nil {
		return m.MockCreateReply(ctx, data)
	}
	return domain.ForumReply{}, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
