package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockBlogStorage struct {
	getBlogPostsFunc   func(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	getBlogPostFunc    func(ctx context.Context, slug domain.Slug) (domain.BlogPost, bool, error)
	createBlogPostFunc func(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error)
	updateBlogPostFunc func(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, bool, error)
	deleteBlogPostFunc func(ctx context.Context, id domain.PostId) (bool, error)
}

func (m *MockBlogStorage) GetBlogPosts(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	if m.getBlogPostsFunc != nil {
		return m.getBlogPostsFunc(ctx, published)
	}
	return nil, nil
}

func (m *MockBlogStorage) GetBlogPost(ctx context.Context, slug domain.Slug) (domain.BlogPost, bool, error) {
	if m.getBlogPostFunc != nil {
		return m.getBlogPostFunc(ctx, slug)
	}
	return domain.BlogPost{}, false, nil
}

func (m *MockBlogStorage) CreateBlogPost(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error) {
	if m.createBlogPostFunc != nil {
		return m.createBlogPostFunc(ctx, data)
	}
	return domain.BlogPost{}, nil
}

func (m *MockBlogStorage) UpdateBlogPost(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, bool, error) {
	if m.updateBlogPostFunc != nil {
		return m.updateBlogPostFunc(ctx, id, patch)
	}
	return domain.BlogPost{}, false, nil
}

func (m *MockBlogStorage) DeleteBlogPost(ctx context.Context, id domain.PostId) (bool, error) {
	if m.deleteBlogPostFunc != nil {
		return m.deleteBlogPostFunc(ctx, id)
	}
	return false, nil
}

type MockRenderer struct {
	renderFunc func(source string) (string, error)
}

func (m *MockRenderer) Render(source string) (string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(source)
	}
	return "<p>" + source + "</p>", nil
}

func TestBlogGetPublished(t *testing.T) {
	posts := map[string]domain.BlogPost{
		"live":  {Id: uuid.New(), Slug: "live", Content: "hello", IsPublished: true},
		"draft": {Id: uuid.New(), Slug: "draft", Content: "wip"},
	}
	storage := &MockBlogStorage{
		getBlogPostFunc: func(ctx context.Context, slug domain.Slug) (domain.BlogPost, bool, error) {
			p, ok := posts[slug]
			return p, ok, nil
		},
	}

	t.Run("published post is rendered", func(t *testing.T) {
		svc := NewBlog(storage, &MockRenderer{})
		post, html, err := svc.GetPublished(context.Background(), "live")
		require.NoError(t, err)
		assert.Equal(t, posts["live"], post)
		assert.Equal(t, "<p>hello</p>", html)
	})

	t.Run("draft is hidden", func(t *testing.T) {
		svc := NewBlog(storage, &MockRenderer{})
		_, _, err := svc.GetPublished(context.Background(), "draft")
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("missing post", func(t *testing.T) {
		svc := NewBlog(storage, &MockRenderer{})
		_, _, err := svc.GetPublished(context.Background(), "nope")
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("render failure", func(t *testing.T) {
		svc := NewBlog(storage, &MockRenderer{renderFunc: func(string) (string, error) { return "", errors.New("boom") }})
		_, _, err := svc.GetPublished(context.Background(), "live")
		require.Error(t, err)
		assert.False(t, internal_errors.IsNotFound(err))
	})
}

func TestBlogList_PassesFilter(t *testing.T) {
	var seen *bool
	svc := NewBlog(&MockBlogStorage{
		getBlogPostsFunc: func(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
			seen = published
			return []domain.BlogPost{}, nil
		},
	}, &MockRenderer{})

	published := true
	_, err := svc.List(context.Background(), &published)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.True(t, *seen)
}

func TestBlogUpdateAndDelete_NotFound(t *testing.T) {
	svc := NewBlog(&MockBlogStorage{}, &MockRenderer{})

	_, err := svc.Update(context.Background(), uuid.New(), domain.BlogPostUpdate{})
	assert.True(t, internal_errors.IsNotFound(err))

	err = svc.Delete(context.Background(), uuid.New())
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestBlogDelete(t *testing.T) {
	svc := NewBlog(&MockBlogStorage{
		deleteBlogPostFunc: func(ctx context.Context, id domain.PostId) (bool, error) { return true, nil },
	}, &MockRenderer{})

	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}
