package service

import (
	"context"
	"fmt"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
)

type BlogService interface {
	List(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	GetPublished(ctx context.Context, slug domain.Slug) (domain.BlogPost, string, error)
	Create(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error)
	Update(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, error)
	Delete(ctx context.Context, id domain.PostId) error
}

type BlogStorage interface {
	GetBlogPosts(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	GetBlogPost(ctx context.Context, slug domain.Slug) (domain.BlogPost, bool, error)
	CreateBlogPost(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, bool, error)
	DeleteBlogPost(ctx context.Context, id domain.PostId) (bool, error)
}

type MarkdownRenderer interface {
	Render(source string) (string, error)
}

type Blog struct {
	storage  BlogStorage
	renderer MarkdownRenderer
}

func NewBlog(storage BlogStorage, renderer MarkdownRenderer) *Blog {
	return &Blog{storage: storage, renderer: renderer}
}

func (b *Blog) List(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	return b.storage.GetBlogPosts(ctx, published)
}

// GetPublished returns a published post and its rendered HTML. Drafts are
// reported as missing.
func (b *Blog) GetPublished(ctx context.Context, slug domain.Slug) (domain.BlogPost, string, error) {
	post, found, err := b.storage.GetBlogPost(ctx, slug)
	if err != nil {
		return domain.BlogPost{}, "", err
	}
	if !found || !post.IsPublished {
		return domain.BlogPost{}, "", internal_errors.NotFound("Post not found")
	}

	html, err := b.renderer.Render(post.Content)
	if err != nil {
		return domain.BlogPost{}, "", fmt.Errorf("failed to render post %s: %w", post.Slug, err)
	}
	return post, html, nil
}

func (b *Blog) Create(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error) {
	return b.storage.CreateBlogPost(ctx, data)
}

func (b *Blog) Update(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, error) {
	post, found, err := b.storage.UpdateBlogPost(ctx, id, patch)
	if err != nil {
		return domain.BlogPost{}, err
	}
	if !found {
		return domain.BlogPost{}, internal_errors.NotFound("Post not found")
	}
	return post, nil
}

func (b *Blog) Delete(ctx context.Context, id domain.PostId) error {
	deleted, err := b.storage.DeleteBlogPost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return internal_errors.NotFound("Post not found")
	}
	return nil
}
