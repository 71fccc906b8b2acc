package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cosmiccommons/c3site/shared/domain"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
)

const blogPostColumns = "id, title, slug, excerpt, content, author_id, is_published, published_at, created_at, updated_at"

func scanBlogPost(sc scanner) (domain.BlogPost, error) {
	var p domain.BlogPost
	err := sc.Scan(&p.Id, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.AuthorId,
		&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	utc(&p.CreatedAt)
	utc(&p.UpdatedAt)
	p.PublishedAt = utcPtr(p.PublishedAt)
	return p, err
}

// GetBlogPosts lists posts newest first. A nil published returns every post.
func (s *Storage) GetBlogPosts(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	query := "SELECT " + blogPostColumns + " FROM blog_posts"
	var args []any
	if published != nil {
		query += " WHERE is_published = $1"
		args = append(args, *published)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sharedpg.TranslateError("failed to query blog posts", err)
	}
	defer rows.Close()

	posts := []domain.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, sharedpg.TranslateError("failed to scan blog post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, sharedpg.TranslateError("failed to iterate blog posts", err)
	}
	return posts, nil
}

func (s *Storage) GetBlogPost(ctx context.Context, slug domain.Slug) (domain.BlogPost, bool, error) {
	return s.getBlogPost(ctx, s.db, "slug", slug)
}

func (s *Storage) GetBlogPostByID(ctx context.Context, id domain.PostId) (domain.BlogPost, bool, error) {
	return s.getBlogPost(ctx, s.db, "id", id)
}

// CreateBlogPost inserts a post. Duplicate slugs surface as 409 from the
// unique constraint.
func (s *Storage) CreateBlogPost(ctx context.Context, data domain.BlogPostCreationData) (domain.BlogPost, error) {
	now := s.timestamp()
	var publishedAt *time.Time
	if data.IsPublished {
		publishedAt = &now
	}
	p, err := scanBlogPost(s.db.QueryRowContext(ctx,
		`INSERT INTO blog_posts(title, slug, excerpt, content, author_id, is_published, published_at, created_at, updated_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING `+blogPostColumns,
		data.Title, data.Slug, data.Excerpt, data.Content, data.AuthorId, data.IsPublished, publishedAt, now))
	if err != nil {
		return domain.BlogPost{}, sharedpg.TranslateError("failed to insert blog post", err)
	}
	return p, nil
}

// UpdateBlogPost applies patch and always refreshes updated_at. Publishing
// stamps published_at once; unpublishing clears it.
func (s *Storage) UpdateBlogPost(ctx context.Context, id domain.PostId, patch domain.BlogPostUpdate) (domain.BlogPost, bool, error) {
	now := s.timestamp()
	var b setBuilder
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Slug != nil {
		b.set("slug", *patch.Slug)
	}
	if patch.Excerpt != nil {
		b.set("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		b.set("content", *patch.Content)
	}
	if patch.AuthorId != nil {
		b.set("author_id", *patch.AuthorId)
	}
	if patch.IsPublished != nil {
		b.set("is_published", *patch.IsPublished)
		if *patch.IsPublished {
			b.setExpr("published_at", "COALESCE(published_at, %s)", now)
		} else {
			b.set("published_at", nil)
		}
	}
	b.set("updated_at", now)

	query, args := b.build("blog_posts", id, "")
	p, err := scanBlogPost(s.db.QueryRowContext(ctx, query+" RETURNING "+blogPostColumns, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BlogPost{}, false, nil
	}
	if err != nil {
		return domain.BlogPost{}, false, sharedpg.TranslateError("failed to update blog post", err)
	}
	return p, true, nil
}

// DeleteBlogPost removes the row and reports whether one existed.
func (s *Storage) DeleteBlogPost(ctx context.Context, id domain.PostId) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return false, sharedpg.TranslateError("failed to delete blog post", err)
	}
	return rowsAffected(res)
}

func (s *Storage) getBlogPost(ctx context.Context, q Querier, column string, value any) (domain.BlogPost, bool, error) {
	p, err := scanBlogPost(q.QueryRowContext(ctx, "SELECT "+blogPostColumns+" FROM blog_posts WHERE "+column+" = $1", value))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BlogPost{}, false, nil
	}
	if err != nil {
		return domain.BlogPost{}, false, sharedpg.TranslateError("failed to query blog post", err)
	}
	return p, true, nil
}
