package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cosmiccommons/c3site/shared/domain"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
)

const forumCategoryColumns = "id, name, description, display_order, is_active, created_at"

func scanForumCategory(sc scanner) (domain.ForumCategory, error) {
	var c domain.ForumCategory
	err := sc.Scan(&c.Id, &c.Name, &c.Description, &c.DisplayOrder, &c.IsActive, &c.CreatedAt)
	utc(&c.CreatedAt)
	return c, err
}

// GetForumCategories lists active categories by display order.
func (s *Storage) GetForumCategories(ctx context.Context) ([]domain.ForumCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+forumCategoryColumns+" FROM forum_categories WHERE "+activeOnly("")+" ORDER BY display_order ASC, created_at ASC")
	if err != nil {
		return nil, sharedpg.TranslateError("failed to query forum categories", err)
	}
	defer rows.Close()

	categories := []domain.ForumCategory{}
	for rows.Next() {
		c, err := scanForumCategory(rows)
		if err != nil {
			return nil, sharedpg.TranslateError("failed to scan forum category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, sharedpg.TranslateError("failed to iterate forum categories", err)
	}
	return categories, nil
}

func (s *Storage) GetForumCategory(ctx context.Context, id domain.CategoryId) (domain.ForumCategory, bool, error) {
	c, err := scanForumCategory(s.db.QueryRowContext(ctx,
		"SELECT "+forumCategoryColumns+" FROM forum_categories WHERE id = $1 AND "+activeOnly(""), id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ForumCategory{}, false, nil
	}
	if err != nil {
		return domain.ForumCategory{}, false, sharedpg.TranslateError("failed to query forum category", err)
	}
	return c, true, nil
}

func (s *Storage) CreateForumCategory(ctx context.Context, data domain.ForumCategoryCreationData) (domain.ForumCategory, error) {
	c, err := scanForumCategory(s.db.QueryRowContext(ctx,
		`INSERT INTO forum_categories(name, description, display_order, created_at)
		 VALUES($1, $2, $3, $4) RETURNING `+forumCategoryColumns,
		data.Name, data.Description, data.DisplayOrder, s.timestamp()))
	if err != nil {
		return domain.ForumCategory{}, sharedpg.TranslateError("failed to insert forum category", err)
	}
	return c, nil
}

// DeactivateForumCategory soft-deletes a category. Topics keep their
// category_id.
func (s *Storage) DeactivateForumCategory(ctx context.Context, id domain.CategoryId) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE forum_categories SET is_active = FALSE WHERE id = $1 AND "+activeOnly(""), id)
	if err != nil {
		return false, sharedpg.TranslateError("failed to deactivate forum category", err)
	}
	return rowsAffected(res)
}
