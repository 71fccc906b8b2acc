package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cosmiccommons/c3site/shared/domain"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
)

const teamMemberColumns = "id, name, title, bio, image_url, linkedin_url, twitter_url, is_active, display_order, created_at"

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTeamMember(sc scanner) (domain.TeamMember, error) {
	var m domain.TeamMember
	err := sc.Scan(&m.Id, &m.Name, &m.Title, &m.Bio, &m.ImageUrl, &m.LinkedinUrl, &m.TwitterUrl,
		&m.IsActive, &m.DisplayOrder, &m.CreatedAt)
	utc(&m.CreatedAt)
	return m, err
}

// GetTeamMembers lists active members by display order.
func (s *Storage) GetTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+teamMemberColumns+" FROM team_members WHERE "+activeOnly("")+" ORDER BY display_order ASC, created_at ASC")
	if err != nil {
		return nil, sharedpg.TranslateError("failed to query team members", err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, sharedpg.TranslateError("failed to scan team member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, sharedpg.TranslateError("failed to iterate team members", err)
	}
	return members, nil
}

func (s *Storage) GetTeamMember(ctx context.Context, id domain.MemberId) (domain.TeamMember, bool, error) {
	return s.getTeamMember(ctx, s.db, id)
}

func (s *Storage) CreateTeamMember(ctx context.Context, data domain.TeamMemberCreationData) (domain.TeamMember, error) {
	m, err := scanTeamMember(s.db.QueryRowContext(ctx,
		`INSERT INTO team_members(name, title, bio, image_url, linkedin_url, twitter_url, display_order, created_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+teamMemberColumns,
		data.Name, data.Title, data.Bio, data.ImageUrl, data.LinkedinUrl, data.TwitterUrl, data.DisplayOrder, s.timestamp()))
	if err != nil {
		return domain.TeamMember{}, sharedpg.TranslateError("failed to insert team member", err)
	}
	return m, nil
}

// UpdateTeamMember applies the non-nil fields of patch. Soft-deleted members
// are treated as missing.
func (s *Storage) UpdateTeamMember(ctx context.Context, id domain.MemberId, patch domain.TeamMemberUpdate) (domain.TeamMember, bool, error) {
	var b setBuilder
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Bio != nil {
		b.set("bio", *patch.Bio)
	}
	if patch.ImageUrl != nil {
		b.set("image_url", *patch.ImageUrl)
	}
	if patch.LinkedinUrl != nil {
		b.set("linkedin_url", *patch.LinkedinUrl)
	}
	if patch.TwitterUrl != nil {
		b.set("twitter_url", *patch.TwitterUrl)
	}
	if patch.DisplayOrder != nil {
		b.set("display_order", *patch.DisplayOrder)
	}
	// team_members has no updated_at, so an empty patch is a plain read
	if b.empty() {
		return s.getTeamMember(ctx, s.db, id)
	}

	query, args := b.build("team_members", id, activeOnly(""))
	m, err := scanTeamMember(s.db.QueryRowContext(ctx, query+" RETURNING "+teamMemberColumns, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TeamMember{}, false, nil
	}
	if err != nil {
		return domain.TeamMember{}, false, sharedpg.TranslateError("failed to update team member", err)
	}
	return m, true, nil
}

// DeleteTeamMember flips is_active. It reports false when no active row
// matched, so deleting twice reports false the second time.
func (s *Storage) DeleteTeamMember(ctx context.Context, id domain.MemberId) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE team_members SET is_active = FALSE WHERE id = $1 AND "+activeOnly(""), id)
	if err != nil {
		return false, sharedpg.TranslateError("failed to deactivate team member", err)
	}
	return rowsAffected(res)
}

func (s *Storage) getTeamMember(ctx context.Context, q Querier, id domain.MemberId) (domain.TeamMember, bool, error) {
	m, err := scanTeamMember(q.QueryRowContext(ctx,
		"SELECT "+teamMemberColumns+" FROM team_members WHERE id = $1 AND "+activeOnly(""), id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TeamMember{}, false, nil
	}
	if err != nil {
		return domain.TeamMember{}, false, sharedpg.TranslateError("failed to query team member", err)
	}
	return m, true, nil
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
