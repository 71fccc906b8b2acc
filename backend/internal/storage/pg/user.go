package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cosmiccommons/c3site/shared/domain"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
)

const userColumns = "id, username, password_hash, created_at"

func (s *Storage) GetUser(ctx context.Context, id domain.UserId) (domain.User, bool, error) {
	return s.getUser(ctx, s.db, "id", id)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, bool, error) {
	return s.getUser(ctx, s.db, "username", username)
}

// CreateUser persists a credential. Storage only ever sees the hash.
func (s *Storage) CreateUser(ctx context.Context, cred domain.StoredCredential) (domain.User, error) {
	return s.createUser(ctx, s.db, cred)
}

func (s *Storage) getUser(ctx context.Context, q Querier, column string, value any) (domain.User, bool, error) {
	var u domain.User
	err := q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+column+" = $1", value).
		Scan(&u.Id, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, sharedpg.TranslateError("failed to query user", err)
	}
	utc(&u.CreatedAt)
	return u, true, nil
}

func (s *Storage) createUser(ctx context.Context, q Querier, cred domain.StoredCredential) (domain.User, error) {
	u := domain.User{Username: cred.Username, PasswordHash: cred.PasswordHash, CreatedAt: s.timestamp()}
	err := q.QueryRowContext(ctx,
		"INSERT INTO users(username, password_hash, created_at) VALUES($1, $2, $3) RETURNING id",
		u.Username, u.PasswordHash, u.CreatedAt).Scan(&u.Id)
	if err != nil {
		return domain.User{}, sharedpg.TranslateError("failed to insert user", err)
	}
	return u, nil
}
