// Package pg provides PostgreSQL primitives shared by storage layers.
//
//   - Querier: transaction-agnostic query interface
//   - Connect: connection pool setup
//   - WithTx: begin/commit/rollback helper
//   - TranslateError: maps constraint violations onto typed errors
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cosmiccommons/c3site/shared/config"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/lib/pq"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so internal storage
// methods work the same inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// DSN builds a lib/pq connection string from the pg section of the config.
func DSN(cfg config.Pg) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.Pg, connCfg ConnectionConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// WithTx runs fn inside a transaction. A non-nil error from fn rolls back,
// otherwise the transaction is committed.
//
//	err := pg.WithTx(ctx, db, func(tx *sql.Tx) error {
//	    return insertSomething(ctx, tx, data)
//	})
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// TranslateError turns unique and foreign-key violations into 409 and 400
// respectively. Other errors are wrapped with op.
func TranslateError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return internal_errors.Conflict(conflictMessage(pqErr))
		case foreignKeyViolation:
			return internal_errors.BadRequest(referenceMessage(pqErr))
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func conflictMessage(e *pq.Error) string {
	switch e.Constraint {
	case "users_username_key":
		return "Username already taken"
	case "blog_posts_slug_key":
		return "Slug already in use"
	}
	return "Already exists"
}

func referenceMessage(e *pq.Error) string {
	switch e.Constraint {
	case "blog_posts_author_id_fkey", "forum_topics_author_id_fkey", "forum_replies_author_id_fkey":
		return "Author does not exist"
	case "forum_topics_category_id_fkey":
		return "Category does not exist"
	case "forum_replies_topic_id_fkey":
		return "Topic does not exist"
	case "forum_replies_parent_reply_id_fkey":
		return "Parent reply does not exist"
	}
	return "Referenced entity does not exist"
}
