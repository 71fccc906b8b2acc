package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/cosmiccommons/c3site/shared/config"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/logger"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
	_ "github.com/lib/pq"
)

//go:embed migrations/init.sql
var schema string

// Querier lets internal methods run against the pool or a transaction.
type Querier = sharedpg.Querier

// Storage is the only component that reads or writes persistent state.
type Storage struct {
	db  *sql.DB
	now func() time.Time
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened pool.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db, now: time.Now}
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Storage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}

// timestamp is the storage clock: UTC, at postgres precision.
func (s *Storage) timestamp() time.Time {
	return domain.Timestamp(s.now())
}

// activeOnly is the soft-delete filter. Every read of team members and
// forum categories goes through it.
func activeOnly(alias string) string {
	if alias == "" {
		return "is_active"
	}
	return alias + ".is_active"
}

// setBuilder accumulates "col = $n" assignments for partial updates.
type setBuilder struct {
	assignments []string
	args        []any
}

func (b *setBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// setExpr is set with the placeholder substituted into expr at %s.
func (b *setBuilder) setExpr(column, expr string, value any) {
	b.args = append(b.args, value)
	placeholder := fmt.Sprintf("$%d", len(b.args))
	b.assignments = append(b.assignments, fmt.Sprintf("%s = "+expr, column, placeholder))
}

func (b *setBuilder) empty() bool {
	return len(b.assignments) == 0
}

// build returns "UPDATE table SET ... WHERE id = $n [AND extra]" and its args.
func (b *setBuilder) build(table string, id any, extra string) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(b.assignments, ", "), len(args))
	if extra != "" {
		query += " AND " + extra
	}
	return query, args
}

func utc(t *time.Time) {
	*t = t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
