package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

var _ datasources.Repository = (*Repository)(nil)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Unique indexes the repository maps to domain errors, qualified by table.
const (
	IndexArticleSlug         = "articles.uq_articles_slug"
	IndexReactionSubjectUser = "reactions.uq_reactions_subject_user"
	IndexFollowPair          = "follows.PRIMARY"
)

// Dialect holds the driver specific behaviour of a Repository.
type Dialect struct {
	Flavor sqlbuilder.Flavor
	// IsUniqueViolation reports whether err was raised by the named unique index.
	IsUniqueViolation func(err error, index string) bool
	// IsLockConflict reports whether err means a concurrent transaction won a lock race.
	// Optional.
	IsLockConflict func(err error) bool
	// LockRows makes the reaction lookup inside InReactionTx take a row lock.
	LockRows bool
}

func (d Dialect) isLockConflict(err error) bool {
	return d.IsLockConflict != nil && d.IsLockConflict(err)
}

// Repository implements every datasource interface on top of a SQL database.
// Queries are built with go-sqlbuilder so the same code serves MySQL and SQLite.
type Repository struct {
	db      *sql.DB
	flavor  sqlbuilder.Flavor
	dialect Dialect
}

// New creates a Repository over db using the given dialect.
func New(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{db: db, flavor: dialect.Flavor, dialect: dialect}
}

// applyKeyset restricts sb to rows strictly past the page cursor on column, orders
// them for the page direction and applies the over-fetch limit.
func applyKeyset(sb *sqlbuilder.SelectBuilder, conds []string, column, tieBreaker string,
	page domain.PageRequest,
) {
	if page.Cursor != nil {
		if page.IsNext() {
			conds = append(conds, sb.LessThan(column, page.Cursor.Millis()))
		} else {
			conds = append(conds, sb.GreaterThan(column, page.Cursor.Millis()))
		}
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	if page.IsNext() {
		sb.OrderBy(column+" DESC", tieBreaker+" DESC")
	} else {
		sb.OrderBy(column+" ASC", tieBreaker+" ASC")
	}
	sb.Limit(page.QueryLimit())
}

func toArgs(values []string) []any {
	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}

func closeRows(rows *sql.Rows) {
	if closeErr := rows.Close(); closeErr != nil {
		_ = closeErr // The iteration error, if any, is reported by rows.Err.
	}
}

func checkRows(rows *sql.Rows) error {
	if err := rows.Close(); err != nil {
		return fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}
