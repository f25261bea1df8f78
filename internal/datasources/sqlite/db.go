package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// migrations is an ordered list of SQL migrations.
// Each migration runs exactly once, tracked by the schema_version table.
var migrations = []string{
	// Migration 1: initial schema
	`
CREATE TABLE IF NOT EXISTS articles (
	id TEXT PRIMARY KEY,
	slug TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	body TEXT NOT NULL,
	author_id TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at);
CREATE INDEX IF NOT EXISTS idx_articles_author_created_at ON articles(author_id, created_at);

CREATE TABLE IF NOT EXISTS comments (
	id TEXT PRIMARY KEY,
	article_id TEXT NOT NULL,
	body TEXT NOT NULL,
	author_id TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comments_article_created_at ON comments(article_id, created_at);

CREATE TABLE IF NOT EXISTS reactions (
	id TEXT PRIMARY KEY,
	subject_kind TEXT NOT NULL,
	subject_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	reaction_type TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	UNIQUE(subject_kind, subject_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_reactions_user ON reactions(user_id, subject_kind);

CREATE TABLE IF NOT EXISTS follows (
	follower_id TEXT NOT NULL,
	followee_id TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (follower_id, followee_id)
);
CREATE INDEX IF NOT EXISTS idx_follows_followee ON follows(followee_id);
`,
}

// Open opens (or creates) a SQLite database at path and brings its schema up to date.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite DB: %w", err)
	}

	// A single connection serialises writers, which the reaction toggle relies on.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if err := applySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func applySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		if _, err := db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
	}
	return nil
}

// uniqueIndexColumns maps table qualified unique index names to the column list
// SQLite reports when that index rejects a row.
var uniqueIndexColumns = map[string]string{
	"articles.uq_articles_slug":           "articles.slug",
	"reactions.uq_reactions_subject_user": "reactions.subject_kind, reactions.subject_id, reactions.user_id",
	"follows.PRIMARY":                     "follows.follower_id, follows.followee_id",
}

// IsUniqueViolation reports whether err was raised by the named unique index.
// Violations of any other constraint, including other keys on the same table, report false.
func IsUniqueViolation(err error, index string) bool {
	if err == nil {
		return false
	}
	columns, ok := uniqueIndexColumns[index]
	if !ok {
		return false
	}

	msg := err.Error()
	const prefix = "UNIQUE constraint failed: "
	i := strings.Index(msg, prefix)
	if i < 0 {
		return false
	}
	failed := msg[i+len(prefix):]
	// The driver appends the extended result code, e.g. " (2067)".
	if end := strings.Index(failed, " ("); end >= 0 {
		failed = failed[:end]
	}
	return strings.TrimSpace(failed) == columns
}
