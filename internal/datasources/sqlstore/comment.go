package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

var commentColumns = []string{
	"c.id", "c.article_id", "c.body", "c.author_id", "c.created_at", "c.updated_at",
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var c domain.Comment
	var createdAt, updatedAt int64
	if err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.Body,
		&c.Author.UserID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return domain.Comment{}, err
	}
	c.CreatedAt = time.UnixMilli(createdAt).UTC()
	c.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return c, nil
}

func (r *Repository) ListCommentPage(
	ctx context.Context,
	articleID string,
	page domain.PageRequest,
) ([]domain.Comment, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(commentColumns...)
	sb.From("comments c")
	applyKeyset(sb, []string{sb.Equal("c.article_id", articleID)}, "c.created_at", "c.id", page)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running comment page query: %w", err)
	}
	defer closeRows(rows)

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *Repository) FetchComment(ctx context.Context, commentID string) (*domain.Comment, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(commentColumns...)
	sb.From("comments c")
	sb.Where(sb.Equal("c.id", commentID))

	query, args := sb.Build()
	c, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching comment: %w", err)
	}
	return &c, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment domain.Comment) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("comments")
	ib.Cols("id", "article_id", "body", "author_id", "created_at", "updated_at")
	ib.Values(
		comment.ID,
		comment.ArticleID,
		comment.Body,
		comment.Author.UserID,
		comment.CreatedAt.UnixMilli(),
		comment.UpdatedAt.UnixMilli(),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}
