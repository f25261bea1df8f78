package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

var articleColumns = []string{
	"a.id", "a.slug", "a.title", "a.description", "a.body", "a.author_id", "a.created_at", "a.updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var a domain.Article
	var createdAt, updatedAt int64
	if err := row.Scan(
		&a.ID,
		&a.Slug,
		&a.Title,
		&a.Description,
		&a.Body,
		&a.Author.UserID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return domain.Article{}, err
	}
	a.CreatedAt = time.UnixMilli(createdAt).UTC()
	a.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return a, nil
}

func (r *Repository) ListArticlePage(
	ctx context.Context,
	filter domain.ArticleFilter,
	page domain.PageRequest,
) ([]domain.Article, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles a")

	var conds []string
	if filter.AuthorID != "" {
		conds = append(conds, sb.Equal("a.author_id", filter.AuthorID))
	}
	if filter.FollowedBy != "" {
		sb.Join("follows f", "f.followee_id = a.author_id")
		conds = append(conds, sb.Equal("f.follower_id", filter.FollowedBy))
	}
	applyKeyset(sb, conds, "a.created_at", "a.id", page)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running article page query: %w", err)
	}
	defer closeRows(rows)

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning articles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *Repository) FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles a")
	sb.Where(sb.Equal("a.slug", slug))

	query, args := sb.Build()
	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching article by slug: %w", err)
	}
	return &a, nil
}

func (r *Repository) CreateArticle(ctx context.Context, article domain.Article) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("articles")
	ib.Cols("id", "slug", "title", "description", "body", "author_id", "created_at", "updated_at")
	ib.Values(
		article.ID,
		article.Slug,
		article.Title,
		article.Description,
		article.Body,
		article.Author.UserID,
		article.CreatedAt.UnixMilli(),
		article.UpdatedAt.UnixMilli(),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.dialect.IsUniqueViolation(err, IndexArticleSlug) {
			return fmt.Errorf("inserting article [%s]: %w", article.Slug, domain.ErrArticleExists)
		}
		return fmt.Errorf("inserting article: %w", err)
	}
	return nil
}
