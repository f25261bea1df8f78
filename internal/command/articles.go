package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ArticleEnricher attaches viewer-dependent data to article pages.
type ArticleEnricher struct {
	Reactions *ReactionAggregator
	Follows   datasources.FollowedAuthorsLister
}

// Enrich fills reactions and author follow state for articles in place, one batch per concern.
func (e *ArticleEnricher) Enrich(ctx context.Context, articles []domain.Article, viewerID string) error {
	if err := EnrichReactions(ctx, e.Reactions, domain.SubjectKindArticle, articles, viewerID); err != nil {
		return fmt.Errorf("enriching article reactions: %w", err)
	}
	if err := EnrichFollowing(ctx, e.Follows, articles, viewerID); err != nil {
		return fmt.Errorf("enriching article authors: %w", err)
	}
	return nil
}

// ListArticlesRequest selects one keyset page of articles as seen by ViewerID.
type ListArticlesRequest struct {
	Filter   domain.ArticleFilter
	Page     domain.PageRequest
	ViewerID string
}

// ListArticles returns one keyset page of articles, newest first.
type ListArticles struct {
	Lister   datasources.ArticlePageLister
	Enricher *ArticleEnricher
}

// Execute fetches one page and enriches only the items that will be returned.
func (c *ListArticles) Execute(
	ctx context.Context,
	req ListArticlesRequest,
) (domain.PagedResult[domain.Article], error) {
	rows, err := c.Lister.ListArticlePage(ctx, req.Filter, req.Page)
	if err != nil {
		return domain.PagedResult[domain.Article]{}, fmt.Errorf("listing articles: %w", err)
	}

	page := domain.Paginate(rows, req.Page)
	if err := c.Enricher.Enrich(ctx, page.Items, req.ViewerID); err != nil {
		return domain.PagedResult[domain.Article]{}, err
	}

	return page, nil
}

// GetArticleRequest fetches a single article by slug as seen by ViewerID.
type GetArticleRequest struct {
	Slug     string
	ViewerID string
}

// GetArticle returns nil when no article has the slug.
type GetArticle struct {
	Fetcher  datasources.ArticleBySlugFetcher
	Enricher *ArticleEnricher
}

// Execute returns the enriched article, or nil when no article has the slug.
func (c *GetArticle) Execute(ctx context.Context, req GetArticleRequest) (*domain.Article, error) {
	article, err := c.Fetcher.FetchArticleBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("fetching article: %w", err)
	}
	if article == nil {
		return nil, nil
	}

	articles := []domain.Article{*article}
	if err := c.Enricher.Enrich(ctx, articles, req.ViewerID); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

// CreateArticle stores a new article under a slug derived from its title.
type CreateArticle struct {
	Creator datasources.ArticleCreator
	Now     func() time.Time
	NewID   func() string
}

// NewCreateArticle creates a CreateArticle using wall clock time and random UUIDs.
func NewCreateArticle(creator datasources.ArticleCreator) *CreateArticle {
	return &CreateArticle{
		Creator: creator,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

// Execute stores the article. A taken slug fails with domain.ErrArticleExists.
func (c *CreateArticle) Execute(ctx context.Context, req domain.NewArticle) (domain.Article, error) {
	id := c.NewID()
	articleSlug := slug.Make(req.Title)
	if articleSlug == "" {
		articleSlug = id
	}

	// Stored timestamps have millisecond precision; truncate so the returned
	// article matches what a later read sees.
	now := c.Now().UTC().Truncate(time.Millisecond)
	article := domain.Article{
		ID:          id,
		Slug:        articleSlug,
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Author:      domain.Profile{UserID: req.AuthorID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.Creator.CreateArticle(ctx, article); err != nil {
		return domain.Article{}, fmt.Errorf("creating article: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "created article",
		"article_id", article.ID, "slug", article.Slug)
	return article, nil
}
