package datasources

import (
	"context"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ArticlePageLister is the row source for article feeds.
// It returns up to page.QueryLimit() articles strictly past the cursor:
// newest first for next, oldest first for prev.
type ArticlePageLister interface {
	ListArticlePage(
		ctx context.Context,
		filter domain.ArticleFilter,
		page domain.PageRequest,
	) ([]domain.Article, error)
}

// ArticleBySlugFetcher returns nil, nil when no article has the slug.
type ArticleBySlugFetcher interface {
	FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
}

type ArticleCreator interface {
	CreateArticle(ctx context.Context, article domain.Article) error
}
