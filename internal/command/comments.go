package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// CommentEnricher attaches viewer-dependent data to comment pages.
type CommentEnricher struct {
	Reactions *ReactionAggregator
	Follows   datasources.FollowedAuthorsLister
}

// Enrich fills reactions and author follow state for comments in place, one batch per concern.
func (e *CommentEnricher) Enrich(ctx context.Context, comments []domain.Comment, viewerID string) error {
	if err := EnrichReactions(ctx, e.Reactions, domain.SubjectKindComment, comments, viewerID); err != nil {
		return fmt.Errorf("enriching comment reactions: %w", err)
	}
	if err := EnrichFollowing(ctx, e.Follows, comments, viewerID); err != nil {
		return fmt.Errorf("enriching comment authors: %w", err)
	}
	return nil
}

// ListCommentsRequest selects one keyset page of an article's comments.
type ListCommentsRequest struct {
	ArticleSlug string
	Page        domain.PageRequest
	ViewerID    string
}

// ListComments returns one keyset page of an article's comments, newest first.
type ListComments struct {
	ArticleFetcher datasources.ArticleBySlugFetcher
	Lister         datasources.CommentPageLister
	Enricher       *CommentEnricher
}

// Execute resolves the article slug, then fetches and enriches one page of comments.
func (c *ListComments) Execute(
	ctx context.Context,
	req ListCommentsRequest,
) (domain.PagedResult[domain.Comment], error) {
	article, err := c.ArticleFetcher.FetchArticleBySlug(ctx, req.ArticleSlug)
	if err != nil {
		return domain.PagedResult[domain.Comment]{}, fmt.Errorf("fetching article: %w", err)
	}
	if article == nil {
		return domain.PagedResult[domain.Comment]{},
			fmt.Errorf("article [%s]: %w", req.ArticleSlug, domain.ErrNotFound)
	}

	rows, err := c.Lister.ListCommentPage(ctx, article.ID, req.Page)
	if err != nil {
		return domain.PagedResult[domain.Comment]{}, fmt.Errorf("listing comments: %w", err)
	}

	page := domain.Paginate(rows, req.Page)
	if err := c.Enricher.Enrich(ctx, page.Items, req.ViewerID); err != nil {
		return domain.PagedResult[domain.Comment]{}, err
	}

	return page, nil
}

// GetCommentRequest fetches a single comment by id as seen by ViewerID.
type GetCommentRequest struct {
	CommentID string
	ViewerID  string
}

// GetComment returns nil when the comment does not exist.
type GetComment struct {
	Fetcher  datasources.CommentFetcher
	Enricher *CommentEnricher
}

// Execute returns the enriched comment, or nil when it does not exist.
func (c *GetComment) Execute(ctx context.Context, req GetCommentRequest) (*domain.Comment, error) {
	comment, err := c.Fetcher.FetchComment(ctx, req.CommentID)
	if err != nil {
		return nil, fmt.Errorf("fetching comment: %w", err)
	}
	if comment == nil {
		return nil, nil
	}

	comments := []domain.Comment{*comment}
	if err := c.Enricher.Enrich(ctx, comments, req.ViewerID); err != nil {
		return nil, err
	}
	return &comments[0], nil
}

// CreateCommentRequest adds Body to the article with ArticleSlug on behalf of AuthorID.
type CreateCommentRequest struct {
	ArticleSlug string
	Body        string
	AuthorID    string
}

// CreateComment adds a comment to an existing article.
type CreateComment struct {
	ArticleFetcher datasources.ArticleBySlugFetcher
	Creator        datasources.CommentCreator
	Now            func() time.Time
	NewID          func() string
}

// NewCreateComment creates a CreateComment using wall clock time and random UUIDs.
func NewCreateComment(
	articleFetcher datasources.ArticleBySlugFetcher,
	creator datasources.CommentCreator,
) *CreateComment {
	return &CreateComment{
		ArticleFetcher: articleFetcher,
		Creator:        creator,
		Now:            time.Now,
		NewID:          uuid.NewString,
	}
}

// Execute stores the comment. An unknown article slug fails with domain.ErrNotFound.
func (c *CreateComment) Execute(ctx context.Context, req CreateCommentRequest) (domain.Comment, error) {
	article, err := c.ArticleFetcher.FetchArticleBySlug(ctx, req.ArticleSlug)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("fetching article: %w", err)
	}
	if article == nil {
		return domain.Comment{}, fmt.Errorf("article [%s]: %w", req.ArticleSlug, domain.ErrNotFound)
	}

	now := c.Now().UTC().Truncate(time.Millisecond)
	comment := domain.Comment{
		ID:        c.NewID(),
		ArticleID: article.ID,
		Body:      req.Body,
		Author:    domain.Profile{UserID: req.AuthorID},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.Creator.CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, fmt.Errorf("creating comment: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "created comment",
		"comment_id", comment.ID, "article_id", article.ID)
	return comment, nil
}
