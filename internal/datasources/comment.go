package datasources

import (
	"context"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

// CommentPageLister is the row source for an article's comment thread.
type CommentPageLister interface {
	ListCommentPage(
		ctx context.Context,
		articleID string,
		page domain.PageRequest,
	) ([]domain.Comment, error)
}

// CommentFetcher returns nil, nil when the comment does not exist.
type CommentFetcher interface {
	FetchComment(ctx context.Context, commentID string) (*domain.Comment, error)
}

type CommentCreator interface {
	CreateComment(ctx context.Context, comment domain.Comment) error
}
