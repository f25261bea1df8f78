package datasources

import (
	"context"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ReactionFinder looks up the reaction for a key.
// It returns nil, nil when none exists and domain.ErrDuplicateReaction when more than one does.
type ReactionFinder interface {
	FindReaction(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error)
}

// ReactionWriter is the write side of reaction persistence. Implementations
// obtained from a ReactionTransactor lock the looked up key until commit.
type ReactionWriter interface {
	ReactionFinder

	// InsertReaction returns domain.ErrReactionConflict if the key already has a row.
	InsertReaction(ctx context.Context, reaction domain.Reaction) error

	// ReplaceReactionType changes the type of an existing row in place.
	ReplaceReactionType(ctx context.Context, reactionID string, reactionType domain.ReactionType) error

	DeleteReaction(ctx context.Context, reactionID string) error
}

// ReactionTransactor runs fn inside one storage transaction, committing if fn returns nil.
type ReactionTransactor interface {
	InReactionTx(ctx context.Context, fn func(ctx context.Context, tx ReactionWriter) error) error
}

// ReactionCounter aggregates like and dislike counts for a batch of subjects in one query.
// Subjects without reactions may be omitted from the result.
type ReactionCounter interface {
	CountReactions(
		ctx context.Context,
		kind domain.SubjectKind,
		subjectIDs []string,
	) ([]domain.ReactionCount, error)
}

// ViewerReactionLister returns the viewer's reaction type per subject, in one query.
// Subjects the viewer has not reacted to are absent from the map.
type ViewerReactionLister interface {
	ListViewerReactions(
		ctx context.Context,
		kind domain.SubjectKind,
		subjectIDs []string,
		userID string,
	) (map[string]domain.ReactionType, error)
}
