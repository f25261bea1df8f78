package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// EnrichFollowing marks which item authors the viewer follows, with one lookup per batch.
func EnrichFollowing[T any, PT interface {
	*T
	domain.Authored
}](
	ctx context.Context,
	lister datasources.FollowedAuthorsLister,
	items []T,
	viewerID string,
) error {
	if viewerID == "" || len(items) == 0 {
		return nil
	}

	authorIDs := make([]string, 0, len(items))
	for i := range items {
		authorIDs = append(authorIDs, PT(&items[i]).AuthorID())
	}

	followed, err := lister.ListFollowedAuthors(ctx, viewerID, uniqueIDs(authorIDs))
	if err != nil {
		return fmt.Errorf("listing followed authors: %w", err)
	}

	followedSet := make(map[string]struct{}, len(followed))
	for _, id := range followed {
		followedSet[id] = struct{}{}
	}
	for i := range items {
		item := PT(&items[i])
		_, ok := followedSet[item.AuthorID()]
		item.SetFollowing(ok)
	}
	return nil
}
