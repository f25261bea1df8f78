package datasources

import "context"

type FollowSetter interface {
	SetFollow(ctx context.Context, followerID, followeeID string, follow bool) error
}

// FollowedAuthorsLister returns the subset of authorIDs followed by followerID.
type FollowedAuthorsLister interface {
	ListFollowedAuthors(ctx context.Context, followerID string, authorIDs []string) ([]string, error)
}
