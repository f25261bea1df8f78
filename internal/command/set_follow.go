package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// SetFollowRequest follows or unfollows FolloweeID on behalf of FollowerID.
type SetFollowRequest struct {
	FollowerID string
	FolloweeID string
	Follow     bool
}

// SetFollow records or removes a follow between two users.
type SetFollow struct {
	Setter datasources.FollowSetter
}

// Execute sets the follow. Following an already followed user, or unfollowing one
// that is not followed, is not an error.
func (c *SetFollow) Execute(ctx context.Context, req SetFollowRequest) (Empty, error) {
	if req.FollowerID == req.FolloweeID {
		return Empty{}, domain.ErrCannotFollowSelf
	}

	if err := c.Setter.SetFollow(ctx, req.FollowerID, req.FolloweeID, req.Follow); err != nil {
		return Empty{}, fmt.Errorf("setting follow: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "set follow",
		"followee_id", req.FolloweeID, "follow", req.Follow)
	return Empty{}, nil
}
