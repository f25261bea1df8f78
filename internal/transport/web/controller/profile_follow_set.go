package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ProfileFollowSet follows or unfollows the user in the path.
type ProfileFollowSet struct {
	Command command.Command[command.SetFollowRequest, command.Empty]
	Follow  bool
}

func (c ProfileFollowSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	followeeID := mux.Vars(r)["user_id"]
	logger := domain.LoggerFromContext(r.Context()).With("followee_id", followeeID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	_, err := c.Command.Execute(ctx, command.SetFollowRequest{
		FollowerID: domain.UserIDFromContext(ctx),
		FolloweeID: followeeID,
		Follow:     c.Follow,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to set follow", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
