package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// CommentGet serves one comment by id.
type CommentGet struct {
	Command     command.Command[command.GetCommentRequest, *domain.Comment]
	CacheMaxAge time.Duration
}

func (c CommentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["comment_id"]
	logger := domain.LoggerFromContext(r.Context()).With("comment_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	comment, err := c.Command.Execute(ctx, command.GetCommentRequest{
		CommentID: id,
		ViewerID:  domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch comment", err)
		return
	}
	if comment == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	setCacheControl(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, comment)
}
