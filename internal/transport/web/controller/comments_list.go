package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// CommentsList serves a keyset page of the comments on one article.
type CommentsList struct {
	Command     command.Command[command.ListCommentsRequest, domain.PagedResult[domain.Comment]]
	Paging      Paging
	CacheMaxAge time.Duration
}

func (c CommentsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	logger := domain.LoggerFromContext(r.Context()).With("slug", slug)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	page, err := c.Paging.parsePageRequest(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse page request in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Command.Execute(ctx, command.ListCommentsRequest{
		ArticleSlug: slug,
		Page:        page,
		ViewerID:    domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list comments", err)
		return
	}

	setCacheControl(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, newConnectionResponse(result))
}
