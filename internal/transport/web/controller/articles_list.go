package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ArticlesList serves a keyset page of articles, optionally filtered by author.
type ArticlesList struct {
	Command command.Command[command.ListArticlesRequest, domain.PagedResult[domain.Article]]
	Paging  Paging
	// FollowedOnly restricts the feed to authors the viewer follows.
	FollowedOnly bool
	CacheMaxAge  time.Duration
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	viewerID := domain.UserIDFromContext(ctx)

	page, err := c.Paging.parsePageRequest(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse page request in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filter := domain.ArticleFilter{AuthorID: r.URL.Query().Get("author")}
	if c.FollowedOnly {
		filter.FollowedBy = viewerID
	}

	result, err := c.Command.Execute(ctx, command.ListArticlesRequest{
		Filter:   filter,
		Page:     page,
		ViewerID: viewerID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list articles", err)
		return
	}

	setCacheControl(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, newConnectionResponse(result))
}
