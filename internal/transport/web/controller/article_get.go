package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ArticleGet serves one article by slug.
type ArticleGet struct {
	Command     command.Command[command.GetArticleRequest, *domain.Article]
	CacheMaxAge time.Duration
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	logger := domain.LoggerFromContext(r.Context()).With("slug", slug)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	article, err := c.Command.Execute(ctx, command.GetArticleRequest{
		Slug:     slug,
		ViewerID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch article", err)
		return
	}
	if article == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	setCacheControl(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, article)
}
