package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// RSS renders the first page of the global article feed.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Command         command.Command[command.ListArticlesRequest, domain.PagedResult[domain.Article]]
	PageSize        int
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Conduit",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest articles published on Conduit",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	result, err := c.Command.Execute(ctx, command.ListArticlesRequest{Page: domain.FirstPage(pageSize)})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch articles for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, a := range result.Items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          a.ID,
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/articles/" + a.Slug},
			Description: a.Description,
			Author:      &feeds.Author{Name: a.Author.UserID},
			Created:     a.CreatedAt,
			Updated:     a.UpdatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
