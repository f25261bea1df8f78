package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/conduit-feed/internal/command"
	cmdmocks "github.com/jbeshir/conduit-feed/internal/command/mocks"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRSS_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	listCmd := cmdmocks.NewMockCommand[command.ListArticlesRequest, articlesPage](t)
	listCmd.EXPECT().
		Execute(mock.Anything, command.ListArticlesRequest{Page: domain.FirstPage(10)}).
		Return(articlesPage{Items: []domain.Article{
			{ID: "a1", Slug: "hello-world", Title: "Hello World", CreatedAt: testTime, UpdatedAt: testTime},
		}}, nil)

	controller := RSS{
		FeedHostname: "https://conduit.example",
		FeedPath:     "/rss",
		Command:      listCmd,
		PageSize:     10,
		CacheMaxAge:  5 * time.Minute,
	}

	req := httptest.NewRequest(http.MethodGet, "/rss", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "Hello World")
	assert.Contains(t, rec.Body.String(), "https://conduit.example/v1/articles/hello-world")
}

func TestRSS_ServeHTTP_CommandError(t *testing.T) {
	listCmd := cmdmocks.NewMockCommand[command.ListArticlesRequest, articlesPage](t)
	listCmd.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(articlesPage{}, errors.New("database error"))

	req := httptest.NewRequest(http.MethodGet, "/rss", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	RSS{Command: listCmd}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
