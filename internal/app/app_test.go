package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/conduit-feed/internal/datasources/sqlite"
	"github.com/jbeshir/conduit-feed/internal/datasources/sqlstore"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/jbeshir/conduit-feed/internal/transport/web/controller"
	"github.com/jbeshir/conduit-feed/internal/transport/web/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerAuth trusts an X-User header, standing in for a real token validator.
func headerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		if userID := r.Header.Get("X-User"); userID != "" {
			ctx = domain.ContextWithUserID(ctx, userID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type testApp struct {
	t       *testing.T
	repo    *sqlstore.Repository
	handler http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlstore.New(db, sqliteDialect)
	handler, err := router.MakeRouter(
		NewCommands(repo),
		controller.Paging{DefaultLimit: 2, MaxLimit: 10},
		router.RSSConfig{BaseURL: "https://conduit.example"},
		time.Minute,
		headerAuth,
	)
	require.NoError(t, err)

	return &testApp{t: t, repo: repo, handler: handler}
}

func (a *testApp) do(method, path, userID, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set("X-User", userID)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestApp_ArticleFeedPaging(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	for _, millis := range []int64{100, 200, 300} {
		require.NoError(t, a.repo.CreateArticle(ctx, domain.Article{
			ID:        fmt.Sprintf("a%d", millis),
			Slug:      fmt.Sprintf("article-%d", millis),
			Title:     "Article",
			Author:    domain.Profile{UserID: "alice"},
			CreatedAt: time.UnixMilli(millis).UTC(),
			UpdatedAt: time.UnixMilli(millis).UTC(),
		}))
	}

	first := decode[controller.ConnectionResponse[domain.Article]](t, a.do(http.MethodGet, "/v1/articles", "", ""))
	require.Len(t, first.Data, 2)
	assert.Equal(t, controller.PageInfo{HasNext: true, StartCursor: "300", EndCursor: "200"}, first.PageInfo)

	second := decode[controller.ConnectionResponse[domain.Article]](t,
		a.do(http.MethodGet, "/v1/articles?cursor="+first.PageInfo.EndCursor, "", ""))
	require.Len(t, second.Data, 1)
	assert.Equal(t, controller.PageInfo{StartCursor: "100", EndCursor: "100"}, second.PageInfo)

	back := decode[controller.ConnectionResponse[domain.Article]](t,
		a.do(http.MethodGet, "/v1/articles?direction=prev&cursor="+second.PageInfo.StartCursor, "", ""))
	require.Len(t, back.Data, 2)
	assert.Equal(t, "300", back.PageInfo.StartCursor)
	assert.Equal(t, "200", back.PageInfo.EndCursor)
	assert.False(t, back.PageInfo.HasPrevious)

	rec := a.do(http.MethodGet, "/v1/articles?direction=prev", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApp_CommentReactions(t *testing.T) {
	a := newTestApp(t)

	rec := a.do(http.MethodPost, "/v1/articles", "alice", `{"title":"Hello World","body":"Body"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	article := decode[domain.Article](t, rec)
	assert.Equal(t, "hello-world", article.Slug)

	rec = a.do(http.MethodPost, "/v1/articles", "alice", `{"title":"Hello World","body":"Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodPost, "/v1/articles/hello-world/comments", "bob", `{"body":"First!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	comment := decode[domain.Comment](t, rec)

	reactionPath := "/v1/comments/" + comment.ID

	steps := []struct {
		method    string
		path      string
		user      string
		wantLikes int64
		wantDis   int64
		wantView  *domain.ReactionType
	}{
		{method: http.MethodPost, path: "/like", user: "alice", wantLikes: 1, wantView: ptr(domain.ReactionTypeLike)},
		{method: http.MethodPost, path: "/like", user: "carol", wantLikes: 2, wantView: ptr(domain.ReactionTypeLike)},
		{method: http.MethodPost, path: "/dislike", user: "alice", wantLikes: 1, wantDis: 1, wantView: ptr(domain.ReactionTypeDislike)},
		{method: http.MethodPost, path: "/dislike", user: "alice", wantLikes: 1},
		{method: http.MethodDelete, path: "/reaction", user: "alice", wantLikes: 1},
		{method: http.MethodDelete, path: "/reaction", user: "carol"},
	}
	for _, step := range steps {
		rec := a.do(step.method, reactionPath+step.path, step.user, "")
		require.Equal(t, http.StatusOK, rec.Code, "%s %s by %s", step.method, step.path, step.user)

		got := decode[domain.Comment](t, rec)
		assert.Equal(t, step.wantLikes, got.Reactions.LikeCount)
		assert.Equal(t, step.wantDis, got.Reactions.DislikeCount)
		assert.Equal(t, step.wantView, got.Reactions.ViewerReaction)
	}

	rec = a.do(http.MethodPost, "/v1/comments/missing/like", "alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApp_FollowedFeed(t *testing.T) {
	a := newTestApp(t)

	require.Equal(t, http.StatusCreated,
		a.do(http.MethodPost, "/v1/articles", "alice", `{"title":"By Alice","body":"x"}`).Code)
	require.Equal(t, http.StatusCreated,
		a.do(http.MethodPost, "/v1/articles", "bob", `{"title":"By Bob","body":"x"}`).Code)

	require.Equal(t, http.StatusNoContent, a.do(http.MethodPost, "/v1/profiles/alice/follow", "viewer", "").Code)

	feed := decode[controller.ConnectionResponse[domain.Article]](t,
		a.do(http.MethodGet, "/v1/articles/feed", "viewer", ""))
	require.Len(t, feed.Data, 1)
	assert.Equal(t, "by-alice", feed.Data[0].Slug)
	assert.True(t, feed.Data[0].Author.Following)

	require.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/v1/profiles/alice/follow", "viewer", "").Code)

	feed = decode[controller.ConnectionResponse[domain.Article]](t,
		a.do(http.MethodGet, "/v1/articles/feed", "viewer", ""))
	assert.Empty(t, feed.Data)
}

func ptr[T any](v T) *T {
	return &v
}
