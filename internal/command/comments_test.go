package command

import (
	"testing"
	"time"

	"github.com/jbeshir/conduit-feed/internal/datasources/mocks"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func commentAt(id string, millis int64) domain.Comment {
	return domain.Comment{
		ID:        id,
		ArticleID: "a1",
		Author:    domain.Profile{UserID: "bob"},
		CreatedAt: time.UnixMilli(millis).UTC(),
	}
}

func newTestCommentEnricher(t *testing.T) (*CommentEnricher, *mocks.MockReactionCounter, *mocks.MockViewerReactionLister) {
	counter := mocks.NewMockReactionCounter(t)
	viewer := mocks.NewMockViewerReactionLister(t)
	return &CommentEnricher{
		Reactions: &ReactionAggregator{Counter: counter, ViewerLister: viewer},
		Follows:   mocks.NewMockFollowedAuthorsLister(t),
	}, counter, viewer
}

func TestListComments_Execute_Prev(t *testing.T) {
	cursor := domain.CursorFromMillis(100)
	page, err := domain.NewPageRequest(domain.DirectionPrev, 2, &cursor)
	require.NoError(t, err)

	articles := mocks.NewMockArticleBySlugFetcher(t)
	articles.EXPECT().
		FetchArticleBySlug(mock.Anything, "slug-a1").
		Return(&domain.Article{ID: "a1", Slug: "slug-a1"}, nil)

	// Prev rows come back oldest first with one lookahead row.
	lister := mocks.NewMockCommentPageLister(t)
	lister.EXPECT().
		ListCommentPage(mock.Anything, "a1", page).
		Return([]domain.Comment{commentAt("c2", 200), commentAt("c3", 300), commentAt("c4", 400)}, nil)

	enricher, counter, _ := newTestCommentEnricher(t)
	counter.EXPECT().
		CountReactions(mock.Anything, domain.SubjectKindComment, []string{"c3", "c2"}).
		Return([]domain.ReactionCount{}, nil)

	cmd := &ListComments{ArticleFetcher: articles, Lister: lister, Enricher: enricher}
	result, err := cmd.Execute(testContext(), ListCommentsRequest{ArticleSlug: "slug-a1", Page: page})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "c3", result.Items[0].ID)
	assert.Equal(t, "c2", result.Items[1].ID)
	assert.True(t, result.HasPrevious)
	assert.False(t, result.HasNext)
}

func TestListComments_Execute_ArticleNotFound(t *testing.T) {
	articles := mocks.NewMockArticleBySlugFetcher(t)
	articles.EXPECT().FetchArticleBySlug(mock.Anything, "missing").Return(nil, nil)

	enricher, _, _ := newTestCommentEnricher(t)
	cmd := &ListComments{
		ArticleFetcher: articles,
		Lister:         mocks.NewMockCommentPageLister(t),
		Enricher:       enricher,
	}
	_, err := cmd.Execute(testContext(), ListCommentsRequest{ArticleSlug: "missing", Page: domain.FirstPage(10)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListComments_Execute_DuplicateReaction(t *testing.T) {
	articles := mocks.NewMockArticleBySlugFetcher(t)
	articles.EXPECT().
		FetchArticleBySlug(mock.Anything, "slug-a1").
		Return(&domain.Article{ID: "a1"}, nil)

	lister := mocks.NewMockCommentPageLister(t)
	lister.EXPECT().
		ListCommentPage(mock.Anything, "a1", mock.Anything).
		Return([]domain.Comment{commentAt("c1", 100)}, nil)

	enricher, counter, viewer := newTestCommentEnricher(t)
	counter.EXPECT().
		CountReactions(mock.Anything, domain.SubjectKindComment, []string{"c1"}).
		Return([]domain.ReactionCount{{SubjectID: "c1", LikeCount: 2}}, nil)
	viewer.EXPECT().
		ListViewerReactions(mock.Anything, domain.SubjectKindComment, []string{"c1"}, "alice").
		Return(nil, domain.ErrDuplicateReaction)

	cmd := &ListComments{ArticleFetcher: articles, Lister: lister, Enricher: enricher}
	_, err := cmd.Execute(testContext(), ListCommentsRequest{
		ArticleSlug: "slug-a1",
		Page:        domain.FirstPage(10),
		ViewerID:    "alice",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateReaction)
}

func TestGetComment_Execute(t *testing.T) {
	comment := commentAt("c1", 100)

	fetcher := mocks.NewMockCommentFetcher(t)
	fetcher.EXPECT().FetchComment(mock.Anything, "c1").Return(&comment, nil)

	enricher, counter, _ := newTestCommentEnricher(t)
	counter.EXPECT().
		CountReactions(mock.Anything, domain.SubjectKindComment, []string{"c1"}).
		Return([]domain.ReactionCount{{SubjectID: "c1", DislikeCount: 1}}, nil)

	cmd := &GetComment{Fetcher: fetcher, Enricher: enricher}
	got, err := cmd.Execute(testContext(), GetCommentRequest{CommentID: "c1"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Reactions.DislikeCount)
	assert.Nil(t, got.Reactions.ViewerReaction)
}

func TestGetComment_Execute_NotFound(t *testing.T) {
	fetcher := mocks.NewMockCommentFetcher(t)
	fetcher.EXPECT().FetchComment(mock.Anything, "missing").Return(nil, nil)

	enricher, _, _ := newTestCommentEnricher(t)
	cmd := &GetComment{Fetcher: fetcher, Enricher: enricher}
	got, err := cmd.Execute(testContext(), GetCommentRequest{CommentID: "missing"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateComment_Execute(t *testing.T) {
	articles := mocks.NewMockArticleBySlugFetcher(t)
	articles.EXPECT().
		FetchArticleBySlug(mock.Anything, "slug-a1").
		Return(&domain.Article{ID: "a1"}, nil)

	want := domain.Comment{
		ID:        "new-comment",
		ArticleID: "a1",
		Body:      "Nice post",
		Author:    domain.Profile{UserID: "bob"},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	creator := mocks.NewMockCommentCreator(t)
	creator.EXPECT().CreateComment(mock.Anything, want).Return(nil)

	cmd := &CreateComment{
		ArticleFetcher: articles,
		Creator:        creator,
		Now:            func() time.Time { return testNow },
		NewID:          func() string { return "new-comment" },
	}
	got, err := cmd.Execute(testContext(), CreateCommentRequest{
		ArticleSlug: "slug-a1",
		Body:        "Nice post",
		AuthorID:    "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateComment_Execute_ArticleNotFound(t *testing.T) {
	articles := mocks.NewMockArticleBySlugFetcher(t)
	articles.EXPECT().FetchArticleBySlug(mock.Anything, "missing").Return(nil, nil)

	cmd := NewCreateComment(articles, mocks.NewMockCommentCreator(t))
	_, err := cmd.Execute(testContext(), CreateCommentRequest{ArticleSlug: "missing", Body: "x", AuthorID: "bob"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
