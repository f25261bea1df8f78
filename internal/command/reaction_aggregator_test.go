package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/conduit-feed/internal/datasources/mocks"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReactionAggregator_CountsFor(t *testing.T) {
	counter := mocks.NewMockReactionCounter(t)
	counter.EXPECT().
		CountReactions(mock.Anything, domain.SubjectKindComment, []string{"A", "B"}).
		Return([]domain.ReactionCount{{SubjectID: "A", LikeCount: 2, DislikeCount: 1}}, nil).
		Once()

	agg := &ReactionAggregator{Counter: counter}
	counts, err := agg.CountsFor(testContext(), domain.SubjectKindComment, []string{"A", "B", "A"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.ReactionCount{
		"A": {SubjectID: "A", LikeCount: 2, DislikeCount: 1},
		"B": {SubjectID: "B"},
	}, counts)
}

func TestReactionAggregator_CountsFor_Empty(t *testing.T) {
	agg := &ReactionAggregator{Counter: mocks.NewMockReactionCounter(t)}

	counts, err := agg.CountsFor(testContext(), domain.SubjectKindComment, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestReactionAggregator_ViewerReactionsFor(t *testing.T) {
	t.Run("anonymous_viewer_skips_storage", func(t *testing.T) {
		agg := &ReactionAggregator{ViewerLister: mocks.NewMockViewerReactionLister(t)}

		viewer, err := agg.ViewerReactionsFor(testContext(), domain.SubjectKindComment, []string{"A"}, "")
		require.NoError(t, err)
		assert.Empty(t, viewer)
	})

	t.Run("returns_viewer_reactions", func(t *testing.T) {
		lister := mocks.NewMockViewerReactionLister(t)
		lister.EXPECT().
			ListViewerReactions(mock.Anything, domain.SubjectKindComment, []string{"A", "B"}, "alice").
			Return(map[string]domain.ReactionType{"A": domain.ReactionTypeDislike}, nil).
			Once()

		agg := &ReactionAggregator{ViewerLister: lister}
		viewer, err := agg.ViewerReactionsFor(testContext(), domain.SubjectKindComment, []string{"A", "B"}, "alice")
		require.NoError(t, err)
		assert.Equal(t, map[string]domain.ReactionType{"A": domain.ReactionTypeDislike}, viewer)
	})

	t.Run("duplicate_rows_fail_loudly", func(t *testing.T) {
		lister := mocks.NewMockViewerReactionLister(t)
		lister.EXPECT().
			ListViewerReactions(mock.Anything, mock.Anything, mock.Anything, "alice").
			Return(nil, domain.ErrDuplicateReaction)

		agg := &ReactionAggregator{ViewerLister: lister}
		_, err := agg.ViewerReactionsFor(testContext(), domain.SubjectKindComment, []string{"A"}, "alice")
		assert.ErrorIs(t, err, domain.ErrDuplicateReaction)
	})
}

func TestEnrichReactions(t *testing.T) {
	counter := mocks.NewMockReactionCounter(t)
	counter.EXPECT().
		CountReactions(mock.Anything, domain.SubjectKindComment, []string{"c1", "c2", "c3"}).
		Return([]domain.ReactionCount{
			{SubjectID: "c1", LikeCount: 3},
			{SubjectID: "c3", LikeCount: 1, DislikeCount: 4},
		}, nil).
		Once()

	lister := mocks.NewMockViewerReactionLister(t)
	lister.EXPECT().
		ListViewerReactions(mock.Anything, domain.SubjectKindComment, []string{"c1", "c2", "c3"}, "alice").
		Return(map[string]domain.ReactionType{"c3": domain.ReactionTypeDislike}, nil).
		Once()

	comments := []domain.Comment{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	agg := &ReactionAggregator{Counter: counter, ViewerLister: lister}
	err := EnrichReactions(testContext(), agg, domain.SubjectKindComment, comments, "alice")
	require.NoError(t, err)

	dislike := domain.ReactionTypeDislike
	assert.Equal(t, domain.ReactionSummary{LikeCount: 3}, comments[0].Reactions)
	assert.Equal(t, domain.ReactionSummary{}, comments[1].Reactions)
	assert.Equal(t, domain.ReactionSummary{LikeCount: 1, DislikeCount: 4, ViewerReaction: &dislike}, comments[2].Reactions)
}

func TestEnrichReactions_EmptyPage(t *testing.T) {
	agg := &ReactionAggregator{
		Counter:      mocks.NewMockReactionCounter(t),
		ViewerLister: mocks.NewMockViewerReactionLister(t),
	}

	err := EnrichReactions(testContext(), agg, domain.SubjectKindArticle, []domain.Article{}, "alice")
	require.NoError(t, err)
}

func TestEnrichReactions_CountError(t *testing.T) {
	counter := mocks.NewMockReactionCounter(t)
	counter.EXPECT().
		CountReactions(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	agg := &ReactionAggregator{Counter: counter, ViewerLister: mocks.NewMockViewerReactionLister(t)}
	err := EnrichReactions(testContext(), agg, domain.SubjectKindArticle, []domain.Article{{ID: "a1"}}, "alice")
	require.Error(t, err)
}

func TestEnrichFollowing(t *testing.T) {
	lister := mocks.NewMockFollowedAuthorsLister(t)
	lister.EXPECT().
		ListFollowedAuthors(mock.Anything, "viewer", []string{"alice", "bob"}).
		Return([]string{"bob"}, nil).
		Once()

	articles := []domain.Article{
		{ID: "a1", Author: domain.Profile{UserID: "alice"}},
		{ID: "a2", Author: domain.Profile{UserID: "bob"}},
		{ID: "a3", Author: domain.Profile{UserID: "alice"}},
	}
	require.NoError(t, EnrichFollowing(testContext(), lister, articles, "viewer"))

	assert.False(t, articles[0].Author.Following)
	assert.True(t, articles[1].Author.Following)
	assert.False(t, articles[2].Author.Following)
}

func TestEnrichFollowing_AnonymousViewer(t *testing.T) {
	articles := []domain.Article{{ID: "a1", Author: domain.Profile{UserID: "alice"}}}
	require.NoError(t, EnrichFollowing(testContext(), mocks.NewMockFollowedAuthorsLister(t), articles, ""))
	assert.False(t, articles[0].Author.Following)
}
