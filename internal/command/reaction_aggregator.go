package command

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ReactionAggregator computes read-time reaction summaries for a batch of subjects.
// Each batch costs at most one counts query and one viewer query.
type ReactionAggregator struct {
	Counter      datasources.ReactionCounter
	ViewerLister datasources.ViewerReactionLister
}

// CountsFor returns a count for every requested id. Ids without reactions are zero.
func (a *ReactionAggregator) CountsFor(
	ctx context.Context,
	kind domain.SubjectKind,
	subjectIDs []string,
) (map[string]domain.ReactionCount, error) {
	ids := uniqueIDs(subjectIDs)
	result := make(map[string]domain.ReactionCount, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	counts, err := a.Counter.CountReactions(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("counting reactions: %w", err)
	}
	for _, count := range counts {
		result[count.SubjectID] = count
	}
	for _, id := range ids {
		if _, ok := result[id]; !ok {
			result[id] = domain.ReactionCount{SubjectID: id}
		}
	}

	return result, nil
}

// ViewerReactionsFor returns the viewer's reaction per subject. Subjects the viewer
// has not reacted to are absent. An anonymous viewer never reaches storage.
func (a *ReactionAggregator) ViewerReactionsFor(
	ctx context.Context,
	kind domain.SubjectKind,
	subjectIDs []string,
	viewerID string,
) (map[string]domain.ReactionType, error) {
	ids := uniqueIDs(subjectIDs)
	if viewerID == "" || len(ids) == 0 {
		return map[string]domain.ReactionType{}, nil
	}

	viewer, err := a.ViewerLister.ListViewerReactions(ctx, kind, ids, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateReaction) {
			domain.LoggerFromContext(ctx).ErrorContext(ctx, "reaction uniqueness violated",
				"kind", kind, "viewer_id", viewerID, "error", err)
		}
		return nil, fmt.Errorf("listing viewer reactions: %w", err)
	}

	return viewer, nil
}

// Summaries combines counts and the viewer's reactions for each requested id.
func (a *ReactionAggregator) Summaries(
	ctx context.Context,
	kind domain.SubjectKind,
	subjectIDs []string,
	viewerID string,
) (map[string]domain.ReactionSummary, error) {
	counts, err := a.CountsFor(ctx, kind, subjectIDs)
	if err != nil {
		return nil, err
	}
	viewer, err := a.ViewerReactionsFor(ctx, kind, subjectIDs, viewerID)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]domain.ReactionSummary, len(counts))
	for id, count := range counts {
		summary := domain.ReactionSummary{
			LikeCount:    count.LikeCount,
			DislikeCount: count.DislikeCount,
		}
		if reactionType, ok := viewer[id]; ok {
			summary.ViewerReaction = &reactionType
		}
		summaries[id] = summary
	}

	return summaries, nil
}

// EnrichReactions attaches reaction summaries to items in place.
func EnrichReactions[T any, PT interface {
	*T
	domain.Reactable
}](
	ctx context.Context,
	aggregator *ReactionAggregator,
	kind domain.SubjectKind,
	items []T,
	viewerID string,
) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, PT(&items[i]).ReactionSubjectID())
	}

	summaries, err := aggregator.Summaries(ctx, kind, ids, viewerID)
	if err != nil {
		return err
	}

	for i := range items {
		item := PT(&items[i])
		item.SetReactions(summaries[item.ReactionSubjectID()])
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	return unique
}
