package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// reactionStore runs reaction statements against either the pool or a transaction.
type reactionStore struct {
	q        queryer
	flavor   sqlbuilder.Flavor
	dialect  Dialect
	lockRows bool
}

var _ datasources.ReactionWriter = (*reactionStore)(nil)

func (r *Repository) reactions() *reactionStore {
	return &reactionStore{q: r.db, flavor: r.flavor, dialect: r.dialect}
}

func (r *Repository) FindReaction(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error) {
	return r.reactions().FindReaction(ctx, key)
}

// InReactionTx runs fn in a transaction. When the dialect locks rows, the reaction
// lookup inside fn takes a row lock, so the read and the single write act as one step.
// Losing a lock race to a concurrent toggle of the same pair reports ErrReactionConflict.
func (r *Repository) InReactionTx(
	ctx context.Context,
	fn func(ctx context.Context, tx datasources.ReactionWriter) error,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	store := &reactionStore{
		q:        tx,
		flavor:   r.flavor,
		dialect:  r.dialect,
		lockRows: r.dialect.LockRows,
	}
	if err := fn(ctx, store); err != nil {
		if r.dialect.isLockConflict(err) {
			return fmt.Errorf("%w: %w", domain.ErrReactionConflict, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if r.dialect.isLockConflict(err) {
			return fmt.Errorf("committing transaction: %w: %w", domain.ErrReactionConflict, err)
		}
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *reactionStore) FindReaction(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("id", "subject_kind", "subject_id", "user_id", "reaction_type", "created_at")
	sb.From("reactions")
	sb.Where(
		sb.Equal("subject_kind", string(key.Kind)),
		sb.Equal("subject_id", key.SubjectID),
		sb.Equal("user_id", key.UserID),
	)
	// Two rows are enough to detect a broken uniqueness invariant.
	sb.Limit(2)
	if s.lockRows {
		sb.ForUpdate()
	}

	query, args := sb.Build()
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding reaction: %w", err)
	}
	defer closeRows(rows)

	var found []domain.Reaction
	for rows.Next() {
		var reaction domain.Reaction
		var kind, reactionType string
		var createdAt int64
		if err := rows.Scan(
			&reaction.ID,
			&kind,
			&reaction.SubjectID,
			&reaction.UserID,
			&reactionType,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning reaction: %w", err)
		}
		reaction.Kind = domain.SubjectKind(kind)
		reaction.Type = domain.ReactionType(reactionType)
		reaction.CreatedAt = time.UnixMilli(createdAt).UTC()
		found = append(found, reaction)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("finding reaction for %s %s by %s: %w",
			key.Kind, key.SubjectID, key.UserID, domain.ErrDuplicateReaction)
	}
}

func (s *reactionStore) InsertReaction(ctx context.Context, reaction domain.Reaction) error {
	ib := s.flavor.NewInsertBuilder()
	ib.InsertInto("reactions")
	ib.Cols("id", "subject_kind", "subject_id", "user_id", "reaction_type", "created_at")
	ib.Values(
		reaction.ID,
		string(reaction.Kind),
		reaction.SubjectID,
		reaction.UserID,
		string(reaction.Type),
		reaction.CreatedAt.UnixMilli(),
	)

	query, args := ib.Build()
	if _, err := s.q.ExecContext(ctx, query, args...); err != nil {
		if s.dialect.IsUniqueViolation(err, IndexReactionSubjectUser) {
			return fmt.Errorf("inserting reaction: %w", domain.ErrReactionConflict)
		}
		return fmt.Errorf("inserting reaction: %w", err)
	}
	return nil
}

func (s *reactionStore) ReplaceReactionType(
	ctx context.Context,
	reactionID string,
	reactionType domain.ReactionType,
) error {
	ub := s.flavor.NewUpdateBuilder()
	ub.Update("reactions")
	ub.Set(ub.Assign("reaction_type", string(reactionType)))
	ub.Where(ub.Equal("id", reactionID))

	query, args := ub.Build()
	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("replacing reaction type: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking replaced reaction: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("replacing reaction [%s]: %w", reactionID, domain.ErrNotFound)
	}
	return nil
}

func (s *reactionStore) DeleteReaction(ctx context.Context, reactionID string) error {
	dlb := s.flavor.NewDeleteBuilder()
	dlb.DeleteFrom("reactions")
	dlb.Where(dlb.Equal("id", reactionID))

	query, args := dlb.Build()
	if _, err := s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting reaction: %w", err)
	}
	return nil
}

func (r *Repository) CountReactions(
	ctx context.Context,
	kind domain.SubjectKind,
	subjectIDs []string,
) ([]domain.ReactionCount, error) {
	if len(subjectIDs) == 0 {
		return []domain.ReactionCount{}, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select(
		"subject_id",
		"SUM(CASE WHEN reaction_type = 'LIKE' THEN 1 ELSE 0 END)",
		"SUM(CASE WHEN reaction_type = 'DISLIKE' THEN 1 ELSE 0 END)",
	)
	sb.From("reactions")
	sb.Where(
		sb.Equal("subject_kind", string(kind)),
		sb.In("subject_id", toArgs(subjectIDs)...),
	)
	sb.GroupBy("subject_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting reactions: %w", err)
	}
	defer closeRows(rows)

	counts := []domain.ReactionCount{}
	for rows.Next() {
		var c domain.ReactionCount
		if err := rows.Scan(&c.SubjectID, &c.LikeCount, &c.DislikeCount); err != nil {
			return nil, fmt.Errorf("scanning reaction counts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *Repository) ListViewerReactions(
	ctx context.Context,
	kind domain.SubjectKind,
	subjectIDs []string,
	userID string,
) (map[string]domain.ReactionType, error) {
	result := make(map[string]domain.ReactionType, len(subjectIDs))
	if len(subjectIDs) == 0 || userID == "" {
		return result, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select("subject_id", "reaction_type")
	sb.From("reactions")
	sb.Where(
		sb.Equal("subject_kind", string(kind)),
		sb.Equal("user_id", userID),
		sb.In("subject_id", toArgs(subjectIDs)...),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing viewer reactions: %w", err)
	}
	defer closeRows(rows)

	for rows.Next() {
		var subjectID, reactionType string
		if err := rows.Scan(&subjectID, &reactionType); err != nil {
			return nil, fmt.Errorf("scanning viewer reactions: %w", err)
		}
		if _, exists := result[subjectID]; exists {
			return nil, fmt.Errorf("listing viewer reactions for %s %s: %w",
				kind, subjectID, domain.ErrDuplicateReaction)
		}
		result[subjectID] = domain.ReactionType(reactionType)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	return result, nil
}
