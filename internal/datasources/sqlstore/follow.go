package sqlstore

import (
	"context"
	"fmt"
	"time"
)

// SetFollow records or removes a follow. Both directions are idempotent.
func (r *Repository) SetFollow(ctx context.Context, followerID, followeeID string, follow bool) error {
	if !follow {
		dlb := r.flavor.NewDeleteBuilder()
		dlb.DeleteFrom("follows")
		dlb.Where(
			dlb.Equal("follower_id", followerID),
			dlb.Equal("followee_id", followeeID),
		)
		query, args := dlb.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("deleting follow: %w", err)
		}
		return nil
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("follows")
	ib.Cols("follower_id", "followee_id", "created_at")
	ib.Values(followerID, followeeID, time.Now().UnixMilli())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.dialect.IsUniqueViolation(err, IndexFollowPair) {
			return nil
		}
		return fmt.Errorf("inserting follow: %w", err)
	}
	return nil
}

func (r *Repository) ListFollowedAuthors(
	ctx context.Context,
	followerID string,
	authorIDs []string,
) ([]string, error) {
	if followerID == "" || len(authorIDs) == 0 {
		return []string{}, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select("followee_id")
	sb.From("follows")
	sb.Where(
		sb.Equal("follower_id", followerID),
		sb.In("followee_id", toArgs(authorIDs)...),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing followed authors: %w", err)
	}
	defer closeRows(rows)

	followed := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning followed authors: %w", err)
		}
		followed = append(followed, id)
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	return followed, nil
}
