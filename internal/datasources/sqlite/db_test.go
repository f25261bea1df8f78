package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesSchemaOnce(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, applySchema(ctx, db))

	var version int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&version))
	assert.Equal(t, len(migrations), version)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	insertReaction := `INSERT INTO reactions (id, subject_kind, subject_id, user_id, reaction_type, created_at)
		VALUES (?, 'comment', 'c1', ?, 'LIKE', 0)`
	_, err = db.ExecContext(ctx, insertReaction, "r1", "alice")
	require.NoError(t, err)

	_, pairErr := db.ExecContext(ctx, insertReaction, "r2", "alice")
	require.Error(t, pairErr)
	_, idErr := db.ExecContext(ctx, insertReaction, "r1", "bob")
	require.Error(t, idErr)

	insertFollow := `INSERT INTO follows (follower_id, followee_id, created_at) VALUES ('alice', 'bob', 0)`
	_, err = db.ExecContext(ctx, insertFollow)
	require.NoError(t, err)
	_, followErr := db.ExecContext(ctx, insertFollow)
	require.Error(t, followErr)

	cases := []struct {
		name  string
		err   error
		index string
		want  bool
	}{
		{name: "reaction_pair", err: pairErr, index: "reactions.uq_reactions_subject_user", want: true},
		{name: "reaction_id_is_not_pair", err: idErr, index: "reactions.uq_reactions_subject_user", want: false},
		{name: "follow_pair", err: followErr, index: "follows.PRIMARY", want: true},
		{name: "wrong_index", err: followErr, index: "articles.uq_articles_slug", want: false},
		{name: "unknown_index", err: pairErr, index: "reactions.nope", want: false},
		{name: "other_error", err: errors.New("disk I/O error"), index: "follows.PRIMARY", want: false},
		{name: "nil", err: nil, index: "follows.PRIMARY", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err, tc.index))
		})
	}
}
