package mysql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := func(msg string) error {
		return fmt.Errorf("inserting: %w", &mysql.MySQLError{Number: erDupEntry, Message: msg})
	}

	cases := []struct {
		name  string
		err   error
		index string
		want  bool
	}{
		{
			name:  "qualified_key",
			err:   dup("Duplicate entry 'comment-c1-alice' for key 'reactions.uq_reactions_subject_user'"),
			index: "reactions.uq_reactions_subject_user",
			want:  true,
		},
		{
			name:  "unqualified_key_on_old_servers",
			err:   dup("Duplicate entry 'comment-c1-alice' for key 'uq_reactions_subject_user'"),
			index: "reactions.uq_reactions_subject_user",
			want:  true,
		},
		{
			name:  "primary_key_is_not_pair",
			err:   dup("Duplicate entry 'r1' for key 'reactions.PRIMARY'"),
			index: "reactions.uq_reactions_subject_user",
			want:  false,
		},
		{
			name:  "follow_primary",
			err:   dup("Duplicate entry 'alice-bob' for key 'follows.PRIMARY'"),
			index: "follows.PRIMARY",
			want:  true,
		},
		{
			name:  "unqualified_primary_is_ambiguous",
			err:   dup("Duplicate entry 'r1' for key 'PRIMARY'"),
			index: "follows.PRIMARY",
			want:  false,
		},
		{
			name:  "other_server_error",
			err:   &mysql.MySQLError{Number: erLockDeadlock, Message: "Deadlock found"},
			index: "follows.PRIMARY",
			want:  false,
		},
		{
			name:  "not_mysql",
			err:   errors.New("connection refused"),
			index: "follows.PRIMARY",
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err, tc.index))
		})
	}
}

func TestIsDeadlock(t *testing.T) {
	assert.True(t, IsDeadlock(fmt.Errorf("finding reaction: %w",
		&mysql.MySQLError{Number: erLockDeadlock, Message: "Deadlock found when trying to get lock"})))
	assert.False(t, IsDeadlock(&mysql.MySQLError{Number: erDupEntry}))
	assert.False(t, IsDeadlock(errors.New("deadlock")))
}
