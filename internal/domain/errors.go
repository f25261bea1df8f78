package domain

import "errors"

var (
	// ErrNotFound is returned when a requested article, comment or profile does not exist.
	ErrNotFound = errors.New("not found")

	// ErrArticleExists is returned when an article with the same slug already exists.
	ErrArticleExists = errors.New("article already exists")

	// ErrReactionConflict is returned when a concurrent write already created the reaction row.
	ErrReactionConflict = errors.New("conflicting reaction write")

	// ErrDuplicateReaction signals more than one reaction row for a single subject and user.
	// It indicates a data integrity fault and must never be masked.
	ErrDuplicateReaction = errors.New("more than one reaction stored for subject and user")

	ErrUnknownReactionAction = errors.New("unknown reaction action")

	ErrCannotFollowSelf = errors.New("users cannot follow themselves")

	ErrInvalidPageLimit   = errors.New("page limit must be positive")
	ErrPrevRequiresCursor = errors.New("paging backwards requires a cursor")
	ErrUnknownDirection   = errors.New("unknown paging direction")
)
