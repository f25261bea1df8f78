package domain

import (
	"fmt"
	"time"
)

// SubjectKind identifies what a reaction is attached to.
type SubjectKind string

const (
	SubjectKindArticle SubjectKind = "article"
	SubjectKindComment SubjectKind = "comment"
)

// ReactionType is the kind of reaction a user left on a subject.
type ReactionType string

const (
	ReactionTypeLike    ReactionType = "LIKE"
	ReactionTypeDislike ReactionType = "DISLIKE"
)

// ReactionAction is a user's request to change their reaction on a subject.
type ReactionAction string

const (
	ReactionActionLike    ReactionAction = "like"
	ReactionActionDislike ReactionAction = "dislike"
	ReactionActionRemove  ReactionAction = "remove"
)

// ReactionState is the state of a single (subject, user) pair.
type ReactionState string

const (
	ReactionStateNone     ReactionState = "NONE"
	ReactionStateLiked    ReactionState = "LIKED"
	ReactionStateDisliked ReactionState = "DISLIKED"
)

// ReactionKey uniquely identifies the reaction slot of one user on one subject.
// At most one Reaction exists per key.
type ReactionKey struct {
	Kind      SubjectKind
	SubjectID string
	UserID    string
}

// Reaction is a stored like or dislike by one user on one subject.
type Reaction struct {
	ID        string
	Kind      SubjectKind
	SubjectID string
	UserID    string
	Type      ReactionType
	CreatedAt time.Time
}

// Key returns the uniqueness slot this reaction occupies.
func (r Reaction) Key() ReactionKey {
	return ReactionKey{Kind: r.Kind, SubjectID: r.SubjectID, UserID: r.UserID}
}

// StateOf returns the state implied by an optional existing reaction.
func StateOf(r *Reaction) ReactionState {
	if r == nil {
		return ReactionStateNone
	}
	if r.Type == ReactionTypeDislike {
		return ReactionStateDisliked
	}
	return ReactionStateLiked
}

// ReactionWrite is the single storage write a toggle needs.
type ReactionWrite int

const (
	ReactionWriteNone ReactionWrite = iota
	ReactionWriteInsert
	ReactionWriteReplace
	ReactionWriteDelete
)

func (w ReactionWrite) String() string {
	switch w {
	case ReactionWriteInsert:
		return "insert"
	case ReactionWriteReplace:
		return "replace"
	case ReactionWriteDelete:
		return "delete"
	default:
		return "none"
	}
}

// ReactionPlan describes how to move a pair from its current state for a given action.
type ReactionPlan struct {
	Write ReactionWrite
	// Type is the reaction type to insert or replace with. Empty for none and delete.
	Type ReactionType
	Next ReactionState
}

// PlanReaction applies the toggle table:
//
//	current   | like            | dislike         | remove
//	NONE      | insert LIKE     | insert DISLIKE  | nothing
//	LIKED     | delete          | replace DISLIKE | delete
//	DISLIKED  | replace LIKE    | delete          | delete
//
// Repeating the current type toggles it off.
func PlanReaction(current *Reaction, action ReactionAction) (ReactionPlan, error) {
	var requested ReactionType
	switch action {
	case ReactionActionLike:
		requested = ReactionTypeLike
	case ReactionActionDislike:
		requested = ReactionTypeDislike
	case ReactionActionRemove:
		if current == nil {
			return ReactionPlan{Write: ReactionWriteNone, Next: ReactionStateNone}, nil
		}
		return ReactionPlan{Write: ReactionWriteDelete, Next: ReactionStateNone}, nil
	default:
		return ReactionPlan{}, fmt.Errorf("%w [%s]", ErrUnknownReactionAction, action)
	}

	next := stateForType(requested)
	switch {
	case current == nil:
		return ReactionPlan{Write: ReactionWriteInsert, Type: requested, Next: next}, nil
	case current.Type == requested:
		return ReactionPlan{Write: ReactionWriteDelete, Next: ReactionStateNone}, nil
	default:
		return ReactionPlan{Write: ReactionWriteReplace, Type: requested, Next: next}, nil
	}
}

func stateForType(t ReactionType) ReactionState {
	if t == ReactionTypeDislike {
		return ReactionStateDisliked
	}
	return ReactionStateLiked
}

// ReactionCount is the aggregated like and dislike totals for one subject.
type ReactionCount struct {
	SubjectID    string
	LikeCount    int64
	DislikeCount int64
}

// ReactionSummary is the read-time reaction projection attached to a subject.
type ReactionSummary struct {
	LikeCount      int64         `json:"like_count"`
	DislikeCount   int64         `json:"dislike_count"`
	ViewerReaction *ReactionType `json:"viewer_reaction,omitempty"`
}

// Reactable is implemented by feed items that carry a ReactionSummary.
type Reactable interface {
	ReactionSubjectID() string
	SetReactions(summary ReactionSummary)
}
