package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ApplyReactionRequest asks for a user's reaction on one subject to move by an action.
type ApplyReactionRequest struct {
	Kind      domain.SubjectKind
	SubjectID string
	UserID    string
	Action    domain.ReactionAction
}

// ApplyReactionResult reports the transition a request caused.
type ApplyReactionResult struct {
	Previous domain.ReactionState
	Current  domain.ReactionState
	Write    domain.ReactionWrite
}

// ApplyReaction moves a user's reaction on a subject through the toggle table.
// The lookup and the single resulting write run in one storage transaction.
type ApplyReaction struct {
	Transactor datasources.ReactionTransactor
	Now        func() time.Time
	NewID      func() string
}

// NewApplyReaction creates an ApplyReaction using wall clock time and random UUIDs.
func NewApplyReaction(transactor datasources.ReactionTransactor) *ApplyReaction {
	return &ApplyReaction{
		Transactor: transactor,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// Execute reads the current reaction, plans the toggle and performs at most one write.
func (c *ApplyReaction) Execute(ctx context.Context, req ApplyReactionRequest) (ApplyReactionResult, error) {
	logger := domain.LoggerFromContext(ctx)

	var result ApplyReactionResult
	key := domain.ReactionKey{Kind: req.Kind, SubjectID: req.SubjectID, UserID: req.UserID}

	err := c.Transactor.InReactionTx(ctx, func(ctx context.Context, tx datasources.ReactionWriter) error {
		current, err := tx.FindReaction(ctx, key)
		if err != nil {
			return fmt.Errorf("finding current reaction: %w", err)
		}

		plan, err := domain.PlanReaction(current, req.Action)
		if err != nil {
			return err
		}

		result = ApplyReactionResult{
			Previous: domain.StateOf(current),
			Current:  plan.Next,
			Write:    plan.Write,
		}

		switch plan.Write {
		case domain.ReactionWriteNone:
			return nil
		case domain.ReactionWriteInsert:
			err = tx.InsertReaction(ctx, domain.Reaction{
				ID:        c.NewID(),
				Kind:      req.Kind,
				SubjectID: req.SubjectID,
				UserID:    req.UserID,
				Type:      plan.Type,
				CreatedAt: c.Now().UTC(),
			})
		case domain.ReactionWriteReplace:
			err = tx.ReplaceReactionType(ctx, current.ID, plan.Type)
		case domain.ReactionWriteDelete:
			err = tx.DeleteReaction(ctx, current.ID)
		}
		if err != nil {
			return fmt.Errorf("writing reaction (%s): %w", plan.Write, err)
		}
		return nil
	})
	if err != nil {
		return ApplyReactionResult{}, err
	}

	logger.DebugContext(ctx, "applied reaction",
		"kind", req.Kind,
		"subject_id", req.SubjectID,
		"action", req.Action,
		"previous", result.Previous,
		"current", result.Current,
		"write", result.Write.String())

	return result, nil
}

// GetReaction returns the reaction a user currently has on a subject, or nil.
type GetReaction struct {
	Finder datasources.ReactionFinder
}

// Execute returns the reaction for key, or nil when the user has not reacted.
func (c *GetReaction) Execute(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error) {
	reaction, err := c.Finder.FindReaction(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetching reaction: %w", err)
	}
	return reaction, nil
}
