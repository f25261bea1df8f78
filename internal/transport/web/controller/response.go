package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

// statusForError maps command errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrArticleExists), errors.Is(err, domain.ErrReactionConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownReactionAction),
		errors.Is(err, domain.ErrCannotFollowSelf),
		errors.Is(err, domain.ErrInvalidPageLimit),
		errors.Is(err, domain.ErrPrevRequiresCursor),
		errors.Is(err, domain.ErrUnknownDirection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeCommandError logs err and writes the matching status code.
func writeCommandError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
	} else {
		logger.WarnContext(ctx, msg, "error", err, "status", status)
	}

	w.WriteHeader(status)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// setCacheControl allows shared caching only for anonymous responses,
// since authenticated ones carry the viewer's reactions.
func setCacheControl(ctx context.Context, w http.ResponseWriter, maxAge time.Duration) {
	if domain.UserIDFromContext(ctx) != "" {
		w.Header().Set("Cache-Control", "private, no-store")
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
}
