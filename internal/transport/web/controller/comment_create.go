package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// CommentCreateBody is the JSON payload for creating a comment.
type CommentCreateBody struct {
	Body string `json:"body" validate:"required,max=10000"`
}

// CommentCreate adds a comment by the authenticated user to an article.
type CommentCreate struct {
	Command command.Command[command.CreateCommentRequest, domain.Comment]
}

func (c CommentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	logger := domain.LoggerFromContext(r.Context()).With("slug", slug)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body CommentCreateBody
	fieldErrors, err := decodeBody(r, &body)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse comment body", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		writeJSON(ctx, w, http.StatusBadRequest, ValidationErrorResponse{Errors: fieldErrors})
		return
	}

	comment, err := c.Command.Execute(ctx, command.CreateCommentRequest{
		ArticleSlug: slug,
		Body:        body.Body,
		AuthorID:    domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to create comment", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, comment)
}
