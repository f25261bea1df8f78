package controller

import (
	"net/http"

	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

// ArticleCreateBody is the JSON payload for creating an article.
type ArticleCreateBody struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	Body        string `json:"body" validate:"required"`
}

// ArticleCreate creates an article authored by the authenticated user.
type ArticleCreate struct {
	Command command.Command[domain.NewArticle, domain.Article]
}

func (c ArticleCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body ArticleCreateBody
	fieldErrors, err := decodeBody(r, &body)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse article body", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		writeJSON(ctx, w, http.StatusBadRequest, ValidationErrorResponse{Errors: fieldErrors})
		return
	}

	article, err := c.Command.Execute(ctx, domain.NewArticle{
		Title:       body.Title,
		Description: body.Description,
		Body:        body.Body,
		AuthorID:    domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to create article", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, article)
}
