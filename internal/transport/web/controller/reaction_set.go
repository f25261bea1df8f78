package controller

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
)

type applyReactionCommand = command.Command[command.ApplyReactionRequest, command.ApplyReactionResult]

// ArticleReactionSet applies a like, dislike or remove to an article and
// responds with the article's refreshed reaction summary.
type ArticleReactionSet struct {
	Article command.Command[command.GetArticleRequest, *domain.Article]
	Apply   applyReactionCommand
	Action  domain.ReactionAction
}

func (c ArticleReactionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	logger := domain.LoggerFromContext(r.Context()).With("slug", slug, "action", c.Action)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	fetch := func(ctx context.Context) (*domain.Article, error) {
		return c.Article.Execute(ctx, command.GetArticleRequest{
			Slug:     slug,
			ViewerID: domain.UserIDFromContext(ctx),
		})
	}
	handleReactionSet(ctx, w, fetch, domain.SubjectKindArticle, c.Apply, c.Action)
}

// CommentReactionSet applies a like, dislike or remove to a comment and
// responds with the comment's refreshed reaction summary.
type CommentReactionSet struct {
	Comment command.Command[command.GetCommentRequest, *domain.Comment]
	Apply   applyReactionCommand
	Action  domain.ReactionAction
}

func (c CommentReactionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["comment_id"]
	logger := domain.LoggerFromContext(r.Context()).With("comment_id", id, "action", c.Action)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	fetch := func(ctx context.Context) (*domain.Comment, error) {
		return c.Comment.Execute(ctx, command.GetCommentRequest{
			CommentID: id,
			ViewerID:  domain.UserIDFromContext(ctx),
		})
	}
	handleReactionSet(ctx, w, fetch, domain.SubjectKindComment, c.Apply, c.Action)
}

func handleReactionSet[T any, PT interface {
	*T
	domain.Reactable
}](
	ctx context.Context,
	w http.ResponseWriter,
	fetch func(ctx context.Context) (PT, error),
	kind domain.SubjectKind,
	apply applyReactionCommand,
	action domain.ReactionAction,
) {
	subject, err := fetch(ctx)
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch reaction subject", err)
		return
	}
	if subject == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	_, err = apply.Execute(ctx, command.ApplyReactionRequest{
		Kind:      kind,
		SubjectID: subject.ReactionSubjectID(),
		UserID:    domain.UserIDFromContext(ctx),
		Action:    action,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to apply reaction", err)
		return
	}

	subject, err = fetch(ctx)
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch updated reaction subject", err)
		return
	}
	if subject == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(ctx, w, http.StatusOK, subject)
}
