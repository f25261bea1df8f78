package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/jbeshir/conduit-feed/internal/transport/web/controller"
)

// Commands are the application operations exposed over HTTP.
type Commands struct {
	ListArticles  command.Command[command.ListArticlesRequest, domain.PagedResult[domain.Article]]
	GetArticle    command.Command[command.GetArticleRequest, *domain.Article]
	CreateArticle command.Command[domain.NewArticle, domain.Article]
	ListComments  command.Command[command.ListCommentsRequest, domain.PagedResult[domain.Comment]]
	GetComment    command.Command[command.GetCommentRequest, *domain.Comment]
	CreateComment command.Command[command.CreateCommentRequest, domain.Comment]
	ApplyReaction command.Command[command.ApplyReactionRequest, command.ApplyReactionResult]
	SetFollow     command.Command[command.SetFollowRequest, command.Empty]
}

type RSSConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
}

func MakeRouter(
	cmds Commands,
	paging controller.Paging,
	rss RSSConfig,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(requestLoggerMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/articles", controller.ArticlesList{
		Command:     cmds.ListArticles,
		Paging:      paging,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", requireAuthMiddleware(controller.ArticleCreate{
		Command: cmds.CreateArticle,
	})).Methods(http.MethodPost)

	// Registered before the {slug} route so "feed" is never read as a slug.
	r.Handle("/v1/articles/feed", requireAuthMiddleware(controller.ArticlesList{
		Command:      cmds.ListArticles,
		Paging:       paging,
		FollowedOnly: true,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{slug}", controller.ArticleGet{
		Command:     cmds.GetArticle,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{slug}/comments", controller.CommentsList{
		Command:     cmds.ListComments,
		Paging:      paging,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{slug}/comments", requireAuthMiddleware(controller.CommentCreate{
		Command: cmds.CreateComment,
	})).Methods(http.MethodPost)

	r.Handle("/v1/comments/{comment_id}", controller.CommentGet{
		Command:     cmds.GetComment,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	reactionRoutes := []struct {
		path   string
		method string
		action domain.ReactionAction
	}{
		{path: "/like", method: http.MethodPost, action: domain.ReactionActionLike},
		{path: "/dislike", method: http.MethodPost, action: domain.ReactionActionDislike},
		{path: "/reaction", method: http.MethodDelete, action: domain.ReactionActionRemove},
	}
	for _, route := range reactionRoutes {
		r.Handle("/v1/articles/{slug}"+route.path, requireAuthMiddleware(controller.ArticleReactionSet{
			Article: cmds.GetArticle,
			Apply:   cmds.ApplyReaction,
			Action:  route.action,
		})).Methods(route.method, http.MethodOptions)

		r.Handle("/v1/comments/{comment_id}"+route.path, requireAuthMiddleware(controller.CommentReactionSet{
			Comment: cmds.GetComment,
			Apply:   cmds.ApplyReaction,
			Action:  route.action,
		})).Methods(route.method, http.MethodOptions)
	}

	r.Handle("/v1/profiles/{user_id}/follow", requireAuthMiddleware(controller.ProfileFollowSet{
		Command: cmds.SetFollow,
		Follow:  true,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/profiles/{user_id}/follow", requireAuthMiddleware(controller.ProfileFollowSet{
		Command: cmds.SetFollow,
		Follow:  false,
	})).Methods(http.MethodDelete)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rss.BaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rss.AuthorName,
			FeedAuthorEmail: rss.AuthorEmail,
			Command:         cmds.ListArticles,
			PageSize:        paging.DefaultLimit,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
