package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/conduit-feed/internal/command"
	"github.com/jbeshir/conduit-feed/internal/datasources"
	"github.com/jbeshir/conduit-feed/internal/datasources/mysql"
	"github.com/jbeshir/conduit-feed/internal/datasources/sqlite"
	"github.com/jbeshir/conduit-feed/internal/datasources/sqlstore"
	"github.com/jbeshir/conduit-feed/internal/transport/web/controller"
	"github.com/jbeshir/conduit-feed/internal/transport/web/router"
	"github.com/jbeshir/conduit-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		NewCommands(repo),
		controller.Paging{
			DefaultLimit: MustGetEnvAsInt(ctx, "PAGE_SIZE_DEFAULT"),
			MaxLimit:     MustGetEnvAsInt(ctx, "PAGE_SIZE_MAX"),
		},
		router.RSSConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		},
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// NewCommands builds every HTTP-facing command on top of a single repository.
func NewCommands(repo datasources.Repository) router.Commands {
	reactions := &command.ReactionAggregator{Counter: repo, ViewerLister: repo}
	articleEnricher := &command.ArticleEnricher{Reactions: reactions, Follows: repo}
	commentEnricher := &command.CommentEnricher{Reactions: reactions, Follows: repo}

	return router.Commands{
		ListArticles:  &command.ListArticles{Lister: repo, Enricher: articleEnricher},
		GetArticle:    &command.GetArticle{Fetcher: repo, Enricher: articleEnricher},
		CreateArticle: command.NewCreateArticle(repo),
		ListComments: &command.ListComments{
			ArticleFetcher: repo,
			Lister:         repo,
			Enricher:       commentEnricher,
		},
		GetComment:    &command.GetComment{Fetcher: repo, Enricher: commentEnricher},
		CreateComment: command.NewCreateComment(repo, repo),
		ApplyReaction: command.NewApplyReaction(repo),
		SetFollow:     &command.SetFollow{Setter: repo},
	}
}

var mysqlDialect = sqlstore.Dialect{
	Flavor:            sqlbuilder.MySQL,
	IsUniqueViolation: mysql.IsUniqueViolation,
	IsLockConflict:    mysql.IsDeadlock,
	LockRows:          true,
}

// SQLite runs on a single connection, so writers are already serialised.
var sqliteDialect = sqlstore.Dialect{
	Flavor:            sqlbuilder.SQLite,
	IsUniqueViolation: sqlite.IsUniqueViolation,
}

func setupRepository(ctx context.Context) (*sqlstore.Repository, error) {
	switch driver := MustGetEnvAsString(ctx, "DB_DRIVER"); driver {
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.ApplySchema(ctx, db); err != nil {
			return nil, err
		}
		return sqlstore.New(db, mysqlDialect), nil
	case "sqlite":
		db, err := sqlite.Open(ctx, MustGetEnvAsString(ctx, "SQLITE_PATH"))
		if err != nil {
			return nil, fmt.Errorf("opening SQLite: %w", err)
		}
		return sqlstore.New(db, sqliteDialect), nil
	default:
		return nil, fmt.Errorf("unknown database driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Splitting an empty AUTH_DRIVERS yields one empty entry.
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
