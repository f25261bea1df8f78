package datasources

// Repository combines every storage operation the application needs.
type Repository interface {
	ArticlePageLister
	ArticleBySlugFetcher
	ArticleCreator
	CommentPageLister
	CommentFetcher
	CommentCreator
	ReactionFinder
	ReactionTransactor
	ReactionCounter
	ViewerReactionLister
	FollowSetter
	FollowedAuthorsLister
}
