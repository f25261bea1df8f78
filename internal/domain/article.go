package domain

import (
	"time"
)

// Article is a published post, with its read-time reaction and follow projections.
type Article struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Body        string          `json:"body"`
	Author      Profile         `json:"author"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Reactions   ReactionSummary `json:"reactions"`
}

func (a Article) PageCursor() Cursor {
	return NewCursor(a.CreatedAt)
}

func (a Article) ReactionSubjectID() string {
	return a.ID
}

func (a *Article) SetReactions(summary ReactionSummary) {
	a.Reactions = summary
}

func (a Article) AuthorID() string {
	return a.Author.UserID
}

func (a *Article) SetFollowing(following bool) {
	a.Author.Following = following
}

// ArticleFilter narrows an article feed. The zero value is the global feed.
type ArticleFilter struct {
	// AuthorID limits the feed to one author.
	AuthorID string
	// FollowedBy limits the feed to authors followed by this user.
	FollowedBy string
}

// NewArticle is the author supplied content of an article about to be created.
type NewArticle struct {
	Title       string
	Description string
	Body        string
	AuthorID    string
}
