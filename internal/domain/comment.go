package domain

import "time"

// Comment is a reply on an article, with its read-time reaction and follow projections.
type Comment struct {
	ID        string          `json:"id"`
	ArticleID string          `json:"article_id"`
	Body      string          `json:"body"`
	Author    Profile         `json:"author"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Reactions ReactionSummary `json:"reactions"`
}

func (c Comment) PageCursor() Cursor {
	return NewCursor(c.CreatedAt)
}

func (c Comment) ReactionSubjectID() string {
	return c.ID
}

func (c *Comment) SetReactions(summary ReactionSummary) {
	c.Reactions = summary
}

func (c Comment) AuthorID() string {
	return c.Author.UserID
}

func (c *Comment) SetFollowing(following bool) {
	c.Author.Following = following
}
