package domain

// Profile is the public view of a user as seen by the current viewer.
type Profile struct {
	UserID    string `json:"user_id"`
	Following bool   `json:"following"`
}

// Authored is implemented by feed items whose author can be followed.
type Authored interface {
	AuthorID() string
	SetFollowing(following bool)
}
