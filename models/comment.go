package models

import "time"

// Comment is a flat (non-threaded) comment on a post.
//
// Likes holds the deduplicated set of liking account ids;
// NumberOfLikes always equals len(Likes) and never goes negative.
// Both are maintained by a single conditional update in the store so
// concurrent togglers cannot lose each other's writes.
type Comment struct {
	CommentID string `json:"id"`
	PostID    string `json:"postId"`

	// UserID is the authoring account id.
	UserID string `json:"userId"`

	Content string `json:"content"`

	Likes         []string `json:"likes"`
	NumberOfLikes int      `json:"numberOfLikes"`

	// Username and ProfilePicture are denormalized author fields
	// populated only by the joined per-post listing.
	Username       string `json:"username,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// LikedBy reports whether the given account id is present in the
// likes set.
func (c Comment) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
