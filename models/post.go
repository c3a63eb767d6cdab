package models

import "time"

// Categories an article may belong to. The set is closed: create and
// update reject any other value.
var AllowedCategories = []string{"pendidikan", "sosial", "ekonomi", "politik", "cerpen", "puisi"}

// IsAllowedCategory reports whether category is a member of
// [AllowedCategories].
func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Post is a published article.
//
// Title and Slug are globally unique; Slug is derived
// deterministically from Title and recomputed whenever the title
// changes.
type Post struct {
	PostID string `json:"id"`

	// UserID is the owning account id, consumed by the authorization
	// guard for mutate-only-if-owner-or-admin checks.
	UserID string `json:"userId"`

	// AuthorName is the denormalized display name of the owner at
	// creation time.
	AuthorName string `json:"authorName"`

	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate is a presence-aware patch for article updates.
// A nil field means "leave unchanged".
type PostUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
}

// Empty reports whether the patch carries no fields at all.
func (p PostUpdate) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil && p.Image == nil
}

// PostRef is a lightweight reference to an adjacent article used for
// previous/next navigation.
type PostRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// PostFilter narrows article listings. Zero-valued fields are ignored.
type PostFilter struct {
	UserID     string
	Category   string
	Slug       string
	PostID     string
	SearchTerm string
}
