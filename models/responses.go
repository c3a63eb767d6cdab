package models

// Response envelopes returned by the HTTP layer.

// AuthResponse is returned by signup, signin and the Google API
// variant: the sanitized account, plus the token duplicated in the
// body so bearer-based clients do not depend on the cookie.
type AuthResponse struct {
	Message     string `json:"message,omitempty"`
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// MessageResponse is a bare human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UsersResponse is the admin user listing with its counters.
type UsersResponse struct {
	Users          []User `json:"users"`
	TotalUsers     int64  `json:"totalUsers"`
	LastMonthUsers int64  `json:"lastMonthUsers"`
}

// PostsResponse is the article listing with its counters.
type PostsResponse struct {
	Posts          []Post `json:"posts"`
	TotalPosts     int64  `json:"totalPosts"`
	LastMonthPosts int64  `json:"lastMonthPosts"`
}

// PostWithNeighbors is a single article plus previous/next navigation
// references; the references are nil at the ends of the timeline.
type PostWithNeighbors struct {
	Post     Post     `json:"post"`
	Previous *PostRef `json:"previous"`
	Next     *PostRef `json:"next"`
}

// CommentsResponse is the admin comment listing with its counters.
type CommentsResponse struct {
	Comments          []Comment `json:"comments"`
	TotalComments     int64     `json:"totalComments"`
	LastMonthComments int64     `json:"lastMonthComments"`
}

// ErrorResponse is the uniform error body produced by the HTTP error
// mapper.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
