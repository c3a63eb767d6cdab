package models

// Request bodies accepted by the HTTP layer. Kept separate from the
// domain entities so handlers never decode directly into persisted
// structs.

// SignupRequest is the local registration payload. Role is accepted
// but always coerced to RoleUser server-side: clients can never
// self-assign admin.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SigninRequest is the local login payload.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleSigninRequest is the API variant of federated login: the client
// obtained the authorization code itself and submits it as JSON.
type GoogleSigninRequest struct {
	Code string `json:"code"`
}

// CreatePostRequest is the article creation payload. All fields are
// required, including the image reference.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// CreateCommentRequest is the comment creation payload. UserID must
// match the authenticated caller.
type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
}

// EditCommentRequest carries the replacement comment content.
type EditCommentRequest struct {
	Content string `json:"content"`
}

// RoleUpdateRequest is the admin-only role change payload.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// ListQuery carries the pagination and sort parameters shared by the
// listing endpoints.
type ListQuery struct {
	StartIndex int
	Limit      int
	// Ascending selects ascending creation-time order; the default is
	// newest first.
	Ascending bool
}

// Normalize applies the listing defaults used across all collections.
func (q ListQuery) Normalize() ListQuery {
	if q.StartIndex < 0 {
		q.StartIndex = 0
	}
	if q.Limit <= 0 {
		q.Limit = 9
	}
	return q
}
