package service

import (
	"context"
	"io"

	"github.com/jurnalresonansi/resonansi-api/internal/blob"
	"github.com/jurnalresonansi/resonansi-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services.go -package=mock

// AuthService covers local and federated authentication plus the JWT
// lifecycle.
type AuthService interface {
	// SignUp registers a local account. The requested role is ignored:
	// every self-registered account starts as a regular user.
	SignUp(ctx context.Context, request models.SignupRequest) (models.User, error)

	// SignIn authenticates a local account by e-mail and password.
	// Failures are ordered: unknown account, then deactivated account,
	// then wrong password.
	SignIn(ctx context.Context, request models.SigninRequest) (models.User, error)

	// GoogleAuthURL returns the provider consent page URL for the
	// browser redirect flow.
	GoogleAuthURL(state string) string

	// GoogleSignIn resolves the authorization code to a provider
	// profile and signs in the matching account, provisioning a fresh
	// one when no account carries the profile's e-mail yet.
	GoogleSignIn(ctx context.Context, code string) (models.User, error)

	// CreateToken issues a signed JWT carrying the account id and role.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded
	// token. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers account self-service, admin account management and
// the admin user listing.
type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies a self-service patch. The actor must be the
	// account owner or an admin.
	UpdateUser(ctx context.Context, actor models.Identity, userID string, patch models.UserUpdate) (models.User, error)

	// UpdateRole changes an account role. Admin only.
	UpdateRole(ctx context.Context, actor models.Identity, userID, role string) (models.User, error)

	// DeleteUser removes an account. The actor must be the account
	// owner or an admin.
	DeleteUser(ctx context.Context, actor models.Identity, userID string) error

	// ListUsers returns a page of accounts with the total and
	// last-month counters. Admin only.
	ListUsers(ctx context.Context, actor models.Identity, query models.ListQuery) (models.UsersResponse, error)
}

// PostService covers article publishing and the public article surface.
type PostService interface {
	// CreatePost publishes a new article. Admin only.
	CreatePost(ctx context.Context, actor models.Identity, request models.CreatePostRequest) (models.Post, error)

	// GetPostBySlug returns an article with its timeline neighbors.
	GetPostBySlug(ctx context.Context, slug string) (models.PostWithNeighbors, error)

	// UpdatePost applies a patch. The actor must be the article author
	// or an admin.
	UpdatePost(ctx context.Context, actor models.Identity, postID string, patch models.PostUpdate) (models.Post, error)

	// DeletePost removes an article. The actor must be the article
	// author or an admin.
	DeletePost(ctx context.Context, actor models.Identity, postID string) error

	// ListPosts returns a filtered page of articles with the total and
	// last-month counters.
	ListPosts(ctx context.Context, filter models.PostFilter, query models.ListQuery) (models.PostsResponse, error)
}

// CommentService covers commenting and the like toggle.
type CommentService interface {
	// CreateComment adds a comment to an existing article. The payload
	// author must match the actor.
	CreateComment(ctx context.Context, actor models.Identity, request models.CreateCommentRequest) (models.Comment, error)

	// ListPostComments returns all comments of an article, newest
	// first, with author display fields attached.
	ListPostComments(ctx context.Context, postID string) ([]models.Comment, error)

	// ToggleLike flips the actor's like on a comment and returns the
	// updated comment.
	ToggleLike(ctx context.Context, actor models.Identity, commentID string) (models.Comment, error)

	// EditComment replaces a comment body. The actor must be the
	// comment author or an admin.
	EditComment(ctx context.Context, actor models.Identity, commentID, content string) (models.Comment, error)

	// DeleteComment removes a comment. The actor must be the comment
	// author or an admin.
	DeleteComment(ctx context.Context, actor models.Identity, commentID string) error

	// ListComments returns a page of comments across all articles with
	// the total and last-month counters. Admin only.
	ListComments(ctx context.Context, actor models.Identity, query models.ListQuery) (models.CommentsResponse, error)
}

// DownloadService covers the published file area: uploads into object
// storage, the public listing and link resolution.
type DownloadService interface {
	// Publish stores the file content in object storage and records the
	// download entry. Admin only.
	Publish(ctx context.Context, actor models.Identity, title, imagePath string, content io.Reader, meta blob.UploadMetadata) (models.Download, error)

	// Delete removes the stored object and then the entry. Admin only.
	// When the entry deletion fails after the object is already gone,
	// the error wraps ErrDanglingDownload.
	Delete(ctx context.Context, actor models.Identity, fileID string) error

	// ResolveURL returns a short-lived link to the stored file content.
	ResolveURL(ctx context.Context, fileID string) (string, error)

	// ListDownloads returns all download entries, newest first.
	ListDownloads(ctx context.Context) ([]models.Download, error)
}
