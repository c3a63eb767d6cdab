package store

import (
	"context"
	"time"

	"github.com/jurnalresonansi/resonansi-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

// UserRepository owns account records: credential hash, role,
// identity-provider linkage, active flag.
type UserRepository interface {
	// CreateUser persists a new account and returns it with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves an account by its lowercase-normalized
	// e-mail address.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves an account by id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies a presence-aware patch and returns the
	// updated account.
	UpdateUser(ctx context.Context, userID string, patch models.UserUpdate) (models.User, error)

	// UpdateUserRole sets the account role in a single conditional
	// update and returns the updated account.
	UpdateUserRole(ctx context.Context, userID, role string) (models.User, error)

	// DeleteUser removes an account permanently.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns a page of accounts ordered by creation time.
	ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error)

	// CountUsers returns the number of accounts created at or after
	// since; a zero time counts all accounts.
	CountUsers(ctx context.Context, since time.Time) (int64, error)
}

// PostRepository owns article records.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	FindPostBySlug(ctx context.Context, slug string) (models.Post, error)

	// FindAdjacentPosts returns references to the posts immediately
	// older and newer than the given creation time; either may be nil
	// at the ends of the timeline.
	FindAdjacentPosts(ctx context.Context, createdAt time.Time) (previous, next *models.PostRef, err error)

	// UpdatePost applies a presence-aware patch; slug must already be
	// recomputed by the caller when the title changes.
	UpdatePost(ctx context.Context, postID string, patch models.PostUpdate, slug string) (models.Post, error)

	DeletePost(ctx context.Context, postID string) error
	ListPosts(ctx context.Context, filter models.PostFilter, query models.ListQuery) ([]models.Post, error)
	CountPosts(ctx context.Context, filter models.PostFilter, since time.Time) (int64, error)
}

// CommentRepository owns comment records including their likes set.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, commentID string) (models.Comment, error)

	// ToggleLike flips the presence of userID in the comment's likes
	// set and adjusts the like counter accordingly, as one atomic
	// conditional update: two concurrent togglers can never lose each
	// other's writes. Returns the updated comment.
	ToggleLike(ctx context.Context, commentID, userID string) (models.Comment, error)

	// UpdateCommentContent replaces the comment body.
	UpdateCommentContent(ctx context.Context, commentID, content string) (models.Comment, error)

	DeleteComment(ctx context.Context, commentID string) error

	// ListCommentsByPost returns all comments of a post, newest first,
	// joined with the author's username and profile picture.
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)

	ListComments(ctx context.Context, query models.ListQuery) ([]models.Comment, error)
	CountComments(ctx context.Context, since time.Time) (int64, error)
}

// DownloadRepository owns download entry records.
type DownloadRepository interface {
	CreateDownload(ctx context.Context, download models.Download) (models.Download, error)
	FindDownloadByID(ctx context.Context, fileID string) (models.Download, error)
	DeleteDownload(ctx context.Context, fileID string) error
	ListDownloads(ctx context.Context) ([]models.Download, error)
}
