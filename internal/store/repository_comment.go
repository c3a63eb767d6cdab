package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. It executes comment CRUD, the atomic like toggle
// and per-post listings against the "comments" table.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment with an empty likes set and returns
// it with server-assigned fields populated.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var created models.Comment
	row := r.db.QueryRowContext(ctx, createComment,
		comment.CommentID, comment.PostID, comment.UserID, comment.Content)

	if err := scanComment(row, &created); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: creating comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindCommentByID retrieves a comment by its identifier.
func (r *commentRepository) FindCommentByID(ctx context.Context, commentID string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var found models.Comment
	row := r.db.QueryRowContext(ctx, findCommentByID, commentID)

	if err := scanComment(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Str("comment_id", commentID).Msg("error: finding comment by id")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ToggleLike flips the presence of userID in the comment's likes set and
// adjusts the like counter in a single conditional UPDATE. The database row
// lock serializes concurrent togglers, so the counter always equals the
// size of the likes set. Returns the updated comment.
func (r *commentRepository) ToggleLike(ctx context.Context, commentID, userID string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var updated models.Comment
	row := r.db.QueryRowContext(ctx, toggleCommentLike, commentID, userID)

	if err := scanComment(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).
			Str("func", "*commentRepository.ToggleLike").
			Str("comment_id", commentID).
			Str("user_id", userID).
			Msg("error: toggling comment like")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// UpdateCommentContent replaces the comment body and returns the updated
// comment.
func (r *commentRepository) UpdateCommentContent(ctx context.Context, commentID, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var updated models.Comment
	row := r.db.QueryRowContext(ctx, updateCommentContent, commentID, content)

	if err := scanComment(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.UpdateCommentContent").Str("comment_id", commentID).Msg("error: updating comment content")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteComment removes a comment permanently. Deleting a comment that
// does not exist returns [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, commentID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Str("comment_id", commentID).Msg("error: deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// ListCommentsByPost returns all comments of an article, newest first, each
// joined with the author's current username and profile picture.
func (r *commentRepository) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCommentsByPost, postID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Str("post_id", postID).Msg("failed to execute query for listing post comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 20)

	for rows.Next() {
		var comment models.Comment
		var likes []byte

		scanErr := rows.Scan(
			&comment.CommentID,
			&comment.PostID,
			&comment.UserID,
			&comment.Content,
			&likes,
			&comment.NumberOfLikes,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.Username,
			&comment.ProfilePicture,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.ListCommentsByPost").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		comment.Likes = parseUUIDArray(likes)
		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*commentRepository.ListCommentsByPost").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// ListComments returns a page of comments across all articles ordered by
// creation time.
func (r *commentRepository) ListComments(ctx context.Context, query models.ListQuery) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	listQuery, args, err := buildListQuery("comments", commentColumns, query)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, query.Limit)

	for rows.Next() {
		var comment models.Comment

		if scanErr := scanComment(rows, &comment); scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.ListComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*commentRepository.ListComments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// CountComments returns the number of comments created at or after since; a
// zero time counts all comments.
func (r *commentRepository) CountComments(ctx context.Context, since time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	countQuery, args, err := buildCountQuery("comments", since)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CountComments").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*commentRepository.CountComments").Msg("failed to count comments")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// scanComment reads one comment row in [commentColumns] order, decoding the
// likes array from its textual representation.
func scanComment(row interface{ Scan(dest ...any) error }, comment *models.Comment) error {
	var likes []byte

	err := row.Scan(
		&comment.CommentID,
		&comment.PostID,
		&comment.UserID,
		&comment.Content,
		&likes,
		&comment.NumberOfLikes,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return err
	}

	comment.Likes = parseUUIDArray(likes)

	return nil
}
