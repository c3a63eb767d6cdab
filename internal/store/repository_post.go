package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// postRepository is the PostgreSQL-backed implementation of
// [PostRepository]. It executes article CRUD, slug lookups, timeline
// navigation and filtered listings against the "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new article and returns it with server-assigned
// fields populated.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPostAlreadyExists]
//     (duplicate title or slug).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	var created models.Post
	row := r.db.QueryRowContext(ctx, createPost,
		post.PostID, post.UserID, post.AuthorName, post.Title,
		post.Content, post.Category, post.Image, post.Slug)

	if err := scanPost(row, &created); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: creating post")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrPostAlreadyExists
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindPostByID retrieves an article by its identifier.
func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var found models.Post
	row := r.db.QueryRowContext(ctx, findPostByID, postID)

	if err := scanPost(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Str("post_id", postID).Msg("error: finding post by id")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindPostBySlug retrieves an article by its URL slug.
func (r *postRepository) FindPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var found models.Post
	row := r.db.QueryRowContext(ctx, findPostBySlug, slug)

	if err := scanPost(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostBySlug").Str("slug", slug).Msg("error: finding post by slug")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindAdjacentPosts returns references to the articles immediately older
// and newer than the given creation time. Either reference is nil at the
// corresponding end of the timeline.
func (r *postRepository) FindAdjacentPosts(ctx context.Context, createdAt time.Time) (previous, next *models.PostRef, err error) {
	log := logger.FromContext(ctx)

	previous, err = r.findNeighbor(ctx, findPreviousPost, createdAt)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindAdjacentPosts").Msg("error: finding previous post")
		return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	next, err = r.findNeighbor(ctx, findNextPost, createdAt)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindAdjacentPosts").Msg("error: finding next post")
		return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return previous, next, nil
}

func (r *postRepository) findNeighbor(ctx context.Context, query string, createdAt time.Time) (*models.PostRef, error) {
	var ref models.PostRef
	err := r.db.QueryRowContext(ctx, query, createdAt).Scan(&ref.Title, &ref.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// UpdatePost applies a presence-aware patch to an article. The caller is
// responsible for recomputing the slug when the title changes; a non-empty
// slug argument is written alongside the patched fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPostAlreadyExists].
//   - [sql.ErrNoRows] → [ErrPostNotFound].
func (r *postRepository) UpdatePost(ctx context.Context, postID string, patch models.PostUpdate, slug string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args := r.buildUpdatePostQuery(postID, patch, slug)

	var updated models.Post
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanPost(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Str("post_id", postID).Msg("error: updating post")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrPostAlreadyExists
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// buildUpdatePostQuery dynamically builds the article UPDATE query from the
// fields present in the patch.
func (r *postRepository) buildUpdatePostQuery(postID string, patch models.PostUpdate, slug string) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(`UPDATE posts SET updated_at = now()`)

	args := make([]any, 0, 6)
	setClauses := make([]string, 0, 5)
	argIndex := 1

	if patch.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argIndex))
		args = append(args, *patch.Title)
		argIndex++
	}

	if patch.Content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argIndex))
		args = append(args, *patch.Content)
		argIndex++
	}

	if patch.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *patch.Category)
		argIndex++
	}

	if patch.Image != nil {
		setClauses = append(setClauses, fmt.Sprintf("image = $%d", argIndex))
		args = append(args, *patch.Image)
		argIndex++
	}

	if slug != "" {
		setClauses = append(setClauses, fmt.Sprintf("slug = $%d", argIndex))
		args = append(args, slug)
		argIndex++
	}

	if len(setClauses) > 0 {
		queryBuilder.WriteString(", ")
		queryBuilder.WriteString(strings.Join(setClauses, ", "))
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE post_id = $%d RETURNING %s;", argIndex, postColumns))
	args = append(args, postID)

	return queryBuilder.String(), args
}

// DeletePost removes an article permanently. Deleting an article that does
// not exist returns [ErrPostNotFound].
func (r *postRepository) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Str("post_id", postID).Msg("error: deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// ListPosts returns a page of articles matching the filter, ordered by
// last-update time.
func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter, query models.ListQuery) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	listQuery, args, err := buildListPostsQuery(filter, query)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, query.Limit)

	for rows.Next() {
		var post models.Post

		if scanErr := scanPost(rows, &post); scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// CountPosts returns the number of articles matching the filter created at
// or after since; a zero time counts all matching articles.
func (r *postRepository) CountPosts(ctx context.Context, filter models.PostFilter, since time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	countQuery, args, err := buildCountPostsQuery(filter, since)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CountPosts").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*postRepository.CountPosts").Msg("failed to count posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// scanPost reads one article row in [postColumns] order.
func scanPost(row interface{ Scan(dest ...any) error }, post *models.Post) error {
	return row.Scan(
		&post.PostID,
		&post.UserID,
		&post.AuthorName,
		&post.Title,
		&post.Content,
		&post.Category,
		&post.Image,
		&post.Slug,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}
