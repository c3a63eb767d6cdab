package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jurnalresonansi/resonansi-api/models"
)

const (
	userColumns = `user_id, username, email, password, profile_picture, role, COALESCE(google_id, ''), auth_provider, is_active, created_at, updated_at`

	createUser = `INSERT INTO users (user_id, username, email, password, profile_picture, role, google_id, auth_provider)
    VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	// Role change is a single conditional update: the new role is
	// applied and the canonical row returned in one statement.
	updateUserRole = `UPDATE users
    SET role = $2, updated_at = now()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	postColumns = `post_id, user_id, author_name, title, content, category, image, slug, created_at, updated_at`

	createPost = `INSERT INTO posts (post_id, user_id, author_name, title, content, category, image, slug)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + postColumns + `;`

	findPostByID = `SELECT ` + postColumns + `
    FROM posts
    WHERE post_id = $1;`

	findPostBySlug = `SELECT ` + postColumns + `
    FROM posts
    WHERE slug = $1;`

	findPreviousPost = `SELECT title, slug
    FROM posts
    WHERE created_at < $1
    ORDER BY created_at DESC
    LIMIT 1;`

	findNextPost = `SELECT title, slug
    FROM posts
    WHERE created_at > $1
    ORDER BY created_at ASC
    LIMIT 1;`

	deletePost = `DELETE FROM posts WHERE post_id = $1;`

	commentColumns = `comment_id, post_id, user_id, content, likes, number_of_likes, created_at, updated_at`

	createComment = `INSERT INTO comments (comment_id, post_id, user_id, content)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + commentColumns + `;`

	findCommentByID = `SELECT ` + commentColumns + `
    FROM comments
    WHERE comment_id = $1;`

	// The like toggle is one conditional update over the likes array:
	// membership decides between append and remove, and the counter
	// moves with it. Concurrent togglers serialize on the row lock and
	// each re-evaluates the CASE against the committed row, so no
	// toggle is ever lost and the counter always equals the set size.
	toggleCommentLike = `UPDATE comments
    SET likes = CASE WHEN $2 = ANY(likes) THEN array_remove(likes, $2) ELSE array_append(likes, $2) END,
        number_of_likes = CASE WHEN $2 = ANY(likes) THEN number_of_likes - 1 ELSE number_of_likes + 1 END,
        updated_at = now()
    WHERE comment_id = $1
    RETURNING ` + commentColumns + `;`

	updateCommentContent = `UPDATE comments
    SET content = $2, updated_at = now()
    WHERE comment_id = $1
    RETURNING ` + commentColumns + `;`

	deleteComment = `DELETE FROM comments WHERE comment_id = $1;`

	listCommentsByPost = `SELECT c.comment_id, c.post_id, c.user_id, c.content, c.likes, c.number_of_likes, c.created_at, c.updated_at,
        u.username, u.profile_picture
    FROM comments c
    JOIN users u ON u.user_id = c.user_id
    WHERE c.post_id = $1
    ORDER BY c.created_at DESC;`

	downloadColumns = `file_id, title, filename, mimetype, size, file_url, object_id, image_path, COALESCE(uploaded_by, ''), created_at, updated_at`

	createDownload = `INSERT INTO downloads (file_id, title, filename, mimetype, size, file_url, object_id, image_path, uploaded_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
    RETURNING ` + downloadColumns + `;`

	findDownloadByID = `SELECT ` + downloadColumns + `
    FROM downloads
    WHERE file_id = $1;`

	deleteDownload = `DELETE FROM downloads WHERE file_id = $1;`

	listDownloads = `SELECT ` + downloadColumns + `
    FROM downloads
    ORDER BY created_at DESC;`
)

// orderDirection translates the listing sort flag into SQL.
func orderDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

// buildListPostsQuery assembles the filtered article listing query.
// Zero-valued filter fields are skipped; the search term matches title
// or content case-insensitively.
func buildListPostsQuery(filter models.PostFilter, query models.ListQuery) (string, []any, error) {
	builder := postFilterBuilder(sq.Select(strings.Split(postColumns, ", ")...).From("posts"), filter).
		OrderBy("updated_at " + orderDirection(query.Ascending)).
		Offset(uint64(query.StartIndex)).
		Limit(uint64(query.Limit)).
		PlaceholderFormat(sq.Dollar)

	return builder.ToSql()
}

// buildCountPostsQuery assembles the matching COUNT query for the
// article listing, optionally restricted to rows created since the
// given time.
func buildCountPostsQuery(filter models.PostFilter, since time.Time) (string, []any, error) {
	builder := postFilterBuilder(sq.Select("COUNT(*)").From("posts"), filter)
	if !since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": since})
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

func postFilterBuilder(builder sq.SelectBuilder, filter models.PostFilter) sq.SelectBuilder {
	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Slug != "" {
		builder = builder.Where(sq.Eq{"slug": filter.Slug})
	}
	if filter.PostID != "" {
		builder = builder.Where(sq.Eq{"post_id": filter.PostID})
	}
	if filter.SearchTerm != "" {
		pattern := "%" + filter.SearchTerm + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	return builder
}

// buildListQuery assembles a paginated listing over the given table,
// ordered by creation time.
func buildListQuery(table, columns string, query models.ListQuery) (string, []any, error) {
	return sq.Select(strings.Split(columns, ", ")...).
		From(table).
		OrderBy("created_at " + orderDirection(query.Ascending)).
		Offset(uint64(query.StartIndex)).
		Limit(uint64(query.Limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildCountQuery assembles a COUNT over the given table, optionally
// restricted to rows created since the given time.
func buildCountQuery(table string, since time.Time) (string, []any, error) {
	builder := sq.Select("COUNT(*)").From(table)
	if !since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": since})
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

// parseUUIDArray decodes the textual representation of a Postgres
// uuid[] value ("{id1,id2}") into a string slice. UUID elements never
// require quoting, so splitting on commas is sufficient.
func parseUUIDArray(raw []byte) []string {
	trimmed := strings.Trim(string(raw), "{}")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, ",")
}
